package scene

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// MaxReflectionDepth bounds how many mirror bounces a primary ray may follow.
// Changing it changes the rendered image, not just the render time.
const MaxReflectionDepth = 5

// World is the set of shapes and the single optional light of a scene.
// It is built once and only read while rendering.
type World struct {
	Shapes []geometry.Shape
	Light  *lights.PointLight // nil means no light
}

// NewWorld creates an empty world with no light
func NewWorld() *World {
	return &World{Shapes: make([]geometry.Shape, 0)}
}

// DefaultWorld returns the canonical two sphere world lit from the upper left:
// a colored unit sphere with a half sized sphere inside it.
func DefaultWorld() *World {
	outer := geometry.NewSphere()
	m := material.DefaultMaterial()
	m.Color = core.NewColor(0.8, 1.0, 0.6)
	m.Diffuse = 0.7
	m.Specular = 0.2
	outer.SetMaterial(m)

	inner := geometry.NewSphere()
	// scaling by a non-zero factor is always invertible
	_ = inner.SetTransform(core.Scaling(0.5, 0.5, 0.5))

	return &World{
		Shapes: []geometry.Shape{outer, inner},
		Light:  lights.NewPointLight(core.Point(-10, 10, -10), core.White),
	}
}

// Add appends shapes to the world
func (w *World) Add(shapes ...geometry.Shape) {
	w.Shapes = append(w.Shapes, shapes...)
}

// Contains reports whether the exact shape instance is part of the world
func (w *World) Contains(shape geometry.Shape) bool {
	for _, s := range w.Shapes {
		if s == shape {
			return true
		}
	}
	return false
}

// Empty reports whether the world has no shapes. The light is not considered.
func (w *World) Empty() bool {
	return len(w.Shapes) == 0
}

// Intersect pools the intersections of every shape with the ray, sorted by
// ascending t. It returns nil when nothing is hit.
func (w *World) Intersect(ray core.Ray) geometry.Intersections {
	var xs geometry.Intersections
	for _, shape := range w.Shapes {
		xs = append(xs, geometry.Intersect(shape, ray)...)
	}
	if len(xs) == 0 {
		return nil
	}
	xs.Sort()
	return xs
}

// IsShadowed reports whether something lies between the point and the light.
// Without a light every point is in shadow.
func (w *World) IsShadowed(point core.Tuple) bool {
	if w.Light == nil {
		return true
	}

	toLight := w.Light.Position.Subtract(point)
	distance := toLight.Magnitude()
	ray := core.NewRay(point, toLight.Normalize())

	hit, ok := w.Intersect(ray).Hit()
	return ok && hit.T < distance
}

// ShadeHit returns the surface color plus any reflected contribution for a
// prepared hit. A world without a light shades everything black.
func (w *World) ShadeHit(comps geometry.Computation, depth int) core.Tuple {
	if w.Light == nil {
		return core.Black
	}

	shadowed := w.IsShadowed(comps.OverPoint)
	surface := comps.Object.Material().Lighting(
		w.Light,
		comps.Object,
		comps.Point,
		comps.EyeVector,
		comps.NormalVector,
		shadowed,
	)
	reflected := w.ReflectedColor(comps, depth)

	return surface.Add(reflected)
}

// ReflectedColor follows the mirror bounce of a hit. It is black for matte
// surfaces and once the remaining depth is used up.
func (w *World) ReflectedColor(comps geometry.Computation, depth int) core.Tuple {
	reflective := comps.Object.Material().Reflective
	if depth <= 0 || reflective == 0 {
		return core.Black
	}

	reflectRay := core.NewRay(comps.OverPoint, comps.ReflectVector)
	color := w.ColorAt(reflectRay, depth-1)
	return color.Multiply(reflective)
}

// ColorAt resolves the color seen along a ray. Rays that hit nothing see black.
func (w *World) ColorAt(ray core.Ray, depth int) core.Tuple {
	hit, ok := w.Intersect(ray).Hit()
	if !ok {
		return core.Black
	}
	return w.ShadeHit(hit.Compute(ray), depth)
}
