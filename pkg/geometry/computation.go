package geometry

import "github.com/df07/go-phong-raytracer/pkg/core"

// Computation is the shading context derived from a hit and the ray that produced it
type Computation struct {
	T             float64
	Object        Shape
	Point         core.Tuple // Hit point in world space
	EyeVector     core.Tuple // Points back toward the ray origin
	NormalVector  core.Tuple // Surface normal, flipped to face the eye
	Inside        bool       // Whether the hit was on the inside of the surface
	OverPoint     core.Tuple // Point nudged along the normal to escape the surface
	ReflectVector core.Tuple // Ray direction mirrored about the normal
}

// Compute prepares the shading context for this intersection
func (i Intersection) Compute(ray core.Ray) Computation {
	point := ray.At(i.T)
	eye := ray.Direction.Negate()
	normal := NormalAt(i.Object, point)

	inside := false
	if normal.Dot(eye) < 0 {
		inside = true
		normal = normal.Negate()
	}

	return Computation{
		T:             i.T,
		Object:        i.Object,
		Point:         point,
		EyeVector:     eye,
		NormalVector:  normal,
		Inside:        inside,
		OverPoint:     point.Add(normal.Multiply(core.Epsilon)),
		ReflectVector: ray.Direction.Reflect(normal),
	}
}
