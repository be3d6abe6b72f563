package geometry

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Shape is a geometric primitive placed in the world by a transform.
// Variants only supply the object space half (LocalIntersect, LocalNormal);
// the world space protocol lives in Intersect and NormalAt. New variants
// embed Base, which owns the transform and material.
type Shape interface {
	// LocalIntersect intersects a ray already transformed into object space.
	// It returns nil when the ray misses.
	LocalIntersect(localRay core.Ray) Intersections

	// LocalNormal returns the object space normal at an object space point
	LocalNormal(localPoint core.Tuple) core.Tuple

	Transform() core.Matrix
	InverseTransform() core.Matrix
	SetTransform(m core.Matrix) error
	Material() *material.Material
	SetMaterial(m material.Material)

	base() *Base
}
