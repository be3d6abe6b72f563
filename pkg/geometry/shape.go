package geometry

import (
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Base holds the state shared by every shape: placement and surface.
// The inverse and inverse-transpose are computed when the transform is set.
type Base struct {
	transform        core.Matrix
	inverse          core.Matrix
	inverseTranspose core.Matrix
	material         material.Material
}

// NewBase returns an identity-placed base with the default material
func NewBase() Base {
	return Base{
		transform:        core.Identity(),
		inverse:          core.Identity(),
		inverseTranspose: core.Identity(),
		material:         material.DefaultMaterial(),
	}
}

func (b *Base) base() *Base { return b }

// Transform returns the object to world placement
func (b *Base) Transform() core.Matrix {
	return b.transform
}

// InverseTransform returns the world to object transform
func (b *Base) InverseTransform() core.Matrix {
	return b.inverse
}

// SetTransform places the shape. Singular matrices are rejected and leave
// the shape unchanged.
func (b *Base) SetTransform(m core.Matrix) error {
	inverse, err := m.Inverse()
	if err != nil {
		return fmt.Errorf("shape transform: %w", err)
	}
	b.transform = m
	b.inverse = inverse
	b.inverseTranspose = inverse.Transpose()
	return nil
}

// Material returns the shape's material for in-place edits
func (b *Base) Material() *material.Material {
	return &b.material
}

// SetMaterial replaces the material
func (b *Base) SetMaterial(m material.Material) {
	b.material = m
}

// Intersect converts a world ray to object space and intersects the shape
func Intersect(s Shape, worldRay core.Ray) Intersections {
	localRay := worldRay.Transform(s.InverseTransform())
	return s.LocalIntersect(localRay)
}

// NormalAt returns the world space unit normal at a world space point.
// The local normal is mapped back with the inverse transpose so non-uniform
// scaling keeps it perpendicular to the surface.
func NormalAt(s Shape, worldPoint core.Tuple) core.Tuple {
	b := s.base()
	localPoint := b.inverse.MultiplyTuple(worldPoint)
	localNormal := s.LocalNormal(localPoint)

	worldNormal := b.inverseTranspose.MultiplyTuple(localNormal)
	// the transpose drags translation into w, which must stay a vector
	worldNormal.W = 0
	return worldNormal.Normalize()
}
