package material

import (
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// PatternTransform holds a pattern's placement and its eagerly computed inverse.
// Embed it to get the transform half of the Pattern interface.
type PatternTransform struct {
	transform core.Matrix
	inverse   core.Matrix
}

// NewPatternTransform starts at the identity
func NewPatternTransform() PatternTransform {
	return PatternTransform{transform: core.Identity(), inverse: core.Identity()}
}

// Transform returns the object to pattern space placement
func (p *PatternTransform) Transform() core.Matrix {
	return p.transform
}

// InverseTransform returns the cached inverse of Transform
func (p *PatternTransform) InverseTransform() core.Matrix {
	return p.inverse
}

// SetTransform replaces the transform. Singular matrices are rejected and
// leave the pattern unchanged.
func (p *PatternTransform) SetTransform(m core.Matrix) error {
	inverse, err := m.Inverse()
	if err != nil {
		return fmt.Errorf("pattern transform: %w", err)
	}
	p.transform = m
	p.inverse = inverse
	return nil
}

// PatternAtObject evaluates a pattern on an object at a world space point.
// The point goes world -> object space -> pattern space before evaluation.
func PatternAtObject(pattern Pattern, object Object, worldPoint core.Tuple) core.Tuple {
	objectPoint := object.InverseTransform().MultiplyTuple(worldPoint)
	patternPoint := pattern.InverseTransform().MultiplyTuple(objectPoint)
	return pattern.ColorAt(patternPoint)
}

// SolidPattern returns the same color everywhere
type SolidPattern struct {
	PatternTransform
	Color core.Tuple
}

// NewSolidPattern creates a new solid color pattern
func NewSolidPattern(color core.Tuple) *SolidPattern {
	return &SolidPattern{PatternTransform: NewPatternTransform(), Color: color}
}

// ColorAt returns the solid color regardless of position
func (s *SolidPattern) ColorAt(point core.Tuple) core.Tuple {
	return s.Color
}
