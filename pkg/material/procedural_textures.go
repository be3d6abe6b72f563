package material

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// floorParity returns 0 for even floors and non-zero otherwise. Floor keeps
// the bands symmetric across zero, unlike truncation.
func floorParity(v float64) int {
	return int(math.Floor(v)) % 2
}

// StripePattern alternates A and B in unit bands along x
type StripePattern struct {
	PatternTransform
	A, B core.Tuple
}

// NewStripePattern creates a stripe pattern
func NewStripePattern(a, b core.Tuple) *StripePattern {
	return &StripePattern{PatternTransform: NewPatternTransform(), A: a, B: b}
}

// ColorAt implements Pattern
func (s *StripePattern) ColorAt(point core.Tuple) core.Tuple {
	if floorParity(point.X) == 0 {
		return s.A
	}
	return s.B
}

// GradientPattern blends linearly from A to B along x, repeating every unit
type GradientPattern struct {
	PatternTransform
	A, B core.Tuple
}

// NewGradientPattern creates a gradient pattern
func NewGradientPattern(a, b core.Tuple) *GradientPattern {
	return &GradientPattern{PatternTransform: NewPatternTransform(), A: a, B: b}
}

// ColorAt implements Pattern
func (g *GradientPattern) ColorAt(point core.Tuple) core.Tuple {
	distance := g.B.Subtract(g.A)
	fraction := point.X - math.Floor(point.X)
	return g.A.Add(distance.Multiply(fraction))
}

// RingPattern alternates A and B in concentric rings around the y axis
type RingPattern struct {
	PatternTransform
	A, B core.Tuple
}

// NewRingPattern creates a ring pattern
func NewRingPattern(a, b core.Tuple) *RingPattern {
	return &RingPattern{PatternTransform: NewPatternTransform(), A: a, B: b}
}

// ColorAt implements Pattern
func (r *RingPattern) ColorAt(point core.Tuple) core.Tuple {
	if floorParity(math.Sqrt(point.X*point.X+point.Z*point.Z)) == 0 {
		return r.A
	}
	return r.B
}

// CheckersPattern alternates A and B in unit cubes
type CheckersPattern struct {
	PatternTransform
	A, B core.Tuple
}

// NewCheckersPattern creates a 3D checker pattern
func NewCheckersPattern(a, b core.Tuple) *CheckersPattern {
	return &CheckersPattern{PatternTransform: NewPatternTransform(), A: a, B: b}
}

// ColorAt implements Pattern
func (c *CheckersPattern) ColorAt(point core.Tuple) core.Tuple {
	sum := int(math.Floor(point.X)) + int(math.Floor(point.Y)) + int(math.Floor(point.Z))
	if sum%2 == 0 {
		return c.A
	}
	return c.B
}

// RadialGradientPattern blends from A to B by distance from the origin,
// repeating every unit
type RadialGradientPattern struct {
	PatternTransform
	A, B core.Tuple
}

// NewRadialGradientPattern creates a radial gradient pattern
func NewRadialGradientPattern(a, b core.Tuple) *RadialGradientPattern {
	return &RadialGradientPattern{PatternTransform: NewPatternTransform(), A: a, B: b}
}

// ColorAt implements Pattern
func (r *RadialGradientPattern) ColorAt(point core.Tuple) core.Tuple {
	distance := math.Sqrt(point.X*point.X + point.Y*point.Y + point.Z*point.Z)
	fraction := distance - math.Floor(distance)
	return r.A.Add(r.B.Subtract(r.A).Multiply(fraction))
}
