package lights

import "github.com/df07/go-phong-raytracer/pkg/core"

// PointLight is a light source with no size, radiating from a single position
type PointLight struct {
	Position  core.Tuple // Point the light radiates from
	Intensity core.Tuple // Color and brightness
}

// NewPointLight creates a new point light
func NewPointLight(position, intensity core.Tuple) *PointLight {
	return &PointLight{Position: position, Intensity: intensity}
}

// Equals compares position and intensity within core.Epsilon
func (l *PointLight) Equals(other *PointLight) bool {
	if l == nil || other == nil {
		return l == other
	}
	return l.Position.Equals(other.Position) && l.Intensity.Equals(other.Intensity)
}
