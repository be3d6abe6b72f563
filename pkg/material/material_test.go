package material

import (
	"math"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/lights"
)

// untransformedObject stands in for a shape placed at the world origin
type untransformedObject struct{}

func (untransformedObject) InverseTransform() core.Matrix { return core.Identity() }

func TestMaterial_Default(t *testing.T) {
	m := DefaultMaterial()

	if !m.Color.Equals(core.NewColor(1, 1, 1)) {
		t.Errorf("Expected white, got %v", m.Color)
	}
	if m.Ambient != 0.1 || m.Diffuse != 0.9 || m.Specular != 0.9 || m.Shininess != 200 {
		t.Errorf("Unexpected Phong parameters %+v", m)
	}
	if m.Reflective != 0 || m.Transparency != 0 || m.RefractiveIndex != 1 {
		t.Errorf("Default material should be opaque and non-reflective, got %+v", m)
	}
	if m.Pattern != nil {
		t.Errorf("Default material should have no pattern")
	}
}

func TestMaterial_Lighting(t *testing.T) {
	half := math.Sqrt2 / 2
	position := core.Point(0, 0, 0)

	tests := []struct {
		name     string
		eye      core.Tuple
		normal   core.Tuple
		light    *lights.PointLight
		inShadow bool
		expected core.Tuple
	}{
		{
			name:     "eye between light and surface",
			eye:      core.Vector(0, 0, -1),
			normal:   core.Vector(0, 0, -1),
			light:    lights.NewPointLight(core.Point(0, 0, -10), core.White),
			expected: core.NewColor(1.9, 1.9, 1.9),
		},
		{
			name:     "eye offset 45 degrees",
			eye:      core.Vector(0, half, -half),
			normal:   core.Vector(0, 0, -1),
			light:    lights.NewPointLight(core.Point(0, 0, -10), core.White),
			expected: core.NewColor(1.0, 1.0, 1.0),
		},
		{
			name:     "light offset 45 degrees",
			eye:      core.Vector(0, 0, -1),
			normal:   core.Vector(0, 0, -1),
			light:    lights.NewPointLight(core.Point(0, 10, -10), core.White),
			expected: core.NewColor(0.7364, 0.7364, 0.7364),
		},
		{
			name:     "eye in the path of the reflection vector",
			eye:      core.Vector(0, -half, -half),
			normal:   core.Vector(0, 0, -1),
			light:    lights.NewPointLight(core.Point(0, 10, -10), core.White),
			expected: core.NewColor(1.6364, 1.6364, 1.6364),
		},
		{
			name:     "light behind the surface",
			eye:      core.Vector(0, 0, -1),
			normal:   core.Vector(0, 0, -1),
			light:    lights.NewPointLight(core.Point(0, 0, 10), core.White),
			expected: core.NewColor(0.1, 0.1, 0.1),
		},
		{
			name:     "surface in shadow",
			eye:      core.Vector(0, 0, -1),
			normal:   core.Vector(0, 0, -1),
			light:    lights.NewPointLight(core.Point(0, 0, -10), core.White),
			inShadow: true,
			expected: core.NewColor(0.1, 0.1, 0.1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := DefaultMaterial()
			got := m.Lighting(tt.light, untransformedObject{}, position, tt.eye, tt.normal, tt.inShadow)
			if !got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestMaterial_LightingWithPattern(t *testing.T) {
	m := DefaultMaterial()
	m.Pattern = NewStripePattern(core.White, core.Black)
	m.Ambient = 1
	m.Diffuse = 0
	m.Specular = 0

	eye := core.Vector(0, 0, -1)
	normal := core.Vector(0, 0, -1)
	light := lights.NewPointLight(core.Point(0, 0, -10), core.White)

	c1 := m.Lighting(light, untransformedObject{}, core.Point(0.9, 0, 0), eye, normal, false)
	c2 := m.Lighting(light, untransformedObject{}, core.Point(1.1, 0, 0), eye, normal, false)

	if !c1.Equals(core.White) {
		t.Errorf("Expected white at x=0.9, got %v", c1)
	}
	if !c2.Equals(core.Black) {
		t.Errorf("Expected black at x=1.1, got %v", c2)
	}
}

func TestMaterial_LightingIsNotClamped(t *testing.T) {
	m := DefaultMaterial()
	light := lights.NewPointLight(core.Point(0, 0, -10), core.NewColor(2, 2, 2))

	got := m.Lighting(light, untransformedObject{}, core.Point(0, 0, 0), core.Vector(0, 0, -1), core.Vector(0, 0, -1), false)
	if !got.Equals(core.NewColor(3.8, 3.8, 3.8)) {
		t.Errorf("Expected unclamped (3.8, 3.8, 3.8), got %v", got)
	}
}
