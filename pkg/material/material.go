package material

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/lights"
)

// Material holds the Phong reflectance parameters of a surface
type Material struct {
	Color     core.Tuple // Base color, used when Pattern is nil
	Ambient   float64
	Diffuse   float64
	Specular  float64
	Shininess float64 // Phong exponent
	Pattern   Pattern // Optional, overrides Color

	Reflective float64 // 0 = matte, 1 = perfect mirror

	// Reserved for refraction, not consumed by the shading pipeline
	Transparency    float64
	RefractiveIndex float64
}

// DefaultMaterial returns a matte, opaque white surface
func DefaultMaterial() Material {
	return Material{
		Color:           core.White,
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200.0,
		Reflective:      0.0,
		Transparency:    0.0,
		RefractiveIndex: 1.0,
	}
}

// Lighting computes the direct Phong illumination of a surface point.
// When inShadow is set only the ambient term contributes. The result is not
// clamped.
func (m *Material) Lighting(light *lights.PointLight, object Object, position, eyeVector, normalVector core.Tuple, inShadow bool) core.Tuple {
	baseColor := m.Color
	if m.Pattern != nil {
		baseColor = PatternAtObject(m.Pattern, object, position)
	}

	effectiveColor := baseColor.MultiplyTuple(light.Intensity)
	ambient := effectiveColor.Multiply(m.Ambient)

	if inShadow {
		return ambient
	}

	lightVector := light.Position.Subtract(position).Normalize()

	// A negative cosine means the light is on the other side of the surface
	diffuse := core.Black
	if lightDotNormal := lightVector.Dot(normalVector); lightDotNormal >= 0 {
		diffuse = effectiveColor.Multiply(m.Diffuse * lightDotNormal)
	}

	specular := core.Black
	reflectVector := lightVector.Negate().Reflect(normalVector)
	reflectDotEye := reflectVector.Dot(eyeVector)
	if reflectDotEye > 0 {
		factor := math.Pow(reflectDotEye, m.Shininess)
		specular = light.Intensity.Multiply(m.Specular * factor)
	}

	return ambient.Add(diffuse).Add(specular)
}
