package scene

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/loaders"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// defaultJSONCameraConfig is used for any camera field a scene file leaves out
var defaultJSONCameraConfig = geometry.CameraConfig{
	Width:       400,
	Height:      300,
	FieldOfView: math.Pi / 3,
	From:        core.Point(0, 1.5, -5),
	To:          core.Point(0, 1, 0),
	Up:          core.Vector(0, 1, 0),
}

// NewJSONScene creates a scene from a JSON scene file
func NewJSONScene(path string, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	file, err := loaders.LoadSceneFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load scene file: %w", err)
	}

	name := file.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return NewSceneFromFile(name, file, cameraOverrides...)
}

// NewSceneFromFile converts a decoded scene file into a renderable scene
func NewSceneFromFile(name string, file *loaders.SceneFile, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	if err := file.Validate(); err != nil {
		return nil, err
	}

	world := NewWorld()

	for i := range file.Shapes {
		shape, err := convertShape(&file.Shapes[i])
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
		world.Add(shape)
	}

	if l := file.Light; l != nil {
		world.Light = lights.NewPointLight(l.Position.Point(), l.Intensity.Color())
	}

	s := newScene(name, world, convertCamera(file.Camera), cameraOverrides)
	s.RenderConfig = MergeRenderConfig(s.RenderConfig, RenderConfig{MaxDepth: file.MaxDepth})
	return s, nil
}

// convertCamera fills the fields a scene file sets over the default camera
func convertCamera(spec *loaders.CameraSpec) geometry.CameraConfig {
	if spec == nil {
		return defaultJSONCameraConfig
	}

	override := geometry.CameraConfig{
		Width:       spec.Width,
		Height:      spec.Height,
		FieldOfView: spec.FOV,
	}
	if spec.From != nil {
		override.From = spec.From.Point()
	}
	if spec.To != nil {
		override.To = spec.To.Point()
	}
	if spec.Up != nil {
		override.Up = spec.Up.Vector()
	}
	return geometry.MergeCameraConfig(defaultJSONCameraConfig, override)
}

// convertShape builds and places a shape
func convertShape(spec *loaders.ShapeSpec) (geometry.Shape, error) {
	var shape geometry.Shape
	switch spec.Type {
	case "sphere":
		shape = geometry.NewSphere()
	case "plane":
		shape = geometry.NewPlane()
	default:
		return nil, fmt.Errorf("unknown shape type %q", spec.Type)
	}

	transform, err := loaders.BuildTransform(spec.Transforms)
	if err != nil {
		return nil, err
	}
	if err := shape.SetTransform(transform); err != nil {
		return nil, err
	}

	m, err := convertMaterial(spec.Material)
	if err != nil {
		return nil, fmt.Errorf("material: %w", err)
	}
	shape.SetMaterial(m)

	return shape, nil
}

// convertMaterial applies the fields a scene file sets over the default material
func convertMaterial(spec *loaders.MaterialSpec) (material.Material, error) {
	m := material.DefaultMaterial()
	if spec == nil {
		return m, nil
	}

	if spec.Color != nil {
		m.Color = spec.Color.Color()
	}
	overrides := []struct {
		value  *float64
		target *float64
	}{
		{spec.Ambient, &m.Ambient},
		{spec.Diffuse, &m.Diffuse},
		{spec.Specular, &m.Specular},
		{spec.Shininess, &m.Shininess},
		{spec.Reflective, &m.Reflective},
		{spec.Transparency, &m.Transparency},
		{spec.RefractiveIndex, &m.RefractiveIndex},
	}
	for _, o := range overrides {
		if o.value != nil {
			*o.target = *o.value
		}
	}

	if spec.Pattern != nil {
		pattern, err := convertPattern(spec.Pattern)
		if err != nil {
			return m, fmt.Errorf("pattern: %w", err)
		}
		m.Pattern = pattern
	}

	return m, nil
}

// convertPattern builds and places a pattern
func convertPattern(spec *loaders.PatternSpec) (material.Pattern, error) {
	a, b := spec.A.Color(), spec.B.Color()

	var pattern material.Pattern
	switch spec.Type {
	case "stripe":
		pattern = material.NewStripePattern(a, b)
	case "gradient":
		pattern = material.NewGradientPattern(a, b)
	case "ring":
		pattern = material.NewRingPattern(a, b)
	case "checkers":
		pattern = material.NewCheckersPattern(a, b)
	case "radial":
		pattern = material.NewRadialGradientPattern(a, b)
	default:
		return nil, fmt.Errorf("unknown pattern type %q", spec.Type)
	}

	transform, err := loaders.BuildTransform(spec.Transforms)
	if err != nil {
		return nil, err
	}
	if err := pattern.SetTransform(transform); err != nil {
		return nil, err
	}
	return pattern, nil
}
