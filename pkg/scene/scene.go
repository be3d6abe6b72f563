package scene

import (
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name         string
	World        *World
	CameraConfig geometry.CameraConfig
	RenderConfig RenderConfig
}

// RenderConfig contains rendering configuration
type RenderConfig struct {
	MaxDepth int // Maximum number of reflection bounces
}

// DefaultRenderConfig returns the standard reflection depth
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{MaxDepth: MaxReflectionDepth}
}

// MergeRenderConfig returns base with every non-zero field of override applied
func MergeRenderConfig(base, override RenderConfig) RenderConfig {
	result := base
	if override.MaxDepth != 0 {
		result.MaxDepth = override.MaxDepth
	}
	return result
}

// Camera builds the camera described by the scene's camera config
func (s *Scene) Camera() (*geometry.Camera, error) {
	camera, err := geometry.NewCameraFromConfig(s.CameraConfig)
	if err != nil {
		return nil, fmt.Errorf("scene %q: %w", s.Name, err)
	}
	return camera, nil
}

// newScene applies optional camera overrides to a scene's default camera
func newScene(name string, world *World, cameraConfig geometry.CameraConfig, cameraOverrides []geometry.CameraConfig) *Scene {
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}
	return &Scene{
		Name:         name,
		World:        world,
		CameraConfig: cameraConfig,
		RenderConfig: DefaultRenderConfig(),
	}
}

// shapeBuilder assembles built-in scene shapes. The first failing transform
// is kept and reported by build so scene constructors stay linear.
type shapeBuilder struct {
	world *World
	err   error
}

func (b *shapeBuilder) add(shape geometry.Shape, transform core.Matrix, m material.Material) {
	if b.err != nil {
		return
	}
	if err := shape.SetTransform(transform); err != nil {
		b.err = fmt.Errorf("shape %d: %w", len(b.world.Shapes), err)
		return
	}
	shape.SetMaterial(m)
	b.world.Add(shape)
}

func (b *shapeBuilder) pattern(p material.Pattern, transform core.Matrix) material.Pattern {
	if b.err != nil {
		return p
	}
	if err := p.SetTransform(transform); err != nil {
		b.err = err
	}
	return p
}

func (b *shapeBuilder) build() (*World, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.world, nil
}

// solid returns the default material with its color and Phong weights replaced
func solid(color core.Tuple, diffuse, specular float64) material.Material {
	m := material.DefaultMaterial()
	m.Color = color
	m.Diffuse = diffuse
	m.Specular = specular
	return m
}
