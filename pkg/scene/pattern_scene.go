package scene

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// NewPatternScene lines up one sphere per pattern variant above a gradient floor
func NewPatternScene(cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	defaultCameraConfig := geometry.CameraConfig{
		Width:       480,
		Height:      240,
		FieldOfView: math.Pi / 3,
		From:        core.Point(0, 2.5, -9),
		To:          core.Point(0, 0.8, 0),
		Up:          core.Vector(0, 1, 0),
	}

	b := &shapeBuilder{world: NewWorld()}

	floor := solid(core.White, 0.8, 0)
	floor.Pattern = b.pattern(
		material.NewGradientPattern(core.NewColor(0.2, 0.2, 0.3), core.NewColor(0.6, 0.6, 0.7)),
		core.Scaling(4, 1, 1),
	)
	b.add(geometry.NewPlane(), core.Identity(), floor)

	warm := core.NewColor(0.9, 0.5, 0.1)
	cool := core.NewColor(0.1, 0.4, 0.8)
	small := core.Scaling(0.25, 0.25, 0.25)

	patterns := []struct {
		pattern   material.Pattern
		transform core.Matrix
	}{
		{material.NewStripePattern(warm, cool), small},
		{material.NewGradientPattern(warm, cool), core.Identity().Scale(2, 1, 1).Translate(-1, 0, 0)},
		{material.NewRingPattern(warm, cool), core.Identity().Scale(0.2, 0.2, 0.2).RotateX(math.Pi / 2)},
		{material.NewCheckersPattern(warm, cool), small},
		{material.NewRadialGradientPattern(warm, cool), core.Scaling(1.5, 1.5, 1.5)},
	}

	spacing := 2.2
	left := -spacing * float64(len(patterns)-1) / 2
	for i, p := range patterns {
		m := solid(core.White, 0.8, 0.3)
		m.Pattern = b.pattern(p.pattern, p.transform)
		b.add(geometry.NewSphere(), core.Translation(left+spacing*float64(i), 1, 0), m)
	}

	world, err := b.build()
	if err != nil {
		return nil, err
	}
	world.Light = lightAt(core.Point(-5, 10, -10))

	return newScene("patterns", world, defaultCameraConfig, cameraOverrides), nil
}
