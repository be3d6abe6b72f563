package scene

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// NewReflectionScene creates patterned spheres over a partially mirrored floor
// facing a mirror wall, so reflections of reflections are visible.
func NewReflectionScene(cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	defaultCameraConfig := geometry.CameraConfig{
		Width:       400,
		Height:      225,
		FieldOfView: math.Pi / 3,
		From:        core.Point(0, 2, -6),
		To:          core.Point(0, 1, 0),
		Up:          core.Vector(0, 1, 0),
	}

	b := &shapeBuilder{world: NewWorld()}

	// Floor: dim checkers with a strong mirror term
	floor := solid(core.Black, 0.6, 0.2)
	floor.Reflective = 0.6
	floor.Pattern = b.pattern(
		material.NewCheckersPattern(core.NewColor(0.35, 0.35, 0.35), core.NewColor(0.65, 0.65, 0.65)),
		core.Identity(),
	)
	b.add(geometry.NewPlane(), core.Identity(), floor)

	// Mirror wall behind the spheres
	mirror := solid(core.NewColor(0.05, 0.05, 0.1), 0.1, 0.9)
	mirror.Reflective = 0.9
	mirror.Shininess = 300
	b.add(geometry.NewPlane(), core.Identity().RotateX(math.Pi/2).Translate(0, 0, 4), mirror)

	striped := solid(core.White, 0.7, 0.3)
	striped.Pattern = b.pattern(
		material.NewStripePattern(core.NewColor(0.9, 0.2, 0.2), core.NewColor(0.9, 0.9, 0.9)),
		core.Identity().Scale(0.2, 0.2, 0.2).RotateZ(math.Pi/4),
	)
	b.add(geometry.NewSphere(), core.Translation(-1.2, 1, 0.5), striped)

	chrome := solid(core.NewColor(0.1, 0.1, 0.1), 0.3, 1)
	chrome.Reflective = 0.8
	chrome.Shininess = 300
	b.add(geometry.NewSphere(), core.Translation(1.2, 1, 0), chrome)

	ringed := solid(core.White, 0.8, 0.2)
	ringed.Pattern = b.pattern(
		material.NewRingPattern(core.NewColor(0.2, 0.4, 0.9), core.NewColor(0.9, 0.9, 0.3)),
		core.Identity().Scale(0.15, 0.15, 0.15).RotateX(math.Pi/2),
	)
	b.add(geometry.NewSphere(), core.Identity().Scale(0.5, 0.5, 0.5).Translate(0, 0.5, -1.5), ringed)

	world, err := b.build()
	if err != nil {
		return nil, err
	}
	world.Light = lightAt(core.Point(-6, 8, -8))

	return newScene("reflection", world, defaultCameraConfig, cameraOverrides), nil
}

// lightAt returns a white point light
func lightAt(position core.Tuple) *lights.PointLight {
	return lights.NewPointLight(position, core.White)
}
