package scene

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// NewDefaultWorldScene frames the default two sphere world from straight ahead
func NewDefaultWorldScene(cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	defaultCameraConfig := geometry.CameraConfig{
		Width:       400,
		Height:      400,
		FieldOfView: math.Pi / 2,
		From:        core.Point(0, 0, -5),
		To:          core.Point(0, 0, 0),
		Up:          core.Vector(0, 1, 0),
	}

	return newScene("default", DefaultWorld(), defaultCameraConfig, cameraOverrides), nil
}

// NewSpheresScene creates three spheres resting on a checkered floor between two walls
func NewSpheresScene(cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	defaultCameraConfig := geometry.CameraConfig{
		Width:       400,
		Height:      225, // 16:9 aspect ratio
		FieldOfView: math.Pi / 3,
		From:        core.Point(0, 1.5, -5),
		To:          core.Point(0, 1, 0),
		Up:          core.Vector(0, 1, 0),
	}

	b := &shapeBuilder{world: NewWorld()}

	floor := solid(core.NewColor(1, 0.9, 0.9), 0.9, 0)
	floor.Pattern = b.pattern(
		material.NewCheckersPattern(core.NewColor(1, 0.9, 0.9), core.NewColor(0.6, 0.5, 0.5)),
		core.Identity(),
	)
	b.add(geometry.NewPlane(), core.Identity(), floor)

	wall := solid(core.NewColor(1, 0.9, 0.9), 0.9, 0)
	// back left and back right walls, rotated upright then swung around y
	b.add(geometry.NewPlane(), core.Identity().RotateX(math.Pi/2).RotateY(-math.Pi/4).Translate(0, 0, 5), wall)
	b.add(geometry.NewPlane(), core.Identity().RotateX(math.Pi/2).RotateY(math.Pi/4).Translate(0, 0, 5), wall)

	b.add(geometry.NewSphere(), core.Translation(-0.5, 1, 0.5), solid(core.NewColor(0.1, 1, 0.5), 0.7, 0.3))
	b.add(geometry.NewSphere(), core.Identity().Scale(0.5, 0.5, 0.5).Translate(1.5, 0.5, -0.5), solid(core.NewColor(0.5, 1, 0.1), 0.7, 0.3))
	b.add(geometry.NewSphere(), core.Identity().Scale(0.33, 0.33, 0.33).Translate(-1.5, 0.33, -0.75), solid(core.NewColor(1, 0.8, 0.1), 0.7, 0.3))

	world, err := b.build()
	if err != nil {
		return nil, err
	}
	world.Light = lightAt(core.Point(-10, 10, -10))

	return newScene("spheres", world, defaultCameraConfig, cameraOverrides), nil
}
