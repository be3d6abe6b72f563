package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

func TestCamera_New(t *testing.T) {
	c := NewCamera(160, 120, math.Pi/2)
	if c.HSize != 160 || c.VSize != 120 || c.FieldOfView != math.Pi/2 {
		t.Errorf("Unexpected camera %+v", c)
	}
	if !c.Transform().Equals(core.Identity()) {
		t.Errorf("Expected identity view transform")
	}
}

func TestCamera_PixelSize(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
	}{
		{"horizontal canvas", 200, 125},
		{"vertical canvas", 125, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCamera(tt.width, tt.height, math.Pi/2)
			if !core.Equal(c.PixelSize(), 0.01) {
				t.Errorf("Expected pixel size 0.01, got %f", c.PixelSize())
			}
		})
	}
}

func TestCamera_Cast(t *testing.T) {
	half := math.Sqrt2 / 2

	tests := []struct {
		name      string
		transform core.Matrix
		x, y      int
		origin    core.Tuple
		direction core.Tuple
	}{
		{
			name:      "through the center",
			transform: core.Identity(),
			x:         100, y: 50,
			origin:    core.Point(0, 0, 0),
			direction: core.Vector(0, 0, -1),
		},
		{
			name:      "through a corner",
			transform: core.Identity(),
			x:         0, y: 0,
			origin:    core.Point(0, 0, 0),
			direction: core.Vector(0.66519, 0.33259, -0.66851),
		},
		{
			name:      "transformed camera",
			transform: core.Identity().Translate(0, -2, 5).RotateY(math.Pi / 4),
			x:         100, y: 50,
			origin:    core.Point(0, 2, -5),
			direction: core.Vector(half, 0, -half),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCamera(201, 101, math.Pi/2)
			if err := c.SetTransform(tt.transform); err != nil {
				t.Fatal(err)
			}

			r := c.Cast(tt.x, tt.y)
			if !r.Origin.Equals(tt.origin) {
				t.Errorf("Expected origin %v, got %v", tt.origin, r.Origin)
			}
			if !r.Direction.Equals(tt.direction) {
				t.Errorf("Expected direction %v, got %v", tt.direction, r.Direction)
			}
		})
	}
}

func TestNewCameraFromConfig(t *testing.T) {
	base := CameraConfig{
		Width:       100,
		Height:      50,
		FieldOfView: math.Pi / 3,
		From:        core.Point(0, 0, -5),
		To:          core.Point(0, 0, 0),
		Up:          core.Vector(0, 1, 0),
	}

	c, err := NewCameraFromConfig(base)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !c.Transform().Equals(core.ViewTransform(base.From, base.To, base.Up)) {
		t.Errorf("Camera should carry the view transform")
	}

	invalid := []struct {
		name   string
		config CameraConfig
	}{
		{"zero width", MergeCameraConfig(base, CameraConfig{Width: -1})},
		{"zero fov", CameraConfig{Width: 10, Height: 10, FieldOfView: 0, From: base.From, To: base.To, Up: base.Up}},
		{"fov of pi", MergeCameraConfig(base, CameraConfig{FieldOfView: math.Pi})},
		{"degenerate up", MergeCameraConfig(base, CameraConfig{Up: core.Vector(0, 0, 1)})},
		{"eye on target", MergeCameraConfig(base, CameraConfig{From: core.Point(1, 2, 3), To: core.Point(1, 2, 3)})},
		{"zero up", CameraConfig{Width: 10, Height: 10, FieldOfView: 1, From: base.From, To: base.To}},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewCameraFromConfig(tt.config); err == nil {
				t.Errorf("Expected an error for %+v", tt.config)
			}
		})
	}
}

func TestMergeCameraConfig(t *testing.T) {
	base := CameraConfig{Width: 400, Height: 200, FieldOfView: 1, From: core.Point(0, 1, -5)}
	merged := MergeCameraConfig(base, CameraConfig{Width: 800})

	if merged.Width != 800 || merged.Height != 200 || merged.FieldOfView != 1 {
		t.Errorf("Unexpected merge result %+v", merged)
	}
	if !merged.From.Equals(base.From) {
		t.Errorf("Unset fields should keep base values")
	}
}
