package scene

import (
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
)

func TestBuiltInScenes(t *testing.T) {
	constructors := map[string]Constructor{
		"default":    NewDefaultWorldScene,
		"spheres":    NewSpheresScene,
		"reflection": NewReflectionScene,
		"patterns":   NewPatternScene,
	}

	for name, constructor := range constructors {
		t.Run(name, func(t *testing.T) {
			s, err := constructor()
			if err != nil {
				t.Fatalf("Failed to build scene: %v", err)
			}
			if s.Name != name {
				t.Errorf("Expected name %q, got %q", name, s.Name)
			}
			if s.World.Empty() || s.World.Light == nil {
				t.Errorf("Built-in scenes need shapes and a light")
			}
			if s.RenderConfig.MaxDepth != MaxReflectionDepth {
				t.Errorf("Expected default depth %d, got %d", MaxReflectionDepth, s.RenderConfig.MaxDepth)
			}

			camera, err := s.Camera()
			if err != nil {
				t.Fatalf("Failed to build camera: %v", err)
			}
			if camera.HSize != s.CameraConfig.Width || camera.VSize != s.CameraConfig.Height {
				t.Errorf("Camera size %dx%d does not match config", camera.HSize, camera.VSize)
			}

			// the camera should be looking at something
			center := camera.Cast(camera.HSize/2, camera.VSize/2)
			if _, ok := s.World.Intersect(center).Hit(); !ok {
				t.Errorf("Center ray of %s hits nothing", name)
			}
		})
	}
}

func TestBuiltInScenes_CameraOverrides(t *testing.T) {
	s, err := NewSpheresScene(geometry.CameraConfig{Width: 64, Height: 32})
	if err != nil {
		t.Fatal(err)
	}

	if s.CameraConfig.Width != 64 || s.CameraConfig.Height != 32 {
		t.Errorf("Expected overridden size 64x32, got %dx%d", s.CameraConfig.Width, s.CameraConfig.Height)
	}
	if !s.CameraConfig.From.Equals(core.Point(0, 1.5, -5)) {
		t.Errorf("Unset override fields should keep the scene defaults, got from=%v", s.CameraConfig.From)
	}
}

func TestScene_CameraRejectsInvalidConfig(t *testing.T) {
	s, err := NewDefaultWorldScene(geometry.CameraConfig{Width: -5})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Camera(); err == nil {
		t.Error("Expected an error for a negative width")
	}
}

func TestMergeRenderConfig(t *testing.T) {
	base := DefaultRenderConfig()

	if got := MergeRenderConfig(base, RenderConfig{}); got != base {
		t.Errorf("Empty override should keep base, got %+v", got)
	}
	if got := MergeRenderConfig(base, RenderConfig{MaxDepth: 2}); got.MaxDepth != 2 {
		t.Errorf("Expected depth 2, got %d", got.MaxDepth)
	}
}
