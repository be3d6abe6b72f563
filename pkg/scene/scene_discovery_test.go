package scene

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/geometry"
)

func TestListScenes(t *testing.T) {
	dir := t.TempDir()
	writeSceneFile(t, dir, "mirror.json", testSceneJSON)
	writeSceneFile(t, dir, "plain-room.json", `{"description": "nothing here"}`)
	writeSceneFile(t, dir, "broken.json", `{"shapes": [`)
	writeSceneFile(t, dir, "notes.txt", "ignored")

	scenes, err := ListScenes(dir)
	if err != nil {
		t.Fatalf("ListScenes failed: %v", err)
	}

	builtIn := BuiltInScenes()
	if len(scenes) != len(builtIn)+3 {
		t.Fatalf("Expected %d scenes, got %d: %+v", len(builtIn)+3, len(scenes), scenes)
	}

	for i := 0; i < len(builtIn); i++ {
		if scenes[i].Type != "builtin" {
			t.Errorf("Built-in scenes should come first, got %+v at %d", scenes[i], i)
		}
	}

	jsonScenes := scenes[len(builtIn):]
	expected := []struct {
		id, name string
	}{
		{"json:broken", "Broken"},
		{"json:mirror", "Mirror Test"},
		{"json:plain-room", "Plain Room"},
	}
	for i, want := range expected {
		got := jsonScenes[i]
		if got.ID != want.id || got.Name != want.name || got.Type != "json" {
			t.Errorf("Scene %d: expected %s/%s, got %+v", i, want.id, want.name, got)
		}
	}
	if !strings.HasPrefix(jsonScenes[0].Description, "invalid scene file") {
		t.Errorf("Broken files should be flagged, got %q", jsonScenes[0].Description)
	}
	if jsonScenes[2].Description != "nothing here" {
		t.Errorf("Expected description from file, got %q", jsonScenes[2].Description)
	}
}

func TestListScenes_MissingDirectory(t *testing.T) {
	scenes, err := ListScenes(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Fatalf("A missing directory should not be an error: %v", err)
	}
	if len(scenes) != len(BuiltInScenes()) {
		t.Errorf("Expected only built-in scenes, got %d", len(scenes))
	}
}

func TestCreate(t *testing.T) {
	dir := t.TempDir()
	path := writeSceneFile(t, dir, "mirror.json", testSceneJSON)

	tests := []struct {
		name       string
		nameOrPath string
		wantName   string
		wantErr    bool
	}{
		{"built-in", "reflection", "reflection", false},
		{"json id", "json:mirror", "Mirror Test", false},
		{"json path", path, "Mirror Test", false},
		{"unknown", "cornell", "", true},
		{"missing json id", "json:nope", "", true},
		{"path traversal id", "json:../mirror", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Create(tt.nameOrPath, dir, geometry.CameraConfig{Width: 32, Height: 16})
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected an error for %q", tt.nameOrPath)
				}
				return
			}
			if err != nil {
				t.Fatalf("Create(%q) failed: %v", tt.nameOrPath, err)
			}
			if s.Name != tt.wantName {
				t.Errorf("Expected scene %q, got %q", tt.wantName, s.Name)
			}
			if s.CameraConfig.Width != 32 {
				t.Errorf("Camera overrides should be applied, got width %d", s.CameraConfig.Width)
			}
		})
	}
}

func TestTitleCase(t *testing.T) {
	tests := map[string]string{
		"mirror-room":  "Mirror Room",
		"two_spheres":  "Two Spheres",
		"ALREADY-LOUD": "Already Loud",
	}
	for input, want := range tests {
		if got := titleCase(input); got != want {
			t.Errorf("titleCase(%q) = %q, want %q", input, got, want)
		}
	}
}
