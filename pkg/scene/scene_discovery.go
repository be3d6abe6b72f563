package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/loaders"
)

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Name accepted by Create
	Name        string `json:"name"`        // Scene name
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
	Type        string `json:"type"`        // "builtin" or "json"
	FilePath    string `json:"filePath"`    // Path to the JSON file (json type only)
}

// Constructor builds a scene with optional camera overrides
type Constructor func(cameraOverrides ...geometry.CameraConfig) (*Scene, error)

type builtIn struct {
	info        SceneInfo
	constructor Constructor
}

var builtIns = []builtIn{
	{
		info: SceneInfo{
			ID:          "default",
			Name:        "Default World",
			Description: "Two nested spheres under a single point light",
		},
		constructor: NewDefaultWorldScene,
	},
	{
		info: SceneInfo{
			ID:          "spheres",
			Name:        "Spheres",
			Description: "Three spheres on a checkered floor between two walls",
		},
		constructor: NewSpheresScene,
	},
	{
		info: SceneInfo{
			ID:          "reflection",
			Name:        "Reflection",
			Description: "Patterned and chrome spheres over a mirror floor",
		},
		constructor: NewReflectionScene,
	},
	{
		info: SceneInfo{
			ID:          "patterns",
			Name:        "Patterns",
			Description: "One sphere for every procedural pattern",
		},
		constructor: NewPatternScene,
	},
}

// BuiltInScenes returns the scenes compiled into the binary
func BuiltInScenes() []SceneInfo {
	scenes := make([]SceneInfo, len(builtIns))
	for i, b := range builtIns {
		info := b.info
		info.DisplayName = info.Name
		info.Type = "builtin"
		scenes[i] = info
	}
	return scenes
}

// ListJSONScenes scans dir for *.json scene files. A missing directory is
// not an error.
func ListJSONScenes(dir string) ([]SceneInfo, error) {
	if dir == "" {
		return []SceneInfo{}, nil
	}
	if _, err := os.Stat(dir); err != nil {
		return []SceneInfo{}, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	scenes := make([]SceneInfo, 0, len(files))
	for _, path := range files {
		scenes = append(scenes, parseJSONMetadata(path))
	}
	return scenes, nil
}

// parseJSONMetadata reads name and description from a scene file, falling
// back to the file name when the file is unreadable
func parseJSONMetadata(path string) SceneInfo {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	info := SceneInfo{
		ID:       "json:" + base,
		Name:     titleCase(base),
		Type:     "json",
		FilePath: path,
	}

	if file, err := loaders.LoadSceneFile(path); err == nil {
		if file.Name != "" {
			info.Name = file.Name
		}
		info.Description = file.Description
	} else {
		info.Description = fmt.Sprintf("invalid scene file: %v", err)
	}

	info.DisplayName = info.Name
	return info
}

// ListScenes returns built-in scenes followed by the JSON scenes in dir,
// each group sorted by name
func ListScenes(dir string) ([]SceneInfo, error) {
	builtInScenes := BuiltInScenes()
	jsonScenes, err := ListJSONScenes(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list JSON scenes: %w", err)
	}

	sort.Slice(builtInScenes, func(i, j int) bool {
		return builtInScenes[i].Name < builtInScenes[j].Name
	})
	sort.Slice(jsonScenes, func(i, j int) bool {
		return jsonScenes[i].Name < jsonScenes[j].Name
	})

	return append(builtInScenes, jsonScenes...), nil
}

// Create builds a scene from a built-in id, a "json:<name>" id resolved
// against dir, or a path to a .json file
func Create(nameOrPath string, dir string, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	for _, b := range builtIns {
		if b.info.ID == nameOrPath {
			return b.constructor(cameraOverrides...)
		}
	}

	if name, ok := strings.CutPrefix(nameOrPath, "json:"); ok {
		if name == "" || strings.ContainsAny(name, `/\`) {
			return nil, fmt.Errorf("invalid scene id %q", nameOrPath)
		}
		return NewJSONScene(filepath.Join(dir, name+".json"), cameraOverrides...)
	}

	if strings.EqualFold(filepath.Ext(nameOrPath), ".json") {
		return NewJSONScene(nameOrPath, cameraOverrides...)
	}

	return nil, fmt.Errorf("unknown scene %q", nameOrPath)
}

// titleCase converts a filename-style string to title case
// e.g., "mirror-room" -> "Mirror Room"
func titleCase(s string) string {
	// Replace hyphens and underscores with spaces
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
