package loaders

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// SceneFile is the decoded form of a JSON scene description
type SceneFile struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Camera      *CameraSpec `json:"camera"`
	MaxDepth    int         `json:"maxDepth"` // 0 = renderer default
	Light       *LightSpec  `json:"light"`    // nil = no light
	Shapes      []ShapeSpec `json:"shapes"`
}

// CameraSpec places the camera. FOV is in radians.
type CameraSpec struct {
	Width  int     `json:"width"`
	Height int     `json:"height"`
	FOV    float64 `json:"fov"`
	From   Triple  `json:"from"`
	To     Triple  `json:"to"`
	Up     Triple  `json:"up"`
}

// LightSpec describes the point light
type LightSpec struct {
	Position  Triple `json:"position"`
	Intensity Triple `json:"intensity"`
}

// ShapeSpec describes one primitive
type ShapeSpec struct {
	Type       string          `json:"type"` // "sphere" or "plane"
	Transforms []TransformSpec `json:"transforms"`
	Material   *MaterialSpec   `json:"material"`
}

// MaterialSpec overrides material fields. Nil fields keep their defaults.
type MaterialSpec struct {
	Color           Triple       `json:"color"`
	Ambient         *float64     `json:"ambient"`
	Diffuse         *float64     `json:"diffuse"`
	Specular        *float64     `json:"specular"`
	Shininess       *float64     `json:"shininess"`
	Reflective      *float64     `json:"reflective"`
	Transparency    *float64     `json:"transparency"`
	RefractiveIndex *float64     `json:"refractiveIndex"`
	Pattern         *PatternSpec `json:"pattern"`
}

// PatternSpec describes a two color procedural pattern
type PatternSpec struct {
	Type       string          `json:"type"`
	A          Triple          `json:"a"`
	B          Triple          `json:"b"`
	Transforms []TransformSpec `json:"transforms"`
}

// TransformSpec is one step of a transform chain
type TransformSpec struct {
	Op   string    `json:"op"`
	Args []float64 `json:"args"`
}

// Triple is an [x, y, z] or [r, g, b] array
type Triple []float64

// Point converts the triple to a point
func (t Triple) Point() core.Tuple { return core.Point(t[0], t[1], t[2]) }

// Vector converts the triple to a vector
func (t Triple) Vector() core.Tuple { return core.Vector(t[0], t[1], t[2]) }

// Color converts the triple to a color
func (t Triple) Color() core.Tuple { return core.NewColor(t[0], t[1], t[2]) }

func (t Triple) check(field string, required bool) error {
	if t == nil {
		if required {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
	if len(t) != 3 {
		return fmt.Errorf("%s must have 3 components, got %d", field, len(t))
	}
	return nil
}

// Shape and pattern type names understood by the loader
var (
	ShapeTypes   = []string{"sphere", "plane"}
	PatternTypes = []string{"stripe", "gradient", "ring", "checkers", "radial"}
)

var transformArgCounts = map[string]int{
	"translate": 3,
	"scale":     3,
	"rotateX":   1,
	"rotateY":   1,
	"rotateZ":   1,
	"shear":     6,
}

// ParseSceneFile decodes and validates a JSON scene description
func ParseSceneFile(reader io.Reader) (*SceneFile, error) {
	decoder := json.NewDecoder(reader)
	decoder.DisallowUnknownFields()

	var file SceneFile
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to decode scene: %w", err)
	}
	if err := file.Validate(); err != nil {
		return nil, err
	}
	return &file, nil
}

// LoadSceneFile loads and parses a JSON scene file
func LoadSceneFile(filename string) (*SceneFile, error) {
	if err := validateFilePath(filename); err != nil {
		return nil, err
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	scene, err := ParseSceneFile(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return scene, nil
}

// Validate checks everything that can be checked without building the scene.
// Singular transforms are only detected when they are applied.
func (f *SceneFile) Validate() error {
	if f.MaxDepth < 0 {
		return fmt.Errorf("maxDepth must not be negative, got %d", f.MaxDepth)
	}

	if c := f.Camera; c != nil {
		if c.Width < 0 || c.Height < 0 || c.Width > 8192 || c.Height > 8192 {
			return fmt.Errorf("camera: size %dx%d out of range", c.Width, c.Height)
		}
		for field, t := range map[string]Triple{"camera.from": c.From, "camera.to": c.To, "camera.up": c.Up} {
			if err := t.check(field, false); err != nil {
				return err
			}
		}
	}

	if l := f.Light; l != nil {
		if err := l.Position.check("light.position", true); err != nil {
			return err
		}
		if err := l.Intensity.check("light.intensity", true); err != nil {
			return err
		}
	}

	for i, shape := range f.Shapes {
		if err := shape.validate(); err != nil {
			return fmt.Errorf("shape %d: %w", i, err)
		}
	}
	return nil
}

func (s *ShapeSpec) validate() error {
	if !contains(ShapeTypes, s.Type) {
		return fmt.Errorf("unknown type %q", s.Type)
	}
	if err := validateTransforms("transforms", s.Transforms); err != nil {
		return err
	}
	if s.Material == nil {
		return nil
	}

	m := s.Material
	if err := m.Color.check("material.color", false); err != nil {
		return err
	}
	if p := m.Pattern; p != nil {
		if !contains(PatternTypes, p.Type) {
			return fmt.Errorf("material.pattern: unknown type %q", p.Type)
		}
		if err := p.A.check("material.pattern.a", true); err != nil {
			return err
		}
		if err := p.B.check("material.pattern.b", true); err != nil {
			return err
		}
		if err := validateTransforms("material.pattern.transforms", p.Transforms); err != nil {
			return err
		}
	}
	return nil
}

func validateTransforms(field string, transforms []TransformSpec) error {
	for i, t := range transforms {
		want, ok := transformArgCounts[t.Op]
		if !ok {
			return fmt.Errorf("%s[%d]: unknown op %q", field, i, t.Op)
		}
		if len(t.Args) != want {
			return fmt.Errorf("%s[%d]: %s takes %d args, got %d", field, i, t.Op, want, len(t.Args))
		}
	}
	return nil
}

// BuildTransform composes a transform chain in listed order, so the last
// listed step is applied last.
func BuildTransform(transforms []TransformSpec) (core.Matrix, error) {
	if err := validateTransforms("transforms", transforms); err != nil {
		return core.Matrix{}, err
	}

	m := core.Identity()
	for _, t := range transforms {
		a := t.Args
		switch t.Op {
		case "translate":
			m = m.Translate(a[0], a[1], a[2])
		case "scale":
			m = m.Scale(a[0], a[1], a[2])
		case "rotateX":
			m = m.RotateX(a[0])
		case "rotateY":
			m = m.RotateY(a[0])
		case "rotateZ":
			m = m.RotateZ(a[0])
		case "shear":
			m = m.Shear(a[0], a[1], a[2], a[3], a[4], a[5])
		}
	}
	return m, nil
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

// validateFilePath rejects paths that cannot name a scene file
func validateFilePath(filename string) error {
	if filename == "" {
		return fmt.Errorf("filename cannot be empty")
	}

	// Check for null bytes (could indicate path manipulation)
	if strings.Contains(filename, "\x00") {
		return fmt.Errorf("invalid file path: null bytes not allowed")
	}

	cleanPath := filepath.Clean(filename)
	if len(cleanPath) > 512 {
		return fmt.Errorf("file path too long: maximum 512 characters allowed")
	}

	if !strings.EqualFold(filepath.Ext(cleanPath), ".json") {
		return fmt.Errorf("invalid file type: only .json files are allowed")
	}

	return nil
}
