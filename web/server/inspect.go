package server

import (
	"fmt"
	"net/http"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/material"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// InspectResponse represents the response from a pixel inspection request
type InspectResponse struct {
	Hit          bool          `json:"hit"`
	GeometryType string        `json:"geometryType,omitempty"`
	Point        [3]float64    `json:"point"`
	Normal       [3]float64    `json:"normal"`
	Distance     float64       `json:"distance,omitempty"`
	Inside       bool          `json:"inside,omitempty"`
	InShadow     bool          `json:"inShadow,omitempty"`
	Color        [3]float64    `json:"color"` // Unclamped shaded color
	Material     *MaterialInfo `json:"material,omitempty"`
}

// MaterialInfo describes the material of the inspected surface
type MaterialInfo struct {
	Color      [3]float64 `json:"color"`
	Ambient    float64    `json:"ambient"`
	Diffuse    float64    `json:"diffuse"`
	Specular   float64    `json:"specular"`
	Shininess  float64    `json:"shininess"`
	Reflective float64    `json:"reflective"`
	Pattern    string     `json:"pattern,omitempty"`
}

func triple(t core.Tuple) [3]float64 {
	return [3]float64{t.X, t.Y, t.Z}
}

// geometryType names a shape variant
func geometryType(shape geometry.Shape) string {
	switch shape.(type) {
	case *geometry.Sphere:
		return "sphere"
	case *geometry.Plane:
		return "plane"
	default:
		return "unknown"
	}
}

// patternType names a pattern variant, or "" for none
func patternType(pattern material.Pattern) string {
	switch pattern.(type) {
	case nil:
		return ""
	case *material.StripePattern:
		return "stripe"
	case *material.GradientPattern:
		return "gradient"
	case *material.RingPattern:
		return "ring"
	case *material.CheckersPattern:
		return "checkers"
	case *material.RadialGradientPattern:
		return "radial_gradient"
	case *material.SolidPattern:
		return "solid"
	default:
		return "unknown"
	}
}

func extractMaterialInfo(m *material.Material) *MaterialInfo {
	return &MaterialInfo{
		Color:      triple(m.Color),
		Ambient:    m.Ambient,
		Diffuse:    m.Diffuse,
		Specular:   m.Specular,
		Shininess:  m.Shininess,
		Reflective: m.Reflective,
		Pattern:    patternType(m.Pattern),
	}
}

// inspectPixel casts the primary ray of a pixel and describes the first
// surface it hits, shaded the same way the renderer shades it
func inspectPixel(sc *scene.Scene, camera *geometry.Camera, x, y int) InspectResponse {
	ray := camera.Cast(x, y)
	hit, ok := sc.World.Intersect(ray).Hit()
	if !ok {
		return InspectResponse{Hit: false}
	}

	comps := hit.Compute(ray)
	return InspectResponse{
		Hit:          true,
		GeometryType: geometryType(comps.Object),
		Point:        triple(comps.Point),
		Normal:       triple(comps.NormalVector),
		Distance:     comps.T,
		Inside:       comps.Inside,
		InShadow:     sc.World.IsShadowed(comps.OverPoint),
		Color:        triple(sc.World.ShadeHit(comps, sc.RenderConfig.MaxDepth)),
		Material:     extractMaterialInfo(comps.Object.Material()),
	}
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	sc, camera, err := s.createScene(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	query := r.URL.Query()
	if query.Get("x") == "" || query.Get("y") == "" {
		writeError(w, http.StatusBadRequest, "x and y are required")
		return
	}
	x, err := parseIntParam(query, "x", 0, 0, camera.HSize-1)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Pixel coordinates out of bounds: %v", err))
		return
	}
	y, err := parseIntParam(query, "y", 0, 0, camera.VSize-1)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Pixel coordinates out of bounds: %v", err))
		return
	}

	writeJSON(w, http.StatusOK, inspectPixel(sc, camera, x, y))
}
