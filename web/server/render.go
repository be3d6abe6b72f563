package server

import (
	"bytes"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/log"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

const defaultSceneID = "default"

// RenderRequest represents a render request from the client. Zero sizes and
// FOV keep the scene's camera defaults, a negative depth keeps its MaxDepth.
type RenderRequest struct {
	Scene  string  // Scene id, e.g. "reflection" or "json:mirror-room"
	Width  int     // Image width
	Height int     // Image height
	FOV    float64 // Field of view in degrees
	Depth  int     // Reflection depth
	Format string  // "png" or "ppm"
}

// parseRenderRequest parses the query parameters shared by render and inspect
func parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: defaultSceneID, Format: "png"}

	if sceneName := query.Get("scene"); sceneName != "" {
		req.Scene = sceneName
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 0, minImageSize, maxImageSize); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 0, minImageSize, maxImageSize); err != nil {
		return nil, err
	}
	if req.Depth, err = parseIntParam(query, "depth", -1, 0, maxDepth); err != nil {
		return nil, err
	}
	if req.FOV, err = parseFloatParam(query, "fov", 0, minFOV, maxFOV); err != nil {
		return nil, err
	}

	switch format := query.Get("format"); format {
	case "", "png":
	case "ppm":
		req.Format = "ppm"
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	return req, nil
}

// cameraOverrides converts the request into scene camera overrides
func (req *RenderRequest) cameraOverrides() geometry.CameraConfig {
	return geometry.CameraConfig{
		Width:       req.Width,
		Height:      req.Height,
		FieldOfView: req.FOV * math.Pi / 180,
	}
}

// loadScene resolves a built-in id or a json:<name> id from the scene
// directory. Raw file paths are only accepted by the CLI.
func (s *Server) loadScene(id string, cameraOverrides ...geometry.CameraConfig) (*scene.Scene, error) {
	if !strings.HasPrefix(id, "json:") && !isBuiltInScene(id) {
		return nil, fmt.Errorf("unknown scene %q", id)
	}

	sc, err := scene.Create(id, s.scenesDir, cameraOverrides...)
	if err != nil {
		return nil, err
	}

	// scene files may ask for more than a request is allowed to
	if w, h := sc.CameraConfig.Width, sc.CameraConfig.Height; w > maxImageSize || h > maxImageSize {
		return nil, fmt.Errorf("scene %q camera %dx%d exceeds the %d pixel limit", id, w, h, maxImageSize)
	}
	return sc, nil
}

func isBuiltInScene(id string) bool {
	for _, info := range scene.BuiltInScenes() {
		if info.ID == id {
			return true
		}
	}
	return false
}

// createScene builds the requested scene and its camera, applying the
// request's depth override
func (s *Server) createScene(req *RenderRequest) (*scene.Scene, *geometry.Camera, error) {
	sc, err := s.loadScene(req.Scene, req.cameraOverrides())
	if err != nil {
		return nil, nil, err
	}
	if req.Depth >= 0 {
		sc.RenderConfig.MaxDepth = req.Depth
	}

	camera, err := sc.Camera()
	if err != nil {
		return nil, nil, err
	}
	return sc, camera, nil
}

// handleRender renders a scene and responds with the encoded image
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	sc, camera, err := s.createScene(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rt := renderer.NewRaytracer(sc.World, camera, sc.RenderConfig)
	rt.SetLogger(log.AsCoreLogger(s.logger))

	// The request context is cancelled when the client goes away
	img, stats, err := rt.Render(r.Context())
	if err != nil {
		if r.Context().Err() != nil {
			s.logger.Warningf("render of %s abandoned: %v", sc.Name, err)
			return
		}
		s.logger.Errorf("render of %s failed: %v", sc.Name, err)
		writeError(w, http.StatusInternalServerError, "render failed")
		return
	}

	var buf bytes.Buffer
	contentType := "image/png"
	if req.Format == "ppm" {
		contentType = "image/x-portable-pixmap"
		err = img.WritePPM(&buf)
	} else {
		err = img.WritePNG(&buf)
	}
	if err != nil {
		s.logger.Errorf("encoding %s: %v", req.Format, err)
		writeError(w, http.StatusInternalServerError, "failed to encode image")
		return
	}

	s.logger.Infof("rendered %s at %dx%d in %v", sc.Name, camera.HSize, camera.VSize, stats.RenderTime)

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Render-Time-Ms", strconv.FormatInt(stats.RenderTime.Milliseconds(), 10))
	w.Header().Set("X-Hit-Pixels", strconv.Itoa(stats.HitPixels))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
