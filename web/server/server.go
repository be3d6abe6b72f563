package server

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/df07/go-phong-raytracer/pkg/log"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// Request limits shared by the render and inspect endpoints
const (
	minImageSize = 1
	maxImageSize = 2000
	maxDepth     = 10
	minFOV       = 1.0
	maxFOV       = 179.0
)

// Server handles web requests for the raytracer
type Server struct {
	port      int
	scenesDir string
	logger    log.Logger
}

// NewServer creates a new web server. JSON scenes are looked up in scenesDir.
func NewServer(port int, scenesDir string) *Server {
	return &Server{
		port:      port,
		scenesDir: scenesDir,
		logger:    log.New("web"),
	}
}

// Handler returns the API routes
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/render", s.handleRender)
	mux.HandleFunc("GET /api/inspect", s.handleInspect)
	mux.HandleFunc("GET /api/scenes", s.handleScenes)
	mux.HandleFunc("GET /api/scene-config", s.handleSceneConfig)
	mux.HandleFunc("GET /api/health", s.handleHealth)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Noticef("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes followed by the JSON scenes on disk
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	scenes, err := scene.ListScenes(s.scenesDir)
	if err != nil {
		s.logger.Errorf("listing scenes: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to list scenes")
		return
	}
	writeJSON(w, http.StatusOK, scenes)
}

// SceneConfigResponse describes a scene's camera defaults and the request limits
type SceneConfigResponse struct {
	Scene    string                 `json:"scene"`
	Defaults SceneDefaults          `json:"defaults"`
	Limits   map[string]ParamLimits `json:"limits"`
}

// SceneDefaults holds the values a render uses when a parameter is omitted
type SceneDefaults struct {
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	FOV      float64 `json:"fov"` // Degrees
	MaxDepth int     `json:"maxDepth"`
	Shapes   int     `json:"shapes"`
	HasLight bool    `json:"hasLight"`
}

// ParamLimits is the accepted range of a numeric query parameter
type ParamLimits struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// handleSceneConfig returns the default configuration for a scene
func (s *Server) handleSceneConfig(w http.ResponseWriter, r *http.Request) {
	sceneName := r.URL.Query().Get("scene")
	if sceneName == "" {
		sceneName = defaultSceneID
	}

	sc, err := s.loadScene(sceneName)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, SceneConfigResponse{
		Scene: sceneName,
		Defaults: SceneDefaults{
			Width:    sc.CameraConfig.Width,
			Height:   sc.CameraConfig.Height,
			FOV:      sc.CameraConfig.FieldOfView * 180 / math.Pi,
			MaxDepth: sc.RenderConfig.MaxDepth,
			Shapes:   len(sc.World.Shapes),
			HasLight: sc.World.Light != nil,
		},
		Limits: map[string]ParamLimits{
			"width":  {Min: minImageSize, Max: maxImageSize},
			"height": {Min: minImageSize, Max: maxImageSize},
			"depth":  {Min: 0, Max: maxDepth},
			"fov":    {Min: minFOV, Max: maxFOV},
		},
	})
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseFloatParam parses a float parameter from URL query with validation
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %g and %g, got: %g", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
