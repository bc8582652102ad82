package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"

	"github.com/df07/go-pathtracer/pkg/output"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
	"github.com/golang/glog"
	"golang.org/x/xerrors"
)

// Parameter limits for /api/render
const (
	minWidth, maxWidth     = 16, 2000
	minSamples, maxSamples = 1, 10000
	minDepth, maxDepth     = 1, 1000
)

// Server renders catalogue scenes over HTTP
type Server struct {
	port    int
	workers int // Passed to the renderer; 0 uses every CPU
	metrics *requestMetrics
	mux     *http.ServeMux
}

// NewServer creates a new web server
func NewServer(port, workers int) *Server {
	s := &Server{
		port:    port,
		workers: workers,
		metrics: newRequestMetrics(),
		mux:     http.NewServeMux(),
	}

	s.mux.HandleFunc("/api/render", s.handleRender)
	s.mux.HandleFunc("/api/scenes", s.handleScenes)
	s.mux.HandleFunc("/api/scene-config", s.handleSceneConfig)
	s.mux.HandleFunc("/api/health", s.handleHealth)
	return s
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene   string `json:"scene"`   // Scene name (e.g., "cornell-box")
	Width   int    `json:"width"`   // Image width; height follows the scene's aspect ratio
	Samples int    `json:"samples"` // Samples per pixel
	Depth   int    `json:"depth"`   // Maximum bounce depth
	Seed    int64  `json:"seed"`
}

// Handler returns the server's routes wrapped in request metrics
func (s *Server) Handler() http.Handler {
	return s.metrics.wrap(s.mux)
}

// Start registers metrics views and serves until the listener fails
func (s *Server) Start() error {
	if err := s.metrics.register(); err != nil {
		return xerrors.Errorf("while registering request metrics: %w", err)
	}
	if err := renderer.RegisterViews(); err != nil {
		return xerrors.Errorf("while registering renderer metrics: %w", err)
	}

	addr := fmt.Sprintf(":%d", s.port)
	glog.Infof("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the scene catalogue
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scene.List())
}

// handleRender renders one scene and responds with a PNG. The render is
// abandoned when the client goes away.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	sceneObj, err := scene.Lookup(req.Scene, rand.New(rand.NewSource(req.Seed)))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	sceneObj.Width = req.Width
	if req.Samples > 0 {
		sceneObj.SamplesPerPixel = req.Samples
	}
	if req.Depth > 0 {
		sceneObj.MaxDepth = req.Depth
	}

	config := renderer.Config{
		Width:    sceneObj.Width,
		Height:   sceneObj.Height(),
		Workers:  s.workers,
		Seed:     req.Seed,
		Label:    sceneObj.Name,
		Sampling: sceneObj.SamplingConfig(),
	}

	// Performance warning
	if config.Width*config.Height > 800*600 && config.Sampling.SamplesPerPixel > 100 {
		glog.Warningf("Render warning: %s at %dx%d with %d samples may render slowly",
			sceneObj.Name, config.Width, config.Height, config.Sampling.SamplesPerPixel)
	}

	rt, err := renderer.NewRaytracer(sceneObj.World, sceneObj.Camera, sceneObj.Background, config, renderer.NewGlogLogger())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	pixels, stats, err := rt.Render(r.Context())
	if err != nil {
		if r.Context().Err() != nil {
			glog.Infof("Render of %s abandoned: %v", sceneObj.Name, err)
			return
		}
		glog.Errorf("Render of %s failed: %v", sceneObj.Name, err)
		writeError(w, http.StatusInternalServerError, "Render error")
		return
	}

	var buf bytes.Buffer
	if err := output.WritePNG(&buf, pixels); err != nil {
		glog.Errorf("Encoding %s failed: %v", sceneObj.Name, err)
		writeError(w, http.StatusInternalServerError, "Encoding error")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("X-Render-Millis", strconv.FormatInt(stats.Elapsed.Milliseconds(), 10))
	w.Header().Set("X-Render-Samples", strconv.Itoa(stats.Samples))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		glog.Warningf("Writing response for %s: %v", sceneObj.Name, err)
	}
}

// parseRenderRequest parses request parameters
func parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: "cornell-box"}
	if name := query.Get("scene"); name != "" {
		req.Scene = name
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 200, minWidth, maxWidth); err != nil {
		return nil, err
	}
	if req.Samples, err = parseIntParam(query, "samples", 10, minSamples, maxSamples); err != nil {
		return nil, err
	}
	if req.Depth, err = parseIntParam(query, "depth", 0, minDepth, maxDepth); err != nil {
		return nil, err
	}
	seed, err := parseIntParam(query, "seed", 1, 0, 1<<31-1)
	if err != nil {
		return nil, err
	}
	req.Seed = int64(seed)

	return req, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, xerrors.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, xerrors.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// handleSceneConfig returns the default configuration for a scene
func (s *Server) handleSceneConfig(w http.ResponseWriter, r *http.Request) {
	sceneName := r.URL.Query().Get("scene")
	if sceneName == "" {
		sceneName = "cornell-box" // Default scene
	}

	sceneObj, err := scene.Lookup(sceneName, rand.New(rand.NewSource(1)))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	response := map[string]interface{}{
		"scene": sceneName,
		"defaults": map[string]interface{}{
			"width":           sceneObj.Width,
			"height":          sceneObj.Height(),
			"aspectRatio":     sceneObj.AspectRatio,
			"samplesPerPixel": sceneObj.SamplesPerPixel,
			"maxDepth":        sceneObj.MaxDepth,
		},
		"limits": map[string]interface{}{
			"width":   map[string]int{"min": minWidth, "max": maxWidth},
			"samples": map[string]int{"min": minSamples, "max": maxSamples},
			"depth":   map[string]int{"min": minDepth, "max": maxDepth},
		},
	}
	writeJSON(w, http.StatusOK, response)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		glog.Warningf("Encoding JSON response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
