package server

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"net/http"
	"sync"

	"github.com/zrygan/go-raycaster/pkg/core"
	"github.com/zrygan/go-raycaster/pkg/object"
	"github.com/zrygan/go-raycaster/pkg/scene"
)

// Server exposes the scene to external front-ends over HTTP: scene
// editing actions, traced frames as JSON, and PNG snapshots
type Server struct {
	port   int
	width  int
	height int
	logger core.Logger

	// The scene is single-threaded by design; the mutex serializes the
	// concurrent HTTP handlers in front of it.
	mu    sync.Mutex
	scene *scene.Scene
}

// NewServer creates a new web server with an empty scene sized to the
// given viewport
func NewServer(port, width, height int, logger core.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	maxDist := math.Hypot(float64(width), float64(height))
	return &Server{
		port:   port,
		width:  width,
		height: height,
		logger: logger,
		scene:  scene.New(maxDist),
	}
}

// ObjectInfo is the wire representation of a scene object
type ObjectInfo struct {
	ID       int     `json:"id"`
	Kind     string  `json:"kind"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Radius   float64 `json:"radius,omitempty"`
	Angle    float64 `json:"angle,omitempty"`
	RayCount int     `json:"rayCount,omitempty"`
}

// ActionRequest represents a scene-editing request from the client
type ActionRequest struct {
	Action string  `json:"action"` // Action name (e.g., "create-isotropic")
	X      float64 `json:"x"`      // Cursor x position
	Y      float64 `json:"y"`      // Cursor y position
}

// SegmentInfo is the wire representation of one traced ray segment
type SegmentInfo struct {
	EmitterID int     `json:"emitterId"`
	Index     int     `json:"index"`
	X1        float64 `json:"x1"`
	Y1        float64 `json:"y1"`
	X2        float64 `json:"x2"`
	Y2        float64 `json:"y2"`
	Hit       bool    `json:"hit"`
}

// Start starts the web server
func (s *Server) Start() error {
	// Serve static files
	http.Handle("/", http.FileServer(http.Dir("static/")))

	// API endpoints
	http.HandleFunc("/api/health", s.handleHealth)
	http.HandleFunc("/api/scene", s.handleScene)
	http.HandleFunc("/api/action", s.handleAction)
	http.HandleFunc("/api/frame", s.handleFrame)
	http.HandleFunc("/api/snapshot", s.handleSnapshot)
	http.HandleFunc("/api/console", s.handleConsole)

	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Printf("Starting raycaster server on http://localhost%s\n", addr)
	return http.ListenAndServe(addr, nil)
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleScene returns the current object collection
func (s *Server) handleScene(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	objects := s.scene.Objects()
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"objects": objectInfos(objects),
	})
}

// handleAction applies a scene-editing action at a cursor position and
// returns the updated object collection
func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST required", http.StatusMethodNotAllowed)
		return
	}

	var req ActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	action, err := scene.ParseAction(req.Action)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cursor := core.NewVec2(req.X, req.Y)

	s.mu.Lock()
	err = s.scene.HandleAction(action, cursor)
	objects := s.scene.Objects()
	s.mu.Unlock()

	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.logger.Printf("Applied %s at (%.1f, %.1f), %d objects in scene\n", req.Action, req.X, req.Y, len(objects))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"objects": objectInfos(objects),
	})
}

// handleFrame traces the current frame and returns every visible segment
func (s *Server) handleFrame(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	traced := s.scene.TraceFrame()
	s.mu.Unlock()

	segments := make([]SegmentInfo, 0, len(traced))
	for _, tr := range traced {
		segments = append(segments, SegmentInfo{
			EmitterID: tr.EmitterID,
			Index:     tr.Index,
			X1:        tr.Segment.Start.X,
			Y1:        tr.Segment.Start.Y,
			X2:        tr.Segment.End.X,
			Y2:        tr.Segment.End.Y,
			Hit:       tr.Hit,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"segments": segments,
	})
}

// objectInfos converts scene objects to their wire representation
func objectInfos(objects []*object.Object) []ObjectInfo {
	infos := make([]ObjectInfo, 0, len(objects))
	for _, o := range objects {
		infos = append(infos, ObjectInfo{
			ID:       o.ID,
			Kind:     o.Kind.String(),
			X:        o.Pos.X,
			Y:        o.Pos.Y,
			Radius:   o.Radius,
			Angle:    o.Angle,
			RayCount: o.RayCount,
		})
	}
	return infos
}
