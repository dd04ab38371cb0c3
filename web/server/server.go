// Package server exposes the renderer over HTTP: a static viewer page and a
// websocket endpoint that streams per-frame rectangle batches to the client.
package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/raypath/whitted/pkg/core"
	"github.com/raypath/whitted/pkg/renderer"
	"github.com/raypath/whitted/pkg/scene"
)

// Server handles web requests for the raytracer
type Server struct {
	port     int
	scene    *scene.Scene
	logger   core.Logger
	upgrader websocket.Upgrader
}

// NewServer creates a new web server for the given scene. A nil logger
// falls back to the renderer's stdout logger.
func NewServer(port int, sc *scene.Scene, logger core.Logger) *Server {
	if logger == nil {
		logger = renderer.NewDefaultLogger()
	}
	return &Server{
		port:   port,
		scene:  sc,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The viewer page is served from this same server
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// RenderRequest is the first message the client sends on the render socket
type RenderRequest struct {
	Width    int  `json:"width"`    // Display width
	Height   int  `json:"height"`   // Display height
	Scale    int  `json:"scale"`    // Downsample factor
	MaxDepth int  `json:"maxDepth"` // Recursion depth cap
	Frames   int  `json:"frames"`   // Number of frames to stream
	Animate  bool `json:"animate"`  // Orbit the first sphere between frames
}

// FrameUpdate is one streamed frame: the rectangle draw list plus stats
type FrameUpdate struct {
	Frame      int                 `json:"frame"`
	Rects      []renderer.Rect     `json:"rects"`
	Stats      renderer.FrameStats `json:"stats"`
	IsComplete bool                `json:"isComplete"`
	ElapsedMs  int64               `json:"elapsedMs"`
}

// Start starts the web server
func (s *Server) Start() error {
	http.Handle("/", http.FileServer(http.Dir("web/static/")))
	http.HandleFunc("/ws/render", s.handleRender)
	http.HandleFunc("/api/health", s.handleHealth)

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, nil)
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleRender upgrades the connection, reads one render request and streams
// the requested number of frames as rectangle batches
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Printf("websocket upgrade failed: %v\n", err)
		return
	}
	defer conn.Close()

	var req RenderRequest
	if err := conn.ReadJSON(&req); err != nil {
		s.logger.Printf("invalid render request: %v\n", err)
		return
	}
	opts, frames := s.normalizeRequest(req)

	// Each connection renders its own copy of the scene, so the animation
	// below never races with another client's in-flight frame
	sc := s.scene.Clone()
	rend := renderer.NewRenderer(sc)
	start := time.Now()
	angle := 0

	for frame := 0; frame < frames; frame++ {
		if req.Animate {
			angle = (angle + 4) % 360
			sc.Orbit(0, float32(angle), 8, 0, -16)
		}

		rects, stats, err := rend.RenderRects(opts)
		if err != nil {
			s.logger.Printf("render failed: %v\n", err)
			return
		}

		update := FrameUpdate{
			Frame:      frame + 1,
			Rects:      rects,
			Stats:      stats,
			IsComplete: frame == frames-1,
			ElapsedMs:  time.Since(start).Milliseconds(),
		}
		if err := conn.WriteJSON(update); err != nil {
			// Client went away; nothing to clean up beyond the deferred close
			return
		}
	}
	s.logger.Printf("streamed %d frames in %v\n", frames, time.Since(start))
}

// normalizeRequest fills defaults and bounds the request so a hostile client
// cannot ask for an absurd amount of work
func (s *Server) normalizeRequest(req RenderRequest) (renderer.RenderOptions, int) {
	opts := renderer.DefaultRenderOptions()
	if req.Width > 0 && req.Width <= 4096 {
		opts.Width = req.Width
	}
	if req.Height > 0 && req.Height <= 4096 {
		opts.Height = req.Height
	}
	if req.Scale >= renderer.MinScale && req.Scale <= renderer.MaxScale {
		opts.Scale = req.Scale
	}
	if req.MaxDepth >= 1 && req.MaxDepth <= 8 {
		opts.MaxDepth = req.MaxDepth
	}
	frames := req.Frames
	if frames < 1 {
		frames = 1
	}
	if frames > 600 {
		frames = 600
	}
	return opts, frames
}
