// Package renderer implements the recursive Whitted ray tracer: primary ray
// generation, depth-bounded reflection/refraction shading with hard shadows,
// tone mapping, and compression of the finished frame into solid-color
// rectangle runs for the presentation layer.
package renderer

import (
	"fmt"
	"time"

	"github.com/chewxy/math32"

	"github.com/raypath/whitted/pkg/core"
	"github.com/raypath/whitted/pkg/scene"
)

// Scale bounds for the downsample factor
const (
	MinScale = 1
	MaxScale = 16
)

// RenderOptions configures one frame. Display size and field of view are
// explicit per-render inputs rather than process-wide constants, so
// independent renders can run concurrently with different settings.
type RenderOptions struct {
	Width      int     // Display width in pixels
	Height     int     // Display height in pixels
	Scale      int     // Downsample factor; one buffer sample covers Scale x Scale display pixels
	MaxDepth   int     // Recursion depth cap for reflection/refraction bounces
	FOV        float32 // Vertical field of view in radians; 0 means the default π/2
	NumWorkers int     // Parallel scanline workers; 0 means one per CPU
}

// DefaultRenderOptions returns the reference settings: 1024x768 display,
// 8x downsampling, 4 bounces
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Width:    1024,
		Height:   768,
		Scale:    8,
		MaxDepth: 4,
		FOV:      math32.Pi / 2,
	}
}

// Validate rejects caller contract violations before any buffer is sized
// from them
func (o RenderOptions) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("render options: display size %dx%d must be positive", o.Width, o.Height)
	}
	if o.Scale < MinScale || o.Scale > MaxScale {
		return fmt.Errorf("render options: scale %d outside [%d, %d]", o.Scale, MinScale, MaxScale)
	}
	// Display dimensions divide evenly only by power-of-two scales; anything
	// else truncates the buffer and leaves the frame incompletely tiled
	if o.Scale&(o.Scale-1) != 0 {
		return fmt.Errorf("render options: scale %d is not a power of two", o.Scale)
	}
	if o.MaxDepth < 1 {
		return fmt.Errorf("render options: max depth %d must be at least 1", o.MaxDepth)
	}
	if o.FOV < 0 || o.FOV >= math32.Pi {
		return fmt.Errorf("render options: fov %f outside [0, π)", o.FOV)
	}
	if o.Width/o.Scale == 0 || o.Height/o.Scale == 0 {
		return fmt.Errorf("render options: scale %d leaves an empty %dx%d buffer", o.Scale, o.Width/o.Scale, o.Height/o.Scale)
	}
	return nil
}

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Renderer renders frames of a scene. The scene is read-only during a frame
// but the caller may mutate sphere centers and pass different options
// between frames; nothing is cached across frames.
type Renderer struct {
	scene *scene.Scene
}

// NewRenderer creates a renderer for the given scene
func NewRenderer(s *scene.Scene) *Renderer {
	return &Renderer{scene: s}
}

// Scene returns the scene being rendered
func (r *Renderer) Scene() *scene.Scene {
	return r.scene
}

// RenderFrame fills a fresh downsampled framebuffer, one primary ray per
// sample, distributing scanlines across the worker pool
func (r *Renderer) RenderFrame(opts RenderOptions) (*Framebuffer, FrameStats, error) {
	if err := opts.Validate(); err != nil {
		return nil, FrameStats{}, err
	}
	fov := opts.FOV
	if fov == 0 {
		fov = math32.Pi / 2
	}

	width, height := opts.Width/opts.Scale, opts.Height/opts.Scale
	camera := NewCamera(width, height, fov)
	fb := NewFramebuffer(width, height)

	start := time.Now()
	pool := newRowPool(opts.NumWorkers, func(j int) {
		for i := 0; i < width; i++ {
			fb.Set(i, j, r.CastRay(camera.GetRay(i, j), 0, opts.MaxDepth))
		}
	})
	pool.Run(height)

	stats := FrameStats{
		Width:       width,
		Height:      height,
		PrimaryRays: width * height,
		RenderTime:  time.Since(start),
	}
	return fb, stats, nil
}

// RenderRects renders a frame and compresses it into the rectangle-run draw
// list consumed by the presentation layer
func (r *Renderer) RenderRects(opts RenderOptions) ([]Rect, FrameStats, error) {
	fb, stats, err := r.RenderFrame(opts)
	if err != nil {
		return nil, stats, err
	}
	rects := CompressFrame(fb, opts.Scale)
	stats.Rects = len(rects)
	return rects, stats, nil
}
