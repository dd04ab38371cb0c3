package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/raypath/whitted/pkg/renderer"
	"github.com/raypath/whitted/pkg/scene"
)

func main() {
	scenePath := flag.String("scene", "", "Path to a JSON scene file (empty = built-in default scene)")
	width := flag.Int("width", 1024, "Display width in pixels")
	height := flag.Int("height", 768, "Display height in pixels")
	scale := flag.Int("scale", 1, "Downsample factor (1-16)")
	maxDepth := flag.Int("depth", 4, "Recursion depth cap")
	outDir := flag.String("out", "output", "Output directory")
	flag.Parse()

	sc, err := loadScene(*scenePath)
	if err != nil {
		fmt.Printf("Error loading scene: %v\n", err)
		os.Exit(1)
	}

	opts := renderer.DefaultRenderOptions()
	opts.Width = *width
	opts.Height = *height
	opts.Scale = *scale
	opts.MaxDepth = *maxDepth

	logger := renderer.NewDefaultLogger()
	logger.Printf("Rendering %dx%d at 1/%d scale, depth %d...\n", opts.Width, opts.Height, opts.Scale, opts.MaxDepth)

	rects, stats, err := renderer.NewRenderer(sc).RenderRects(opts)
	if err != nil {
		fmt.Printf("Error rendering: %v\n", err)
		os.Exit(1)
	}
	logger.Printf("Traced %d primary rays into %d rects in %v\n", stats.PrimaryRays, stats.Rects, stats.RenderTime)

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(*outDir, fmt.Sprintf("render_%s.png", timestamp))
	if err := writePNG(filename, rects, opts.Width, opts.Height); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		os.Exit(1)
	}
	logger.Printf("Render saved as %s\n", filename)
}

// loadScene returns the built-in scene for an empty path
func loadScene(path string) (*scene.Scene, error) {
	if path == "" {
		return scene.NewDefaultScene(), nil
	}
	return scene.Load(path)
}

func writePNG(path string, rects []renderer.Rect, width, height int) error {
	img := renderer.RasterizeRects(rects, width, height)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
