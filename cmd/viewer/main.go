// The viewer opens a raylib window and renders the scene interactively.
// Left/Right halve or double the downsample scale, Up/Down step the
// recursion depth; the first sphere orbits the scene continuously.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/raypath/whitted/pkg/renderer"
	"github.com/raypath/whitted/pkg/scene"
)

func main() {
	configPath := flag.String("config", "", "Path to a TOML viewer config file")
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		log.Printf("Error loading config: %v", err)
		os.Exit(1)
	}

	sc := scene.NewDefaultScene()
	if cfg.Scene != "" {
		if sc, err = scene.Load(cfg.Scene); err != nil {
			log.Printf("Error loading scene: %v", err)
			os.Exit(1)
		}
	}

	rl.SetConfigFlags(rl.FlagVsyncHint)
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), "whitted raytracer")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	rend := renderer.NewRenderer(sc)
	opts := renderer.DefaultRenderOptions()
	opts.Width = cfg.Width
	opts.Height = cfg.Height
	opts.Scale = cfg.Scale
	opts.MaxDepth = cfg.MaxDepth

	angle := 0
	for !rl.WindowShouldClose() {
		angle = (angle + 4) % 360
		sc.Orbit(0, float32(angle), 8, 0, -16)

		if opts.Scale > renderer.MinScale && rl.IsKeyPressed(rl.KeyLeft) {
			opts.Scale /= 2
		} else if opts.Scale < renderer.MaxScale && rl.IsKeyPressed(rl.KeyRight) {
			opts.Scale *= 2
		}
		if opts.MaxDepth > 1 && rl.IsKeyPressed(rl.KeyDown) {
			opts.MaxDepth--
		} else if opts.MaxDepth < 4 && rl.IsKeyPressed(rl.KeyUp) {
			opts.MaxDepth++
		}

		rects, _, err := rend.RenderRects(opts)
		if err != nil {
			log.Printf("Render failed: %v", err)
			break
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		for _, r := range rects {
			rl.DrawRectangle(int32(r.X), int32(r.Y), int32(r.Width), int32(r.Height),
				rl.NewColor(r.Color.R, r.Color.G, r.Color.B, 255))
		}
		rl.DrawText(fmt.Sprintf("scale 1/%d  depth %d", opts.Scale, opts.MaxDepth), 10, 10, 20, rl.Green)
		rl.EndDrawing()
	}
}
