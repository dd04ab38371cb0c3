package main

import (
	"flag"
	"log"
	"os"

	"github.com/raypath/whitted/pkg/scene"
	"github.com/raypath/whitted/web/server"
)

func main() {
	port := flag.Int("port", 8080, "Port to serve on")
	scenePath := flag.String("scene", "", "Path to a JSON scene file (empty = built-in default scene)")
	flag.Parse()

	sc := scene.NewDefaultScene()
	if *scenePath != "" {
		loaded, err := scene.Load(*scenePath)
		if err != nil {
			log.Printf("Error loading scene: %v", err)
			os.Exit(1)
		}
		sc = loaded
	}

	webServer := server.NewServer(*port, sc, nil)

	log.Printf("Whitted Raytracer Web Server")
	log.Printf("Visit http://localhost:%d to start rendering", *port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
