package main

import (
	"flag"
	"os"

	"github.com/df07/go-phong-raytracer/pkg/log"
	"github.com/df07/go-phong-raytracer/web/server"
)

func main() {
	// Parse command line flags
	port := flag.Int("port", 8080, "Port to serve on")
	scenesDir := flag.String("scenes", "scenes", "Directory holding JSON scene files")
	verbose := flag.Bool("v", false, "Log render progress")
	flag.Parse()

	if *verbose {
		log.SetLevel(log.Info)
	}
	logger := log.New("web")

	// Create and start web server
	webServer := server.NewServer(*port, *scenesDir)

	logger.Noticef("Phong Raytracer Web Server")
	logger.Noticef("Visit http://localhost:%d/api/scenes to list scenes", *port)

	if err := webServer.Start(); err != nil {
		logger.Errorf("Error starting server: %v", err)
		os.Exit(1)
	}
}
