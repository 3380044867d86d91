package main

import (
	"flag"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/zrygan/go-raycaster/web/server"
)

func main() {
	// Optional .env file for deployment settings
	if err := godotenv.Load(); err == nil {
		log.Printf("Loaded configuration from .env")
	}

	// Parse command line flags, with env values as defaults
	port := flag.Int("port", envInt("RAYCASTER_PORT", 8080), "Port to serve on")
	width := flag.Int("width", envInt("RAYCASTER_WIDTH", 800), "Viewport width in pixels")
	height := flag.Int("height", envInt("RAYCASTER_HEIGHT", 600), "Viewport height in pixels")
	flag.Parse()

	logger := server.NewConsoleLogger()
	webServer := server.NewServer(*port, *width, *height, logger)

	log.Printf("Raycaster Web Server")
	log.Printf("Visit http://localhost:%d to start editing the scene", *port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}

// envInt reads an integer environment variable, falling back to def
func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
