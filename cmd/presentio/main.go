package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/akhmetov-d/presentio/internal/app"
	"github.com/akhmetov-d/presentio/internal/config"
)

func main() {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("app run: %v", err)
	}
}
