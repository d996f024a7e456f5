package main

import (
	"log"
	"log/slog"
	"os"

	"finance-tracker/internal/config"
	"finance-tracker/internal/webui"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	server, err := webui.NewServer(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize web UI: %v", err)
	}

	server.Start()
}
