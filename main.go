package main

import (
	"log"

	"github.com/joho/godotenv"

	"geninv/cmd"
	"geninv/internal/config"
	"geninv/internal/logger"
)

func main() {
	// Saved settings first, then a local .env; process env wins over both.
	// Missing files are the normal case.
	_ = godotenv.Load(config.SettingsFile())
	_ = godotenv.Load()

	cfg := config.Load()
	if err := logger.Setup(cfg.GetLoggerConfig()); err != nil {
		log.Printf("Warning: invalid logging configuration: %v", err)
		if err := logger.Setup(logger.DefaultConfig()); err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
	}

	cmd.Execute()
}
