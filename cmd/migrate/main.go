package main

import (
	"music_library/internal/config" // Custom import path (Config)
	"music_library/internal/db"     // Custom import path (Database)
	"music_library/internal/utils"  // Logger setup

	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Main entry point for migration
func main() {
	cfg, err := config.LoadConfig() // Load configuration
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}
	if err := utils.ConfigureLogger(cfg.LogLevel, cfg.IsProd()); err != nil {
		logrus.Fatal(err)
	}

	conn, err := db.Open(cfg)
	if err != nil {
		logrus.Fatal(err)
	}
	defer db.Close(conn)

	if err := db.Migrate(conn); err != nil {
		logrus.Fatal(err) // Fatal error if migration fails
	}
}
