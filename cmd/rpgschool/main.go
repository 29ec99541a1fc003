// Package main is the entry point for RPG School.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/samdwyer/rpgschool/internal/game"
	"github.com/samdwyer/rpgschool/internal/logger"
	"github.com/samdwyer/rpgschool/internal/telemetry"
	"github.com/samdwyer/rpgschool/internal/ui"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	os.Exit(run())
}

func run() int {
	cfg := game.LoadConfig()

	lg, closeLog, err := logger.Setup(logger.Options{
		Environment: cfg.Environment,
		Level:       cfg.LogLevel,
		File:        cfg.LogFile,
	})
	if err != nil {
		log.Printf("Failed to set up logging: %v", err)
		return 1
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := telemetry.Setup(ctx, telemetry.Options{
		Enabled:          cfg.Telemetry,
		Version:          version,
		HoneycombAPIKey:  cfg.HoneycombAPIKey,
		HoneycombDataset: cfg.HoneycombDataset,
	})
	if err != nil {
		logger.WithError(lg, err).Warn("telemetry setup failed, running without traces")
		telemetry.Disable()
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logger.WithError(lg, err).Error("telemetry shutdown failed")
			}
		}()
	}

	screen, err := ui.NewScreen()
	if err != nil {
		logger.WithError(lg, err).Error("failed to open terminal")
		fmt.Fprintf(os.Stderr, "Failed to open terminal: %v\n", err)
		return 1
	}

	g, err := game.New(ctx, cfg, screen, ui.NewRenderer(screen), lg)
	if err != nil {
		screen.Close()
		logger.WithError(lg, err).Error("failed to initialize game")
		fmt.Fprintf(os.Stderr, "Failed to initialize game: %v\n", err)
		return 1
	}

	err = g.Run(ctx)
	screen.Close()
	if err != nil {
		logger.WithError(lg, err).Error("game error")
		fmt.Fprintf(os.Stderr, "Game error: %v\n", err)
		return 1
	}
	return 0
}
