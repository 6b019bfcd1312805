// Package main is the entry point for chunkrunner.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/samdwyer/chunkrunner/internal/game"
	"github.com/samdwyer/chunkrunner/internal/gamedata"
	"github.com/samdwyer/chunkrunner/internal/telemetry"
)

func main() {
	// Load .env file for local development
	// This makes HONEYCOMB_CHUNKRUNNER_API_KEY and CHUNKRUNNER_* available
	envErr := godotenv.Load()

	tuning, err := gamedata.LoadTuning()
	if err != nil {
		fmt.Fprintf(os.Stderr, "chunkrunner: %v\n", err)
		os.Exit(1)
	}
	cfg, err := game.ConfigFromEnv(game.DefaultConfig(tuning))
	if err != nil {
		fmt.Fprintf(os.Stderr, "chunkrunner: invalid configuration: %v\n", err)
		os.Exit(1)
	}

	if logFile := setupLogging(cfg.Debug, logDir); logFile != nil {
		defer logFile.Close()
	}
	if envErr != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", envErr)
	}

	// Set up OTEL environment variables from our .env variables
	setupOTelEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sessionID := uuid.NewString()
	shutdown, err := telemetry.Setup(ctx, sessionID)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}
	log.Printf("session %s, tick rate %d", sessionID, cfg.TickRate)

	g, err := game.New(cfg, tuning)
	if err != nil {
		fmt.Fprintf(os.Stderr, "chunkrunner: failed to initialize game: %v\n", err)
		os.Exit(1)
	}

	if err := g.Run(ctx); err != nil && err != context.Canceled {
		log.Printf("Game error: %v", err)
	}
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	// The .env file may hold an unexpanded variable reference, so the header
	// is built here from the raw key.
	apiKey := os.Getenv("HONEYCOMB_CHUNKRUNNER_API_KEY")
	dataset := os.Getenv("HONEYCOMB_CHUNKRUNNER_DATASET")
	if dataset == "" {
		dataset = "chunkrunner"
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
