// Package main is the entry point for marshcrawl.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/marshcrawl/internal/game"
	"github.com/samdwyer/marshcrawl/internal/logger"
	"github.com/samdwyer/marshcrawl/internal/telemetry"
)

func main() {
	// Load .env file for local development
	// This makes HONEYCOMB_MARSHCRAWL_API_KEY available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logg, closer, err := logger.New(cfg.Log.Options())
	if err != nil {
		log.Fatalf("Failed to open log: %v", err)
	}
	defer closer.Close()

	// Set up OTEL environment variables from our .env variables
	setupOTelEnv()

	ctx := context.Background()

	// Initialize telemetry
	providers, err := telemetry.Setup(ctx)
	if err != nil {
		logg.WithError(err).Warn("telemetry setup failed, running without observability")
	} else {
		defer func() {
			logSummary(ctx, logg, providers)
			if err := providers.Shutdown(ctx); err != nil {
				logg.WithError(err).Error("telemetry shutdown failed")
			}
		}()
	}

	met, err := telemetry.GlobalMetrics()
	if err != nil {
		logg.WithError(err).Warn("metrics unavailable")
		met = telemetry.NoopMetrics()
	}

	// Create and run game
	g, err := game.New(cfg, met, logg)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		g.Close()
		logg.WithError(err).Error("game error")
		log.Fatalf("Game error: %v", err)
	}
}

// loadConfig reads MARSHCRAWL_CONFIG when set, otherwise uses the defaults.
func loadConfig() (*game.Config, error) {
	path := os.Getenv("MARSHCRAWL_CONFIG")
	if path == "" {
		return game.DefaultConfig(), nil
	}
	return game.LoadConfig(path)
}

// logSummary writes the session's counter totals to the log.
func logSummary(ctx context.Context, logg logrus.FieldLogger, providers *telemetry.Providers) {
	totals, err := telemetry.Totals(ctx, providers.Reader)
	if err != nil {
		logg.WithError(err).Warn("could not collect metric totals")
		return
	}
	fields := logrus.Fields{}
	for name, v := range totals {
		fields[name] = v
	}
	logg.WithFields(fields).Info("session summary")
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	// Always set endpoint to Honeycomb
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	// Always set headers from our API key - the .env file may have an unexpanded
	// variable reference that doesn't work, so we construct it properly here
	apiKey := os.Getenv("HONEYCOMB_MARSHCRAWL_API_KEY")
	dataset := os.Getenv("HONEYCOMB_MARSHCRAWL_DATASET")
	if dataset == "" {
		dataset = "marshcrawl" // default dataset name
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
