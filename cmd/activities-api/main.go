// Package main is the entry point for the Mergington activities API server.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mergington/activities/internal/api"
	"github.com/mergington/activities/internal/config"
	"github.com/mergington/activities/internal/registry"
	"github.com/mergington/activities/web"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	// Setup logging
	setupLogging(cfg.LogLevel)

	log.Info().
		Str("version", cfg.Version).
		Str("listen", cfg.ListenAddr()).
		Bool("enforce_capacity", cfg.EnforceCapacity).
		Msg("Starting Mergington activities API")

	reg := registry.New(registry.Default(), registry.WithCapacityEnforcement(cfg.EnforceCapacity))
	log.Info().Int("activities", reg.Len()).Msg("Activity registry seeded")

	assets, err := web.Assets(cfg.StaticDir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.StaticDir).Msg("Failed to load static assets")
	}

	srv := &http.Server{
		Addr:         cfg.ListenAddr(),
		Handler:      api.NewRouter(cfg, reg, assets),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.ListenAddr()).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}

// setupLogging configures zerolog based on log level.
func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
