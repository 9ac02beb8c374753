// Package main is the entrypoint for the workshop API server.
package main

import (
	"log/slog"
	"os"

	"github.com/techwriters/workshop-api/internal/config"
	"github.com/techwriters/workshop-api/internal/handler"
	"github.com/techwriters/workshop-api/internal/server"
	"github.com/techwriters/workshop-api/internal/store"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := initLogger(cfg)

	// Initialize the document store before the router accepts requests.
	// Open seeds the backing file on first run and is a no-op afterwards.
	st := store.New(cfg.DataPath)
	if err := st.Open(); err != nil {
		logger.Error("failed to open store", "error", err, "path", cfg.DataPath)
		os.Exit(1)
	}
	logger.Info("store ready", "path", cfg.DataPath)

	// Setup router
	r := handler.NewRouter(cfg, st, logger)

	// Create and run server
	srv := server.New(
		r,
		cfg.AppPort,
		cfg.ReadTimeout,
		cfg.WriteTimeout,
		cfg.ShutdownTimeout,
		logger,
	)

	logger.Info("starting server",
		"port", cfg.AppPort,
		"env", cfg.AppEnv,
	)

	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	var h slog.Handler

	opts := &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}

	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)

	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
