// Package app provides the core application initialization and lifecycle management.
package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/finwatch/kursziel/internal/config"
	"github.com/finwatch/kursziel/internal/fetch"
	"github.com/finwatch/kursziel/internal/ratelimit"
	"github.com/finwatch/kursziel/internal/runner"
)

// Application holds all application dependencies and manages their lifecycle.
//
// It is created once at startup and shared across all CLI commands.
// Use Close() to ensure proper resource cleanup on shutdown.
type Application struct {
	Config     *config.Config
	Logger     *zerolog.Logger
	HTTPClient *http.Client
	Pacer      ratelimit.Pacer
	Fetcher    *fetch.Fetcher
	Runner     *runner.Runner
	startTime  time.Time
}

// New creates and initializes a new Application with all dependencies.
//
// It configures logging, builds the HTTP client with the fetch timeout,
// creates the request pacer, and wires the fetcher into the batch
// runner. If any step fails, an error is returned and no resources are
// allocated.
func New(ctx context.Context, cfg *config.Config) (*Application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	logLevel := zerolog.ErrorLevel // default: suppress non-verbose info logs
	switch cfg.LogLevel {
	case "debug":
		logLevel = zerolog.DebugLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	default:
		logLevel = zerolog.ErrorLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	// Reassign the global logger so every component logging through
	// zerolog/log picks the format up.
	if cfg.JSONLog {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	logger := log.Logger

	logger.Debug().
		Str("level", cfg.LogLevel).
		Bool("json", cfg.JSONLog).
		Msg("Logger initialized")

	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 2,
			IdleConnTimeout:     90 * time.Second,
		},
	}
	logger.Debug().
		Dur("timeout", cfg.HTTPTimeout).
		Msg("HTTP client initialized")

	pacer := ratelimit.NewDelayPacer(cfg.RequestDelay)
	logger.Debug().
		Dur("delay", cfg.RequestDelay).
		Msg("Request pacer initialized")

	fetcher := fetch.New(httpClient, cfg.UserAgent)
	run := runner.New(fetcher, pacer, cfg.Keyword).
		WithProgress(!cfg.JSONLog)

	app := &Application{
		Config:     cfg,
		Logger:     &logger,
		HTTPClient: httpClient,
		Pacer:      pacer,
		Fetcher:    fetcher,
		Runner:     run,
		startTime:  time.Now(),
	}

	logger.Info().Msg("Application initialized successfully")
	return app, nil
}

// Close gracefully shuts down the application and releases idle
// connections. A context with a timeout should be provided to prevent
// indefinite blocking.
func (a *Application) Close(ctx context.Context) error {
	a.Logger.Info().Msg("Shutting down application")

	if a.HTTPClient != nil {
		a.HTTPClient.CloseIdleConnections()
	}

	uptime := time.Since(a.startTime)
	a.Logger.Info().Dur("uptime", uptime).Msg("Application shutdown complete")
	return nil
}
