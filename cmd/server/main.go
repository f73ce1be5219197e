// Engagerec - Engagement-Driven Content Category Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagerec

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	_ "github.com/tomtom215/engagerec/docs" // Import generated swagger docs
	"github.com/tomtom215/engagerec/internal/api"
	"github.com/tomtom215/engagerec/internal/config"
	"github.com/tomtom215/engagerec/internal/logging"
	"github.com/tomtom215/engagerec/internal/metrics"
	"github.com/tomtom215/engagerec/internal/recommend"
	"github.com/tomtom215/engagerec/internal/recommend/storage"
	"github.com/tomtom215/engagerec/internal/supervisor"
	"github.com/tomtom215/engagerec/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	startTime := time.Now()

	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Str("addr", cfg.Server.Addr()).
		Msg("Starting Engagerec")

	if cfg.HasWildcardCORS() && !cfg.IsDevelopment() {
		logging.Warn().Msg("CORS allows any origin (CORS_ORIGINS=*); set explicit origins outside development")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Artifacts must load before the server listens.
	pipeline, err := loadPipeline(ctx, cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load model artifacts")
	}

	metrics.SetAppInfo(version, runtime.Version())

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	server := newHTTPServer(cfg, pipeline)

	tree.AddTelemetryService(services.NewUptimeService(startTime, 15*time.Second))
	tree.AddAPIService(services.NewHTTPServerService(server, server.Addr, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Application stopped gracefully")
}

// loadPipeline reads the three artifacts named in cfg and records the model
// identity in Prometheus.
func loadPipeline(ctx context.Context, cfg *config.Config) (*recommend.Pipeline, error) {
	pipeline, err := storage.LoadPipeline(ctx, storage.Paths{
		Scaler:       cfg.Artifacts.ScalerFile(),
		Model:        cfg.Artifacts.ModelFile(),
		LabelEncoder: cfg.Artifacts.LabelEncoderFile(),
	})
	if err != nil {
		return nil, err
	}

	meta := pipeline.Metadata()
	var modelChecksum string
	for _, a := range meta.Artifacts {
		if a.Name == storage.NameModel {
			modelChecksum = a.Checksum
		}
	}
	metrics.SetModelInfo(meta.ScalerKind, meta.ClassifierKind, modelChecksum, len(meta.Categories))

	logging.Info().
		Str("scaler", meta.ScalerKind).
		Str("classifier", meta.ClassifierKind).
		Strs("categories", meta.Categories).
		Msg("Model artifacts loaded")

	return pipeline, nil
}

func newHTTPServer(cfg *config.Config, pipeline *recommend.Pipeline) *http.Server {
	handler := api.NewHandler(pipeline)
	router := api.NewRouter(handler, api.NewChiMiddleware(api.ChiMiddlewareConfigFrom(cfg.Security.CORSOrigins)))

	return &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}
}
