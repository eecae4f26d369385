// Movrec - Movie Recommendation Web Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movrec

package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/tomtom215/movrec/internal/api"
	"github.com/tomtom215/movrec/internal/config"
	"github.com/tomtom215/movrec/internal/logging"
	"github.com/tomtom215/movrec/internal/metrics"
	"github.com/tomtom215/movrec/internal/supervisor"
	"github.com/tomtom215/movrec/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Str("movies_path", cfg.Data.MoviesPath).
		Str("model_path", cfg.Data.ModelPath).
		Msg("Starting Movrec")
	metrics.AppInfo.WithLabelValues(version, runtime.Version()).Set(1)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := newApp(ctx, cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize components")
	}
	defer app.Close()

	handler := api.NewHandler(app.engine, app.catalog, app.analyzer, app.posters, cfg)
	handler.SetVersion(version)
	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(&cfg.Security))

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout + writeTimeoutSlack,
		IdleTimeout:       idleTimeout,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	logger := logging.Logger()
	tree.AddAPIService(services.NewHTTPServerService(srv, cfg.Server.ShutdownTimeout, logger))
	tree.AddMaintenanceService(services.NewMaintenanceService(cfg.Poster.CacheGCInterval, app.maintenanceTasks(), logger))

	logging.Info().Str("addr", srv.Addr).Msg("Supervisor tree starting")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree stopped with error")
	}

	if report, err := tree.UnstoppedServiceReport(); err == nil && len(report) > 0 {
		for _, s := range report {
			logging.Warn().Str("service", s.Name).Msg("Service did not stop within timeout")
		}
	}
	logging.Info().Msg("Movrec stopped")
}
