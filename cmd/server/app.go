// Movrec - Movie Recommendation Web Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movrec

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/movrec/internal/analytics"
	"github.com/tomtom215/movrec/internal/catalog"
	"github.com/tomtom215/movrec/internal/config"
	"github.com/tomtom215/movrec/internal/logging"
	"github.com/tomtom215/movrec/internal/metrics"
	"github.com/tomtom215/movrec/internal/poster"
	"github.com/tomtom215/movrec/internal/recommend"
	"github.com/tomtom215/movrec/internal/recommend/model"
	"github.com/tomtom215/movrec/internal/supervisor/services"
)

const (
	readHeaderTimeout = 10 * time.Second
	writeTimeoutSlack = 5 * time.Second
	idleTimeout       = 120 * time.Second
)

// app holds the long-lived components built at startup.
type app struct {
	catalog  *catalog.Catalog
	engine   *recommend.Engine
	analyzer *analytics.Analyzer
	posters  *poster.Client

	memStore    *poster.MemoryStore
	badgerStore *poster.BadgerStore
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	a := &app{catalog: loadCatalog(ctx, cfg)}

	predictor := loadModel(cfg.Data.ModelPath)
	metrics.SetDatasetInfo(a.catalog.Len(), predictor != nil)

	var rp recommend.RatingPredictor
	if predictor != nil {
		rp = predictor
	}
	engine, err := recommend.NewEngine(engineConfig(&cfg.Recommend), a.catalog, rp, logging.Logger())
	if err != nil {
		return nil, fmt.Errorf("recommendation engine: %w", err)
	}
	a.engine = engine
	a.analyzer = analytics.NewAnalyzer(engine, cfg.Recommend.MinSelections)

	store, err := a.openPosterStore(&cfg.Poster)
	if err != nil {
		return nil, fmt.Errorf("poster cache: %w", err)
	}
	a.posters = poster.NewClient(posterConfig(&cfg.Poster), store, logging.Logger())
	return a, nil
}

// loadCatalog ingests the configured movies file. The built-in sample keeps
// the service answering when the file is missing or malformed.
func loadCatalog(ctx context.Context, cfg *config.Config) *catalog.Catalog {
	start := time.Now()
	cat, err := catalog.LoadCSV(ctx, cfg.Data.MoviesPath, catalog.LoadOptions{Threads: cfg.Data.DuckDBThreads})
	if err != nil {
		logging.Warn().Err(err).Str("path", cfg.Data.MoviesPath).Msg("Failed to load movies, using built-in sample catalog")
		return catalog.Sample()
	}
	logging.Info().
		Int("movies", cat.Len()).
		Dur("elapsed", time.Since(start)).
		Msg("Catalog loaded")
	return cat
}

// loadModel returns nil when no usable model is configured.
func loadModel(path string) *model.Model {
	if path == "" {
		logging.Warn().Msg("No model configured, serving fallback recommendations only")
		return nil
	}
	m, err := model.Load(path)
	if err != nil {
		logging.Warn().Err(err).Str("path", path).Msg("Failed to load model, serving fallback recommendations only")
		return nil
	}
	info := m.Info()
	logging.Info().
		Int("users", info.Users).
		Int("items", info.Items).
		Int("factors", info.Factors).
		Msg("Rating model loaded")
	return m
}

func engineConfig(rc *config.RecommendConfig) *recommend.Config {
	return &recommend.Config{
		GenreBoost:   rc.GenreBoost,
		MaxRating:    rc.MaxRating,
		Workers:      rc.Workers,
		CacheEnabled: rc.CacheEnabled,
		CacheSize:    rc.CacheSize,
		CacheTTL:     rc.CacheTTL,
		GenreAliases: rc.GenreAliases,
	}
}

func posterConfig(pc *config.PosterConfig) poster.Config {
	return poster.Config{
		Enabled:           pc.Enabled,
		APIURL:            pc.APIURL,
		ImageBaseURL:      pc.ImageBaseURL,
		APIKey:            pc.APIKey,
		Timeout:           pc.Timeout,
		RequestsPerSecond: pc.RequestsPerSecond,
		Burst:             pc.Burst,
		BreakerFailures:   pc.BreakerFailures,
		BreakerTimeout:    pc.BreakerTimeout,
		CacheTTL:          pc.CacheTTL,
	}
}

func (a *app) openPosterStore(pc *config.PosterConfig) (poster.Store, error) {
	if !pc.Enabled {
		return nil, nil
	}
	if pc.CacheBackend == "badger" {
		s, err := poster.OpenBadgerStore(pc.CachePath)
		if err != nil {
			return nil, err
		}
		a.badgerStore = s
		entries, err := s.Count()
		if err != nil {
			logging.Warn().Err(err).Msg("Failed to count poster cache entries")
		}
		logging.Info().Str("path", pc.CachePath).Int("entries", entries).Msg("Poster cache opened (badger)")
		return s, nil
	}
	a.memStore = poster.NewMemoryStore(pc.CacheSize, pc.CacheTTL)
	return a.memStore, nil
}

// maintenanceTasks returns the housekeeping run by the maintenance service.
func (a *app) maintenanceTasks() []services.MaintenanceTask {
	tasks := []services.MaintenanceTask{{
		Name: "recommend-cache-purge",
		Run: func(context.Context) (int, error) {
			return a.engine.PurgeCache(), nil
		},
	}}
	if a.memStore != nil {
		tasks = append(tasks, services.MaintenanceTask{
			Name: "poster-cache-purge",
			Run: func(context.Context) (int, error) {
				return a.memStore.Purge(), nil
			},
		})
	}
	if a.badgerStore != nil {
		tasks = append(tasks, services.MaintenanceTask{
			Name: "poster-badger-gc",
			Run: func(context.Context) (int, error) {
				return 0, a.badgerStore.RunGC()
			},
		})
	}
	return tasks
}

// Close releases the poster cache.
func (a *app) Close() {
	if a.memStore != nil {
		_ = a.memStore.Close()
	}
	if a.badgerStore != nil {
		if err := a.badgerStore.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing poster cache")
		}
	}
}
