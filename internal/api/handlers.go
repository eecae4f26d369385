// Movrec - Movie Recommendation Web Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movrec

package api

import (
	"context"
	"time"

	"github.com/tomtom215/movrec/internal/analytics"
	"github.com/tomtom215/movrec/internal/catalog"
	"github.com/tomtom215/movrec/internal/config"
	"github.com/tomtom215/movrec/internal/poster"
	"github.com/tomtom215/movrec/internal/recommend"
)

// Recommender is the subset of *recommend.Engine the handlers call.
type Recommender interface {
	Generate(ctx context.Context, selected []string, filter recommend.FilterSpec, limit int) recommend.Result
	ExtractPreferences(titles []string) recommend.UserPreferences
	ModelAvailable() bool
	Stats() recommend.Stats
}

// MovieCatalog is the subset of *catalog.Catalog the handlers call.
type MovieCatalog interface {
	Len() int
	ByID(id int) (catalog.Movie, bool)
	Search(query string, limit int) []catalog.Movie
	Genres() []string
}

// PosterLookup resolves poster URLs. *poster.Client satisfies it.
type PosterLookup interface {
	Lookup(ctx context.Context, title string, year int) poster.Poster
}

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers_health.go: liveness and readiness
//   - handlers_movies.go: search, genres, movie by id
//   - handlers_recommend.go: recommendations and preferences
//   - handlers_analytics.go: chart datasets
//   - handlers_export.go: CSV and PDF downloads
//   - handlers_posters.go: poster lookups
type Handler struct {
	engine   Recommender
	catalog  MovieCatalog
	analyzer *analytics.Analyzer
	posters  PosterLookup

	defaultLimit   int
	maxLimit       int
	exportLimit    int
	minSelections  int
	requestTimeout time.Duration

	version   string
	startTime time.Time
	now       func() time.Time
}

// NewHandler creates the API handler. posters may be nil, in which case
// include_posters is ignored and the posters endpoint returns placeholders.
//
//	handler := api.NewHandler(engine, cat, analytics.NewAnalyzer(engine, 3), posterClient, cfg)
func NewHandler(engine Recommender, cat MovieCatalog, analyzer *analytics.Analyzer, posters PosterLookup, cfg *config.Config) *Handler {
	rc := cfg.Recommend
	if analyzer == nil {
		analyzer = analytics.NewAnalyzer(engine, rc.MinSelections)
	}
	return &Handler{
		engine:         engine,
		catalog:        cat,
		analyzer:       analyzer,
		posters:        posters,
		defaultLimit:   rc.DefaultLimit,
		maxLimit:       rc.MaxLimit,
		exportLimit:    rc.ExportLimit,
		minSelections:  rc.MinSelections,
		requestTimeout: cfg.Server.Timeout,
		version:        "dev",
		startTime:      time.Now(),
		now:            time.Now,
	}
}

// SetVersion sets the version reported by the health endpoints.
func (h *Handler) SetVersion(v string) {
	if v != "" {
		h.version = v
	}
}

// requestContext bounds handler work by the configured request timeout.
func (h *Handler) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if h.requestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, h.requestTimeout)
}
