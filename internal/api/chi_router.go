// Movrec - Movie Recommendation Web Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movrec

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/movrec/internal/middleware"
	"github.com/tomtom215/movrec/internal/models"
)

// Router sets up HTTP routes using the chi router.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router. A nil mw uses DefaultChiMiddlewareConfig.
func NewRouter(handler *Handler, mw *ChiMiddleware) *Router {
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}
	return &Router{handler: handler, chiMiddleware: mw}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to every route in order
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.AccessLog)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // global so OPTIONS preflight is answered
	r.Use(middleware.PrometheusMetrics)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusNotFound, models.ErrCodeNotFound, "Route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
	})

	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	r.Route("/api/v1/movies", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitSearch())
		r.Use(APISecurityHeaders())
		r.Get("/search", router.handler.SearchMovies)
		r.Get("/genres", router.handler.MovieGenres)
		r.Get("/{id}", router.handler.MovieByID)
	})

	r.Route("/api/v1/recommendations", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(chimiddleware.Compress(5, "application/json"))
		r.Post("/", router.handler.CreateRecommendations)
		r.Get("/", router.handler.ListRecommendations)
		r.Get("/preferences", router.handler.RecommendationPreferences)
		r.Get("/stats", router.handler.RecommendationStats)
	})

	r.Route("/api/v1/analytics", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitAnalytics())
		r.Use(APISecurityHeaders())
		r.Get("/genres", router.handler.AnalyticsGenres)
		r.Get("/confidence", router.handler.AnalyticsConfidence)
		r.Get("/ratings", router.handler.AnalyticsRatings)
		r.Get("/eras", router.handler.AnalyticsEras)
	})

	r.Route("/api/v1/export", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitExport())
		r.Use(chimiddleware.Compress(5, "text/csv"))
		r.Get("/csv", router.handler.ExportCSV)
		r.Get("/pdf", router.handler.ExportPDF)
	})

	r.Route("/api/v1/posters", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Get("/", router.handler.Posters)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
