// Movrec - Movie Recommendation Web Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movrec

package api

import (
	"net/http"
	"time"
)

// analyticsSelection parses ?movies= for the chart endpoints. An empty
// selection is valid: every chart has a defined empty state.
func analyticsSelection(w http.ResponseWriter, r *http.Request) ([]string, bool) {
	req := SelectionRequest{Movies: queryList(r, "movies")}
	if verr := validateRequest(&req); verr != nil {
		respondValidationError(w, verr)
		return nil, false
	}
	return req.Movies, true
}

// AnalyticsGenres handles GET /api/v1/analytics/genres: genre counts over the selection.
func (h *Handler) AnalyticsGenres(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	titles, ok := analyticsSelection(w, r)
	if !ok {
		return
	}
	respondSuccess(w, h.analyzer.Genres(titles), start)
}

// AnalyticsConfidence handles GET /api/v1/analytics/confidence.
func (h *Handler) AnalyticsConfidence(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	titles, ok := analyticsSelection(w, r)
	if !ok {
		return
	}
	ctx, cancel := h.requestContext(r.Context())
	defer cancel()
	respondSuccess(w, h.analyzer.Confidence(ctx, titles), start)
}

// AnalyticsRatings handles GET /api/v1/analytics/ratings.
func (h *Handler) AnalyticsRatings(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	titles, ok := analyticsSelection(w, r)
	if !ok {
		return
	}
	ctx, cancel := h.requestContext(r.Context())
	defer cancel()
	respondSuccess(w, h.analyzer.Ratings(ctx, titles), start)
}

// AnalyticsEras handles GET /api/v1/analytics/eras.
func (h *Handler) AnalyticsEras(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	titles, ok := analyticsSelection(w, r)
	if !ok {
		return
	}
	respondSuccess(w, h.analyzer.Eras(titles), start)
}
