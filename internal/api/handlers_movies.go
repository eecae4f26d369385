// Movrec - Movie Recommendation Web Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movrec

package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/movrec/internal/catalog"
	"github.com/tomtom215/movrec/internal/models"
	"github.com/tomtom215/movrec/internal/validation"
)

// SearchMovies handles GET /api/v1/movies/search?q=&limit= for title autocomplete.
func (h *Handler) SearchMovies(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	limit, ok := getIntParam(r, "limit", catalog.DefaultSearchLimit)
	if !ok {
		respondValidationError(w, validation.NewRequestValidationError("limit", "numeric", "limit must be a whole number", r.URL.Query().Get("limit")))
		return
	}
	req := SearchRequest{
		Query: strings.TrimSpace(r.URL.Query().Get("q")),
		Limit: limit,
	}
	if verr := validateRequest(&req); verr != nil {
		respondValidationError(w, verr)
		return
	}

	movies := h.catalog.Search(req.Query, req.Limit)
	if movies == nil {
		movies = []catalog.Movie{}
	}
	respondSuccess(w, map[string]interface{}{
		"movies": movies,
		"count":  len(movies),
	}, start)
}

// MovieGenres handles GET /api/v1/movies/genres.
func (h *Handler) MovieGenres(w http.ResponseWriter, _ *http.Request) {
	start := time.Now()
	genres := h.catalog.Genres()
	if genres == nil {
		genres = []string{}
	}
	respondSuccess(w, map[string]interface{}{"genres": genres}, start)
}

// MovieByID handles GET /api/v1/movies/{id}.
func (h *Handler) MovieByID(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		respondValidationError(w, validation.NewRequestValidationError("id", "numeric", "id must be a positive whole number", raw))
		return
	}

	movie, ok := h.catalog.ByID(id)
	if !ok {
		respondError(w, http.StatusNotFound, models.ErrCodeNotFound, "Movie not found", nil)
		return
	}
	respondSuccess(w, movie, start)
}
