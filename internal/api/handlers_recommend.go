// Movrec - Movie Recommendation Web Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movrec

package api

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/movrec/internal/logging"
	"github.com/tomtom215/movrec/internal/models"
	"github.com/tomtom215/movrec/internal/validation"
)

// posterConcurrency bounds parallel poster lookups for one page.
const posterConcurrency = 4

// CreateRecommendations handles POST /api/v1/recommendations.
//
// The body is a RecommendationRequest. The response is always 200 for valid
// input; when the model path cannot deliver, items come from the fallback list
// and degraded_reason says why.
func (h *Handler) CreateRecommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req RecommendationRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, http.StatusRequestEntityTooLarge, models.ErrCodeValidation, "Request body too large", nil)
			return
		}
		respondError(w, http.StatusBadRequest, models.ErrCodeValidation, "Invalid JSON body", nil)
		return
	}

	h.serveRecommendations(w, r, &req, start)
}

// ListRecommendations handles GET /api/v1/recommendations, the query-string
// form used for AJAX pagination:
//
//	/api/v1/recommendations?movies=Heat+(1995)&movies=...&genres=Action&sort_by=year&page=2
func (h *Handler) ListRecommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req, verr := parseRecommendationQuery(r)
	if verr != nil {
		respondValidationError(w, verr)
		return
	}
	h.serveRecommendations(w, r, &req, start)
}

func (h *Handler) serveRecommendations(w http.ResponseWriter, r *http.Request, req *RecommendationRequest, start time.Time) {
	if verr := h.normalizeRecommendation(req); verr != nil {
		respondValidationError(w, verr)
		return
	}

	ctx, cancel := h.requestContext(r.Context())
	defer cancel()

	res := h.engine.Generate(ctx, req.SelectedMovies, req.Filters, req.Limit)
	page := models.NewRecommendationPage(res, req.Page, req.PageSize)
	if req.IncludePosters {
		h.attachPosters(ctx, page.Items)
	}

	respondSuccess(w, page, start)
}

// attachPosters fills PosterURL for each item in place. Lookups never fail;
// the poster client answers with a placeholder instead.
func (h *Handler) attachPosters(ctx context.Context, items []models.RecommendationItem) {
	if h.posters == nil || len(items) == 0 {
		return
	}

	sem := make(chan struct{}, posterConcurrency)
	var wg sync.WaitGroup
	for i := range items {
		wg.Add(1)
		sem <- struct{}{}
		go func(it *models.RecommendationItem) {
			defer wg.Done()
			defer func() { <-sem }()
			it.PosterURL = h.posters.Lookup(ctx, it.Title, it.Year).URL
		}(&items[i])
	}
	wg.Wait()

	logging.Ctx(ctx).Debug().Int("items", len(items)).Msg("posters attached")
}

// RecommendationPreferences handles GET /api/v1/recommendations/preferences?movies=.
// It reports the genre profile the engine would use, without scoring anything.
func (h *Handler) RecommendationPreferences(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := SelectionRequest{Movies: queryList(r, "movies")}
	if verr := validateRequest(&req); verr != nil {
		respondValidationError(w, verr)
		return
	}
	if len(req.Movies) == 0 {
		respondValidationError(w, validation.NewRequestValidationError("movies", "required", "movies is required", nil))
		return
	}

	prefs := h.engine.ExtractPreferences(req.Movies)
	summary := models.PreferencesSummary{
		PreferredGenres: nonNil(prefs.Genres),
		Resolved:        make([]string, 0, len(prefs.Resolved)),
		Unresolved:      nonNil(prefs.Unresolved),
	}
	for _, m := range prefs.Resolved {
		summary.Resolved = append(summary.Resolved, m.Title)
	}
	respondSuccess(w, summary, start)
}

// RecommendationStats handles GET /api/v1/recommendations/stats.
func (h *Handler) RecommendationStats(w http.ResponseWriter, _ *http.Request) {
	start := time.Now()
	respondSuccess(w, map[string]interface{}{
		"engine":         h.engine.Stats(),
		"model_loaded":   h.engine.ModelAvailable(),
		"catalog_movies": h.catalog.Len(),
	}, start)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
