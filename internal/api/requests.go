// Movrec - Movie Recommendation Web Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movrec

package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/tomtom215/movrec/internal/recommend"
	"github.com/tomtom215/movrec/internal/validation"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100

	// maxBodyBytes bounds POST bodies; fifty titles fit comfortably.
	maxBodyBytes = 64 << 10
)

// RecommendationRequest is the POST /api/v1/recommendations body. The GET
// form carries the same fields as query parameters.
//
// Fields:
//   - SelectedMovies: catalog titles the user likes; at least recommend.min_selections
//   - Filters: genre, year and rating constraints plus the sort key
//   - Limit: how many recommendations to generate (default recommend.default_limit)
//   - Page, PageSize: window over the generated list (defaults 1 and 10)
//   - IncludePosters: resolve poster URLs for the returned page
type RecommendationRequest struct {
	SelectedMovies []string             `json:"selected_movies" validate:"required,max=50,dive,required,max=300"`
	Filters        recommend.FilterSpec `json:"filters"`
	Limit          int                  `json:"limit" validate:"gte=0"`
	Page           int                  `json:"page" validate:"gte=0,lte=100000"`
	PageSize       int                  `json:"page_size" validate:"gte=0,lte=100"`
	IncludePosters bool                 `json:"include_posters"`
}

// ExportRequest is the query form of the export endpoints.
type ExportRequest struct {
	SelectedMovies []string             `json:"selected_movies" validate:"required,max=50,dive,required,max=300"`
	Filters        recommend.FilterSpec `json:"filters"`
}

// SelectionRequest is the ?movies= form shared by preferences and analytics.
type SelectionRequest struct {
	Movies []string `json:"movies" validate:"max=50,dive,required,max=300"`
}

// SearchRequest validates the autocomplete parameters.
type SearchRequest struct {
	Query string `json:"q" validate:"required,min=2,max=100"`
	Limit int    `json:"limit" validate:"min=1,max=50"`
}

// PosterRequest validates a poster lookup.
type PosterRequest struct {
	Title string `json:"title" validate:"required,max=300"`
	Year  int    `json:"year" validate:"omitempty,gte=1870,lte=2100"`
}

// normalizeRecommendation validates req and fills defaults in place.
func (h *Handler) normalizeRecommendation(req *RecommendationRequest) *validation.RequestValidationError {
	if verr := validateRequest(req); verr != nil {
		return verr
	}
	if verr := h.checkSelection(req.SelectedMovies); verr != nil {
		return verr
	}
	if verr := validateFilter(req.Filters); verr != nil {
		return verr
	}

	switch {
	case req.Limit == 0:
		req.Limit = h.defaultLimit
	case req.Limit > h.maxLimit:
		req.Limit = h.maxLimit
	}
	if req.Page == 0 {
		req.Page = 1
	}
	if req.PageSize == 0 {
		req.PageSize = defaultPageSize
	}
	return nil
}

// checkSelection enforces the configured minimum number of selections.
func (h *Handler) checkSelection(titles []string) *validation.RequestValidationError {
	if len(titles) < h.minSelections {
		return validation.NewRequestValidationError("selected_movies", "min",
			fmt.Sprintf("selected_movies must contain at least %d titles", h.minSelections), len(titles))
	}
	return nil
}

// validateFilter runs the FilterSpec field and cross-field checks.
//
//nolint:gocritic // hugeParam: FilterSpec is passed by value everywhere
func validateFilter(f recommend.FilterSpec) *validation.RequestValidationError {
	err := f.Validate()
	if err == nil {
		return nil
	}
	var verr *validation.RequestValidationError
	if errors.As(err, &verr) {
		return verr
	}
	return validation.NewRequestValidationError("filters", "invalid", err.Error(), nil)
}

// parseFilterQuery reads genres, year_min, year_max, min_rating and sort_by.
// Malformed numbers are validation errors, never silently ignored.
func parseFilterQuery(r *http.Request) (recommend.FilterSpec, *validation.RequestValidationError) {
	q := r.URL.Query()
	f := recommend.FilterSpec{
		Genres: queryCSVList(r, "genres"),
		SortBy: recommend.SortKey(strings.TrimSpace(q.Get("sort_by"))),
	}

	var err *validation.RequestValidationError
	if f.YearMin, err = optionalInt(q.Get("year_min"), "year_min"); err != nil {
		return f, err
	}
	if f.YearMax, err = optionalInt(q.Get("year_max"), "year_max"); err != nil {
		return f, err
	}
	if raw := strings.TrimSpace(q.Get("min_rating")); raw != "" {
		v, perr := strconv.ParseFloat(raw, 64)
		if perr != nil {
			return f, validation.NewRequestValidationError("min_rating", "numeric", "min_rating must be a number", raw)
		}
		f.MinRating = &v
	}
	return f, nil
}

func optionalInt(raw, field string) (*int, *validation.RequestValidationError) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, validation.NewRequestValidationError(field, "numeric", field+" must be a whole number", raw)
	}
	return &v, nil
}

// parseRecommendationQuery builds a RecommendationRequest from the GET form.
// Titles come from repeated ?movies= parameters.
func parseRecommendationQuery(r *http.Request) (RecommendationRequest, *validation.RequestValidationError) {
	req := RecommendationRequest{SelectedMovies: queryList(r, "movies")}

	var verr *validation.RequestValidationError
	if req.Filters, verr = parseFilterQuery(r); verr != nil {
		return req, verr
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"limit", &req.Limit},
		{"page", &req.Page},
		{"page_size", &req.PageSize},
	}
	for _, p := range ints {
		v, ok := getIntParam(r, p.key, 0)
		if !ok {
			return req, validation.NewRequestValidationError(p.key, "numeric", p.key+" must be a whole number", r.URL.Query().Get(p.key))
		}
		*p.dst = v
	}

	req.IncludePosters, _ = strconv.ParseBool(r.URL.Query().Get("include_posters"))
	return req, nil
}
