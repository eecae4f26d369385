// Movrec - Movie Recommendation Web Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movrec

package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/tomtom215/movrec/internal/models"
	"github.com/tomtom215/movrec/internal/poster"
	"github.com/tomtom215/movrec/internal/validation"
)

// Posters handles GET /api/v1/posters?title=&year=. It always answers 200
// with either an upstream poster URL or a placeholder data URI.
func (h *Handler) Posters(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	year, ok := getIntParam(r, "year", 0)
	if !ok {
		respondValidationError(w, validation.NewRequestValidationError("year", "numeric", "year must be a whole number", r.URL.Query().Get("year")))
		return
	}
	req := PosterRequest{
		Title: strings.TrimSpace(r.URL.Query().Get("title")),
		Year:  year,
	}
	if verr := validateRequest(&req); verr != nil {
		respondValidationError(w, verr)
		return
	}

	var p poster.Poster
	if h.posters == nil {
		p = poster.Poster{URL: poster.Placeholder(req.Title), Placeholder: true, Result: poster.ResultPlaceholder}
	} else {
		ctx, cancel := h.requestContext(r.Context())
		defer cancel()
		p = h.posters.Lookup(ctx, req.Title, req.Year)
	}

	respondSuccess(w, models.PosterResult{
		Title:       req.Title,
		Year:        req.Year,
		URL:         p.URL,
		Placeholder: p.Placeholder,
	}, start)
}
