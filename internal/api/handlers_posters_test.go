// Movrec - Movie Recommendation Web Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movrec

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tomtom215/movrec/internal/models"
)

func TestPosters(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, flatPredictor{})

	rec := env.do(t, http.MethodGet, "/api/v1/posters?title=Heat+(1995)&year=1995", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var res models.PosterResult
	decodeEnvelope(t, rec, &res)
	if res.Title != "Heat (1995)" || res.Year != 1995 || res.Placeholder {
		t.Errorf("result = %+v", res)
	}
	if !strings.HasPrefix(res.URL, "https://img.test/") {
		t.Errorf("url = %q", res.URL)
	}
}

func TestPosters_NoClientUsesPlaceholder(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, flatPredictor{})
	env.handler.posters = nil

	rec := httptest.NewRecorder()
	env.handler.Posters(rec, httptest.NewRequest(http.MethodGet, "/api/v1/posters?title=Heat", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var res models.PosterResult
	decodeEnvelope(t, rec, &res)
	if !res.Placeholder || !strings.HasPrefix(res.URL, "data:image/svg+xml;base64,") {
		t.Errorf("result = %+v, want placeholder data URI", res)
	}
}

func TestPosters_Validation(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, flatPredictor{})

	for _, q := range []string{"", "title=", "title=Heat&year=nineteen", "title=Heat&year=1200"} {
		rec := env.do(t, http.MethodGet, "/api/v1/posters?"+q, nil)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%q: status = %d, want 400", q, rec.Code)
		}
	}
	if got := env.posters.calls.Load(); got != 0 {
		t.Errorf("invalid requests reached the poster client %d times", got)
	}
}
