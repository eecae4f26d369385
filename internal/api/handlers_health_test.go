// Movrec - Movie Recommendation Web Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movrec

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/movrec/internal/models"
	"github.com/tomtom215/movrec/internal/poster"
)

func TestHealthLive(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, flatPredictor{})

	rec := env.do(t, http.MethodGet, "/api/v1/health/live", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var data map[string]interface{}
	decodeEnvelope(t, rec, &data)
	if data["alive"] != true {
		t.Errorf("alive = %v, want true", data["alive"])
	}
}

func TestHealthReady(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		predictor  bool
		wantStatus string
	}{
		{"model loaded", true, "healthy"},
		{"fallback only", false, "degraded"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			env := newTestEnv(t, nil)
			if tt.predictor {
				env = newTestEnv(t, flatPredictor{})
			}
			env.handler.SetVersion("1.2.3")

			rec := env.do(t, http.MethodGet, "/api/v1/health/ready", nil)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rec.Code)
			}
			var health models.HealthStatus
			decodeEnvelope(t, rec, &health)
			if health.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", health.Status, tt.wantStatus)
			}
			if health.ModelLoaded != tt.predictor {
				t.Errorf("model_loaded = %v, want %v", health.ModelLoaded, tt.predictor)
			}
			if health.CatalogMovies != len(testMovies) {
				t.Errorf("catalog_movies = %d, want %d", health.CatalogMovies, len(testMovies))
			}
			if health.Version != "1.2.3" {
				t.Errorf("version = %q", health.Version)
			}
		})
	}
}

func TestHealthReady_EmptyCatalog(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, nil)
	env.handler.catalog = emptyCatalog{}

	rec := httptest.NewRecorder()
	env.handler.HealthReady(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health/ready", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
	env2 := decodeEnvelope(t, rec, nil)
	if env2.Error == nil || env2.Error.Code != models.ErrCodeUnavailable {
		t.Errorf("error = %+v, want %s", env2.Error, models.ErrCodeUnavailable)
	}
}

func TestHealthReady_PosterBreaker(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, flatPredictor{})

	rec := env.do(t, http.MethodGet, "/api/v1/health/ready", nil)
	var health models.HealthStatus
	decodeEnvelope(t, rec, &health)
	if health.PosterBreaker != "" {
		t.Errorf("poster_breaker = %q for a lookup without a breaker", health.PosterBreaker)
	}

	env.handler.posters = poster.NewClient(poster.Config{}, nil, zerolog.Nop())
	rec = env.do(t, http.MethodGet, "/api/v1/health/ready", nil)
	decodeEnvelope(t, rec, &health)
	if health.PosterBreaker != "disabled" {
		t.Errorf("poster_breaker = %q, want disabled", health.PosterBreaker)
	}
}
