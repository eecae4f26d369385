// Movrec - Movie Recommendation Web Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movrec

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/movrec/internal/models"
)

// breakerReporter is implemented by *poster.Client.
type breakerReporter interface {
	BreakerState() string
}

// HealthLive handles liveness probes. It returns 200 while the process runs.
func (h *Handler) HealthLive(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"alive":  true,
			"uptime": time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// HealthReady handles readiness probes. The service can always answer
// recommendation requests, from the fallback list if need be, so it is ready
// as soon as a non-empty catalog is loaded. A missing model only reports
// status "degraded".
func (h *Handler) HealthReady(w http.ResponseWriter, _ *http.Request) {
	movies := h.catalog.Len()
	modelLoaded := h.engine.ModelAvailable()

	health := models.HealthStatus{
		Status:        "healthy",
		Version:       h.version,
		CatalogMovies: movies,
		ModelLoaded:   modelLoaded,
		Uptime:        time.Since(h.startTime).Seconds(),
		CheckedAt:     time.Now(),
	}
	if b, ok := h.posters.(breakerReporter); ok {
		health.PosterBreaker = b.BreakerState()
	}
	if !modelLoaded {
		health.Status = "degraded"
	}

	if movies == 0 {
		health.Status = "unavailable"
		respondJSON(w, http.StatusServiceUnavailable, &models.APIResponse{
			Status:   "error",
			Data:     health,
			Metadata: models.Metadata{Timestamp: time.Now()},
			Error: &models.APIError{
				Code:    models.ErrCodeUnavailable,
				Message: "Movie catalog is not loaded",
			},
		})
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     health,
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}
