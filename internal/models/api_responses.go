// Movrec - Movie Recommendation Web Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movrec

package models

import (
	"time"
)

// APIResponse is the envelope written by every JSON endpoint.
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"items": [...], "total": 42, "source": "model"},
//	  "metadata": {"timestamp": "2026-01-28T12:00:00Z", "query_time_ms": 3}
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {
//	    "code": "VALIDATION_ERROR",
//	    "message": "selected_movies must contain at least 3 items",
//	    "details": {"field": "selected_movies"}
//	  },
//	  "metadata": {"timestamp": "2026-01-28T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response timing and cache information.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
}

// APIError is a machine-readable error code plus a human message.
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error codes used by the HTTP layer.
const (
	ErrCodeValidation  = "VALIDATION_ERROR"
	ErrCodeNotFound    = "NOT_FOUND"
	ErrCodeInternal    = "INTERNAL_ERROR"
	ErrCodeExport      = "EXPORT_ERROR"
	ErrCodeRateLimit   = "RATE_LIMIT_EXCEEDED"
	ErrCodeUnavailable = "SERVICE_UNAVAILABLE"
)

// HealthStatus is returned by the health endpoints.
type HealthStatus struct {
	Status        string    `json:"status"` // healthy, degraded (no model) or unavailable
	Version       string    `json:"version"`
	CatalogMovies int       `json:"catalog_movies"`
	ModelLoaded   bool      `json:"model_loaded"`
	PosterBreaker string    `json:"poster_breaker,omitempty"` // closed, half-open, open or disabled
	Uptime        float64   `json:"uptime_seconds"`
	CheckedAt     time.Time `json:"checked_at"`
}
