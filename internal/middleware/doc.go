// Movrec - Movie Recommendation Web Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movrec

/*
Package middleware provides the infrastructure middleware used by the API router.

All middleware uses the chi signature func(http.Handler) http.Handler so it can be
passed directly to r.Use:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog)
	r.Use(middleware.PrometheusMetrics)

Components:

  - RequestID: honours or generates X-Request-ID and seeds the logging context
    with request and correlation ids.
  - AccessLog: one structured zerolog line per request.
  - PrometheusMetrics: api_requests_total, api_request_duration_seconds and
    api_active_requests, labelled by chi route pattern.

Route patterns are used instead of raw paths so that /api/v1/movies/{id} stays a
single series no matter how many ids are requested.
*/
package middleware
