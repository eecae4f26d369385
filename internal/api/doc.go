// Movrec - Movie Recommendation Web Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movrec

/*
Package api provides the HTTP REST API for Movrec.

Routes are served by a chi router built in SetupChi. Every JSON response uses
the models.APIResponse envelope:

	{"status": "success", "data": {...}, "metadata": {"timestamp": "..."}}
	{"status": "error", "data": null, "metadata": {...}, "error": {"code": "VALIDATION_ERROR", ...}}

Endpoints:

Health (/api/v1/health):
  - GET /live, GET /ready

Movies (/api/v1/movies):
  - GET /search?q=&limit=   title autocomplete
  - GET /genres             distinct catalog genres
  - GET /{id}

Recommendations (/api/v1/recommendations):
  - POST /                  JSON body, see RecommendationRequest
  - GET  /                  query form used for AJAX pagination
  - GET  /preferences       genre profile of a selection
  - GET  /stats             engine counters

Analytics (/api/v1/analytics): genres, confidence, ratings, eras (?movies=)

Export (/api/v1/export): csv, pdf (?selected_movies=&genres=&...)

Posters (/api/v1/posters?title=&year=)

Metrics (/metrics): Prometheus exposition format.

A recommendation request never fails because of the model: when the pipeline
degrades, the response still carries items with source=fallback and a
degraded_reason. Only malformed input (400) and render failures (500) are errors.

Usage:

	handler := api.NewHandler(engine, cat, analyzer, posters, cfg)
	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(&cfg.Security))
	srv := &http.Server{Addr: cfg.Server.Addr(), Handler: router.SetupChi()}
*/
package api
