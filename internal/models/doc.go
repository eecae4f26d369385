// Movrec - Movie Recommendation Web Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movrec

/*
Package models defines the HTTP response shapes shared by the API and its
helpers.

Key Components:

  - APIResponse: standard envelope ({status, data, metadata, error})
  - ChartDataset: labels/data/colour triples consumed by the analytics charts
  - RecommendationPage: one page of recommendations with fail-soft provenance
  - HealthStatus: liveness/readiness payload

Recommendation items themselves are recommend.ScoredCandidate values; this
package only wraps them for transport.
*/
package models
