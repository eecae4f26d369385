// Movrec - Movie Recommendation Web Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movrec

// Package metrics defines the Prometheus collectors exported on /metrics and
// small Record helpers used by the recommendation engine, the poster client,
// the caches and the HTTP middleware.
//
// Collectors register with the default registry through promauto.
package metrics
