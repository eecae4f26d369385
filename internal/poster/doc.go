// Movrec - Movie Recommendation Web Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movrec

/*
Package poster resolves movie poster URLs from a TMDB-compatible search API.

Lookups go through three layers:

  - Store: cached results, including "no poster" answers, in memory
    (MemoryStore) or on disk (BadgerStore)
  - rate.Limiter: bounds outbound request rate
  - gobreaker circuit breaker: stops calling an unhealthy upstream

Client.Lookup never fails. When the upstream is disabled, unreachable,
rejecting requests, or has no poster for the title, the result is a
deterministic SVG placeholder carrying the title's initials.

Posters are resolved by the HTTP layer only; the recommendation engine never
calls this package.
*/
package poster
