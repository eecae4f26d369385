// Movrec - Movie Recommendation Web Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movrec

package recommend

import (
	"cmp"
	"slices"
)

// rank orders items by key and truncates to limit (limit <= 0 keeps all).
// All orders are stable, so ties keep input order. The input slice is not modified.
func rank(items []ScoredCandidate, key SortKey, limit int) []ScoredCandidate {
	out := slices.Clone(items)

	switch key {
	case SortYear:
		if slices.ContainsFunc(out, ScoredCandidate.HasYear) {
			// absent years are stored as 0 and therefore sort last
			slices.SortStableFunc(out, func(a, b ScoredCandidate) int {
				return cmp.Compare(b.Year, a.Year)
			})
		}
	case SortAlphabetical:
		slices.SortStableFunc(out, func(a, b ScoredCandidate) int {
			return cmp.Compare(a.Title, b.Title)
		})
	default:
		slices.SortStableFunc(out, func(a, b ScoredCandidate) int {
			return cmp.Compare(b.PredictedRating, a.PredictedRating)
		})
	}

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// finalize is the shared tail of the model and fallback paths:
// min_rating filtering followed by ranking.
func finalize(items []ScoredCandidate, filter FilterSpec, limit int) []ScoredCandidate {
	kept := make([]ScoredCandidate, 0, len(items))
	for _, it := range items {
		if filter.admitsRating(it.PredictedRating) {
			kept = append(kept, it)
		}
	}
	return rank(kept, filter.sortKey(), limit)
}
