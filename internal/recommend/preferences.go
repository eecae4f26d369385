// Movrec - Movie Recommendation Web Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movrec

package recommend

import (
	"iter"

	"github.com/tomtom215/movrec/internal/catalog"
)

// Catalog is the read-only movie index consumed by the pipeline.
type Catalog interface {
	Lookup(title string) (catalog.Movie, bool)
	All() iter.Seq[catalog.Movie]
}

// extractPreferences resolves titles and unions their genres. Misses are
// recorded in Unresolved and otherwise ignored.
func extractPreferences(cat Catalog, titles []string) UserPreferences {
	var prefs UserPreferences
	seen := make(map[string]struct{})

	for _, title := range titles {
		movie, ok := cat.Lookup(title)
		if !ok {
			prefs.Unresolved = append(prefs.Unresolved, title)
			continue
		}
		prefs.Resolved = append(prefs.Resolved, movie)
		for _, g := range movie.Genres {
			if _, dup := seen[g]; dup {
				continue
			}
			seen[g] = struct{}{}
			prefs.Genres = append(prefs.Genres, g)
		}
	}
	return prefs
}
