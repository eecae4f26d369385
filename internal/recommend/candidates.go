// Movrec - Movie Recommendation Web Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movrec

package recommend

// generateCandidates scans the catalog in order and keeps movies that pass
// the genre/year filter, are not selected, and share a preferred genre.
// MinRating is not applied here. Empty preferences yield no candidates.
func generateCandidates(cat Catalog, selected []string, prefs UserPreferences, filter FilterSpec) []Candidate {
	if prefs.Empty() {
		return nil
	}

	exclude := make(map[string]struct{}, len(selected))
	for _, t := range selected {
		exclude[t] = struct{}{}
	}
	preferred := prefs.genreSet()

	var out []Candidate
	for movie := range cat.All() {
		if !filter.admits(movie.Genres, movie.Year) {
			continue
		}
		if _, skip := exclude[movie.Title]; skip {
			continue
		}
		n := overlap(movie.Genres, preferred)
		if n == 0 {
			continue
		}
		out = append(out, Candidate{Movie: movie, GenreOverlap: n})
	}
	return out
}
