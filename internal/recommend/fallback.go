// Movrec - Movie Recommendation Web Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movrec

package recommend

import "slices"

// fallbackMovies is the fixed list served when the model path cannot produce
// results. Ids and titles follow MovieLens; years span 1972 to 2010.
var fallbackMovies = []ScoredCandidate{
	{MovieID: 318, Title: "Shawshank Redemption, The (1994)", Genres: []string{"Crime", "Drama"}, Year: 1994, PredictedRating: 4.6},
	{MovieID: 858, Title: "Godfather, The (1972)", Genres: []string{"Crime", "Drama"}, Year: 1972, PredictedRating: 4.5},
	{MovieID: 58559, Title: "Dark Knight, The (2008)", Genres: []string{"Action", "Crime", "Drama", "IMAX"}, Year: 2008, PredictedRating: 4.4},
	{MovieID: 296, Title: "Pulp Fiction (1994)", Genres: []string{"Comedy", "Crime", "Drama", "Thriller"}, Year: 1994, PredictedRating: 4.4},
	{MovieID: 356, Title: "Forrest Gump (1994)", Genres: []string{"Comedy", "Drama", "Romance", "War"}, Year: 1994, PredictedRating: 4.3},
	{MovieID: 79132, Title: "Inception (2010)", Genres: []string{"Action", "Crime", "Drama", "Mystery", "Sci-Fi", "Thriller", "IMAX"}, Year: 2010, PredictedRating: 4.3},
	{MovieID: 2571, Title: "Matrix, The (1999)", Genres: []string{"Action", "Sci-Fi", "Thriller"}, Year: 1999, PredictedRating: 4.2},
	{MovieID: 5618, Title: "Spirited Away (Sen to Chihiro no kamikakushi) (2001)", Genres: []string{"Adventure", "Animation", "Fantasy"}, Year: 2001, PredictedRating: 4.2},
	{MovieID: 1, Title: "Toy Story (1995)", Genres: []string{"Adventure", "Animation", "Children", "Comedy", "Fantasy"}, Year: 1995, PredictedRating: 4.1},
	{MovieID: 4973, Title: "Amelie (Fabuleux destin d'Amélie Poulain, Le) (2001)", Genres: []string{"Comedy", "Romance"}, Year: 2001, PredictedRating: 4.1},
}

// FallbackList returns a copy of the fixed fallback entries in their built-in order.
func FallbackList() []ScoredCandidate {
	out := make([]ScoredCandidate, len(fallbackMovies))
	for i, m := range fallbackMovies {
		m.Genres = slices.Clone(m.Genres)
		out[i] = m
	}
	return out
}

// fallback sources the fixed list through the same genre/year filter as
// catalog candidates, then hands it to finalize like scored candidates.
func fallback(filter FilterSpec, limit int) []ScoredCandidate {
	admitted := make([]ScoredCandidate, 0, len(fallbackMovies))
	for _, m := range FallbackList() {
		if filter.admits(m.Genres, m.Year) {
			admitted = append(admitted, m)
		}
	}
	return finalize(admitted, filter, limit)
}
