// Movrec - Movie Recommendation Web Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movrec

// Package export renders a ranked recommendation list as a CSV or PDF
// download. Both formats share the same columns:
//
//	Rank, Movie Title, Predicted Rating, Genres, Year, Genre Similarity
//
// Unknown years are written as "N/A". Filenames carry the generation time,
// e.g. movie_recommendations_20260114_093000.csv.
package export
