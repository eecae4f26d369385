// Movrec - Movie Recommendation Web Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movrec

package models

// ChartDataset is the labels/data/colours triple rendered by the analytics
// dashboard. The three slices have equal length.
type ChartDataset struct {
	Labels          []string `json:"labels"`
	Data            []int    `json:"data"`
	BackgroundColor []string `json:"backgroundColor"`
}

// PreferencesSummary is the diagnostic view of preference extraction.
type PreferencesSummary struct {
	PreferredGenres []string `json:"preferred_genres"`
	Resolved        []string `json:"resolved"`
	Unresolved      []string `json:"unresolved"`
}

// PosterResult is the poster endpoint payload.
type PosterResult struct {
	Title       string `json:"title"`
	Year        int    `json:"year,omitempty"`
	URL         string `json:"url"`
	Placeholder bool   `json:"placeholder"`
}
