// Movrec - Movie Recommendation Web Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movrec

package models

import "github.com/tomtom215/movrec/internal/recommend"

// RecommendationPage is one page of a recommendation list. Total and
// TotalPages describe the full list the page was cut from.
type RecommendationPage struct {
	Items      []RecommendationItem `json:"items"`
	Total      int                  `json:"total"`
	Page       int                  `json:"page"`
	PageSize   int                  `json:"page_size"`
	TotalPages int                  `json:"total_pages"`

	Source         recommend.Source         `json:"source"`
	DegradedReason recommend.DegradedReason `json:"degraded_reason"`

	PreferredGenres []string `json:"preferred_genres"`
	Unresolved      []string `json:"unresolved,omitempty"`
}

// RecommendationItem is a ranked recommendation, optionally with a poster URL.
type RecommendationItem struct {
	Rank int `json:"rank"`
	recommend.ScoredCandidate
	PosterURL string `json:"poster_url,omitempty"`
}

// NewRecommendationPage slices res into the requested page (1-based).
// page and pageSize must be positive.
//
//nolint:gocritic // hugeParam: Result is read once
func NewRecommendationPage(res recommend.Result, page, pageSize int) RecommendationPage {
	total := len(res.Items)
	totalPages := (total + pageSize - 1) / pageSize

	start := min((page-1)*pageSize, total)
	end := min(start+pageSize, total)

	items := make([]RecommendationItem, 0, end-start)
	for i := start; i < end; i++ {
		items = append(items, RecommendationItem{Rank: i + 1, ScoredCandidate: res.Items[i]})
	}

	genres := res.Preferences.Genres
	if genres == nil {
		genres = []string{}
	}
	return RecommendationPage{
		Items:           items,
		Total:           total,
		Page:            page,
		PageSize:        pageSize,
		TotalPages:      totalPages,
		Source:          res.Source,
		DegradedReason:  res.Reason,
		PreferredGenres: genres,
		Unresolved:      res.Preferences.Unresolved,
	}
}
