// Movrec - Movie Recommendation Web Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movrec

package recommend

import (
	"fmt"

	"github.com/tomtom215/movrec/internal/catalog"
)

// SortKey selects the ranking order.
type SortKey string

const (
	// SortRating orders by predicted rating, highest first. Default.
	SortRating SortKey = "rating"
	// SortYear orders by release year, newest first; unknown years last.
	SortYear SortKey = "year"
	// SortAlphabetical orders by title, byte-wise ascending.
	SortAlphabetical SortKey = "alphabetical"
)

// ParseSortKey maps "" to SortRating and rejects unknown keys.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case "":
		return SortRating, nil
	case SortRating, SortYear, SortAlphabetical:
		return SortKey(s), nil
	default:
		return "", fmt.Errorf("unknown sort key %q", s)
	}
}

// UserPreferences is the genre profile derived from a selection.
type UserPreferences struct {
	// Genres is the union of the resolved selections' genres, in first-seen order.
	Genres []string `json:"preferred_genres"`

	// Resolved holds the selections found in the catalog, in request order.
	Resolved []catalog.Movie `json:"resolved_selections"`

	// Unresolved lists selected titles with no catalog match.
	Unresolved []string `json:"unresolved,omitempty"`
}

// Empty reports whether the selection produced no preference signal.
func (p UserPreferences) Empty() bool {
	return len(p.Genres) == 0
}

// genreSet returns the preferred genres as a set.
func (p UserPreferences) genreSet() map[string]struct{} {
	set := make(map[string]struct{}, len(p.Genres))
	for _, g := range p.Genres {
		set[g] = struct{}{}
	}
	return set
}

// Candidate is a catalog movie retained for scoring.
type Candidate struct {
	Movie        catalog.Movie
	GenreOverlap int
}

// ScoredCandidate is one recommendation.
type ScoredCandidate struct {
	MovieID         int      `json:"movie_id"`
	Title           string   `json:"title"`
	Genres          []string `json:"genres"`
	Year            int      `json:"year,omitempty"` // 0 when unknown
	PredictedRating float64  `json:"predicted_rating"`
	GenreSimilarity int      `json:"genre_similarity"`
}

// HasYear reports whether the release year is known.
func (s ScoredCandidate) HasYear() bool {
	return s.Year > 0
}

// Source tells where a Result's items came from.
type Source string

const (
	SourceModel    Source = "model"
	SourceFallback Source = "fallback"
)

// Result is the fail-soft output of Engine.Generate.
type Result struct {
	Items  []ScoredCandidate `json:"items"`
	Source Source            `json:"source"`

	// Reason is ReasonNone for model results and names the trigger otherwise.
	Reason DegradedReason `json:"degraded_reason"`

	// Preferences is the extracted profile; empty when the pipeline never reached extraction.
	Preferences UserPreferences `json:"preferences"`

	// Candidates is the number of movies that reached the scorer.
	Candidates int `json:"candidates"`

	// PredictionFailures counts candidates dropped by the scorer.
	PredictionFailures int `json:"prediction_failures"`

	// Identity is the temporary profile identity used for scoring; zero when scoring did not run.
	Identity int `json:"identity,omitempty"`
}

// Degraded reports whether the fallback list was served.
func (r Result) Degraded() bool {
	return r.Source == SourceFallback
}
