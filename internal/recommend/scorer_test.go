// Movrec - Movie Recommendation Web Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movrec

package recommend

import (
	"math"
	"reflect"
	"testing"

	"github.com/tomtom215/movrec/internal/catalog"
)

func TestScorerAdjust(t *testing.T) {
	t.Parallel()
	s := &scorer{boost: 0.3, maxRating: 5.0}

	tests := []struct {
		estimate float64
		overlap  int
		want     float64
	}{
		{3.0, 1, 3.3},
		{4.9, 2, 5.0},
		{5.0, 0, 5.0},
		{-1.0, 1, 0},
		{3.14, 0, 3.1},
		{3.25, 0, 3.3},
		{2.04, 3, 2.9},
		{0.0, 0, 0},
	}

	for _, tt := range tests {
		if got := s.adjust(tt.estimate, tt.overlap); got != tt.want {
			t.Errorf("adjust(%v, %d) = %v, want %v", tt.estimate, tt.overlap, got, tt.want)
		}
	}
}

func TestScorerScore(t *testing.T) {
	t.Parallel()

	p := newFakePredictor()
	p.base = map[int]float64{1: 4.0, 2: math.Inf(1), 3: 2.5}
	p.failing[4] = true
	p.panicky[5] = true

	candidates := []Candidate{
		{Movie: catalog.NewMovie(1, "One (2001)", "Drama"), GenreOverlap: 1},
		{Movie: catalog.NewMovie(2, "Two (2002)", "Drama"), GenreOverlap: 1},
		{Movie: catalog.NewMovie(3, "Three", "Drama|Crime"), GenreOverlap: 2},
		{Movie: catalog.NewMovie(4, "Four (2004)", "Drama"), GenreOverlap: 1},
		{Movie: catalog.NewMovie(5, "Five (2005)", "Drama"), GenreOverlap: 1},
	}

	s := &scorer{predictor: p, boost: 0.3, maxRating: 5.0, workers: 4, logger: nopLogger()}
	got, failures := s.score(candidates, 7)

	if failures != 3 {
		t.Errorf("failures = %d, want 3", failures)
	}
	want := []ScoredCandidate{
		{MovieID: 1, Title: "One (2001)", Genres: []string{"Drama"}, Year: 2001, PredictedRating: 4.3, GenreSimilarity: 1},
		{MovieID: 3, Title: "Three", Genres: []string{"Drama", "Crime"}, PredictedRating: 3.1, GenreSimilarity: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("score =\n%+v\nwant\n%+v", got, want)
	}
}

func TestScorerScore_Empty(t *testing.T) {
	t.Parallel()
	s := &scorer{predictor: newFakePredictor(), boost: 0.3, maxRating: 5.0, logger: nopLogger()}
	got, failures := s.score(nil, 1)
	if len(got) != 0 || failures != 0 {
		t.Errorf("score(nil) = %v, %d", got, failures)
	}
}
