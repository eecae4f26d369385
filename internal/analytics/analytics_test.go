// Movrec - Movie Recommendation Web Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movrec

package analytics

import (
	"context"
	"reflect"
	"testing"

	"github.com/tomtom215/movrec/internal/catalog"
	"github.com/tomtom215/movrec/internal/recommend"
)

// stubEngine resolves titles against a fixed catalog and returns canned items.
type stubEngine struct {
	cat       *catalog.Catalog
	ratings   []float64
	lastLimit int
	generateN int
}

func (s *stubEngine) Generate(_ context.Context, _ []string, _ recommend.FilterSpec, limit int) recommend.Result {
	s.generateN++
	s.lastLimit = limit
	var items []recommend.ScoredCandidate
	for i, r := range s.ratings {
		if i == limit {
			break
		}
		items = append(items, recommend.ScoredCandidate{MovieID: i + 1, PredictedRating: r})
	}
	return recommend.Result{Items: items, Source: recommend.SourceModel}
}

func (s *stubEngine) ExtractPreferences(titles []string) recommend.UserPreferences {
	var p recommend.UserPreferences
	for _, t := range titles {
		if m, ok := s.cat.Lookup(t); ok {
			p.Resolved = append(p.Resolved, m)
		}
	}
	return p
}

func newStub(t *testing.T, ratings ...float64) *stubEngine {
	t.Helper()
	cat, err := catalog.New([]catalog.Movie{
		catalog.NewMovie(1, "Alien (1979)", "Horror|Sci-Fi"),
		catalog.NewMovie(2, "Aliens (1986)", "Action|Horror|Sci-Fi"),
		catalog.NewMovie(3, "Heat (1995)", "Action|Crime|Thriller"),
		catalog.NewMovie(4, "Metropolis (1927)", "Drama|Sci-Fi"),
		catalog.NewMovie(5, "Dune: Part Two (2024)", "Action|Adventure|Sci-Fi"),
		catalog.NewMovie(6, "Untitled Project", "Drama"),
	})
	if err != nil {
		t.Fatal(err)
	}
	return &stubEngine{cat: cat, ratings: ratings}
}

func TestGenres(t *testing.T) {
	t.Parallel()
	a := NewAnalyzer(newStub(t), 3)

	got := a.Genres([]string{"Aliens (1986)", "missing", "Alien (1979)", "Heat (1995)"})
	if want := []string{"Action", "Horror", "Sci-Fi", "Crime", "Thriller"}; !reflect.DeepEqual(got.Labels, want) {
		t.Errorf("Labels = %v, want %v", got.Labels, want)
	}
	if want := []int{2, 2, 2, 1, 1}; !reflect.DeepEqual(got.Data, want) {
		t.Errorf("Data = %v, want %v", got.Data, want)
	}
	if len(got.BackgroundColor) != 5 || got.BackgroundColor[0] != "#FFD700" {
		t.Errorf("BackgroundColor = %v", got.BackgroundColor)
	}
}

func TestGenres_Placeholder(t *testing.T) {
	t.Parallel()
	got := NewAnalyzer(newStub(t), 3).Genres(nil)
	if len(got.Labels) != 3 || !reflect.DeepEqual(got.Data, []int{1, 1, 1}) {
		t.Errorf("placeholder = %+v", got)
	}
}

func TestGenres_NothingResolved(t *testing.T) {
	t.Parallel()
	got := NewAnalyzer(newStub(t), 3).Genres([]string{"nope"})
	if len(got.Labels) != 0 || len(got.Data) != 0 {
		t.Errorf("got %+v, want empty dataset", got)
	}
}

func TestConfidence(t *testing.T) {
	t.Parallel()
	stub := newStub(t, 4.9, 4.0, 3.99, 3.0, 2.9, 0.5, 4.4, 3.5, 3.1, 4.2, 4.8, 4.8)
	a := NewAnalyzer(stub, 3)

	got := a.Confidence(context.Background(), []string{"a", "b", "c"})
	if want := []int{4, 4, 2}; !reflect.DeepEqual(got.Data, want) {
		t.Errorf("Data = %v, want %v", got.Data, want)
	}
	if stub.lastLimit != 10 {
		t.Errorf("limit = %d, want 10", stub.lastLimit)
	}
}

func TestConfidence_TooFewSelections(t *testing.T) {
	t.Parallel()
	stub := newStub(t, 4.9)
	got := NewAnalyzer(stub, 3).Confidence(context.Background(), []string{"a", "b"})
	if !reflect.DeepEqual(got.Data, []int{0, 0, 0}) || stub.generateN != 0 {
		t.Errorf("Data = %v, generate calls = %d", got.Data, stub.generateN)
	}
}

func TestRatings(t *testing.T) {
	t.Parallel()
	stub := newStub(t, 0.5, 1.0, 1.99, 2.0, 3.5, 4.0, 5.0)
	got := NewAnalyzer(stub, 3).Ratings(context.Background(), []string{"a", "b", "c"})
	if want := []int{2, 1, 1, 2}; !reflect.DeepEqual(got.Data, want) {
		t.Errorf("Data = %v, want %v", got.Data, want)
	}
	if stub.lastLimit != 20 {
		t.Errorf("limit = %d, want 20", stub.lastLimit)
	}
}

func TestEras(t *testing.T) {
	t.Parallel()
	a := NewAnalyzer(newStub(t), 3)

	got := a.Eras([]string{"Alien (1979)", "Aliens (1986)", "Heat (1995)", "Metropolis (1927)", "Dune: Part Two (2024)", "Untitled Project", "missing"})
	if want := []int{1, 1, 1, 0, 0, 1}; !reflect.DeepEqual(got.Data, want) {
		t.Errorf("Data = %v, want %v", got.Data, want)
	}
	if got.Labels[0] != "1970s" || got.Labels[5] != "2020s" {
		t.Errorf("Labels = %v", got.Labels)
	}
}

func TestDatasetsDoNotShareLabels(t *testing.T) {
	t.Parallel()
	a := NewAnalyzer(newStub(t), 3)

	first := a.Eras(nil)
	first.Labels[0] = "changed"
	if a.Eras(nil).Labels[0] != "1970s" {
		t.Error("label slices are shared between calls")
	}
}
