// Movrec - Movie Recommendation Web Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movrec

package catalog

import (
	"errors"
	"reflect"
	"testing"
)

func testMovies() []Movie {
	return []Movie{
		NewMovie(1, "Toy Story (1995)", "Adventure|Animation|Children|Comedy|Fantasy"),
		NewMovie(2, "Jumanji (1995)", "Adventure|Children|Fantasy"),
		NewMovie(3, "Heat (1995)", "Action|Crime|Thriller"),
		NewMovie(4, "Heat (1986)", "Action|Drama"),
		NewMovie(5, "Untitled Project", "(no genres listed)"),
	}
}

func TestParseYear(t *testing.T) {
	t.Parallel()

	tests := []struct {
		title string
		year  int
		ok    bool
	}{
		{"Toy Story (1995)", 1995, true},
		{"1984 (Nineteen Eighty-Four) (1984)", 1984, true},
		{"City of Lost Children, The (Cité des enfants perdus, La) (1995)", 1995, true},
		{"Movie (1999) Director's Cut (2003)", 2003, true},
		{"Untitled", 0, false},
		{"Short (95)", 0, false},
		{"Babylon 5", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			t.Parallel()
			year, ok := ParseYear(tt.title)
			if year != tt.year || ok != tt.ok {
				t.Errorf("ParseYear(%q) = %d, %v; want %d, %v", tt.title, year, ok, tt.year, tt.ok)
			}
		})
	}
}

func TestParseGenres(t *testing.T) {
	t.Parallel()

	tests := []struct {
		field string
		want  []string
	}{
		{"Action|Drama", []string{"Action", "Drama"}},
		{"Drama", []string{"Drama"}},
		{"(no genres listed)", []string{UnknownGenre}},
		{"", []string{UnknownGenre}},
		{" Comedy | Comedy |", []string{"Comedy"}},
	}

	for _, tt := range tests {
		if got := ParseGenres(tt.field); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseGenres(%q) = %v, want %v", tt.field, got, tt.want)
		}
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	c, err := New(testMovies())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if c.Len() != 5 {
		t.Errorf("Len() = %d, want 5", c.Len())
	}

	if _, err := New(nil); !errors.Is(err, ErrEmptyCatalog) {
		t.Errorf("New(nil) error = %v, want ErrEmptyCatalog", err)
	}

	dup := append(testMovies(), Movie{ID: 1, Title: "Clash"})
	if _, err := New(dup); !errors.Is(err, ErrDuplicateID) {
		t.Errorf("duplicate id error = %v, want ErrDuplicateID", err)
	}
}

func TestLookup_FirstMatchWins(t *testing.T) {
	t.Parallel()

	movies := append(testMovies(), NewMovie(6, "Heat (1995)", "Romance"))
	c, err := New(movies)
	if err != nil {
		t.Fatal(err)
	}

	m, ok := c.Lookup("Heat (1995)")
	if !ok {
		t.Fatal("expected Heat (1995) to resolve")
	}
	if m.ID != 3 {
		t.Errorf("Lookup returned id %d, want first match 3", m.ID)
	}
	if _, ok := c.Lookup("heat (1995)"); ok {
		t.Error("Lookup must be exact and case-sensitive")
	}
	if _, ok := c.Lookup("Nope"); ok {
		t.Error("unexpected match for unknown title")
	}
}

func TestByIDAndAll(t *testing.T) {
	t.Parallel()

	c, _ := New(testMovies())

	m, ok := c.ByID(2)
	if !ok || m.Title != "Jumanji (1995)" || m.Year != 1995 {
		t.Errorf("ByID(2) = %+v, %v", m, ok)
	}
	if _, ok := c.ByID(99); ok {
		t.Error("unexpected ByID match")
	}

	var ids []int
	for m := range c.All() {
		ids = append(ids, m.ID)
	}
	if !reflect.DeepEqual(ids, []int{1, 2, 3, 4, 5}) {
		t.Errorf("All() order = %v", ids)
	}

	var first int
	for m := range c.All() {
		first = m.ID
		break
	}
	if first != 1 {
		t.Errorf("early break yielded %d", first)
	}
}

func TestMovieHelpers(t *testing.T) {
	t.Parallel()

	c, _ := New(testMovies())
	untitled, _ := c.ByID(5)
	if untitled.HasYear() {
		t.Error("expected no year")
	}
	if !untitled.HasGenre(UnknownGenre) {
		t.Errorf("expected Unknown genre, got %v", untitled.Genres)
	}
	toy, _ := c.ByID(1)
	if !toy.HasGenre("Animation") || toy.HasGenre("animation") {
		t.Error("HasGenre must match exact tags")
	}
}

func TestSearch(t *testing.T) {
	t.Parallel()

	c, _ := New(testMovies())

	tests := []struct {
		name  string
		query string
		limit int
		want  []int
	}{
		{"case insensitive", "HEAT", 0, []int{3, 4}},
		{"substring", "story", 10, []int{1}},
		{"limit applies", "(1995)", 2, []int{1, 2}},
		{"too short", "h", 10, nil},
		{"blank", "   ", 10, nil},
		{"no match", "zzz", 10, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var got []int
			for _, m := range c.Search(tt.query, tt.limit) {
				got = append(got, m.ID)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Search(%q, %d) = %v, want %v", tt.query, tt.limit, got, tt.want)
			}
		})
	}
}

func TestGenresAndSample(t *testing.T) {
	t.Parallel()

	c, _ := New(testMovies())
	genres := c.Genres()
	if genres[0] != "Action" {
		t.Errorf("Genres() not sorted: %v", genres)
	}

	s := Sample()
	if s.Len() != 3 {
		t.Errorf("Sample().Len() = %d", s.Len())
	}
	if _, ok := s.Lookup("Sample Movie 2"); !ok {
		t.Error("expected sample title")
	}
}
