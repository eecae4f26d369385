// Movrec - Movie Recommendation Web Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movrec

package catalog

import (
	"errors"
	"fmt"
	"iter"
	"sort"
	"strings"
)

var (
	// ErrDuplicateID is returned when two records share a movie id.
	ErrDuplicateID = errors.New("duplicate movie id")

	// ErrEmptyCatalog is returned when no movies were supplied.
	ErrEmptyCatalog = errors.New("catalog has no movies")
)

// DefaultSearchLimit is used by Search when limit <= 0.
const DefaultSearchLimit = 10

// MinSearchQuery is the shortest query Search answers.
const MinSearchQuery = 2

// Catalog is the ordered movie collection with title and id indices.
// It is never mutated after New returns and is safe for concurrent use.
type Catalog struct {
	movies  []Movie
	lower   []string // lower-cased titles, parallel to movies
	byTitle map[string]int
	byID    map[int]int
}

// New indexes movies in the order given. The slice is copied.
func New(movies []Movie) (*Catalog, error) {
	if len(movies) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		movies:  make([]Movie, len(movies)),
		lower:   make([]string, len(movies)),
		byTitle: make(map[string]int, len(movies)),
		byID:    make(map[int]int, len(movies)),
	}
	for i, m := range movies {
		if _, dup := c.byID[m.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, m.ID)
		}
		if len(m.Genres) == 0 {
			m.Genres = []string{UnknownGenre}
		}
		m.Genres = append([]string(nil), m.Genres...)

		c.movies[i] = m
		c.lower[i] = strings.ToLower(m.Title)
		c.byID[m.ID] = i
		if _, seen := c.byTitle[m.Title]; !seen {
			c.byTitle[m.Title] = i
		}
	}
	return c, nil
}

// Len returns the number of movies.
func (c *Catalog) Len() int {
	return len(c.movies)
}

// Lookup returns the first movie with exactly this title.
func (c *Catalog) Lookup(title string) (Movie, bool) {
	i, ok := c.byTitle[title]
	if !ok {
		return Movie{}, false
	}
	return c.movies[i], true
}

// ByID returns the movie with the given id.
func (c *Catalog) ByID(id int) (Movie, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Movie{}, false
	}
	return c.movies[i], true
}

// All yields every movie in catalog order. Genre slices are shared and must
// not be modified.
func (c *Catalog) All() iter.Seq[Movie] {
	return func(yield func(Movie) bool) {
		for _, m := range c.movies {
			if !yield(m) {
				return
			}
		}
	}
}

// Search returns up to limit movies whose title contains query,
// case-insensitively, in catalog order. Queries shorter than MinSearchQuery
// characters return nothing.
func (c *Catalog) Search(query string, limit int) []Movie {
	query = strings.ToLower(strings.TrimSpace(query))
	if len([]rune(query)) < MinSearchQuery {
		return nil
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	var out []Movie
	for i, title := range c.lower {
		if strings.Contains(title, query) {
			out = append(out, c.movies[i])
			if len(out) >= limit {
				break
			}
		}
	}
	return out
}

// Genres returns the distinct genre tags in the catalog, sorted.
func (c *Catalog) Genres() []string {
	seen := make(map[string]struct{})
	for _, m := range c.movies {
		for _, g := range m.Genres {
			seen[g] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for g := range seen {
		out = append(out, g)
	}
	sort.Strings(out)
	return out
}

// Sample returns the three-movie development catalog used when the real
// dataset cannot be loaded.
func Sample() *Catalog {
	c, err := New([]Movie{
		{ID: 1, Title: "Sample Movie 1", Genres: []string{"Action"}},
		{ID: 2, Title: "Sample Movie 2", Genres: []string{"Comedy"}},
		{ID: 3, Title: "Sample Movie 3", Genres: []string{"Drama"}},
	})
	if err != nil {
		panic(err) // static data
	}
	return c
}
