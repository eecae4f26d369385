// Movrec - Movie Recommendation Web Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movrec

package recommend

import (
	"errors"
	"fmt"
	"iter"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/movrec/internal/catalog"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func nopLogger() zerolog.Logger   { return zerolog.Nop() }

// testCatalog builds a small catalog covering drama, comedy, sci-fi and
// movies without a year.
func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]catalog.Movie{
		catalog.NewMovie(1, "Drama One (1990)", "Drama"),
		catalog.NewMovie(2, "Drama Two (1995)", "Drama"),
		catalog.NewMovie(3, "Drama Three (2000)", "Drama"),
		catalog.NewMovie(4, "Crime Drama (2005)", "Crime|Drama"),
		catalog.NewMovie(5, "Romantic Drama (2010)", "Drama|Romance"),
		catalog.NewMovie(6, "War Drama (1970)", "Drama|War"),
		catalog.NewMovie(7, "Sad Drama (1985)", "Drama"),
		catalog.NewMovie(8, "Drama Untitled", "Drama"),
		catalog.NewMovie(9, "Comedy One (1999)", "Comedy"),
		catalog.NewMovie(10, "Comedy Two (2012)", "Comedy|Romance"),
		catalog.NewMovie(11, "Space Opera (1977)", "Sci-Fi|Adventure"),
		catalog.NewMovie(12, "Robots (2014)", "Sci-Fi"),
	})
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return c
}

// fakePredictor returns base[movieID] (or def) and fails for ids in failing.
type fakePredictor struct {
	base     map[int]float64
	def      float64
	failing  map[int]bool
	panicky  map[int]bool
	maxID    int
	maxErr   error
	maxPanic bool
	maxCalls atomic.Int32
	calls    atomic.Int32

	mu         sync.Mutex
	identities map[int]int
}

func newFakePredictor() *fakePredictor {
	return &fakePredictor{
		base:       map[int]float64{},
		def:        3.0,
		failing:    map[int]bool{},
		panicky:    map[int]bool{},
		maxID:      138493,
		identities: map[int]int{},
	}
}

func (f *fakePredictor) Predict(identity, movieID int) (float64, error) {
	f.calls.Add(1)
	f.mu.Lock()
	f.identities[identity]++
	f.mu.Unlock()

	if f.panicky[movieID] {
		panic(fmt.Sprintf("corrupt factors for %d", movieID))
	}
	if f.failing[movieID] {
		return 0, errors.New("unknown item")
	}
	if v, ok := f.base[movieID]; ok {
		return v, nil
	}
	return f.def, nil
}

func (f *fakePredictor) MaxKnownIdentity() (int, error) {
	f.maxCalls.Add(1)
	if f.maxPanic {
		panic("identity index corrupted")
	}
	if f.maxErr != nil {
		return 0, f.maxErr
	}
	return f.maxID, nil
}

// panicCatalog resolves titles but panics while scanning.
type panicCatalog struct {
	*catalog.Catalog
}

func (p panicCatalog) All() iter.Seq[catalog.Movie] {
	return func(func(catalog.Movie) bool) {
		panic("catalog scan failed")
	}
}

func newTestEngine(t *testing.T, cat Catalog, p RatingPredictor, mutate func(*Config)) *Engine {
	t.Helper()
	cfg := DefaultConfig()
	cfg.CacheEnabled = false
	if mutate != nil {
		mutate(cfg)
	}
	e, err := NewEngine(cfg, cat, p, nopLogger())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

func titlesOf(items []ScoredCandidate) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Title
	}
	return out
}

func idsOf(items []ScoredCandidate) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.MovieID
	}
	return out
}
