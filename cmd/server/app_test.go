// Movrec - Movie Recommendation Web Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movrec

package main

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/tomtom215/movrec/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Data: config.DataConfig{
			MoviesPath: filepath.Join(t.TempDir(), "missing.csv"),
		},
		Recommend: config.RecommendConfig{
			GenreBoost:    0.3,
			MaxRating:     5,
			MinSelections: 3,
			CacheEnabled:  true,
			CacheSize:     16,
			CacheTTL:      time.Minute,
			GenreAliases:  map[string]string{"sci-fi": "Sci-Fi"},
		},
		Poster: config.PosterConfig{
			APIURL:            "http://127.0.0.1:1",
			ImageBaseURL:      "http://127.0.0.1:1/img",
			Timeout:           time.Second,
			RequestsPerSecond: 1,
			Burst:             1,
			BreakerFailures:   3,
			BreakerTimeout:    time.Second,
			CacheBackend:      "memory",
			CacheSize:         16,
			CacheTTL:          time.Minute,
		},
	}
}

func TestNewApp_FallsBackToSampleCatalog(t *testing.T) {
	t.Parallel()

	a, err := newApp(context.Background(), testConfig(t))
	if err != nil {
		t.Fatalf("newApp: %v", err)
	}
	defer a.Close()

	if a.catalog.Len() == 0 {
		t.Error("sample catalog is empty")
	}
	if a.engine.ModelAvailable() {
		t.Error("ModelAvailable() = true with no model path")
	}
	if a.posters.Enabled() {
		t.Error("poster client enabled with poster lookups disabled")
	}
	if a.memStore != nil || a.badgerStore != nil {
		t.Error("poster store opened with poster lookups disabled")
	}
}

func TestMaintenanceTasks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		enabled bool
		backend string
		want    []string
	}{
		{"posters disabled", false, "memory", []string{"recommend-cache-purge"}},
		{"memory cache", true, "memory", []string{"recommend-cache-purge", "poster-cache-purge"}},
		{"badger cache", true, "badger", []string{"recommend-cache-purge", "poster-badger-gc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := testConfig(t)
			cfg.Poster.Enabled = tt.enabled
			cfg.Poster.CacheBackend = tt.backend
			cfg.Poster.CachePath = filepath.Join(t.TempDir(), "posters")

			a, err := newApp(context.Background(), cfg)
			if err != nil {
				t.Fatalf("newApp: %v", err)
			}
			defer a.Close()

			tasks := a.maintenanceTasks()
			if len(tasks) != len(tt.want) {
				t.Fatalf("got %d tasks, want %d", len(tasks), len(tt.want))
			}
			for i, task := range tasks {
				if task.Name != tt.want[i] {
					t.Errorf("task[%d] = %q, want %q", i, task.Name, tt.want[i])
				}
				if _, err := task.Run(context.Background()); err != nil {
					t.Errorf("task %q: %v", task.Name, err)
				}
			}
		})
	}
}

func TestEngineConfig(t *testing.T) {
	t.Parallel()

	rc := testConfig(t).Recommend
	got := engineConfig(&rc)
	if got.GenreBoost != rc.GenreBoost || got.MaxRating != rc.MaxRating || got.CacheSize != rc.CacheSize {
		t.Errorf("engineConfig() = %+v, want fields copied from %+v", got, rc)
	}
	if err := got.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}
