// Movrec - Movie Recommendation Web Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movrec

package recommend

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// RatingScaleMax is the top of the predicted rating scale.
const RatingScaleMax = 5.0

// Config tunes an Engine.
type Config struct {
	// GenreBoost is added to the estimate once per overlapping genre.
	GenreBoost float64

	// MaxRating caps adjusted scores; at most RatingScaleMax.
	MaxRating float64

	// Workers is the scorer parallelism; values below 2 score sequentially.
	Workers int

	// CacheEnabled turns on the per-request result cache.
	CacheEnabled bool
	CacheSize    int
	CacheTTL     time.Duration

	// GenreAliases maps filter spellings (case-insensitive) to catalog tags.
	GenreAliases map[string]string
}

// DefaultConfig returns the production defaults.
func DefaultConfig() *Config {
	return &Config{
		GenreBoost:   0.3,
		MaxRating:    5.0,
		Workers:      4,
		CacheEnabled: true,
		CacheSize:    512,
		CacheTTL:     10 * time.Minute,
	}
}

// Validate rejects configurations that would break the scoring invariants.
func (c *Config) Validate() error {
	var errs []error
	if c.GenreBoost < 0 {
		errs = append(errs, fmt.Errorf("genre boost must be >= 0, got %v", c.GenreBoost))
	}
	if c.MaxRating <= 0 || c.MaxRating > RatingScaleMax {
		errs = append(errs, fmt.Errorf("max rating must be in (0, %v], got %v", RatingScaleMax, c.MaxRating))
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers must be >= 0, got %d", c.Workers))
	}
	if c.CacheEnabled && (c.CacheSize <= 0 || c.CacheTTL <= 0) {
		errs = append(errs, errors.New("cache size and ttl must be positive when caching is enabled"))
	}
	return errors.Join(errs...)
}

// normalizedAliases lower-cases alias keys and drops blank entries.
func (c *Config) normalizedAliases() map[string]string {
	out := make(map[string]string, len(c.GenreAliases))
	for k, v := range c.GenreAliases {
		k, v = strings.ToLower(strings.TrimSpace(k)), strings.TrimSpace(v)
		if k == "" || v == "" {
			continue
		}
		out[k] = v
	}
	return out
}
