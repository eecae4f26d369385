// Movrec - Movie Recommendation Web Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movrec

package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/tomtom215/movrec/internal/logging"
)

// Validate checks that the configuration is complete and consistent.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateData(); err != nil {
		return err
	}
	if err := c.validateRecommend(); err != nil {
		return err
	}
	if err := c.validatePoster(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout < 0 {
		return fmt.Errorf("HTTP_TIMEOUT must not be negative")
	}
	if c.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("HTTP_SHUTDOWN_TIMEOUT must not be negative")
	}
	switch c.Server.Environment {
	case "development", "production":
	default:
		return fmt.Errorf("ENVIRONMENT must be 'development' or 'production', got %q", c.Server.Environment)
	}
	return nil
}

func (c *Config) validateData() error {
	if strings.TrimSpace(c.Data.MoviesPath) == "" {
		return fmt.Errorf("MOVIES_PATH is required")
	}
	if c.Data.DuckDBThreads < 0 {
		return fmt.Errorf("DUCKDB_THREADS must not be negative")
	}
	return nil
}

func (c *Config) validateRecommend() error {
	r := c.Recommend
	if r.GenreBoost < 0 {
		return fmt.Errorf("RECOMMEND_GENRE_BOOST must not be negative, got %v", r.GenreBoost)
	}
	if r.MaxRating <= 0 || r.MaxRating > 5 {
		return fmt.Errorf("RECOMMEND_MAX_RATING must be in (0, 5], got %v", r.MaxRating)
	}
	if r.DefaultLimit < 1 {
		return fmt.Errorf("RECOMMEND_DEFAULT_LIMIT must be at least 1")
	}
	if r.MaxLimit < r.DefaultLimit {
		return fmt.Errorf("RECOMMEND_MAX_LIMIT (%d) must be >= RECOMMEND_DEFAULT_LIMIT (%d)", r.MaxLimit, r.DefaultLimit)
	}
	if r.ExportLimit < 1 || r.ExportLimit > r.MaxLimit {
		return fmt.Errorf("RECOMMEND_EXPORT_LIMIT must be between 1 and %d", r.MaxLimit)
	}
	if r.MinSelections < 0 {
		return fmt.Errorf("RECOMMEND_MIN_SELECTED must not be negative")
	}
	if r.Workers < 0 {
		return fmt.Errorf("RECOMMEND_WORKERS must not be negative")
	}
	if r.CacheEnabled && (r.CacheSize < 1 || r.CacheTTL <= 0) {
		return fmt.Errorf("RECOMMEND_CACHE_SIZE and RECOMMEND_CACHE_TTL must be positive when the cache is enabled")
	}
	for alias, tag := range r.GenreAliases {
		if strings.TrimSpace(alias) == "" || strings.TrimSpace(tag) == "" {
			return fmt.Errorf("recommend.genre_aliases entries must have non-empty keys and values")
		}
	}
	return nil
}

func (c *Config) validatePoster() error {
	p := c.Poster
	if !p.Enabled {
		return nil
	}
	if p.APIKey == "" {
		return fmt.Errorf("TMDB_API_KEY is required when POSTER_ENABLED=true")
	}
	if err := validateHTTPURL(p.APIURL, "POSTER_API_URL"); err != nil {
		return err
	}
	if err := validateHTTPURL(p.ImageBaseURL, "POSTER_IMAGE_BASE_URL"); err != nil {
		return err
	}
	if p.Timeout <= 0 {
		return fmt.Errorf("POSTER_TIMEOUT must be positive")
	}
	if p.RequestsPerSecond <= 0 || p.Burst < 1 {
		return fmt.Errorf("POSTER_RPS and POSTER_BURST must be positive")
	}
	switch p.CacheBackend {
	case "memory":
		if p.CacheSize < 1 {
			return fmt.Errorf("POSTER_CACHE_SIZE must be positive for the memory backend")
		}
	case "badger":
		if p.CachePath == "" {
			return fmt.Errorf("POSTER_CACHE_PATH is required for the badger backend")
		}
	default:
		return fmt.Errorf("POSTER_CACHE_BACKEND must be 'memory' or 'badger', got %q", p.CacheBackend)
	}
	if p.CacheTTL <= 0 {
		return fmt.Errorf("POSTER_CACHE_TTL must be positive")
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1")
	}
	if c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL %q is not a valid level", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
		return nil
	default:
		return fmt.Errorf("LOG_FORMAT must be 'json' or 'console', got %q", c.Logging.Format)
	}
}

// validateHTTPURL accepts absolute http(s) URLs without query strings.
func validateHTTPURL(rawURL, fieldName string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%s failed to parse URL: %w", fieldName, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%s scheme must be http or https, got: %q", fieldName, parsed.Scheme)
	}
	if parsed.Host == "" {
		return fmt.Errorf("%s host is required", fieldName)
	}
	if parsed.RawQuery != "" {
		return fmt.Errorf("%s should not contain query parameters", fieldName)
	}
	return nil
}
