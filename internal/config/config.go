// Movrec - Movie Recommendation Web Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movrec

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration.
//
// Loading order (koanf v2):
//  1. Defaults: built-in values from defaultConfig
//  2. Config file: optional YAML file (CONFIG_PATH or config.yaml)
//  3. Environment variables: override any mapped setting
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("failed to load config")
//	}
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Data      DataConfig      `koanf:"data"`
	Recommend RecommendConfig `koanf:"recommend"`
	Poster    PosterConfig    `koanf:"poster"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	Timeout         time.Duration `koanf:"timeout"`          // per-request handler timeout
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"` // graceful shutdown budget
	Environment     string        `koanf:"environment"`      // development or production
}

// Addr returns host:port for net/http.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DataConfig locates the read-only datasets loaded at startup.
type DataConfig struct {
	// MoviesPath is a MovieLens-style movies.csv (movieId,title,genres).
	MoviesPath string `koanf:"movies_path"`

	// ModelPath is the exported latent-factor model (JSON). Empty or missing
	// means the service runs on fallback recommendations only.
	ModelPath string `koanf:"model_path"`

	// DuckDBThreads limits the ingestion threads; 0 lets DuckDB decide.
	DuckDBThreads int `koanf:"duckdb_threads"`
}

// RecommendConfig tunes the recommendation pipeline.
type RecommendConfig struct {
	GenreBoost    float64 `koanf:"genre_boost"`    // added per overlapping genre
	MaxRating     float64 `koanf:"max_rating"`     // score cap
	DefaultLimit  int     `koanf:"default_limit"`  // recommendations generated when none requested
	MaxLimit      int     `koanf:"max_limit"`      // upper bound for a requested limit
	ExportLimit   int     `koanf:"export_limit"`   // rows in CSV/PDF exports
	MinSelections int     `koanf:"min_selections"` // selections required by the HTTP layer
	Workers       int     `koanf:"workers"`        // scorer goroutines; 0 = runtime.NumCPU()

	CacheEnabled bool          `koanf:"cache_enabled"`
	CacheSize    int           `koanf:"cache_size"`
	CacheTTL     time.Duration `koanf:"cache_ttl"`

	// GenreAliases maps lower-cased filter spellings to catalog genre tags,
	// for example "sci-fi" -> "Sci-Fi". Only applied to filter input.
	GenreAliases map[string]string `koanf:"genre_aliases"`
}

// PosterConfig configures the poster lookup client and its cache.
type PosterConfig struct {
	Enabled      bool          `koanf:"enabled"`
	APIURL       string        `koanf:"api_url"`        // TMDB-compatible API base URL
	ImageBaseURL string        `koanf:"image_base_url"` // prefix for poster_path values
	APIKey       string        `koanf:"api_key"`
	Timeout      time.Duration `koanf:"timeout"`

	RequestsPerSecond float64 `koanf:"requests_per_second"`
	Burst             int     `koanf:"burst"`

	BreakerFailures uint32        `koanf:"breaker_failures"` // consecutive failures before opening
	BreakerTimeout  time.Duration `koanf:"breaker_timeout"`  // open -> half-open delay

	CacheBackend    string        `koanf:"cache_backend"` // memory or badger
	CachePath       string        `koanf:"cache_path"`
	CacheSize       int           `koanf:"cache_size"`
	CacheTTL        time.Duration `koanf:"cache_ttl"`
	CacheGCInterval time.Duration `koanf:"cache_gc_interval"`
}

// SecurityConfig holds HTTP hardening settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_requests"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig mirrors logging.Config without the writer.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Load reads configuration from defaults, the optional config file and the environment.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
