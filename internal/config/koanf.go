// Movrec - Movie Recommendation Web Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movrec

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths are searched in order when CONFIG_PATH is unset.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/movrec/config.yaml",
}

// ConfigPathEnvVar overrides the config file location.
const ConfigPathEnvVar = "CONFIG_PATH"

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",
		},
		Data: DataConfig{
			MoviesPath: "data/movies.csv",
			ModelPath:  "data/model.json",
		},
		Recommend: RecommendConfig{
			GenreBoost:    0.3,
			MaxRating:     5.0,
			DefaultLimit:  20,
			MaxLimit:      1000,
			ExportLimit:   20,
			MinSelections: 3,
			Workers:       0,
			CacheEnabled:  true,
			CacheSize:     512,
			CacheTTL:      10 * time.Minute,
			GenreAliases: map[string]string{
				"sci-fi":          "Sci-Fi",
				"science fiction": "Sci-Fi",
				"scifi":           "Sci-Fi",
				"film noir":       "Film-Noir",
				"kids":            "Children",
			},
		},
		Poster: PosterConfig{
			Enabled:           false,
			APIURL:            "https://api.themoviedb.org/3",
			ImageBaseURL:      "https://image.tmdb.org/t/p/w500",
			Timeout:           5 * time.Second,
			RequestsPerSecond: 4,
			Burst:             8,
			BreakerFailures:   5,
			BreakerTimeout:    30 * time.Second,
			CacheBackend:      "memory",
			CachePath:         "data/posters",
			CacheSize:         2048,
			CacheTTL:          7 * 24 * time.Hour,
			CacheGCInterval:   10 * time.Minute,
		},
		Security: SecurityConfig{
			CORSOrigins:     []string{"*"},
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// LoadWithKoanf layers defaults, the optional YAML file and environment
// variables (ENV > file > defaults), then validates the result.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields splits comma-separated env values for slice settings.
// Values that already arrived as slices (YAML) are left alone.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings translates environment variable names to koanf paths.
// Unmapped variables are ignored so the process environment cannot leak into config.
var envMappings = map[string]string{
	"http_host":               "server.host",
	"http_port":               "server.port",
	"http_timeout":            "server.timeout",
	"http_shutdown_timeout":   "server.shutdown_timeout",
	"environment":             "server.environment",
	"movies_path":             "data.movies_path",
	"model_path":              "data.model_path",
	"duckdb_threads":          "data.duckdb_threads",
	"recommend_genre_boost":   "recommend.genre_boost",
	"recommend_max_rating":    "recommend.max_rating",
	"recommend_default_limit": "recommend.default_limit",
	"recommend_max_limit":     "recommend.max_limit",
	"recommend_export_limit":  "recommend.export_limit",
	"recommend_min_selected":  "recommend.min_selections",
	"recommend_workers":       "recommend.workers",
	"recommend_cache_enabled": "recommend.cache_enabled",
	"recommend_cache_size":    "recommend.cache_size",
	"recommend_cache_ttl":     "recommend.cache_ttl",
	"poster_enabled":          "poster.enabled",
	"poster_api_url":          "poster.api_url",
	"poster_image_base_url":   "poster.image_base_url",
	"tmdb_api_key":            "poster.api_key",
	"poster_timeout":          "poster.timeout",
	"poster_rps":              "poster.requests_per_second",
	"poster_burst":            "poster.burst",
	"poster_cache_backend":    "poster.cache_backend",
	"poster_cache_path":       "poster.cache_path",
	"poster_cache_size":       "poster.cache_size",
	"poster_cache_ttl":        "poster.cache_ttl",
	"cors_origins":            "security.cors_origins",
	"rate_limit_requests":     "security.rate_limit_requests",
	"rate_limit_window":       "security.rate_limit_window",
	"disable_rate_limit":      "security.rate_limit_disabled",
	"log_level":               "logging.level",
	"log_format":              "logging.format",
	"log_caller":              "logging.caller",
}

func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
