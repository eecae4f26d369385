// Movrec - Movie Recommendation Web Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movrec

// Package config loads Movrec configuration with koanf v2.
//
// Sources are layered defaults, then an optional YAML file, then environment
// variables. Only the variables listed in envMappings are read, for example:
//
//	MOVIES_PATH=/data/movies.csv
//	MODEL_PATH=/data/model.json
//	HTTP_PORT=8080
//	TMDB_API_KEY=...
//	CORS_ORIGINS=https://a.example,https://b.example
//	LOG_LEVEL=debug
//
// The loaded Config is validated before it is returned.
package config
