// Movrec - Movie Recommendation Web Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movrec

/*
Package main is the entry point for the Movrec server.

Movrec serves content-based movie recommendations over a JSON API. A user
selects a handful of movies they like; the service expands the genres of that
selection into candidates, scores them with a latent-factor rating model and
returns a ranked list, falling back to a curated list whenever the model path
cannot deliver.

# Process Layout

	movrec (root)
	├── maintenance-layer
	│   └── maintenance (recommend cache purge, poster cache purge or badger GC)
	└── api-layer
	    └── http-server (chi router)

Startup order:

 1. Configuration: koanf v2 (defaults, config.yaml, environment)
 2. Logging: zerolog, JSON or console
 3. Catalog: movies.csv ingested through DuckDB, built-in sample on failure
 4. Model: latent-factor JSON; missing or invalid means fallback-only mode
 5. Engine, poster client and cache, analytics, HTTP handlers
 6. Supervisor tree, served until SIGINT or SIGTERM

# Configuration

Every setting has an environment override, for example:

	export MOVIES_PATH=/data/movies.csv
	export MODEL_PATH=/data/model.json.gz
	export POSTER_ENABLED=true
	export POSTER_API_KEY=...
	export LOG_LEVEL=debug
	./movrec

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains in-flight
requests for up to SERVER_SHUTDOWN_TIMEOUT, then the poster cache is closed.
*/
package main
