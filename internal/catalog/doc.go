// Movrec - Movie Recommendation Web Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movrec

// Package catalog holds the immutable, in-memory movie index.
//
// A Catalog is built once at startup (LoadCSV reads a MovieLens movies.csv
// through DuckDB) and shared read-only by every request. Titles are not unique
// in MovieLens data, so Lookup returns the first movie in file order with the
// given title.
package catalog
