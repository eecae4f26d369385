// Movrec - Movie Recommendation Web Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movrec

package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/tomtom215/movrec/internal/logging"
)

// LoadOptions tunes the DuckDB session used for ingestion.
type LoadOptions struct {
	// Threads caps DuckDB worker threads; 0 lets DuckDB decide.
	Threads int
}

// LoadCSV reads a MovieLens movies.csv (movieId,title,genres) into a Catalog.
// The file is parsed by an in-memory DuckDB instance so that quoting and
// embedded commas in titles follow the CSV dialect DuckDB detects. Row order
// is preserved.
func LoadCSV(ctx context.Context, path string, opts LoadOptions) (*Catalog, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("movies file %s: %w", path, err)
	}

	start := time.Now()
	db, err := sql.Open("duckdb", dsn(opts))
	if err != nil {
		return nil, fmt.Errorf("failed to open duckdb: %w", err)
	}
	defer closeQuietly(db)

	rows, err := db.QueryContext(ctx, moviesQuery(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	defer func() { _ = rows.Close() }()

	var movies []Movie
	for rows.Next() {
		var (
			id     int64
			title  string
			genres string
		)
		if err := rows.Scan(&id, &title, &genres); err != nil {
			return nil, fmt.Errorf("failed to scan movie row: %w", err)
		}
		movies = append(movies, NewMovie(int(id), title, genres))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate movies: %w", err)
	}

	c, err := New(movies)
	if err != nil {
		return nil, err
	}

	logging.Info().
		Str("path", path).
		Int("movies", c.Len()).
		Dur("duration", time.Since(start)).
		Msg("Movie catalog loaded")
	return c, nil
}

func dsn(opts LoadOptions) string {
	params := []string{
		"preserve_insertion_order=true",
		"autoinstall_known_extensions=false",
		"autoload_known_extensions=false",
	}
	if opts.Threads > 0 {
		params = append(params, fmt.Sprintf("threads=%d", opts.Threads))
	}
	return "?" + strings.Join(params, "&")
}

// moviesQuery builds the read_csv query. Table function arguments cannot be
// bound as parameters, so the path is embedded as an escaped string literal.
func moviesQuery(path string) string {
	literal := "'" + strings.ReplaceAll(path, "'", "''") + "'"
	return `SELECT movieId, title, COALESCE(genres, '')
FROM read_csv(` + literal + `,
	header = true,
	quote = '"',
	escape = '"',
	columns = {'movieId': 'BIGINT', 'title': 'VARCHAR', 'genres': 'VARCHAR'})
WHERE movieId IS NOT NULL AND title IS NOT NULL`
}

func closeQuietly(db *sql.DB) {
	if err := db.Close(); err != nil {
		logging.Debug().Err(err).Msg("duckdb close failed")
	}
}
