// Movrec - Movie Recommendation Web Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movrec

package catalog

import (
	"regexp"
	"strconv"
	"strings"
)

// UnknownGenre is assigned to movies without genre information.
const UnknownGenre = "Unknown"

// noGenresListed is the MovieLens marker for an empty genre list.
const noGenresListed = "(no genres listed)"

var yearPattern = regexp.MustCompile(`\((\d{4})\)`)

// Movie is an immutable catalog record.
type Movie struct {
	ID     int      `json:"id"`
	Title  string   `json:"title"`
	Genres []string `json:"genres"`
	// Year is the release year parsed from the title; 0 when absent.
	Year int `json:"year,omitempty"`
}

// HasYear reports whether a release year is known.
func (m Movie) HasYear() bool {
	return m.Year > 0
}

// HasGenre reports whether the movie is tagged with genre (exact match).
func (m Movie) HasGenre(genre string) bool {
	for _, g := range m.Genres {
		if g == genre {
			return true
		}
	}
	return false
}

// NewMovie builds a Movie from raw MovieLens fields: the year is taken from the
// last "(YYYY)" group in the title and genres are split on "|".
func NewMovie(id int, title, genres string) Movie {
	year, _ := ParseYear(title)
	return Movie{
		ID:     id,
		Title:  title,
		Genres: ParseGenres(genres),
		Year:   year,
	}
}

// ParseYear extracts the last parenthesised four-digit year from a title.
//
//	ParseYear("Blade Runner 2049 (2017)")  // 2017, true
//	ParseYear("1984 (Nineteen Eighty-Four) (1984)")  // 1984, true
//	ParseYear("Untitled")  // 0, false
func ParseYear(title string) (int, bool) {
	matches := yearPattern.FindAllStringSubmatch(title, -1)
	if len(matches) == 0 {
		return 0, false
	}
	year, err := strconv.Atoi(matches[len(matches)-1][1])
	if err != nil || year <= 0 {
		return 0, false
	}
	return year, true
}

// ParseGenres splits a "|" separated genre field, dropping blanks and duplicates.
// An empty field or the MovieLens "(no genres listed)" marker yields [Unknown].
func ParseGenres(field string) []string {
	field = strings.TrimSpace(field)
	if field == "" || field == noGenresListed {
		return []string{UnknownGenre}
	}

	parts := strings.Split(field, "|")
	genres := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" || p == noGenresListed {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		genres = append(genres, p)
	}
	if len(genres) == 0 {
		return []string{UnknownGenre}
	}
	return genres
}
