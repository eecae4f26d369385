// Movrec - Movie Recommendation Web Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movrec

package recommend

import (
	"strings"

	"github.com/tomtom215/movrec/internal/validation"
)

// FilterSpec narrows and orders recommendations. Nil or empty fields do not constrain.
type FilterSpec struct {
	// Genres keeps movies tagged with at least one of these genres (OR).
	Genres []string `json:"genres,omitempty" validate:"omitempty,max=32,dive,required,max=64"`

	// YearMin and YearMax are inclusive release-year bounds. Movies without a
	// known year are excluded whenever either bound is set.
	YearMin *int `json:"year_min,omitempty" validate:"omitempty,gte=1870,lte=2100"`
	YearMax *int `json:"year_max,omitempty" validate:"omitempty,gte=1870,lte=2100"`

	// MinRating is an inclusive lower bound on the predicted rating, applied after scoring.
	MinRating *float64 `json:"min_rating,omitempty" validate:"omitempty,gte=0,lte=5"`

	// SortBy defaults to SortRating.
	SortBy SortKey `json:"sort_by,omitempty" validate:"omitempty,oneof=rating year alphabetical"`
}

// Validate checks field ranges and that YearMin <= YearMax.
// The returned error is a *validation.RequestValidationError.
func (f FilterSpec) Validate() error {
	if verr := validation.ValidateStruct(&f); verr != nil {
		return verr
	}
	if f.YearMin != nil && f.YearMax != nil && *f.YearMin > *f.YearMax {
		return validation.NewRequestValidationError("year_max", "gtefield",
			"year_max must be greater than or equal to year_min", *f.YearMax)
	}
	return nil
}

// sortKey returns SortBy or the default.
func (f FilterSpec) sortKey() SortKey {
	if f.SortBy == "" {
		return SortRating
	}
	return f.SortBy
}

// withAliases returns a copy whose genres are mapped through aliases
// (keys lower-cased) and de-duplicated. Unaliased genres are kept as given.
func (f FilterSpec) withAliases(aliases map[string]string) FilterSpec {
	if len(f.Genres) == 0 {
		return f
	}
	out := make([]string, 0, len(f.Genres))
	seen := make(map[string]struct{}, len(f.Genres))
	for _, g := range f.Genres {
		g = strings.TrimSpace(g)
		if tag, ok := aliases[strings.ToLower(g)]; ok {
			g = tag
		}
		if g == "" {
			continue
		}
		if _, dup := seen[g]; dup {
			continue
		}
		seen[g] = struct{}{}
		out = append(out, g)
	}
	f.Genres = out
	return f
}

// admits applies the genre and year constraints shared by real and fallback candidates.
func (f FilterSpec) admits(genres []string, year int) bool {
	if len(f.Genres) > 0 && !intersects(genres, f.Genres) {
		return false
	}
	if f.YearMin != nil || f.YearMax != nil {
		if year <= 0 {
			return false
		}
		if f.YearMin != nil && year < *f.YearMin {
			return false
		}
		if f.YearMax != nil && year > *f.YearMax {
			return false
		}
	}
	return true
}

// admitsRating applies MinRating to a scored value.
func (f FilterSpec) admitsRating(rating float64) bool {
	return f.MinRating == nil || rating >= *f.MinRating
}

func intersects(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}

// overlap counts the genres of movie present in set.
func overlap(genres []string, set map[string]struct{}) int {
	n := 0
	for _, g := range genres {
		if _, ok := set[g]; ok {
			n++
		}
	}
	return n
}
