// Movrec - Movie Recommendation Web Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movrec

package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/movrec/internal/recommend"
)

// Format is an export file type.
type Format string

const (
	FormatCSV Format = "csv"
	FormatPDF Format = "pdf"
)

// ContentType returns the MIME type for f.
func (f Format) ContentType() string {
	if f == FormatPDF {
		return "application/pdf"
	}
	return "text/csv; charset=utf-8"
}

// Header is the column row shared by both formats.
var Header = []string{"Rank", "Movie Title", "Predicted Rating", "Genres", "Year", "Genre Similarity"}

// Document is everything an export renders.
type Document struct {
	Selected    []string
	Filter      recommend.FilterSpec
	Items       []recommend.ScoredCandidate
	Source      recommend.Source
	Reason      recommend.DegradedReason
	GeneratedAt time.Time
}

// Filename returns movie_recommendations_YYYYMMDD_HHMMSS.<format>.
func Filename(f Format, at time.Time) string {
	return "movie_recommendations_" + at.Format("20060102_150405") + "." + string(f)
}

// WriteCSV writes the header and one row per item.
func WriteCSV(w io.Writer, items []recommend.ScoredCandidate) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for i, it := range items {
		if err := cw.Write(row(i+1, it)); err != nil {
			return fmt.Errorf("write csv row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

//nolint:gocritic // hugeParam: row values are copied once per line
func row(rank int, it recommend.ScoredCandidate) []string {
	return []string{
		strconv.Itoa(rank),
		it.Title,
		strconv.FormatFloat(it.PredictedRating, 'f', 1, 64),
		strings.Join(it.Genres, ", "),
		yearText(it),
		strconv.Itoa(it.GenreSimilarity),
	}
}

//nolint:gocritic // hugeParam
func yearText(it recommend.ScoredCandidate) string {
	if !it.HasYear() {
		return "N/A"
	}
	return strconv.Itoa(it.Year)
}
