// Movrec - Movie Recommendation Web Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movrec

package model

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/goccy/go-json"
)

// File is the on-disk model format.
type File struct {
	GlobalMean float64  `json:"global_mean"`
	RatingMin  float64  `json:"rating_min"`
	RatingMax  float64  `json:"rating_max"`
	Users      []Factor `json:"users"`
	Items      []Factor `json:"items"`
}

// Factor is one user or item row.
type Factor struct {
	ID      int       `json:"id"`
	Bias    float64   `json:"bias"`
	Factors []float64 `json:"factors"`
}

func (f *File) validate() error {
	if f.RatingMin == 0 && f.RatingMax == 0 {
		f.RatingMin, f.RatingMax = 0.5, 5.0
	}
	if f.RatingMin >= f.RatingMax {
		return fmt.Errorf("invalid rating scale [%v, %v]", f.RatingMin, f.RatingMax)
	}
	if !finite(f.GlobalMean) {
		return errors.New("global mean is not finite")
	}
	for _, rows := range [][]Factor{f.Users, f.Items} {
		for _, r := range rows {
			if !finite(r.Bias) {
				return fmt.Errorf("id %d: bias is not finite", r.ID)
			}
		}
	}
	return nil
}

// Load reads a JSON model from path. Paths ending in .gz are gunzipped.
func Load(path string) (*Model, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, fmt.Errorf("open model: %w", err)
	}
	defer func() { _ = f.Close() }()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("open gzip stream: %w", err)
		}
		defer func() { _ = gz.Close() }()
		r = gz
	}

	m, err := Decode(r)
	if err != nil {
		return nil, fmt.Errorf("load model %s: %w", path, err)
	}
	return m, nil
}

// Decode reads a JSON model from r.
func Decode(r io.Reader) (*Model, error) {
	var file File
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("decode model: %w", err)
	}
	return New(&file)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
