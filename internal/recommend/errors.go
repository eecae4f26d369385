// Movrec - Movie Recommendation Web Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movrec

package recommend

import (
	"errors"
	"fmt"
)

// Sentinel errors for the conditions that divert a request to the fallback
// list. They are never returned by Generate; use DegradedReason.Err with
// errors.Is when an error value is more convenient than the enum.
var (
	ErrModelUnavailable = errors.New("rating model unavailable")
	ErrEmptySignal      = errors.New("no selected title resolved to a catalog movie")
	ErrNoCandidates     = errors.New("no candidate survived filtering")
	ErrPredictionFailed = errors.New("rating prediction failed")
	ErrInternal         = errors.New("internal pipeline error")
)

// DegradedReason tags why a Result came from the fallback list.
type DegradedReason int

const (
	// ReasonNone marks a real model result.
	ReasonNone DegradedReason = iota
	// ReasonModelUnavailable: no predictor was configured or loaded.
	ReasonModelUnavailable
	// ReasonEmptySignal: no selected title resolved, so there are no preferred genres.
	ReasonEmptySignal
	// ReasonNoCandidates: nothing survived candidate filtering, or min_rating removed every scored item.
	ReasonNoCandidates
	// ReasonPredictionFailure: every candidate's prediction failed.
	ReasonPredictionFailure
	// ReasonInternal: a pipeline stage panicked.
	ReasonInternal
)

var reasonNames = map[DegradedReason]string{
	ReasonNone:              "none",
	ReasonModelUnavailable:  "model_unavailable",
	ReasonEmptySignal:       "empty_signal",
	ReasonNoCandidates:      "no_candidates",
	ReasonPredictionFailure: "prediction_failure",
	ReasonInternal:          "internal_error",
}

// String returns the snake_case reason name.
func (r DegradedReason) String() string {
	if name, ok := reasonNames[r]; ok {
		return name
	}
	return "unknown"
}

// MarshalText encodes the reason by name.
func (r DegradedReason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText decodes a reason name.
func (r *DegradedReason) UnmarshalText(b []byte) error {
	for reason, name := range reasonNames {
		if name == string(b) {
			*r = reason
			return nil
		}
	}
	return fmt.Errorf("unknown degraded reason %q", b)
}

// Err returns the sentinel error for the reason, or nil for ReasonNone.
func (r DegradedReason) Err() error {
	switch r {
	case ReasonModelUnavailable:
		return ErrModelUnavailable
	case ReasonEmptySignal:
		return ErrEmptySignal
	case ReasonNoCandidates:
		return ErrNoCandidates
	case ReasonPredictionFailure:
		return ErrPredictionFailed
	case ReasonInternal:
		return ErrInternal
	default:
		return nil
	}
}

// PredictionError wraps a per-candidate predictor failure.
type PredictionError struct {
	MovieID int
	Err     error
}

func (e *PredictionError) Error() string {
	return fmt.Sprintf("predict movie %d: %v", e.MovieID, e.Err)
}

func (e *PredictionError) Unwrap() []error {
	return []error{ErrPredictionFailed, e.Err}
}
