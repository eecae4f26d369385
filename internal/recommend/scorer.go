// Movrec - Movie Recommendation Web Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movrec

package recommend

import (
	"fmt"
	"math"
	"slices"
	"sync"

	"github.com/rs/zerolog"
)

// minParallelBatch is the smallest batch worth spreading across goroutines.
const minParallelBatch = 64

// scorer turns candidates into ScoredCandidates.
type scorer struct {
	predictor RatingPredictor
	boost     float64
	maxRating float64
	workers   int
	logger    zerolog.Logger
}

type scoreSlot struct {
	item ScoredCandidate
	ok   bool
}

// score predicts every candidate for identity. The result keeps candidate
// order regardless of worker scheduling; failed predictions are dropped and
// counted.
func (s *scorer) score(candidates []Candidate, identity int) ([]ScoredCandidate, int) {
	slots := make([]scoreSlot, len(candidates))

	workers := s.workers
	if workers < 1 || len(candidates) < minParallelBatch {
		workers = 1
	}
	if workers == 1 {
		s.scoreRange(candidates, slots, identity, 0, len(candidates))
	} else {
		chunk := (len(candidates) + workers - 1) / workers
		var wg sync.WaitGroup
		for lo := 0; lo < len(candidates); lo += chunk {
			hi := min(lo+chunk, len(candidates))
			wg.Add(1)
			go func(lo, hi int) {
				defer wg.Done()
				s.scoreRange(candidates, slots, identity, lo, hi)
			}(lo, hi)
		}
		wg.Wait()
	}

	out := make([]ScoredCandidate, 0, len(candidates))
	failures := 0
	for _, slot := range slots {
		if !slot.ok {
			failures++
			continue
		}
		out = append(out, slot.item)
	}
	return out, failures
}

func (s *scorer) scoreRange(candidates []Candidate, slots []scoreSlot, identity, lo, hi int) {
	for i := lo; i < hi; i++ {
		c := candidates[i]
		est, err := s.predict(identity, c.Movie.ID)
		if err != nil {
			s.logger.Debug().
				Err(&PredictionError{MovieID: c.Movie.ID, Err: err}).
				Msg("dropping candidate")
			continue
		}
		if math.IsNaN(est) || math.IsInf(est, 0) {
			s.logger.Debug().Int("movie_id", c.Movie.ID).Msg("dropping candidate with non-finite estimate")
			continue
		}
		slots[i] = scoreSlot{
			item: ScoredCandidate{
				MovieID:         c.Movie.ID,
				Title:           c.Movie.Title,
				Genres:          slices.Clone(c.Movie.Genres),
				Year:            c.Movie.Year,
				PredictedRating: s.adjust(est, c.GenreOverlap),
				GenreSimilarity: c.GenreOverlap,
			},
			ok: true,
		}
	}
}

// predict converts a predictor panic into an error so a bad item cannot take
// down a scoring goroutine.
func (s *scorer) predict(identity, movieID int) (est float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("predictor panic: %v", r)
		}
	}()
	return s.predictor.Predict(identity, movieID)
}

// adjust applies the genre boost, clamps to [0, maxRating] and rounds to one decimal.
func (s *scorer) adjust(estimate float64, genreOverlap int) float64 {
	v := estimate + s.boost*float64(genreOverlap)
	v = math.Max(0, math.Min(v, s.maxRating))
	return roundTenth(v)
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
