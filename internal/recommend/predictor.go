// Movrec - Movie Recommendation Web Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movrec

package recommend

import (
	"sync"

	"github.com/rs/zerolog"
)

// SentinelIdentity is used when the predictor cannot report its identity range.
// Predictors must answer unknown identities with a bias-only estimate.
const SentinelIdentity = -1

// RatingPredictor is a trained latent-factor model.
//
// Predict may fail for individual movies; the scorer drops those candidates.
// For identities absent from training the estimate is the profile-free
// (bias-only) prediction. Implementations must be safe for concurrent reads.
type RatingPredictor interface {
	Predict(identity, movieID int) (float64, error)
	MaxKnownIdentity() (int, error)
}

// identityProvider computes the temporary identity once per process:
// the highest trained identity plus one, or SentinelIdentity on failure.
type identityProvider struct {
	once     sync.Once
	identity int
}

//nolint:gocritic // zerolog.Logger is designed to be passed by value
func (p *identityProvider) get(predictor RatingPredictor, logger zerolog.Logger) int {
	p.once.Do(func() {
		// sync.Once treats a panic as done; leave the sentinel behind, not 0.
		defer func() {
			if r := recover(); r != nil {
				p.identity = SentinelIdentity
				logger.Warn().
					Interface("panic", r).
					Int("identity", SentinelIdentity).
					Msg("identity range lookup panicked, using sentinel temporary identity")
			}
		}()
		maxID, err := predictor.MaxKnownIdentity()
		if err != nil {
			p.identity = SentinelIdentity
			logger.Warn().Err(err).
				Int("identity", SentinelIdentity).
				Msg("identity range unavailable, using sentinel temporary identity")
			return
		}
		p.identity = maxID + 1
		logger.Info().Int("identity", p.identity).Msg("temporary identity resolved")
	})
	return p.identity
}
