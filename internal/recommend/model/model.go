// Movrec - Movie Recommendation Web Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movrec

// Package model provides the biased matrix-factorisation rating predictor.
//
// A trained model is a global mean plus, per user and per item, a bias term
// and a latent factor vector. The estimate for a (user, item) pair is
//
//	r̂ = μ + b_u + b_i + p_u · q_i
//
// clipped to the model's rating scale. Components unknown to the model
// contribute nothing, so an unseen user receives the bias-only estimate
// μ + b_i. That is the prediction the recommendation engine relies on for
// its temporary profile identity.
//
// Models are trained offline and loaded read-only with Load; a *Model is safe
// for concurrent use.
package model

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

var (
	// ErrNoUsers is returned by MaxKnownIdentity for a model trained without users.
	ErrNoUsers = errors.New("model has no users")

	// ErrFactorMismatch is returned by Predict when the user and item vectors differ in length.
	ErrFactorMismatch = errors.New("latent factor dimensions differ")
)

// Model is a trained biased MF model.
type Model struct {
	globalMean float64
	ratingMin  float64
	ratingMax  float64

	// userBias and userFactors are indexed by userIndex[userID]
	userIndex   map[int]int
	userBias    []float64
	userFactors [][]float64

	itemIndex   map[int]int
	itemBias    []float64
	itemFactors [][]float64

	maxUser int
}

// Info summarises a loaded model.
type Info struct {
	Users      int     `json:"users"`
	Items      int     `json:"items"`
	Factors    int     `json:"factors"`
	GlobalMean float64 `json:"global_mean"`
	RatingMin  float64 `json:"rating_min"`
	RatingMax  float64 `json:"rating_max"`
}

// New builds a model from its serialised form and validates it.
func New(f *File) (*Model, error) {
	if f == nil {
		return nil, errors.New("nil model file")
	}
	if err := f.validate(); err != nil {
		return nil, err
	}

	m := &Model{
		globalMean:  f.GlobalMean,
		ratingMin:   f.RatingMin,
		ratingMax:   f.RatingMax,
		userIndex:   make(map[int]int, len(f.Users)),
		userBias:    make([]float64, 0, len(f.Users)),
		userFactors: make([][]float64, 0, len(f.Users)),
		itemIndex:   make(map[int]int, len(f.Items)),
		itemBias:    make([]float64, 0, len(f.Items)),
		itemFactors: make([][]float64, 0, len(f.Items)),
		maxUser:     math.MinInt,
	}

	for _, u := range f.Users {
		if _, dup := m.userIndex[u.ID]; dup {
			return nil, fmt.Errorf("duplicate user id %d", u.ID)
		}
		m.userIndex[u.ID] = len(m.userBias)
		m.userBias = append(m.userBias, u.Bias)
		m.userFactors = append(m.userFactors, slices.Clone(u.Factors))
		m.maxUser = max(m.maxUser, u.ID)
	}
	for _, it := range f.Items {
		if _, dup := m.itemIndex[it.ID]; dup {
			return nil, fmt.Errorf("duplicate item id %d", it.ID)
		}
		m.itemIndex[it.ID] = len(m.itemBias)
		m.itemBias = append(m.itemBias, it.Bias)
		m.itemFactors = append(m.itemFactors, slices.Clone(it.Factors))
	}
	return m, nil
}

// Predict estimates the rating of movieID for identity.
func (m *Model) Predict(identity, movieID int) (float64, error) {
	est := m.globalMean

	u, knownUser := m.userIndex[identity]
	i, knownItem := m.itemIndex[movieID]
	if knownUser {
		est += m.userBias[u]
	}
	if knownItem {
		est += m.itemBias[i]
	}
	if knownUser && knownItem {
		p, q := m.userFactors[u], m.itemFactors[i]
		if len(p) != len(q) {
			return 0, fmt.Errorf("user %d item %d: %w", identity, movieID, ErrFactorMismatch)
		}
		est += dot(p, q)
	}

	return math.Max(m.ratingMin, math.Min(est, m.ratingMax)), nil
}

// MaxKnownIdentity returns the largest user id seen in training.
func (m *Model) MaxKnownIdentity() (int, error) {
	if len(m.userIndex) == 0 {
		return 0, ErrNoUsers
	}
	return m.maxUser, nil
}

// Info reports model dimensions.
func (m *Model) Info() Info {
	factors := 0
	if len(m.itemFactors) > 0 {
		factors = len(m.itemFactors[0])
	}
	return Info{
		Users:      len(m.userIndex),
		Items:      len(m.itemIndex),
		Factors:    factors,
		GlobalMean: m.globalMean,
		RatingMin:  m.ratingMin,
		RatingMax:  m.ratingMax,
	}
}

func dot(a, b []float64) float64 {
	var sum float64
	for k := range a {
		sum += a[k] * b[k]
	}
	return sum
}
