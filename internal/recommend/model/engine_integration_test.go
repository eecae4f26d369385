// Movrec - Movie Recommendation Web Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movrec

package model_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/movrec/internal/catalog"
	"github.com/tomtom215/movrec/internal/recommend"
	"github.com/tomtom215/movrec/internal/recommend/model"
)

var _ recommend.RatingPredictor = (*model.Model)(nil)

func TestEngineWithModel(t *testing.T) {
	t.Parallel()

	cat, err := catalog.New([]catalog.Movie{
		catalog.NewMovie(1, "Toy Story (1995)", "Adventure|Animation|Children|Comedy|Fantasy"),
		catalog.NewMovie(2, "Jumanji (1995)", "Adventure|Children|Fantasy"),
		catalog.NewMovie(3, "Grumpier Old Men (1995)", "Comedy|Romance"),
		catalog.NewMovie(4, "Heat (1995)", "Action|Crime|Thriller"),
	})
	if err != nil {
		t.Fatal(err)
	}

	m, err := model.New(&model.File{
		GlobalMean: 3.5, RatingMin: 0.5, RatingMax: 5,
		Users: []model.Factor{{ID: 10, Bias: 0.1, Factors: []float64{0.1}}},
		Items: []model.Factor{
			{ID: 2, Bias: 0.4, Factors: []float64{1}},
			{ID: 3, Bias: -0.6, Factors: []float64{1}},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	cfg := recommend.DefaultConfig()
	cfg.CacheEnabled = false
	engine, err := recommend.NewEngine(cfg, cat, m, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}

	res := engine.Generate(context.Background(), []string{"Toy Story (1995)"}, recommend.FilterSpec{}, 0)
	if res.Degraded() {
		t.Fatalf("unexpected fallback: %s", res.Reason)
	}
	if res.Identity != 11 {
		t.Errorf("Identity = %d, want 11", res.Identity)
	}

	// Jumanji: 3.5+0.4 bias-only, three shared genres (+0.9) = 4.8
	// Grumpier Old Men: 3.5-0.6, one shared genre (+0.3) = 3.2
	if len(res.Items) != 2 || res.Items[0].MovieID != 2 || res.Items[1].MovieID != 3 {
		t.Fatalf("items = %+v", res.Items)
	}
	if res.Items[0].PredictedRating != 4.8 || res.Items[1].PredictedRating != 3.2 {
		t.Errorf("ratings = %v, %v", res.Items[0].PredictedRating, res.Items[1].PredictedRating)
	}
}
