// Movrec - Movie Recommendation Web Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movrec

package analytics

import (
	"context"

	"github.com/tomtom215/movrec/internal/models"
	"github.com/tomtom215/movrec/internal/recommend"
)

const (
	confidenceLimit = 10
	ratingLimit     = 20
)

var (
	// genrePalette is cycled when there are more genres than colours.
	genrePalette = []string{
		"#FFD700", "#FF2E2E", "#667eea", "#4ecdc4", "#ff6b6b",
		"#95e1d3", "#f093fb", "#fce38a", "#a8e6cf", "#ff8a80",
	}

	placeholderLabels = []string{"Select movies", "to see your", "preference analysis"}
	placeholderColors = []string{"#667eea", "#764ba2", "#f093fb"}

	confidenceLabels = []string{"High Confidence", "Medium Confidence", "Exploratory"}
	confidenceColors = []string{"#28a745", "#ffc107", "#dc3545"}

	ratingLabels = []string{"1-2 Stars", "2-3 Stars", "3-4 Stars", "4-5 Stars"}
	ratingColors = []string{"#dc3545", "#fd7e14", "#ffc107", "#28a745"}

	eraLabels = []string{"1970s", "1980s", "1990s", "2000s", "2010s", "2020s"}
	eraColors = []string{"#667eea", "#764ba2", "#f093fb", "#53a0fd", "#4ecdc4", "#45b7d1"}
)

// Recommender is the part of recommend.Engine the charts need.
type Recommender interface {
	Generate(ctx context.Context, selected []string, filter recommend.FilterSpec, limit int) recommend.Result
	ExtractPreferences(titles []string) recommend.UserPreferences
}

// Analyzer computes chart datasets.
type Analyzer struct {
	engine        Recommender
	minSelections int
}

// NewAnalyzer returns an Analyzer. minSelections below 1 is treated as 1.
func NewAnalyzer(engine Recommender, minSelections int) *Analyzer {
	return &Analyzer{engine: engine, minSelections: max(minSelections, 1)}
}

// Genres counts genres across the resolved selections in first-seen order.
// With no selection a three-slice placeholder is returned.
func (a *Analyzer) Genres(titles []string) models.ChartDataset {
	if len(titles) == 0 {
		return models.ChartDataset{
			Labels:          clone(placeholderLabels),
			Data:            []int{1, 1, 1},
			BackgroundColor: clone(placeholderColors),
		}
	}

	prefs := a.engine.ExtractPreferences(titles)
	counts := make(map[string]int)
	var labels []string
	for _, m := range prefs.Resolved {
		for _, g := range m.Genres {
			if counts[g] == 0 {
				labels = append(labels, g)
			}
			counts[g]++
		}
	}

	out := models.ChartDataset{
		Labels:          make([]string, 0, len(labels)),
		Data:            make([]int, 0, len(labels)),
		BackgroundColor: make([]string, 0, len(labels)),
	}
	for i, g := range labels {
		out.Labels = append(out.Labels, g)
		out.Data = append(out.Data, counts[g])
		out.BackgroundColor = append(out.BackgroundColor, genrePalette[i%len(genrePalette)])
	}
	return out
}

// Confidence splits the top recommendations into >= 4.0, [3.0, 4.0) and < 3.0.
func (a *Analyzer) Confidence(ctx context.Context, titles []string) models.ChartDataset {
	data := make([]int, len(confidenceLabels))
	if len(titles) >= a.minSelections {
		res := a.engine.Generate(ctx, titles, recommend.FilterSpec{}, confidenceLimit)
		for _, it := range res.Items {
			switch r := it.PredictedRating; {
			case r >= 4.0:
				data[0]++
			case r >= 3.0:
				data[1]++
			default:
				data[2]++
			}
		}
	}
	return dataset(confidenceLabels, data, confidenceColors)
}

// Ratings buckets the top recommendations into [1,2), [2,3), [3,4) and [4,5].
// Ratings below 1 are not counted.
func (a *Analyzer) Ratings(ctx context.Context, titles []string) models.ChartDataset {
	data := make([]int, len(ratingLabels))
	if len(titles) >= a.minSelections {
		res := a.engine.Generate(ctx, titles, recommend.FilterSpec{}, ratingLimit)
		for _, it := range res.Items {
			if b, ok := ratingBucket(it.PredictedRating); ok {
				data[b]++
			}
		}
	}
	return dataset(ratingLabels, data, ratingColors)
}

// Eras counts resolved selections by release decade, 1970s through 2020s.
// Titles without a year or outside that range are ignored.
func (a *Analyzer) Eras(titles []string) models.ChartDataset {
	data := make([]int, len(eraLabels))
	if len(titles) > 0 {
		for _, m := range a.engine.ExtractPreferences(titles).Resolved {
			if b, ok := eraBucket(m.Year); ok {
				data[b]++
			}
		}
	}
	return dataset(eraLabels, data, eraColors)
}

func ratingBucket(r float64) (int, bool) {
	switch {
	case r < 1.0 || r > 5.0:
		return 0, false
	case r < 2.0:
		return 0, true
	case r < 3.0:
		return 1, true
	case r < 4.0:
		return 2, true
	default:
		return 3, true
	}
}

func eraBucket(year int) (int, bool) {
	if year < 1970 || year >= 2030 {
		return 0, false
	}
	return (year - 1970) / 10, true
}

func dataset(labels []string, data []int, colors []string) models.ChartDataset {
	return models.ChartDataset{Labels: clone(labels), Data: data, BackgroundColor: clone(colors)}
}

func clone(s []string) []string {
	return append([]string(nil), s...)
}
