// Movrec - Movie Recommendation Web Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movrec

// Package analytics builds the chart datasets shown on the analytics
// dashboard from a user's selected titles:
//
//   - Genres: genre distribution of the resolved selections
//   - Confidence: high/medium/exploratory split of the top 10 recommendations
//   - Ratings: predicted-rating histogram of the top 20 recommendations
//   - Eras: decade distribution of the selections (1970s to 2020s)
//
// Every chart is a models.ChartDataset. Recommendation-based charts return
// zeroed data below the minimum selection count instead of an error.
package analytics
