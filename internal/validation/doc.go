// Movrec - Movie Recommendation Web Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movrec

// Package validation wraps go-playground/validator v10 with a singleton
// instance and translates failures into the API's VALIDATION_ERROR shape.
//
//	type searchRequest struct {
//	    Query string `json:"q" validate:"required,min=2"`
//	    Limit int    `json:"limit" validate:"gte=1,lte=50"`
//	}
package validation
