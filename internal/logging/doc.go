// Movrec - Movie Recommendation Web Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movrec

// Package logging provides the zerolog-based structured logger shared by every
// Movrec component.
//
// The global logger is configured once from main with Init and read by
// components through Logger or WithComponent. Request-scoped loggers carry the
// request and correlation ids placed in the context by the HTTP middleware:
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Ctx(ctx).Info().Int("items", n).Msg("recommendations served")
//
// NewSlogLogger bridges the global logger into log/slog for libraries that
// require it, such as sutureslog.
package logging
