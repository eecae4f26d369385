// Movrec - Movie Recommendation Web Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movrec

package api

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/tomtom215/movrec/internal/export"
	"github.com/tomtom215/movrec/internal/logging"
	"github.com/tomtom215/movrec/internal/models"
)

// ExportCSV handles GET /api/v1/export/csv.
func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	h.serveExport(w, r, export.FormatCSV)
}

// ExportPDF handles GET /api/v1/export/pdf.
func (h *Handler) ExportPDF(w http.ResponseWriter, r *http.Request) {
	h.serveExport(w, r, export.FormatPDF)
}

// serveExport generates recommendations.export_limit items for the selection
// and streams them as an attachment. The document is rendered into memory
// first so a render failure can still be answered with a JSON error.
//
// Query: selected_movies (repeated), genres, year_min, year_max, min_rating, sort_by.
func (h *Handler) serveExport(w http.ResponseWriter, r *http.Request, format export.Format) {
	req := ExportRequest{SelectedMovies: queryList(r, "selected_movies")}
	filter, verr := parseFilterQuery(r)
	if verr != nil {
		respondValidationError(w, verr)
		return
	}
	req.Filters = filter
	if verr := validateRequest(&req); verr != nil {
		respondValidationError(w, verr)
		return
	}
	if verr := h.checkSelection(req.SelectedMovies); verr != nil {
		respondValidationError(w, verr)
		return
	}
	if verr := validateFilter(req.Filters); verr != nil {
		respondValidationError(w, verr)
		return
	}

	ctx, cancel := h.requestContext(r.Context())
	defer cancel()

	res := h.engine.Generate(ctx, req.SelectedMovies, req.Filters, h.exportLimit)
	doc := export.Document{
		Selected:    req.SelectedMovies,
		Filter:      req.Filters,
		Items:       res.Items,
		Source:      res.Source,
		Reason:      res.Reason,
		GeneratedAt: h.now(),
	}

	var buf bytes.Buffer
	var err error
	switch format {
	case export.FormatPDF:
		err = export.WritePDF(&buf, doc)
	default:
		err = export.WriteCSV(&buf, doc.Items)
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, models.ErrCodeExport, "Failed to render "+string(format)+" export", err)
		return
	}

	filename := export.Filename(format, doc.GeneratedAt)
	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("format", string(format)).Msg("export write interrupted")
		return
	}

	logging.Ctx(ctx).Info().
		Str("format", string(format)).
		Int("items", len(doc.Items)).
		Str("source", string(res.Source)).
		Msg("recommendations exported")
}
