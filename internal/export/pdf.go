// Movrec - Movie Recommendation Web Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movrec

package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/tomtom215/movrec/internal/recommend"
)

const (
	pdfFont       = "Helvetica"
	maxTitleRunes = 45
	maxPDFGenres  = 3
)

// column widths in mm; they sum to the A4 printable width (190mm)
var pdfColumns = []float64{14, 80, 24, 46, 14, 12}

// WritePDF renders doc as an A4 report.
//
//nolint:gocritic // hugeParam: Document is rendered once
func WritePDF(w io.Writer, doc Document) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Movie Recommendations", true)
	pdf.SetCreator("movrec", true)
	pdf.SetMargins(10, 12, 10)
	pdf.SetAutoPageBreak(true, 15)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont(pdfFont, "I", 8)
		pdf.SetTextColor(120, 120, 120)
		pdf.CellFormat(0, 8, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont(pdfFont, "B", 20)
	pdf.CellFormat(0, 12, "Movie Recommendations", "", 1, "C", false, 0, "")
	pdf.SetFont(pdfFont, "", 9)
	pdf.SetTextColor(90, 90, 90)
	pdf.CellFormat(0, 6, "Generated "+doc.GeneratedAt.Format("2006-01-02 15:04:05 MST"), "", 1, "C", false, 0, "")
	if doc.Source == recommend.SourceFallback {
		pdf.CellFormat(0, 6, tr("Popular picks (personalised results unavailable: "+doc.Reason.String()+")"), "", 1, "C", false, 0, "")
	}
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	section(pdf, "Your selections")
	pdf.SetFont(pdfFont, "", 10)
	for _, title := range doc.Selected {
		pdf.CellFormat(0, 6, tr("- "+title), "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)

	if lines := filterLines(doc); len(lines) > 0 {
		section(pdf, "Filters applied")
		pdf.SetFont(pdfFont, "", 10)
		for _, l := range lines {
			pdf.CellFormat(0, 6, tr(l), "", 1, "L", false, 0, "")
		}
		pdf.Ln(3)
	}

	section(pdf, "Recommendations")
	if len(doc.Items) == 0 {
		pdf.SetFont(pdfFont, "I", 10)
		pdf.CellFormat(0, 6, "No movies matched the filters.", "", 1, "L", false, 0, "")
	} else {
		table(pdf, tr, doc)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}

func section(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont(pdfFont, "B", 13)
	pdf.SetTextColor(47, 47, 47)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

//nolint:gocritic // hugeParam
func table(pdf *fpdf.Fpdf, tr func(string) string, doc Document) {
	header := func() {
		pdf.SetFont(pdfFont, "B", 9)
		pdf.SetFillColor(47, 47, 47)
		pdf.SetTextColor(255, 215, 0)
		for i, h := range []string{"Rank", "Movie Title", "Rating", "Genres", "Year", "Sim."} {
			pdf.CellFormat(pdfColumns[i], 7, h, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetTextColor(0, 0, 0)
	}

	header()
	pdf.SetFont(pdfFont, "", 8)
	_, pageHeight := pdf.GetPageSize()
	_, _, _, bottom := pdf.GetMargins()

	for i, it := range doc.Items {
		if pdf.GetY()+6 > pageHeight-bottom {
			pdf.AddPage()
			header()
			pdf.SetFont(pdfFont, "", 8)
		}
		fill := i%2 == 1
		pdf.SetFillColor(240, 248, 255)

		cells := []string{
			"#" + strconv.Itoa(i+1),
			tr(truncate(it.Title, maxTitleRunes)),
			strconv.FormatFloat(it.PredictedRating, 'f', 1, 64) + "/5",
			tr(genreSummary(it.Genres)),
			yearText(it),
			strconv.Itoa(it.GenreSimilarity),
		}
		aligns := []string{"C", "L", "C", "L", "C", "C"}
		for c, text := range cells {
			pdf.CellFormat(pdfColumns[c], 6, text, "1", 0, aligns[c], fill, 0, "")
		}
		pdf.Ln(-1)
	}
}

//nolint:gocritic // hugeParam
func filterLines(doc Document) []string {
	f := doc.Filter
	var lines []string
	if len(f.Genres) > 0 {
		lines = append(lines, "Genres: "+strings.Join(f.Genres, ", "))
	}
	if f.YearMin != nil || f.YearMax != nil {
		lo, hi := "any", "any"
		if f.YearMin != nil {
			lo = strconv.Itoa(*f.YearMin)
		}
		if f.YearMax != nil {
			hi = strconv.Itoa(*f.YearMax)
		}
		lines = append(lines, "Years: "+lo+" - "+hi)
	}
	if f.MinRating != nil {
		lines = append(lines, "Minimum rating: "+strconv.FormatFloat(*f.MinRating, 'f', -1, 64)+"+")
	}
	if f.SortBy != "" {
		lines = append(lines, "Sorted by: "+string(f.SortBy))
	}
	return lines
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

func genreSummary(genres []string) string {
	if len(genres) <= maxPDFGenres {
		return strings.Join(genres, ", ")
	}
	return strings.Join(genres[:maxPDFGenres], ", ") + "..."
}
