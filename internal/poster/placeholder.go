// Movrec - Movie Recommendation Web Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movrec

package poster

import (
	"encoding/base64"
	"fmt"
	"hash/fnv"
	"html"
	"strings"
	"unicode"
)

var placeholderColors = []string{
	"#667eea", "#764ba2", "#f093fb", "#4ecdc4", "#ff6b6b",
	"#53a0fd", "#45b7d1", "#95e1d3", "#2F2F2F", "#ff8a80",
}

// Placeholder returns an SVG data URI with the title's initials on a
// background colour derived from the title. Equal titles give equal URIs.
func Placeholder(title string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(title))
	color := placeholderColors[h.Sum32()%uint32(len(placeholderColors))]

	svg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="300" height="450" viewBox="0 0 300 450">`+
		`<rect width="300" height="450" fill="%s"/>`+
		`<text x="150" y="245" font-family="Helvetica,Arial,sans-serif" font-size="96" fill="#ffffff" text-anchor="middle">%s</text>`+
		`</svg>`, color, html.EscapeString(initials(title)))

	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svg))
}

// initials takes the first letter or digit of up to two words of the search title.
func initials(title string) string {
	var letters []rune
	for _, word := range strings.Fields(SearchTitle(title)) {
		for _, r := range word {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				letters = append(letters, unicode.ToUpper(r))
				break
			}
		}
		if len(letters) == 2 {
			break
		}
	}
	if len(letters) == 0 {
		return "?"
	}
	return string(letters)
}
