// Movrec - Movie Recommendation Web Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movrec

package poster

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	trailingParens = regexp.MustCompile(`\s*\([^()]*\)\s*$`)
	movedArticle   = regexp.MustCompile(`^(.*), (The|A|An|Les|La|Le|L'|Il|Das|Der|Die|El)$`)
)

// SearchTitle turns a catalog title into a search query: parenthesised
// suffixes (year, alternate titles) are removed and a trailing article is
// moved back to the front.
//
//	SearchTitle("Shawshank Redemption, The (1994)")  // "The Shawshank Redemption"
//	SearchTitle("City of Lost Children, The (Cité des enfants perdus, La) (1995)")  // "The City of Lost Children"
func SearchTitle(title string) string {
	t := strings.TrimSpace(title)
	for {
		stripped := trailingParens.ReplaceAllString(t, "")
		if stripped == t || stripped == "" {
			break
		}
		t = stripped
	}
	if m := movedArticle.FindStringSubmatch(t); m != nil {
		sep := " "
		if strings.HasSuffix(m[2], "'") {
			sep = ""
		}
		t = m[2] + sep + m[1]
	}
	return t
}

func cacheKey(title string, year int) string {
	key := strings.ToLower(SearchTitle(title)) + "|"
	if year > 0 {
		key += strconv.Itoa(year)
	}
	return key
}
