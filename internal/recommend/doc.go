// Movrec - Movie Recommendation Web Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movrec

/*
Package recommend generates filtered, ranked movie recommendations from a set
of titles the user likes.

# Pipeline

A request flows through four stages:

 1. Preference extraction: selected titles are resolved against the catalog and
    their genres are unioned. Unknown titles are skipped.
 2. Candidate generation: catalog movies that pass the genre and year filters,
    are not selected, and share at least one preferred genre.
 3. Scoring: each candidate is rated by the latent-factor RatingPredictor under
    a reserved temporary identity, boosted by GenreBoost per overlapping genre,
    capped at MaxRating and rounded to one decimal. Candidates whose prediction
    fails are dropped.
 4. Ranking: min_rating is applied to the scores, then the list is ordered by
    rating, year or title and truncated.

# Fallback

Generate never returns an error. When the predictor is missing, the selection
yields no genres, no candidate survives filtering, every prediction fails, or a
stage panics, the fixed fallback list is passed through the same filter and
ranking code instead. Result.Reason tells callers which condition fired:

	res := engine.Generate(ctx, titles, filter, 20)
	if res.Source == recommend.SourceFallback {
	    log.Info().Str("reason", res.Reason.String()).Msg("served fallback")
	}

# Concurrency

Engine is safe for concurrent use. The catalog and predictor are read-only,
the temporary identity is computed once, and scoring may run on several
goroutines while keeping a deterministic output order.
*/
package recommend
