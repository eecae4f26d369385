// Movrec - Movie Recommendation Web Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movrec

package recommend

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/movrec/internal/cache"
	"github.com/tomtom215/movrec/internal/logging"
	"github.com/tomtom215/movrec/internal/metrics"
)

const cacheType = "recommend"

// Engine runs the recommendation pipeline. It is built once at startup and
// shared by all requests.
type Engine struct {
	config    Config
	catalog   Catalog
	predictor RatingPredictor
	aliases   map[string]string
	scorer    *scorer
	identity  identityProvider
	cache     *cache.LRU[string, Result]
	logger    zerolog.Logger

	requests  atomic.Int64
	fallbacks atomic.Int64
}

// Stats is a snapshot of engine counters.
type Stats struct {
	Requests    int64 `json:"requests"`
	Fallbacks   int64 `json:"fallbacks"`
	CacheHits   int64 `json:"cache_hits"`
	CacheMisses int64 `json:"cache_misses"`
	CacheSize   int   `json:"cache_size"`
}

// NewEngine wires an engine. predictor may be nil, in which case every request
// is served from the fallback list with ReasonModelUnavailable.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, cat Catalog, predictor RatingPredictor, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if cat == nil {
		return nil, errors.New("catalog is required")
	}

	e := &Engine{
		config:    *cfg,
		catalog:   cat,
		predictor: predictor,
		aliases:   cfg.normalizedAliases(),
		logger:    logger.With().Str("component", "recommend").Logger(),
	}
	if predictor != nil {
		e.scorer = &scorer{
			predictor: predictor,
			boost:     cfg.GenreBoost,
			maxRating: cfg.MaxRating,
			workers:   cfg.Workers,
			logger:    e.logger,
		}
	}
	if cfg.CacheEnabled {
		e.cache = cache.NewLRU[string, Result](cfg.CacheSize, cfg.CacheTTL)
	}
	return e, nil
}

// ModelAvailable reports whether a rating predictor is wired in.
func (e *Engine) ModelAvailable() bool {
	return e.predictor != nil
}

// ExtractPreferences resolves titles against the catalog and returns the
// union of their genres. It never fails; misses are listed in Unresolved.
func (e *Engine) ExtractPreferences(titles []string) UserPreferences {
	return extractPreferences(e.catalog, titles)
}

// Generate returns up to limit recommendations (limit <= 0 means all) for the
// selected titles. It always produces a Result: when the model path cannot
// deliver, the fallback list is filtered and sorted per filter instead, and
// Result.Reason records why. The filter is assumed valid (see FilterSpec.Validate).
//
//nolint:gocritic // hugeParam: filter passed by value for immutability
func (e *Engine) Generate(ctx context.Context, selected []string, filter FilterSpec, limit int) Result {
	e.requests.Add(1)
	filter = filter.withAliases(e.aliases)
	logger := e.requestLogger(ctx)

	key := cacheKey(selected, filter, limit)
	if e.cache != nil {
		if res, ok := e.cache.Get(key); ok {
			metrics.RecordCacheHit(cacheType)
			if res.Degraded() {
				e.fallbacks.Add(1)
			}
			return cloneResult(res)
		}
		metrics.RecordCacheMiss(cacheType)
	}

	start := time.Now()
	res := e.run(selected, filter, limit, logger)
	elapsed := time.Since(start)

	metrics.RecordRecommendation(string(res.Source), res.Reason.String(), elapsed, res.Candidates, res.PredictionFailures)
	if res.Degraded() {
		e.fallbacks.Add(1)
		logger.Info().
			Str("reason", res.Reason.String()).
			Int("selected", len(selected)).
			Int("returned", len(res.Items)).
			Msg("serving fallback recommendations")
	} else {
		logger.Debug().
			Int("candidates", res.Candidates).
			Int("prediction_failures", res.PredictionFailures).
			Int("returned", len(res.Items)).
			Dur("elapsed", elapsed).
			Msg("recommendations generated")
	}

	if e.cache != nil && res.Reason != ReasonInternal {
		e.cache.Add(key, cloneResult(res))
	}
	return res
}

// run executes the state machine for one request.
//
//nolint:gocritic // hugeParam: filter and logger passed by value
func (e *Engine) run(selected []string, filter FilterSpec, limit int, logger zerolog.Logger) (res Result) {
	if e.predictor == nil {
		return e.fallbackResult(ReasonModelUnavailable, UserPreferences{}, filter, limit)
	}

	var prefs UserPreferences
	defer func() {
		if r := recover(); r != nil {
			logger.Error().
				Interface("panic", r).
				Msg("recommendation pipeline panicked, serving fallback")
			res = e.fallbackResult(ReasonInternal, prefs, filter, limit)
		}
	}()

	prefs = extractPreferences(e.catalog, selected)
	if prefs.Empty() {
		return e.fallbackResult(ReasonEmptySignal, prefs, filter, limit)
	}

	candidates := generateCandidates(e.catalog, selected, prefs, filter)
	if len(candidates) == 0 {
		return e.fallbackResult(ReasonNoCandidates, prefs, filter, limit)
	}

	identity := e.identity.get(e.predictor, e.logger)
	scored, failures := e.scorer.score(candidates, identity)
	if len(scored) == 0 {
		res = e.fallbackResult(ReasonPredictionFailure, prefs, filter, limit)
		res.Candidates, res.PredictionFailures, res.Identity = len(candidates), failures, identity
		return res
	}

	items := finalize(scored, filter, limit)
	if len(items) == 0 {
		// min_rating removed every scored candidate
		res = e.fallbackResult(ReasonNoCandidates, prefs, filter, limit)
		res.Candidates, res.PredictionFailures, res.Identity = len(candidates), failures, identity
		return res
	}

	return Result{
		Items:              items,
		Source:             SourceModel,
		Reason:             ReasonNone,
		Preferences:        prefs,
		Candidates:         len(candidates),
		PredictionFailures: failures,
		Identity:           identity,
	}
}

//nolint:gocritic // hugeParam: values passed for immutability
func (e *Engine) fallbackResult(reason DegradedReason, prefs UserPreferences, filter FilterSpec, limit int) Result {
	return Result{
		Items:       fallback(filter, limit),
		Source:      SourceFallback,
		Reason:      reason,
		Preferences: prefs,
	}
}

// Stats returns counters since startup.
func (e *Engine) Stats() Stats {
	s := Stats{
		Requests:  e.requests.Load(),
		Fallbacks: e.fallbacks.Load(),
	}
	if e.cache != nil {
		s.CacheHits, s.CacheMisses, s.CacheSize = e.cache.Stats()
	}
	return s
}

// PurgeCache drops expired cached results and returns how many were removed.
func (e *Engine) PurgeCache() int {
	if e.cache == nil {
		return 0
	}
	return e.cache.CleanupExpired()
}

func (e *Engine) requestLogger(ctx context.Context) zerolog.Logger {
	if id := logging.RequestIDFromContext(ctx); id != "" {
		return e.logger.With().Str("request_id", id).Logger()
	}
	return e.logger
}

// cacheKey serialises the request. Selection order is kept because it
// determines the order of Preferences.
//
//nolint:gocritic // hugeParam: filter passed by value
func cacheKey(selected []string, filter FilterSpec, limit int) string {
	var b strings.Builder
	for _, t := range selected {
		b.WriteString(t)
		b.WriteByte(0x1f)
	}
	b.WriteByte(0x1e)
	genres := slices.Clone(filter.Genres)
	slices.Sort(genres)
	b.WriteString(strings.Join(genres, "\x1f"))
	b.WriteByte(0x1e)
	if filter.YearMin != nil {
		b.WriteString(strconv.Itoa(*filter.YearMin))
	}
	b.WriteByte('-')
	if filter.YearMax != nil {
		b.WriteString(strconv.Itoa(*filter.YearMax))
	}
	b.WriteByte(0x1e)
	if filter.MinRating != nil {
		b.WriteString(strconv.FormatFloat(*filter.MinRating, 'f', -1, 64))
	}
	b.WriteByte(0x1e)
	b.WriteString(string(filter.sortKey()))
	b.WriteByte(0x1e)
	b.WriteString(strconv.Itoa(limit))
	return b.String()
}

// cloneResult deep-copies the items so cached results cannot be mutated by callers.
//
//nolint:gocritic // hugeParam: Result copied deliberately
func cloneResult(r Result) Result {
	r.Items = slices.Clone(r.Items)
	for i := range r.Items {
		r.Items[i].Genres = slices.Clone(r.Items[i].Genres)
	}
	return r
}
