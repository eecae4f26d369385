// Movrec - Movie Recommendation Web Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movrec

package poster

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/tomtom215/movrec/internal/metrics"
)

const (
	breakerName  = "poster-api"
	maxBodyBytes = 1 << 20
)

// Lookup outcomes, also used as the poster_lookups_total result label.
const (
	ResultFound       = "found"
	ResultNotFound    = "not_found"
	ResultCached      = "cached"
	ResultError       = "error"
	ResultRejected    = "rejected"
	ResultPlaceholder = "placeholder"
)

// Config configures a Client.
type Config struct {
	Enabled      bool
	APIURL       string
	ImageBaseURL string
	APIKey       string
	Timeout      time.Duration

	RequestsPerSecond float64
	Burst             int

	BreakerFailures uint32
	BreakerTimeout  time.Duration

	CacheTTL time.Duration
}

// Poster is the answer to a lookup.
type Poster struct {
	URL         string `json:"url"`
	Placeholder bool   `json:"placeholder"`
	Result      string `json:"result"`
}

// Client looks up posters.
type Client struct {
	cfg     Config
	http    *http.Client
	breaker *gobreaker.CircuitBreaker[Entry]
	limiter *rate.Limiter
	store   Store
	logger  zerolog.Logger
}

// NewClient builds a Client. A disabled config yields a client that only
// returns placeholders; store may then be nil.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewClient(cfg Config, store Store, logger zerolog.Logger) *Client {
	c := &Client{
		cfg:    cfg,
		store:  store,
		logger: logger.With().Str("component", "poster").Logger(),
	}
	if !cfg.Enabled {
		return c
	}

	c.http = &http.Client{Timeout: cfg.Timeout}
	c.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), max(cfg.Burst, 1))

	failures := max(cfg.BreakerFailures, 1)
	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)
	c.breaker = gobreaker.NewCircuitBreaker[Entry](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			trip := counts.ConsecutiveFailures >= failures
			if trip {
				c.logger.Warn().Uint32("consecutive_failures", counts.ConsecutiveFailures).Msg("opening poster circuit")
			}
			return trip
		},
		// a caller giving up is not an upstream failure
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.logger.Info().Str("from", from.String()).Str("to", to.String()).Msg("poster circuit state transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateValue(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
		},
	})
	return c
}

// Enabled reports whether upstream lookups are configured.
func (c *Client) Enabled() bool {
	return c != nil && c.cfg.Enabled
}

// Lookup resolves the poster for a catalog title. year <= 0 means unknown.
func (c *Client) Lookup(ctx context.Context, title string, year int) Poster {
	if !c.Enabled() {
		metrics.RecordPosterLookup(ResultPlaceholder, 0)
		return placeholder(title, ResultPlaceholder)
	}

	key := cacheKey(title, year)
	if c.store != nil {
		e, ok, err := c.store.Get(ctx, key)
		if err != nil {
			c.logger.Warn().Err(err).Str("key", key).Msg("poster cache read failed")
		}
		if ok {
			metrics.RecordCacheHit("poster")
			metrics.RecordPosterLookup(ResultCached, 0)
			if !e.Found {
				return placeholder(title, ResultCached)
			}
			return Poster{URL: e.URL, Result: ResultCached}
		}
		metrics.RecordCacheMiss("poster")
	}

	start := time.Now()
	e, err := c.breaker.Execute(func() (Entry, error) {
		return c.fetch(ctx, title, year)
	})
	elapsed := time.Since(start)

	if err != nil {
		result := ResultError
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			result = ResultRejected
			metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "rejected").Inc()
		} else {
			metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "failure").Inc()
			c.logger.Debug().Err(err).Str("title", title).Msg("poster lookup failed")
		}
		metrics.RecordPosterLookup(result, elapsed)
		return placeholder(title, result)
	}
	metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "success").Inc()

	if c.store != nil {
		if err := c.store.Put(ctx, key, e, c.cfg.CacheTTL); err != nil {
			c.logger.Warn().Err(err).Str("key", key).Msg("poster cache write failed")
		}
	}

	if !e.Found {
		metrics.RecordPosterLookup(ResultNotFound, elapsed)
		return placeholder(title, ResultNotFound)
	}
	metrics.RecordPosterLookup(ResultFound, elapsed)
	return Poster{URL: e.URL, Result: ResultFound}
}

type searchResponse struct {
	Results []struct {
		Title      string `json:"title"`
		PosterPath string `json:"poster_path"`
	} `json:"results"`
}

// fetch performs one rate-limited search request. A well-formed empty
// answer is a successful "not found", not an error.
func (c *Client) fetch(ctx context.Context, title string, year int) (Entry, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return Entry{}, fmt.Errorf("rate limiter: %w", err)
	}

	q := url.Values{}
	q.Set("api_key", c.cfg.APIKey)
	q.Set("query", SearchTitle(title))
	if year > 0 {
		q.Set("year", strconv.Itoa(year))
	}
	endpoint := strings.TrimRight(c.cfg.APIURL, "/") + "/search/movie?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return Entry{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Entry{}, fmt.Errorf("poster search: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return Entry{}, fmt.Errorf("poster search: unexpected status %d", resp.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&body); err != nil {
		return Entry{}, fmt.Errorf("decode poster search: %w", err)
	}

	e := Entry{FetchedAt: time.Now().UTC()}
	for _, r := range body.Results {
		if r.PosterPath != "" {
			e.Found = true
			e.URL = strings.TrimRight(c.cfg.ImageBaseURL, "/") + "/" + strings.TrimLeft(r.PosterPath, "/")
			break
		}
	}
	return e, nil
}

// BreakerState returns the circuit state name, or "disabled".
func (c *Client) BreakerState() string {
	if !c.Enabled() {
		return "disabled"
	}
	return c.breaker.State().String()
}

func placeholder(title, result string) Poster {
	return Poster{URL: Placeholder(title), Placeholder: true, Result: result}
}

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
