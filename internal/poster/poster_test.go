// Movrec - Movie Recommendation Web Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movrec

package poster

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"
)

func testConfig(apiURL string) Config {
	return Config{
		Enabled:           true,
		APIURL:            apiURL,
		ImageBaseURL:      "https://img.example/t/p/w500/",
		APIKey:            "secret",
		Timeout:           2 * time.Second,
		RequestsPerSecond: 1000,
		Burst:             100,
		BreakerFailures:   3,
		BreakerTimeout:    time.Minute,
		CacheTTL:          time.Hour,
	}
}

// tmdbStub answers /search/movie with a poster for every query except "Nothing".
func tmdbStub(t *testing.T, status *atomic.Int32, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if code := status.Load(); code != 0 && code != http.StatusOK {
			w.WriteHeader(int(code))
			return
		}
		if r.URL.Path != "/search/movie" || r.URL.Query().Get("api_key") != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("query") {
		case "Nothing":
			_, _ = w.Write([]byte(`{"results":[]}`))
		default:
			_, _ = w.Write([]byte(`{"results":[{"title":"x","poster_path":""},{"title":"y","poster_path":"/abc.jpg"}]}`))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestLookup_FoundAndCached(t *testing.T) {
	t.Parallel()
	var status, hits atomic.Int32
	srv := tmdbStub(t, &status, &hits)

	c := NewClient(testConfig(srv.URL), NewMemoryStore(16, time.Hour), zerolog.Nop())
	ctx := context.Background()

	p := c.Lookup(ctx, "Shawshank Redemption, The (1994)", 1994)
	if p.Placeholder || p.Result != ResultFound || p.URL != "https://img.example/t/p/w500/abc.jpg" {
		t.Fatalf("Lookup = %+v", p)
	}

	again := c.Lookup(ctx, "Shawshank Redemption, The (1994)", 1994)
	if again.URL != p.URL || again.Result != ResultCached {
		t.Errorf("second Lookup = %+v", again)
	}
	if hits.Load() != 1 {
		t.Errorf("upstream hits = %d, want 1", hits.Load())
	}
}

func TestLookup_NotFoundIsCached(t *testing.T) {
	t.Parallel()
	var status, hits atomic.Int32
	srv := tmdbStub(t, &status, &hits)
	c := NewClient(testConfig(srv.URL), NewMemoryStore(16, time.Hour), zerolog.Nop())

	p := c.Lookup(context.Background(), "Nothing (2001)", 2001)
	if !p.Placeholder || p.Result != ResultNotFound {
		t.Fatalf("Lookup = %+v", p)
	}
	p = c.Lookup(context.Background(), "Nothing (2001)", 2001)
	if !p.Placeholder || p.Result != ResultCached || hits.Load() != 1 {
		t.Errorf("Lookup = %+v after %d hits", p, hits.Load())
	}
}

func TestLookup_ErrorsOpenBreaker(t *testing.T) {
	t.Parallel()
	var status, hits atomic.Int32
	status.Store(http.StatusInternalServerError)
	srv := tmdbStub(t, &status, &hits)

	c := NewClient(testConfig(srv.URL), NewMemoryStore(16, time.Hour), zerolog.Nop())
	ctx := context.Background()

	for i := range 3 {
		p := c.Lookup(ctx, "Heat (1995)", 1995)
		if !p.Placeholder || p.Result != ResultError {
			t.Fatalf("attempt %d: %+v", i, p)
		}
	}
	if c.BreakerState() != "open" {
		t.Fatalf("BreakerState = %s, want open", c.BreakerState())
	}

	p := c.Lookup(ctx, "Heat (1995)", 1995)
	if p.Result != ResultRejected || hits.Load() != 3 {
		t.Errorf("Lookup = %+v with %d upstream hits", p, hits.Load())
	}
}

func TestLookup_Disabled(t *testing.T) {
	t.Parallel()
	c := NewClient(Config{}, nil, zerolog.Nop())

	p := c.Lookup(context.Background(), "Heat (1995)", 1995)
	if !p.Placeholder || p.Result != ResultPlaceholder || !strings.HasPrefix(p.URL, "data:image/svg+xml;base64,") {
		t.Errorf("Lookup = %+v", p)
	}
	if c.BreakerState() != "disabled" {
		t.Errorf("BreakerState = %s", c.BreakerState())
	}

	var nilClient *Client
	if nilClient.Enabled() {
		t.Error("nil client reports enabled")
	}
}

func TestLookup_CancelledContext(t *testing.T) {
	t.Parallel()
	var status, hits atomic.Int32
	srv := tmdbStub(t, &status, &hits)
	cfg := testConfig(srv.URL)
	cfg.RequestsPerSecond, cfg.Burst = 0.001, 1
	c := NewClient(cfg, nil, zerolog.Nop())

	c.Lookup(context.Background(), "Heat (1995)", 1995) // spends the only token

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := c.Lookup(ctx, "Alien (1979)", 1979)
	if !p.Placeholder || p.Result != ResultError {
		t.Errorf("Lookup = %+v", p)
	}
	if c.BreakerState() != "closed" {
		t.Errorf("cancellation tripped the breaker: %s", c.BreakerState())
	}
}

func TestBadgerStore(t *testing.T) {
	t.Parallel()
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	if err != nil {
		t.Fatalf("open badger: %v", err)
	}
	store := NewBadgerStoreFromDB(db)
	t.Cleanup(func() { _ = store.Close() })
	ctx := context.Background()

	if _, ok, err := store.Get(ctx, "missing"); ok || err != nil {
		t.Errorf("Get(missing) = %v, %v", ok, err)
	}

	want := Entry{URL: "https://img.example/a.jpg", Found: true, FetchedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	if err := store.Put(ctx, "heat|1995", want, time.Hour); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, ok, err := store.Get(ctx, "heat|1995")
	if err != nil || !ok || got.URL != want.URL || !got.Found || !got.FetchedAt.Equal(want.FetchedAt) {
		t.Errorf("Get = %+v, %v, %v", got, ok, err)
	}
	if n, err := store.Count(); err != nil || n != 1 {
		t.Errorf("Count = %d, %v", n, err)
	}
	if err := store.RunGC(); err != nil {
		t.Errorf("RunGC: %v", err)
	}
}

func TestBadgerStoreWithClient(t *testing.T) {
	t.Parallel()
	var status, hits atomic.Int32
	srv := tmdbStub(t, &status, &hits)

	store, err := OpenBadgerStore(t.TempDir())
	if err != nil {
		t.Fatalf("OpenBadgerStore: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	c := NewClient(testConfig(srv.URL), store, zerolog.Nop())
	first := c.Lookup(context.Background(), "Alien (1979)", 1979)
	second := c.Lookup(context.Background(), "Alien (1979)", 1979)
	if first.URL != second.URL || second.Result != ResultCached || hits.Load() != 1 {
		t.Errorf("first=%+v second=%+v hits=%d", first, second, hits.Load())
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	t.Parallel()
	s := NewMemoryStore(4, time.Hour)
	ctx := context.Background()

	_ = s.Put(ctx, "a", Entry{Found: true}, time.Nanosecond)
	time.Sleep(time.Millisecond)
	if _, ok, _ := s.Get(ctx, "a"); ok {
		t.Error("expired entry returned")
	}
}

func TestSearchTitle(t *testing.T) {
	t.Parallel()
	tests := []struct{ in, want string }{
		{"Shawshank Redemption, The (1994)", "The Shawshank Redemption"},
		{"City of Lost Children, The (Cité des enfants perdus, La) (1995)", "The City of Lost Children"},
		{"Heat (1995)", "Heat"},
		{"Untitled", "Untitled"},
		{"(500) Days of Summer (2009)", "(500) Days of Summer"},
		{"Armata Brancaleone, L' (1966)", "L'Armata Brancaleone"},
	}
	for _, tt := range tests {
		if got := SearchTitle(tt.in); got != tt.want {
			t.Errorf("SearchTitle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
	if cacheKey("Heat (1995)", 1995) != "heat|1995" || cacheKey("Heat", 0) != "heat|" {
		t.Error("unexpected cache keys")
	}
}

func TestPlaceholder(t *testing.T) {
	t.Parallel()

	a, b := Placeholder("Heat (1995)"), Placeholder("Heat (1995)")
	if a != b {
		t.Error("placeholder is not deterministic")
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(a, "data:image/svg+xml;base64,"))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.Contains(string(raw), ">H</text>") {
		t.Errorf("svg missing initials: %s", raw)
	}

	if got := initials("Shawshank Redemption, The (1994)"); got != "TS" {
		t.Errorf("initials = %q, want TS", got)
	}
	if got := initials("... (2001)"); got != "?" {
		t.Errorf("initials = %q, want ?", got)
	}
	if got := initials("<Tag> & Co"); got != "TC" {
		t.Errorf("initials = %q", got)
	}
}
