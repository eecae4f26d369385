// Movrec - Movie Recommendation Web Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movrec

package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/movrec/internal/catalog"
	"github.com/tomtom215/movrec/internal/config"
	"github.com/tomtom215/movrec/internal/poster"
	"github.com/tomtom215/movrec/internal/recommend"
)

// Heat, Toy Story and Jumanji together prefer Action, Adventure, Animation,
// Children, Comedy, Crime, Fantasy and Thriller. Alien and Casablanca share
// none of those and are never candidates.
var testMovies = []catalog.Movie{
	{ID: 1, Title: "Toy Story (1995)", Genres: []string{"Adventure", "Animation", "Children", "Comedy", "Fantasy"}, Year: 1995},
	{ID: 2, Title: "Jumanji (1995)", Genres: []string{"Adventure", "Children", "Fantasy"}, Year: 1995},
	{ID: 3, Title: "Heat (1995)", Genres: []string{"Action", "Crime", "Thriller"}, Year: 1995},
	{ID: 4, Title: "Se7en (1995)", Genres: []string{"Mystery", "Thriller"}, Year: 1995},
	{ID: 5, Title: "Die Hard (1988)", Genres: []string{"Action", "Crime", "Thriller"}, Year: 1988},
	{ID: 6, Title: "Matrix, The (1999)", Genres: []string{"Action", "Sci-Fi", "Thriller"}, Year: 1999},
	{ID: 7, Title: "Finding Nemo (2003)", Genres: []string{"Adventure", "Animation", "Children", "Comedy"}, Year: 2003},
	{ID: 8, Title: "Alien (1979)", Genres: []string{"Horror", "Sci-Fi"}, Year: 1979},
	{ID: 9, Title: "Casablanca (1942)", Genres: []string{"Drama", "Romance"}, Year: 1942},
	{ID: 10, Title: "Shrek (2001)", Genres: []string{"Adventure", "Animation", "Children", "Comedy", "Fantasy", "Romance"}, Year: 2001},
}

var testSelection = []string{"Toy Story (1995)", "Jumanji (1995)", "Heat (1995)"}

// flatPredictor predicts 3.0 for every movie.
type flatPredictor struct{}

func (flatPredictor) Predict(_, _ int) (float64, error) { return 3.0, nil }
func (flatPredictor) MaxKnownIdentity() (int, error)    { return 610, nil }

// stubPosters answers every lookup with a deterministic URL.
type stubPosters struct {
	calls atomic.Int64
}

func (s *stubPosters) Lookup(_ context.Context, title string, _ int) poster.Poster {
	s.calls.Add(1)
	return poster.Poster{URL: "https://img.test/" + url.PathEscape(title), Result: poster.ResultFound}
}

// emptyCatalog reports no movies, for readiness tests.
type emptyCatalog struct{}

func (emptyCatalog) Len() int                           { return 0 }
func (emptyCatalog) ByID(int) (catalog.Movie, bool)     { return catalog.Movie{}, false }
func (emptyCatalog) Search(string, int) []catalog.Movie { return nil }
func (emptyCatalog) Genres() []string                   { return nil }

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Timeout: 5 * time.Second},
		Recommend: config.RecommendConfig{
			DefaultLimit:  20,
			MaxLimit:      100,
			ExportLimit:   20,
			MinSelections: 3,
		},
	}
}

type testEnv struct {
	handler *Handler
	server  http.Handler
	posters *stubPosters
}

// newTestEnv wires a real engine over testMovies. A nil predictor serves
// the fallback list only.
func newTestEnv(t *testing.T, predictor recommend.RatingPredictor) *testEnv {
	t.Helper()

	cat, err := catalog.New(testMovies)
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	engCfg := recommend.DefaultConfig()
	engCfg.CacheEnabled = false
	engine, err := recommend.NewEngine(engCfg, cat, predictor, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	posters := &stubPosters{}
	h := NewHandler(engine, cat, nil, posters, testConfig())
	h.now = func() time.Time { return time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC) }

	mw := NewChiMiddleware(&ChiMiddlewareConfig{RateLimitDisabled: true})
	return &testEnv{
		handler: h,
		server:  NewRouter(h, mw).SetupChi(),
		posters: posters,
	}
}

func (e *testEnv) do(t *testing.T, method, target string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	e.server.ServeHTTP(rec, req)
	return rec
}

// envelope mirrors models.APIResponse with a raw data payload.
type envelope struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
	Error  *struct {
		Code    string                 `json:"code"`
		Message string                 `json:"message"`
		Details map[string]interface{} `json:"details"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder, data interface{}) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("response is not a JSON envelope: %v: %s", err, rec.Body.String())
	}
	if data != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, data); err != nil {
			t.Fatalf("decode data: %v: %s", err, env.Data)
		}
	}
	return env
}

func mustJSON(t *testing.T, v interface{}) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return b
}

// selectionQuery encodes titles as repeated key= parameters.
func selectionQuery(key string, titles []string) url.Values {
	v := url.Values{}
	for _, t := range titles {
		v.Add(key, t)
	}
	return v
}

func intPtr(v int) *int { return &v }
