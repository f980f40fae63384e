package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"costar/internal/api"
	"costar/internal/config"
	"costar/internal/history"
	"costar/internal/overlap"
	"costar/internal/tmdb"
)

type catalogStub struct {
	searches int
}

func (c *catalogStub) Movie(_ context.Context, id int64) (overlap.Movie, error) {
	switch id {
	case 1:
		return overlap.Movie{ID: 1, Title: "Heat", ReleaseDate: "1995-12-15"}, nil
	case 2:
		return overlap.Movie{ID: 2, Title: "Ronin", ReleaseDate: "1998-09-25"}, nil
	case 3:
		return overlap.Movie{ID: 3, Title: "Broken"}, nil
	}
	return overlap.Movie{}, &tmdb.StatusError{Endpoint: "movie details", StatusCode: http.StatusNotFound}
}

func (c *catalogStub) Search(context.Context, string) ([]overlap.Movie, error) {
	c.searches++
	movies := make([]overlap.Movie, 10)
	for i := range movies {
		movies[i] = overlap.Movie{ID: int64(i + 1), Title: "Heat", ReleaseDate: "1995-12-15"}
	}
	return movies, nil
}

func (c *catalogStub) MovieCast(_ context.Context, id int64) ([]overlap.CastMember, error) {
	switch id {
	case 1:
		return []overlap.CastMember{{ActorID: 9, Name: "Robert De Niro", Character: "Neil"}}, nil
	case 2:
		return []overlap.CastMember{{ActorID: 9, Name: "Robert De Niro", Character: "Sam"}}, nil
	case 3:
		return nil, &tmdb.StatusError{Endpoint: "credits", StatusCode: http.StatusInternalServerError}
	}
	return nil, &tmdb.StatusError{Endpoint: "credits", StatusCode: http.StatusNotFound}
}

func newTestServer(t *testing.T, withHistory bool) (*Server, *catalogStub) {
	t.Helper()
	cfg := config.Default()
	cfg.Paths.StateDir = t.TempDir()
	cfg.Server.Bind = "127.0.0.1:0"

	catalog := &catalogStub{}
	var store api.HistoryStore
	if withHistory {
		hs, err := history.Open(filepath.Join(cfg.Paths.StateDir, "history.db"))
		if err != nil {
			t.Fatalf("open history: %v", err)
		}
		t.Cleanup(func() { _ = hs.Close() })
		store = hs
	}
	srv, err := New(&cfg, api.NewService(&cfg, catalog, store, nil), nil)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return srv, catalog
}

func serve(t *testing.T, srv *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return out
}

func TestHandleSearch(t *testing.T) {
	srv, catalog := newTestServer(t, false)

	w := serve(t, srv, "/api/search?query=H")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if resp := decode[api.SearchResponse](t, w); len(resp.Results) != 0 || catalog.searches != 0 {
		t.Fatalf("expected empty results without lookup, got %#v", resp)
	}

	w = serve(t, srv, "/api/search?query=Heat")
	resp := decode[api.SearchResponse](t, w)
	if len(resp.Results) != 8 || resp.Results[0].Year != "1995" {
		t.Fatalf("unexpected search response: %#v", resp)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatal("expected permissive CORS header")
	}
	if w.Header().Get(requestIDHeader) == "" {
		t.Fatal("expected request id header")
	}
}

func TestHandleCredits(t *testing.T) {
	srv, _ := newTestServer(t, false)

	w := serve(t, srv, "/api/credits")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if resp := decode[api.ErrorResponse](t, w); resp.Error != "movie id required" {
		t.Fatalf("unexpected error body: %#v", resp)
	}

	w = serve(t, srv, "/api/credits?id=abc")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid id, got %d", w.Code)
	}

	w = serve(t, srv, "/api/credits?id=1")
	if resp := decode[api.CreditsResponse](t, w); w.Code != http.StatusOK || len(resp.Cast) != 1 {
		t.Fatalf("unexpected credits response %d %#v", w.Code, resp)
	}

	w = serve(t, srv, "/api/credits?id=77")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown movie, got %d", w.Code)
	}
}

func TestHandleOverlap(t *testing.T) {
	srv, _ := newTestServer(t, true)

	w := serve(t, srv, "/api/overlap?id=1")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if resp := decode[api.ErrorResponse](t, w); resp.Error != overlap.ErrPrecondition.Error() {
		t.Fatalf("unexpected precondition body: %#v", resp)
	}

	w = serve(t, srv, "/api/overlap?id=1&id=2")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := decode[api.OverlapResponse](t, w)
	if resp.RunID == "" || len(resp.Actors) != 1 || resp.Actors[0].Count != 2 {
		t.Fatalf("unexpected overlap response: %#v", resp)
	}

	w = serve(t, srv, "/api/overlap?id=1,3")
	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502 on fetch failure, got %d", w.Code)
	}

	w = serve(t, srv, "/api/history")
	hist := decode[api.HistoryResponse](t, w)
	if len(hist.Runs) != 1 || hist.Runs[0].ID != resp.RunID {
		t.Fatalf("expected the successful run in history, got %#v", hist)
	}

	w = serve(t, srv, "/api/history/"+resp.RunID)
	if run := decode[api.HistoryRun](t, w); w.Code != http.StatusOK || run.SharedActors != 1 {
		t.Fatalf("unexpected history run %d %#v", w.Code, run)
	}
	if w = serve(t, srv, "/api/history/missing"); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for missing run, got %d", w.Code)
	}
}

func TestHandleHistoryDisabled(t *testing.T) {
	srv, _ := newTestServer(t, false)
	if w := serve(t, srv, "/api/history"); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 when history disabled, got %d", w.Code)
	}
	if w := serve(t, srv, "/api/history?limit=x"); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid limit, got %d", w.Code)
	}
}

func TestAuthToken(t *testing.T) {
	srv, _ := newTestServer(t, false)
	srv.token = "secret"

	if w := serve(t, srv, "/api/search?query=Heat"); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}
	req := httptest.NewRequest(http.MethodGet, "/api/search?query=Heat", nil)
	req.Header.Set("Authorization", "Bearer secret")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with token, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodOptions, "/api/search", nil)
	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected preflight to bypass auth, got %d", w.Code)
	}
}

func TestRequestIDEchoed(t *testing.T) {
	srv, _ := newTestServer(t, false)
	req := httptest.NewRequest(http.MethodGet, "/api/search?query=Heat", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	if got := w.Header().Get(requestIDHeader); got != "abc-123" {
		t.Fatalf("expected caller request id echoed, got %q", got)
	}
}

func TestStartEnforcesSingleInstance(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.StateDir = t.TempDir()
	cfg.Server.Bind = "127.0.0.1:0"
	svc := api.NewService(&cfg, &catalogStub{}, nil, nil)

	first, err := New(&cfg, svc, nil)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := first.Start(ctx); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	defer first.Stop()

	resp, err := http.Get("http://" + first.Addr() + "/api/search?query=He")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 from live server, got %d", resp.StatusCode)
	}

	second, err := New(&cfg, svc, nil)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if err := second.Start(ctx); !errors.Is(err, ErrAlreadyRunning) {
		t.Fatalf("expected ErrAlreadyRunning, got %v", err)
	}
}

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{overlap.ErrPrecondition, http.StatusBadRequest},
		{&overlap.FetchError{Err: errors.New("x")}, http.StatusBadGateway},
		{api.ErrLookup, http.StatusBadGateway},
		{api.ErrHistoryDisabled, http.StatusNotFound},
		{&tmdb.StatusError{StatusCode: http.StatusTooManyRequests}, http.StatusBadGateway},
		{context.DeadlineExceeded, http.StatusGatewayTimeout},
		{&overlap.FetchError{Err: context.Canceled}, http.StatusGatewayTimeout},
		{fmt.Errorf("%w: %w", api.ErrLookup, context.DeadlineExceeded), http.StatusGatewayTimeout},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := statusFor(tc.err); got != tc.want {
			t.Fatalf("statusFor(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}
