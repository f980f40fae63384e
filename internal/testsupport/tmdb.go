package testsupport

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"slices"
	"strconv"
	"strings"
	"sync"
	"testing"

	"costar/internal/tmdb"
)

// FakeTMDB serves the subset of the TMDB API costar uses from fixtures.
type FakeTMDB struct {
	Movies  map[int64]tmdb.MovieResult
	Credits map[int64][]tmdb.CastEntry
	// FailCredits makes /movie/{id}/credits answer 500 for the listed ids.
	FailCredits map[int64]bool

	mu       sync.Mutex
	requests []string
}

// Requests returns the request paths served so far.
func (f *FakeTMDB) Requests() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.requests...)
}

// NewTMDBServer starts a test server backed by fake and registers cleanup.
func NewTMDBServer(t testing.TB, fake *FakeTMDB) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(fake.serve))
	t.Cleanup(server.Close)
	return server
}

func (f *FakeTMDB) serve(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.requests = append(f.requests, r.URL.Path)
	f.mu.Unlock()

	if r.URL.Query().Get("api_key") == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	path := strings.Trim(r.URL.Path, "/")
	switch {
	case path == "configuration":
		writeJSON(w, map[string]any{"images": map[string]any{"secure_base_url": "https://image.tmdb.org/t/p/"}})
	case path == "search/movie":
		f.search(w, r.URL.Query().Get("query"))
	case strings.HasPrefix(path, "movie/"):
		parts := strings.Split(strings.TrimPrefix(path, "movie/"), "/")
		id, err := strconv.ParseInt(parts[0], 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if len(parts) == 2 && parts[1] == "credits" {
			f.credits(w, id)
			return
		}
		movie, ok := f.Movies[id]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		writeJSON(w, movie)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (f *FakeTMDB) search(w http.ResponseWriter, query string) {
	ids := make([]int64, 0, len(f.Movies))
	for id := range f.Movies {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	resp := tmdb.SearchResponse{Page: 1, TotalPages: 1, Results: []tmdb.MovieResult{}}
	needle := strings.ToLower(strings.TrimSpace(query))
	for _, id := range ids {
		if movie := f.Movies[id]; strings.Contains(strings.ToLower(movie.Title), needle) {
			resp.Results = append(resp.Results, movie)
		}
	}
	resp.TotalResults = len(resp.Results)
	writeJSON(w, resp)
}

func (f *FakeTMDB) credits(w http.ResponseWriter, id int64) {
	if f.FailCredits[id] {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	cast, ok := f.Credits[id]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	writeJSON(w, tmdb.Credits{ID: id, Cast: cast})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
