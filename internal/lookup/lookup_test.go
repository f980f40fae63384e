package lookup_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"costar/internal/lookup"
	"costar/internal/overlap"
	"costar/internal/tmdb"
)

var _ lookup.Catalog = (*tmdb.Client)(nil)

type fakeCatalog struct {
	mu      sync.Mutex
	movies  map[int64]overlap.Movie
	search  map[string][]overlap.Movie
	queries []string
}

func (f *fakeCatalog) Movie(_ context.Context, id int64) (overlap.Movie, error) {
	movie, ok := f.movies[id]
	if !ok {
		return overlap.Movie{}, errors.New("not found")
	}
	return movie, nil
}

func (f *fakeCatalog) Search(_ context.Context, query string) ([]overlap.Movie, error) {
	f.mu.Lock()
	f.queries = append(f.queries, query)
	f.mu.Unlock()
	return f.search[query], nil
}

func TestParseID(t *testing.T) {
	cases := map[string]bool{"949": true, " 12 ": true, "0": false, "-3": false, "Heat": false, "": false}
	for input, want := range cases {
		if _, ok := lookup.ParseID(input); ok != want {
			t.Fatalf("ParseID(%q) ok=%v want %v", input, ok, want)
		}
	}
}

func TestResolveMixesIDsAndTitles(t *testing.T) {
	catalog := &fakeCatalog{
		movies: map[int64]overlap.Movie{949: {ID: 949, Title: "Heat"}},
		search: map[string][]overlap.Movie{
			"Ronin": {
				{ID: 1, Title: "Ronin Warriors", ReleaseDate: "1988-01-01"},
				{ID: 8195, Title: "Ronin", ReleaseDate: "1998-09-25"},
			},
		},
	}
	movies, err := lookup.Resolve(context.Background(), catalog, []string{"949", "Ronin (1998)"})
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if len(movies) != 2 || movies[0].ID != 949 || movies[1].ID != 8195 {
		t.Fatalf("unexpected movies: %#v", movies)
	}
	if len(catalog.queries) != 1 || catalog.queries[0] != "Ronin" {
		t.Fatalf("expected year hint stripped from search, got %v", catalog.queries)
	}
}

func TestResolveNoMatch(t *testing.T) {
	catalog := &fakeCatalog{search: map[string][]overlap.Movie{}}
	_, err := lookup.Resolve(context.Background(), catalog, []string{"Nothing Here"})
	if !errors.Is(err, lookup.ErrNoMatch) {
		t.Fatalf("expected ErrNoMatch, got %v", err)
	}
}

func TestByIDsKeepsOrderAndFails(t *testing.T) {
	catalog := &fakeCatalog{movies: map[int64]overlap.Movie{
		1: {ID: 1, Title: "One"},
		2: {ID: 2, Title: "Two"},
	}}
	movies, err := lookup.ByIDs(context.Background(), catalog, []int64{2, 1})
	if err != nil {
		t.Fatalf("ByIDs returned error: %v", err)
	}
	if movies[0].Title != "Two" || movies[1].Title != "One" {
		t.Fatalf("unexpected order: %#v", movies)
	}
	if _, err := lookup.ByIDs(context.Background(), catalog, []int64{1, 3}); err == nil {
		t.Fatal("expected error for unknown id")
	}
}
