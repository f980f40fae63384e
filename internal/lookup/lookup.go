package lookup

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"costar/internal/overlap"
	"costar/internal/textutil"
)

// Catalog finds movies by id or title.
type Catalog interface {
	Movie(ctx context.Context, movieID int64) (overlap.Movie, error)
	Search(ctx context.Context, query string) ([]overlap.Movie, error)
}

// ErrNoMatch is returned when a title search has no usable hit.
var ErrNoMatch = errors.New("no matching movie")

// ParseID reports whether arg is a positive TMDB id.
func ParseID(arg string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// Resolve maps each argument to a movie, keeping argument order.
func Resolve(ctx context.Context, catalog Catalog, args []string) ([]overlap.Movie, error) {
	movies := make([]overlap.Movie, len(args))
	group, gctx := errgroup.WithContext(ctx)
	for i, arg := range args {
		group.Go(func() error {
			movie, err := resolveOne(gctx, catalog, arg)
			if err != nil {
				return fmt.Errorf("resolve %q: %w", arg, err)
			}
			movies[i] = movie
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return movies, nil
}

// ByIDs fetches movies for ids, keeping their order.
func ByIDs(ctx context.Context, catalog Catalog, ids []int64) ([]overlap.Movie, error) {
	movies := make([]overlap.Movie, len(ids))
	group, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		group.Go(func() error {
			movie, err := catalog.Movie(gctx, id)
			if err != nil {
				return fmt.Errorf("movie %d: %w", id, err)
			}
			movies[i] = movie
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return movies, nil
}

func resolveOne(ctx context.Context, catalog Catalog, arg string) (overlap.Movie, error) {
	if id, ok := ParseID(arg); ok {
		return catalog.Movie(ctx, id)
	}
	title, _ := textutil.SplitYearHint(arg)
	if title == "" {
		return overlap.Movie{}, errors.New("empty title")
	}
	hits, err := catalog.Search(ctx, title)
	if err != nil {
		return overlap.Movie{}, err
	}
	movie, ok := textutil.BestTitle(arg, hits)
	if !ok {
		return overlap.Movie{}, ErrNoMatch
	}
	return movie, nil
}
