package overlap

import (
	"errors"
	"fmt"
)

// MinMovies is the smallest selection Compute accepts.
const MinMovies = 2

var (
	// ErrPrecondition reports a selection with fewer than MinMovies movies.
	ErrPrecondition = errors.New("select at least 2 movies")
	// ErrFetch marks failures of the cast collaborator.
	ErrFetch = errors.New("cast fetch failed")
)

// FetchError describes the cast fetch that aborted a computation.
type FetchError struct {
	MovieIndex int
	MovieID    int64
	Title      string
	Err        error
}

func (e *FetchError) Error() string {
	label := e.Title
	if label == "" {
		label = fmt.Sprintf("movie %d", e.MovieID)
	}
	return fmt.Sprintf("fetch cast for %s: %v", label, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Is reports ErrFetch so callers can branch without a type assertion.
func (e *FetchError) Is(target error) bool { return target == ErrFetch }
