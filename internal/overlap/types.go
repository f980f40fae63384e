package overlap

import "context"

// Movie is a film the user picked from search results.
type Movie struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	ReleaseDate string `json:"release_date,omitempty"`
}

// CastMember is one credited actor for a movie as reported by the metadata API.
type CastMember struct {
	ActorID     int64  `json:"id"`
	Name        string `json:"name"`
	ProfilePath string `json:"profile_path,omitempty"`
	Character   string `json:"character,omitempty"`
}

// Appearance records a single credit of an actor in one of the selected movies.
type Appearance struct {
	MovieIndex int    `json:"movie_index"`
	MovieTitle string `json:"movie_title"`
	Character  string `json:"character"`
}

// Result is an actor credited in two or more of the selected movies.
type Result struct {
	ActorID     int64        `json:"id"`
	Name        string       `json:"name"`
	ProfilePath string       `json:"profile_path,omitempty"`
	Appearances []Appearance `json:"appearances"`
}

// AppearanceIn returns the first appearance recorded for movieIndex.
// Later duplicates for the same movie are never surfaced.
func (r Result) AppearanceIn(movieIndex int) (Appearance, bool) {
	for _, app := range r.Appearances {
		if app.MovieIndex == movieIndex {
			return app, true
		}
	}
	return Appearance{}, false
}

// CastFetcher loads the cast list for a movie.
type CastFetcher interface {
	MovieCast(ctx context.Context, movieID int64) ([]CastMember, error)
}

// CastFetcherFunc adapts a function to CastFetcher.
type CastFetcherFunc func(ctx context.Context, movieID int64) ([]CastMember, error)

// MovieCast calls f.
func (f CastFetcherFunc) MovieCast(ctx context.Context, movieID int64) ([]CastMember, error) {
	return f(ctx, movieID)
}
