package history

import (
	"time"

	"costar/internal/overlap"
)

// TopActorLimit caps the actors stored with each run.
const TopActorLimit = 5

// MovieRef identifies one selected movie.
type MovieRef struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// ActorRef is a condensed overlap result.
type ActorRef struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Appearances int    `json:"appearances"`
}

// Run is one recorded comparison.
type Run struct {
	ID           string     `json:"id"`
	CreatedAt    time.Time  `json:"created_at"`
	Movies       []MovieRef `json:"movies"`
	SharedActors int        `json:"shared_actors"`
	TopActors    []ActorRef `json:"top_actors"`
}

// NewRun condenses an overlap computation into a Run. Results are expected in
// their ranked order, so the first entries are the most frequent actors.
func NewRun(id string, createdAt time.Time, movies []overlap.Movie, results []overlap.Result) Run {
	run := Run{
		ID:           id,
		CreatedAt:    createdAt.UTC(),
		Movies:       make([]MovieRef, len(movies)),
		SharedActors: len(results),
		TopActors:    make([]ActorRef, 0, min(len(results), TopActorLimit)),
	}
	for i, movie := range movies {
		run.Movies[i] = MovieRef{ID: movie.ID, Title: movie.Title}
	}
	for _, res := range results {
		if len(run.TopActors) == TopActorLimit {
			break
		}
		run.TopActors = append(run.TopActors, ActorRef{
			ID:          res.ActorID,
			Name:        res.Name,
			Appearances: len(res.Appearances),
		})
	}
	return run
}

// MovieTitles returns the titles of the run's movies in selection order.
func (r Run) MovieTitles() []string {
	titles := make([]string, len(r.Movies))
	for i, movie := range r.Movies {
		titles[i] = movie.Title
	}
	return titles
}
