package api

import (
	"costar/internal/history"
	"costar/internal/overlap"
	"costar/internal/textutil"
	"costar/internal/tmdb"
)

// profileSize is the TMDB image size used for actor thumbnails.
const profileSize = "w185"

// FromMovie converts an aggregator movie to its API representation.
func FromMovie(movie overlap.Movie) Movie {
	return Movie{
		ID:          movie.ID,
		Title:       movie.Title,
		ReleaseDate: movie.ReleaseDate,
		Year:        textutil.ReleaseYear(movie.ReleaseDate),
	}
}

// FromMovies converts a slice of movies, never returning nil.
func FromMovies(movies []overlap.Movie) []Movie {
	out := make([]Movie, len(movies))
	for i, movie := range movies {
		out[i] = FromMovie(movie)
	}
	return out
}

// FromCast converts cast members, resolving profile URLs against imageBase.
func FromCast(cast []overlap.CastMember, imageBase string) []CastMember {
	out := make([]CastMember, len(cast))
	for i, member := range cast {
		out[i] = CastMember{
			ID:          member.ActorID,
			Name:        member.Name,
			Character:   member.Character,
			ProfilePath: member.ProfilePath,
			ProfileURL:  tmdb.ImageURL(imageBase, member.ProfilePath, profileSize),
		}
	}
	return out
}

// FromResults converts ranked overlap results, keeping their order.
func FromResults(results []overlap.Result, imageBase string) []Actor {
	out := make([]Actor, len(results))
	for i, res := range results {
		apps := make([]Appearance, len(res.Appearances))
		for j, app := range res.Appearances {
			apps[j] = Appearance{
				MovieIndex: app.MovieIndex,
				MovieTitle: app.MovieTitle,
				Character:  app.Character,
			}
		}
		out[i] = Actor{
			ID:          res.ActorID,
			Name:        res.Name,
			ProfilePath: res.ProfilePath,
			ProfileURL:  tmdb.ImageURL(imageBase, res.ProfilePath, profileSize),
			Count:       len(apps),
			Appearances: apps,
		}
	}
	return out
}

// FromSummary converts an overlap summary.
func FromSummary(summary overlap.Summary) Summary {
	perMovie := summary.PerMovie
	if perMovie == nil {
		perMovie = []int{}
	}
	return Summary{
		Movies:       summary.Movies,
		SharedActors: summary.SharedActors,
		InAllMovies:  summary.InAllMovies,
		PerMovie:     perMovie,
	}
}

// FromHistoryRun converts a stored run.
func FromHistoryRun(run history.Run) HistoryRun {
	dto := HistoryRun{
		ID:           run.ID,
		CreatedAt:    run.CreatedAt.UTC().Format(dateTimeFormat),
		Movies:       make([]HistoryMovie, len(run.Movies)),
		SharedActors: run.SharedActors,
		TopActors:    make([]HistoryActor, len(run.TopActors)),
	}
	for i, movie := range run.Movies {
		dto.Movies[i] = HistoryMovie{ID: movie.ID, Title: movie.Title}
	}
	for i, actor := range run.TopActors {
		dto.TopActors[i] = HistoryActor{ID: actor.ID, Name: actor.Name, Appearances: actor.Appearances}
	}
	return dto
}

// FromHistoryRuns converts stored runs, never returning nil.
func FromHistoryRuns(runs []history.Run) []HistoryRun {
	out := make([]HistoryRun, len(runs))
	for i, run := range runs {
		out[i] = FromHistoryRun(run)
	}
	return out
}
