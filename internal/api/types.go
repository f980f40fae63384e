package api

// dateTimeFormat is used for RFC3339 timestamps in API payloads.
const dateTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// Movie describes a search hit or a selected movie.
type Movie struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	ReleaseDate string `json:"releaseDate,omitempty"`
	Year        string `json:"year"`
}

// CastMember is one acting credit of a single movie.
type CastMember struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character"`
	ProfilePath string `json:"profilePath,omitempty"`
	ProfileURL  string `json:"profileUrl,omitempty"`
}

// Appearance is one credit of a shared actor.
type Appearance struct {
	MovieIndex int    `json:"movieIndex"`
	MovieTitle string `json:"movieTitle"`
	Character  string `json:"character"`
}

// Actor is an actor credited in at least two selected movies.
type Actor struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	ProfilePath string       `json:"profilePath,omitempty"`
	ProfileURL  string       `json:"profileUrl,omitempty"`
	Count       int          `json:"count"`
	Appearances []Appearance `json:"appearances"`
}

// RoleIn returns the character of the first credit in movie index i.
func (a Actor) RoleIn(i int) (string, bool) {
	for _, app := range a.Appearances {
		if app.MovieIndex == i {
			return app.Character, true
		}
	}
	return "", false
}

// Summary aggregates counts for an overlap run.
type Summary struct {
	Movies       int   `json:"movies"`
	SharedActors int   `json:"sharedActors"`
	InAllMovies  int   `json:"inAllMovies"`
	PerMovie     []int `json:"perMovie"`
}

// OverlapResponse is the result of one overlap run.
type OverlapResponse struct {
	RunID   string  `json:"runId"`
	Movies  []Movie `json:"movies"`
	Actors  []Actor `json:"actors"`
	Summary Summary `json:"summary"`
}

// SearchResponse wraps movie search hits.
type SearchResponse struct {
	Results []Movie `json:"results"`
}

// CreditsResponse wraps a movie's cast.
type CreditsResponse struct {
	Cast []CastMember `json:"cast"`
}

// HistoryActor is a condensed shared actor stored with a run.
type HistoryActor struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Appearances int    `json:"appearances"`
}

// HistoryMovie identifies a movie of a past run.
type HistoryMovie struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// HistoryRun describes a past overlap run.
type HistoryRun struct {
	ID           string         `json:"id"`
	CreatedAt    string         `json:"createdAt"`
	Movies       []HistoryMovie `json:"movies"`
	SharedActors int            `json:"sharedActors"`
	TopActors    []HistoryActor `json:"topActors"`
}

// HistoryResponse wraps a list of past runs.
type HistoryResponse struct {
	Runs []HistoryRun `json:"runs"`
}

// ErrorResponse is the body of every non-2xx HTTP reply.
type ErrorResponse struct {
	Error string `json:"error"`
}
