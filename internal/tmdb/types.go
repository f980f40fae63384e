package tmdb

import "costar/internal/overlap"

// MovieResult is a single movie returned by search or detail lookups.
type MovieResult struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	OriginalTitle string  `json:"original_title"`
	Overview      string  `json:"overview"`
	ReleaseDate   string  `json:"release_date"`
	PosterPath    string  `json:"poster_path"`
	Popularity    float64 `json:"popularity"`
	VoteAverage   float64 `json:"vote_average"`
	VoteCount     int64   `json:"vote_count"`
}

// Movie converts the result into the aggregator's movie type.
func (r MovieResult) Movie() overlap.Movie {
	return overlap.Movie{ID: r.ID, Title: r.Title, ReleaseDate: r.ReleaseDate}
}

// SearchResponse models the TMDB paginated search response.
type SearchResponse struct {
	Page         int           `json:"page"`
	Results      []MovieResult `json:"results"`
	TotalPages   int           `json:"total_pages"`
	TotalResults int           `json:"total_results"`
}

// CastEntry is one acting credit from /movie/{id}/credits.
type CastEntry struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	ProfilePath string `json:"profile_path"`
	Character   string `json:"character"`
	CreditID    string `json:"credit_id"`
	Order       int    `json:"order"`
}

// Credits models the credits payload. Crew is not decoded.
type Credits struct {
	ID   int64       `json:"id"`
	Cast []CastEntry `json:"cast"`
}

// CastMembers converts the credits into the aggregator's cast type, keeping
// the order TMDB returned.
func (c Credits) CastMembers() []overlap.CastMember {
	members := make([]overlap.CastMember, 0, len(c.Cast))
	for _, entry := range c.Cast {
		members = append(members, overlap.CastMember{
			ActorID:     entry.ID,
			Name:        entry.Name,
			ProfilePath: entry.ProfilePath,
			Character:   entry.Character,
		})
	}
	return members
}
