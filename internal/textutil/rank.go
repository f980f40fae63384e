package textutil

import (
	"sort"
	"strconv"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"costar/internal/overlap"
)

// Match tiers, best first.
const (
	tierExact = iota
	tierFuzzy
	tierSimilar
	tierOther
)

// Candidate is a ranked search hit.
type Candidate struct {
	Movie      overlap.Movie
	Tier       int
	Distance   int
	Similarity float64
	YearMatch  bool
}

// RankTitles orders movies by how well their titles match query. A bracketed
// year in query ("Heat (1995)") promotes movies released that year within a
// tier. Equal candidates keep their input order.
func RankTitles(query string, movies []overlap.Movie) []Candidate {
	title, year := SplitYearHint(query)
	normalizedQuery := NormalizeTitle(title)
	queryPrint := NewFingerprint(title)

	candidates := make([]Candidate, 0, len(movies))
	for _, movie := range movies {
		normalizedTitle := NormalizeTitle(movie.Title)
		candidate := Candidate{
			Movie:      movie,
			Tier:       tierOther,
			Distance:   -1,
			Similarity: CosineSimilarity(queryPrint, NewFingerprint(movie.Title)),
			YearMatch:  year > 0 && ReleaseYear(movie.ReleaseDate) == strconv.Itoa(year),
		}
		switch {
		case normalizedQuery != "" && normalizedTitle == normalizedQuery:
			candidate.Tier = tierExact
		case normalizedQuery != "":
			if distance := fuzzy.RankMatchNormalizedFold(normalizedQuery, normalizedTitle); distance >= 0 {
				candidate.Tier = tierFuzzy
				candidate.Distance = distance
			} else if candidate.Similarity > 0 {
				candidate.Tier = tierSimilar
			}
		}
		candidates = append(candidates, candidate)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Tier != b.Tier {
			return a.Tier < b.Tier
		}
		if a.YearMatch != b.YearMatch {
			return a.YearMatch
		}
		switch a.Tier {
		case tierFuzzy:
			return a.Distance < b.Distance
		case tierSimilar:
			return a.Similarity > b.Similarity
		}
		return false
	})
	return candidates
}

// BestTitle returns the best-ranked movie for query, if any candidate
// matched beyond the fallback tier.
func BestTitle(query string, movies []overlap.Movie) (overlap.Movie, bool) {
	ranked := RankTitles(query, movies)
	if len(ranked) == 0 || ranked[0].Tier == tierOther {
		return overlap.Movie{}, false
	}
	return ranked[0].Movie, true
}
