package overlap

// Summary condenses a result list for status lines and API payloads.
type Summary struct {
	Movies       int   `json:"movies"`
	SharedActors int   `json:"shared_actors"`
	InAllMovies  int   `json:"in_all_movies"`
	PerMovie     []int `json:"per_movie"`
}

// Summarize counts shared actors overall and per selected movie. An actor is
// counted once per movie even when credited more than once in it.
func Summarize(movies []Movie, results []Result) Summary {
	summary := Summary{
		Movies:       len(movies),
		SharedActors: len(results),
		PerMovie:     make([]int, len(movies)),
	}
	for _, res := range results {
		present := 0
		for i := range movies {
			if _, ok := res.AppearanceIn(i); ok {
				summary.PerMovie[i]++
				present++
			}
		}
		if len(movies) > 0 && present == len(movies) {
			summary.InAllMovies++
		}
	}
	return summary
}
