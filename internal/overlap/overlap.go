package overlap

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"costar/internal/logging"
)

// Aggregator computes cast overlap using a single cast collaborator.
type Aggregator struct {
	fetcher CastFetcher
	logger  *slog.Logger
}

// NewAggregator wires a fetcher and logger. A nil logger discards output.
func NewAggregator(fetcher CastFetcher, logger *slog.Logger) *Aggregator {
	return &Aggregator{
		fetcher: fetcher,
		logger:  logging.NewComponentLogger(logger, "overlap"),
	}
}

// Compute is a convenience wrapper around an Aggregator without logging.
func Compute(ctx context.Context, movies []Movie, fetcher CastFetcher) ([]Result, error) {
	return NewAggregator(fetcher, nil).Compute(ctx, movies)
}

// Compute fetches every movie's cast concurrently and returns the actors
// credited in at least two of them. The first failed fetch cancels the rest
// and is returned as a *FetchError; no partial result is produced.
func (a *Aggregator) Compute(ctx context.Context, movies []Movie) ([]Result, error) {
	if len(movies) < MinMovies {
		return nil, ErrPrecondition
	}
	logger := logging.WithContext(ctx, a.logger)

	casts, err := a.fetchAll(ctx, logger, movies)
	if err != nil {
		logger.Warn("overlap aborted",
			logging.String(logging.FieldEventType, "overlap_fetch_failed"),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "retry the comparison"),
		)
		return nil, err
	}

	results := aggregate(movies, casts)
	logger.Info("overlap computed",
		logging.Int("movies", len(movies)),
		logging.Int("shared_actors", len(results)),
	)
	return results, nil
}

func (a *Aggregator) fetchAll(ctx context.Context, logger *slog.Logger, movies []Movie) ([][]CastMember, error) {
	// Indexed by input position so grouping ignores completion order.
	casts := make([][]CastMember, len(movies))
	group, groupCtx := errgroup.WithContext(ctx)
	for i, movie := range movies {
		group.Go(func() error {
			start := time.Now()
			cast, err := a.fetcher.MovieCast(groupCtx, movie.ID)
			if err != nil {
				return &FetchError{MovieIndex: i, MovieID: movie.ID, Title: movie.Title, Err: err}
			}
			logger.Debug("cast fetched",
				logging.MovieID(movie.ID),
				logging.Int("movie_index", i),
				logging.Int("cast_size", len(cast)),
				logging.Duration("latency", time.Since(start)),
			)
			casts[i] = cast
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return casts, nil
}

type accumulator struct {
	result Result
	seq    int
}

func aggregate(movies []Movie, casts [][]CastMember) []Result {
	byActor := make(map[int64]*accumulator)
	for i, cast := range casts {
		for _, member := range cast {
			acc, ok := byActor[member.ActorID]
			if !ok {
				acc = &accumulator{
					result: Result{
						ActorID:     member.ActorID,
						Name:        member.Name,
						ProfilePath: member.ProfilePath,
					},
					seq: len(byActor),
				}
				byActor[member.ActorID] = acc
			}
			// Repeat credits inside one movie each append.
			acc.result.Appearances = append(acc.result.Appearances, Appearance{
				MovieIndex: i,
				MovieTitle: movies[i].Title,
				Character:  member.Character,
			})
		}
	}

	shared := make([]*accumulator, 0, len(byActor))
	for _, acc := range byActor {
		if len(acc.result.Appearances) >= MinMovies {
			shared = append(shared, acc)
		}
	}
	// Collators are not safe for concurrent use; one per call.
	names := collate.New(language.English)
	sort.Slice(shared, func(i, j int) bool {
		a, b := shared[i], shared[j]
		if la, lb := len(a.result.Appearances), len(b.result.Appearances); la != lb {
			return la > lb
		}
		if c := names.CompareString(a.result.Name, b.result.Name); c != 0 {
			return c < 0
		}
		return a.seq < b.seq
	})

	results := make([]Result, len(shared))
	for i, acc := range shared {
		results[i] = acc.result
	}
	return results
}
