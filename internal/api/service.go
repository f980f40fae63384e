package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"costar/internal/config"
	"costar/internal/history"
	"costar/internal/logging"
	"costar/internal/lookup"
	"costar/internal/overlap"
	"costar/internal/selection"
)

// Catalog is the movie data source behind the service.
type Catalog interface {
	lookup.Catalog
	overlap.CastFetcher
}

// HistoryStore persists overlap runs.
type HistoryStore interface {
	Record(ctx context.Context, run history.Run) error
	List(ctx context.Context, limit int) ([]history.Run, error)
	Get(ctx context.Context, id string) (history.Run, error)
}

var (
	// ErrLookup wraps failures to resolve the movies of an overlap request.
	ErrLookup = errors.New("movie lookup failed")
	// ErrHistoryDisabled is returned by history reads when no store is configured.
	ErrHistoryDisabled = errors.New("history is disabled")
)

// Service exposes costar operations returning API DTOs.
type Service struct {
	catalog      Catalog
	aggregator   *overlap.Aggregator
	history      HistoryStore
	imageBase    string
	minQuery     int
	maxResults   int
	historyLimit int
	logger       *slog.Logger

	now   func() time.Time
	newID func() string
}

// NewService constructs a Service. store may be nil to disable history.
func NewService(cfg *config.Config, catalog Catalog, store HistoryStore, logger *slog.Logger) *Service {
	if cfg == nil {
		defaults := config.Default()
		cfg = &defaults
	}
	return &Service{
		catalog:      catalog,
		aggregator:   overlap.NewAggregator(catalog, logger),
		history:      store,
		imageBase:    cfg.TMDB.ImageBaseURL,
		minQuery:     cfg.Search.MinQueryLength,
		maxResults:   cfg.Search.MaxResults,
		historyLimit: cfg.History.Limit,
		logger:       logging.NewComponentLogger(logger, "service"),
		now:          time.Now,
		newID:        uuid.NewString,
	}
}

// Search returns up to the configured number of hits for query. Queries
// shorter than the minimum length, counted before trimming, and blank
// queries return no hits without a lookup.
func (s *Service) Search(ctx context.Context, query string) (SearchResponse, error) {
	if utf8.RuneCountInString(query) < s.minQuery || strings.TrimSpace(query) == "" {
		return SearchResponse{Results: []Movie{}}, nil
	}
	movies, err := s.catalog.Search(ctx, query)
	if err != nil {
		return SearchResponse{}, fmt.Errorf("search %q: %w", query, err)
	}
	if s.maxResults > 0 && len(movies) > s.maxResults {
		movies = movies[:s.maxResults]
	}
	return SearchResponse{Results: FromMovies(movies)}, nil
}

// Credits returns the cast of one movie.
func (s *Service) Credits(ctx context.Context, movieID int64) (CreditsResponse, error) {
	cast, err := s.catalog.MovieCast(ctx, movieID)
	if err != nil {
		return CreditsResponse{}, fmt.Errorf("credits for movie %d: %w", movieID, err)
	}
	return CreditsResponse{Cast: FromCast(cast, s.imageBase)}, nil
}

// OverlapByIDs resolves TMDB ids and runs an overlap over them.
func (s *Service) OverlapByIDs(ctx context.Context, ids []int64) (OverlapResponse, error) {
	if len(ids) < overlap.MinMovies {
		return OverlapResponse{}, overlap.ErrPrecondition
	}
	movies, err := lookup.ByIDs(ctx, s.catalog, ids)
	if err != nil {
		return OverlapResponse{}, fmt.Errorf("%w: %w", ErrLookup, err)
	}
	return s.Overlap(ctx, movies)
}

// OverlapByArgs resolves ids or titles and runs an overlap over them.
func (s *Service) OverlapByArgs(ctx context.Context, args []string) (OverlapResponse, error) {
	if len(args) < overlap.MinMovies {
		return OverlapResponse{}, overlap.ErrPrecondition
	}
	movies, err := lookup.Resolve(ctx, s.catalog, args)
	if err != nil {
		return OverlapResponse{}, fmt.Errorf("%w: %w", ErrLookup, err)
	}
	return s.Overlap(ctx, movies)
}

// Overlap computes the shared actors of movies and records the run. A
// history write failure is logged and does not fail the run.
func (s *Service) Overlap(ctx context.Context, movies []overlap.Movie) (OverlapResponse, error) {
	return s.run(ctx, movies, func(ctx context.Context) ([]overlap.Result, error) {
		return s.aggregator.Compute(ctx, movies)
	})
}

// NewSelection returns an empty slot model that searches this service's
// catalog with the configured query and result limits.
func (s *Service) NewSelection() *selection.Model {
	return selection.New(s.catalog, selection.WithLimits(s.minQuery, s.maxResults))
}

// OverlapSelection runs an overlap over the movies chosen in model.
func (s *Service) OverlapSelection(ctx context.Context, model *selection.Model) (OverlapResponse, error) {
	movies := model.Selected()
	return s.run(ctx, movies, func(ctx context.Context) ([]overlap.Result, error) {
		return model.Overlap(ctx, s.aggregator)
	})
}

func (s *Service) run(ctx context.Context, movies []overlap.Movie, compute func(context.Context) ([]overlap.Result, error)) (OverlapResponse, error) {
	runID := s.newID()
	ctx = logging.WithRunID(ctx, runID)

	results, err := compute(ctx)
	if err != nil {
		return OverlapResponse{}, err
	}

	if s.history != nil {
		run := history.NewRun(runID, s.now(), movies, results)
		if err := s.history.Record(ctx, run); err != nil {
			logging.WarnWithContext(logging.WithContext(ctx, s.logger), "history record failed", "history_record_failed",
				logging.String(logging.FieldErrorHint, "check history.path permissions"),
				logging.String(logging.FieldImpact, "run not listed in history"),
				logging.Error(err),
			)
		}
	}

	return OverlapResponse{
		RunID:   runID,
		Movies:  FromMovies(movies),
		Actors:  FromResults(results, s.imageBase),
		Summary: FromSummary(overlap.Summarize(movies, results)),
	}, nil
}

// History lists recent runs. A limit of zero or less uses the configured one.
func (s *Service) History(ctx context.Context, limit int) (HistoryResponse, error) {
	if s.history == nil {
		return HistoryResponse{}, ErrHistoryDisabled
	}
	if limit <= 0 {
		limit = s.historyLimit
	}
	runs, err := s.history.List(ctx, limit)
	if err != nil {
		return HistoryResponse{}, err
	}
	return HistoryResponse{Runs: FromHistoryRuns(runs)}, nil
}

// HistoryRun returns one past run.
func (s *Service) HistoryRun(ctx context.Context, id string) (HistoryRun, error) {
	if s.history == nil {
		return HistoryRun{}, ErrHistoryDisabled
	}
	run, err := s.history.Get(ctx, id)
	if err != nil {
		return HistoryRun{}, err
	}
	return FromHistoryRun(run), nil
}
