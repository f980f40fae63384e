package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrNotFound is returned when a run id does not exist.
var ErrNotFound = errors.New("history run not found")

const runColumns = "id, created_at, movies_json, shared_actors, top_actors_json"

// timeLayout is fixed width so created_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Record stores a run. An existing run with the same id is replaced.
func (s *Store) Record(ctx context.Context, run Run) error {
	if strings.TrimSpace(run.ID) == "" {
		return errors.New("history run id is empty")
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}
	movies, err := json.Marshal(run.Movies)
	if err != nil {
		return fmt.Errorf("encode movies: %w", err)
	}
	actors := run.TopActors
	if actors == nil {
		actors = []ActorRef{}
	}
	topActors, err := json.Marshal(actors)
	if err != nil {
		return fmt.Errorf("encode top actors: %w", err)
	}
	_, err = s.exec(ctx,
		`INSERT OR REPLACE INTO runs (`+runColumns+`) VALUES (?, ?, ?, ?, ?)`,
		run.ID,
		run.CreatedAt.UTC().Format(timeLayout),
		string(movies),
		run.SharedActors,
		string(topActors),
	)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

// List returns up to limit runs, newest first. A limit of zero or less
// returns every run.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	query := `SELECT ` + runColumns + ` FROM runs ORDER BY created_at DESC, id`
	var args []any
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Get returns the run with id, or ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (Run, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return run, err
}

// Clear removes every run and returns how many were deleted.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.exec(ctx, `DELETE FROM runs`)
	if err != nil {
		return 0, fmt.Errorf("clear runs: %w", err)
	}
	return res.RowsAffected()
}

// Prune keeps the newest keep runs and deletes the rest.
func (s *Store) Prune(ctx context.Context, keep int) (int64, error) {
	if keep <= 0 {
		return 0, nil
	}
	res, err := s.exec(ctx,
		`DELETE FROM runs WHERE id NOT IN (SELECT id FROM runs ORDER BY created_at DESC, id LIMIT ?)`,
		keep,
	)
	if err != nil {
		return 0, fmt.Errorf("prune runs: %w", err)
	}
	return res.RowsAffected()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (Run, error) {
	var (
		run                   Run
		createdAt             string
		moviesJSON, topActors string
	)
	if err := row.Scan(&run.ID, &createdAt, &moviesJSON, &run.SharedActors, &topActors); err != nil {
		return Run{}, err
	}
	ts, err := time.Parse(timeLayout, createdAt)
	if err != nil {
		return Run{}, fmt.Errorf("parse created_at for run %s: %w", run.ID, err)
	}
	run.CreatedAt = ts
	if err := json.Unmarshal([]byte(moviesJSON), &run.Movies); err != nil {
		return Run{}, fmt.Errorf("decode movies for run %s: %w", run.ID, err)
	}
	if err := json.Unmarshal([]byte(topActors), &run.TopActors); err != nil {
		return Run{}, fmt.Errorf("decode top actors for run %s: %w", run.ID, err)
	}
	return run, nil
}
