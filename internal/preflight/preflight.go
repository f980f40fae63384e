package preflight

import (
	"context"

	"costar/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes all applicable preflight checks for the given config.
// pinger may be nil to skip the TMDB check.
func RunAll(ctx context.Context, cfg *config.Config, pinger Pinger) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{
		CheckDirectoryAccess("State directory", cfg.Paths.StateDir),
		CheckDirectoryAccess("Log directory", cfg.Paths.LogDir),
	}
	if cfg.History.Enabled {
		results = append(results, CheckHistory(ctx, cfg.History.Path))
	}
	if pinger != nil {
		results = append(results, CheckTMDB(ctx, pinger))
	}
	return results
}

// Failed reports whether any result did not pass.
func Failed(results []Result) bool {
	for _, r := range results {
		if !r.Passed {
			return true
		}
	}
	return false
}
