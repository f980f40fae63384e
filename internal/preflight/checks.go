package preflight

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/sys/unix"

	"costar/internal/history"
	"costar/internal/tmdb"
)

// Pinger verifies API reachability and credentials.
type Pinger interface {
	Ping(ctx context.Context) error
}

const tmdbCheckTimeout = 10 * time.Second

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckHistory opens the history database and lists one run.
func CheckHistory(ctx context.Context, path string) Result {
	const name = "History database"

	store, err := history.Open(path)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", path, err)}
	}
	defer store.Close()
	if _, err := store.List(ctx, 1); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: path}
}

// CheckTMDB verifies TMDB connectivity and the API key with a single attempt.
func CheckTMDB(ctx context.Context, pinger Pinger) Result {
	const name = "TMDB"

	checkCtx, cancel := context.WithTimeout(ctx, tmdbCheckTimeout)
	defer cancel()

	err := pinger.Ping(checkCtx)
	if err == nil {
		return Result{Name: name, Passed: true, Detail: "API reachable"}
	}
	return Result{Name: name, Detail: summarizeTMDBError(err)}
}

func summarizeTMDBError(err error) string {
	var statusErr *tmdb.StatusError
	if errors.As(err, &statusErr) {
		switch statusErr.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return "auth failed (invalid api key)"
		case http.StatusTooManyRequests:
			return "rate limited (try again later)"
		}
		return fmt.Sprintf("unexpected status %d", statusErr.StatusCode)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "timed out"
	}
	return fmt.Sprintf("unreachable (%v)", err)
}
