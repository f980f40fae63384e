package tmdb

import (
	"log/slog"
	"time"

	"costar/internal/config"
)

// NewFromConfig builds a client from the [tmdb] config section.
func NewFromConfig(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	t := cfg.TMDB
	return New(t.APIKey, t.BaseURL, t.Language,
		WithRateLimit(t.RequestsPerSecond, t.Burst),
		WithImageBaseURL(t.ImageBaseURL),
		WithTimeout(time.Duration(t.TimeoutSeconds)*time.Second),
		WithLogger(logger),
	)
}
