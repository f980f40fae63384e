package logging

import (
	"context"
	"log/slog"
	"time"
)

// Attr is the attribute type accepted by the helpers in this package.
type Attr = slog.Attr

const (
	// FieldMovieID is the structured logging key for TMDB movie identifiers.
	FieldMovieID = "movie_id"

	defaultErrorHint = "rerun with --log-level debug for request details"
	defaultImpact    = "result may be incomplete"
)

func Duration(key string, value time.Duration) Attr { return slog.Duration(key, value) }

func Int(key string, value int) Attr { return slog.Int(key, value) }

func String(key, value string) Attr { return slog.String(key, value) }

// MovieID tags a record with a TMDB movie id.
func MovieID(id int64) Attr { return slog.Int64(FieldMovieID, id) }

// Error records err under the "error" key. A nil error logs as "<nil>".
func Error(err error) Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	return slog.Any("error", err)
}

// NewNop returns a logger that discards everything.
func NewNop() *slog.Logger {
	return slog.New(NoopHandler{})
}

// NewComponentLogger scopes logger to a named component. A nil logger
// yields a no-op logger.
func NewComponentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	return logger.With(String(FieldComponent, component))
}

// WarnWithContext logs a warning that always carries event_type, error_hint
// and impact. Callers may override the hint and impact by passing their own.
func WarnWithContext(logger *slog.Logger, msg, eventType string, attrs ...Attr) {
	if logger == nil {
		return
	}
	attrs = appendMissing(attrs, String(FieldEventType, eventType))
	attrs = appendMissing(attrs, String(FieldErrorHint, defaultErrorHint))
	attrs = appendMissing(attrs, String(FieldImpact, defaultImpact))

	args := make([]any, len(attrs))
	for i, a := range attrs {
		args[i] = a
	}
	logger.Warn(msg, args...)
}

func appendMissing(attrs []Attr, attr Attr) []Attr {
	for _, a := range attrs {
		if a.Key == attr.Key {
			return attrs
		}
	}
	return append(attrs, attr)
}

// NoopHandler discards all log output.
type NoopHandler struct{}

func (NoopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (NoopHandler) Handle(context.Context, slog.Record) error { return nil }

func (NoopHandler) WithAttrs([]slog.Attr) slog.Handler { return NoopHandler{} }

func (NoopHandler) WithGroup(string) slog.Handler { return NoopHandler{} }
