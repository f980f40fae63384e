package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gofrs/flock"

	"costar/internal/api"
	"costar/internal/config"
	"costar/internal/history"
	"costar/internal/logging"
	"costar/internal/overlap"
	"costar/internal/tmdb"
)

// ErrAlreadyRunning is returned when another server holds the state lock.
var ErrAlreadyRunning = errors.New("another costar server is already running")

const shutdownTimeout = 5 * time.Second

// Server serves the costar HTTP API.
type Server struct {
	bind   string
	token  string
	svc    *api.Service
	logger *slog.Logger
	lock   *flock.Flock

	listener net.Listener
	server   *http.Server
	stopOnce sync.Once
}

// New constructs a server for svc using the [server] config section.
func New(cfg *config.Config, svc *api.Service, logger *slog.Logger) (*Server, error) {
	if cfg == nil || svc == nil {
		return nil, errors.New("server requires config and service")
	}
	bind := strings.TrimSpace(cfg.Server.Bind)
	if bind == "" {
		return nil, errors.New("server.bind is empty")
	}
	s := &Server{
		bind:   bind,
		token:  cfg.Server.Token,
		svc:    svc,
		logger: logging.NewComponentLogger(logger, "api-server"),
		lock:   flock.New(cfg.LockPath()),
	}
	s.server = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout:      time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s, nil
}

// Handler returns the routed handler with middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/search", s.handleSearch)
	mux.HandleFunc("GET /api/credits", s.handleCredits)
	mux.HandleFunc("GET /api/overlap", s.handleOverlap)
	mux.HandleFunc("GET /api/history", s.handleHistory)
	mux.HandleFunc("GET /api/history/{id}", s.handleHistoryRun)

	var handler http.Handler = mux
	handler = withAuth(s.token, handler)
	handler = withAccessLog(s.logger, handler)
	handler = withCORS(handler)
	return withRequestID(handler)
}

// Start acquires the single-instance lock and begins serving. The server
// shuts down when ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	ok, err := s.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return ErrAlreadyRunning
	}

	listener, err := net.Listen("tcp", s.bind)
	if err != nil {
		_ = s.lock.Unlock()
		return fmt.Errorf("api listen: %w", err)
	}
	s.listener = listener

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("api server error", logging.Error(err))
		}
	}()
	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	s.logger.Info("api server listening", logging.String("address", listener.Addr().String()))
	return nil
}

// Run starts the server and blocks until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	if err := s.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()
	s.Stop()
	return nil
}

// Stop shuts the server down and releases the lock. It is safe to call more
// than once.
func (s *Server) Stop() {
	s.stopOnce.Do(func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.server.Shutdown(shutdownCtx); err != nil {
			s.logger.Warn("api server shutdown incomplete", logging.Error(err))
		}
		_ = s.lock.Unlock()
		s.logger.Info("api server stopped")
	})
}

// Addr returns the bound listener address once started.
func (s *Server) Addr() string {
	if s.listener == nil {
		return s.bind
	}
	return s.listener.Addr().String()
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	resp, err := s.svc.Search(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCredits(w http.ResponseWriter, r *http.Request) {
	raw := strings.TrimSpace(r.URL.Query().Get("id"))
	if raw == "" {
		s.writeError(w, http.StatusBadRequest, "movie id required")
		return
	}
	id, err := parseMovieID(raw)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	resp, err := s.svc.Credits(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleOverlap(w http.ResponseWriter, r *http.Request) {
	var ids []int64
	for _, value := range r.URL.Query()["id"] {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := parseMovieID(part)
			if err != nil {
				s.writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			ids = append(ids, id)
		}
	}
	resp, err := s.svc.OverlapByIDs(r.Context(), ids)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			s.writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}
	resp, err := s.svc.History(r.Context(), limit)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHistoryRun(w http.ResponseWriter, r *http.Request) {
	run, err := s.svc.HistoryRun(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, run)
}

func parseMovieID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid movie id %q", raw)
	}
	return id, nil
}

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	var statusErr *tmdb.StatusError
	switch {
	case errors.Is(err, overlap.ErrPrecondition):
		return http.StatusBadRequest
	case errors.Is(err, api.ErrHistoryDisabled), errors.Is(err, history.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, overlap.ErrFetch), errors.Is(err, api.ErrLookup):
		return http.StatusBadGateway
	case errors.As(err, &statusErr) && statusErr.NotFound():
		return http.StatusNotFound
	case errors.As(err, &statusErr):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logging.WithContext(r.Context(), s.logger).Error("request failed",
			logging.String("path", r.URL.Path),
			logging.Int("status", status),
			logging.Error(err),
		)
	}
	s.writeError(w, status, err.Error())
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", logging.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, api.ErrorResponse{Error: message})
}
