package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"costar/internal/logging"
	"costar/internal/overlap"
)

const (
	defaultRequestsPerSecond = 4
	defaultBurst             = 8
	defaultImageBaseURL      = "https://image.tmdb.org/t/p"
)

// StatusError reports a non-200 TMDB response.
type StatusError struct {
	Endpoint   string
	StatusCode int
	Latency    time.Duration
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("tmdb %s returned %d (latency=%v)", e.Endpoint, e.StatusCode, e.Latency)
}

// NotFound reports whether TMDB answered 404.
func (e *StatusError) NotFound() bool { return e.StatusCode == http.StatusNotFound }

// Client provides access to the TMDB API.
type Client struct {
	apiKey       string
	baseURL      string
	imageBaseURL string
	language     string
	httpClient   *http.Client
	limiter      *rate.Limiter
	logger       *slog.Logger
}

var _ overlap.CastFetcher = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithRateLimit sets the client-side request rate. A non-positive rate
// disables throttling.
func WithRateLimit(requestsPerSecond float64, burst int) Option {
	return func(c *Client) {
		if requestsPerSecond <= 0 {
			c.limiter = nil
			return
		}
		if burst <= 0 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), burst)
	}
}

// WithImageBaseURL overrides the image CDN used by ProfileURL.
func WithImageBaseURL(base string) Option {
	return func(c *Client) {
		if base = strings.TrimRight(strings.TrimSpace(base), "/"); base != "" {
			c.imageBaseURL = base
		}
	}
}

// WithLogger attaches a logger for request diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logging.NewComponentLogger(logger, "tmdb")
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// New creates a TMDB client.
func New(apiKey, baseURL, language string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("tmdb api key required")
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("tmdb base url required")
	}
	client := &Client{
		apiKey:       apiKey,
		baseURL:      strings.TrimRight(baseURL, "/"),
		imageBaseURL: defaultImageBaseURL,
		language:     strings.TrimSpace(language),
		httpClient:   &http.Client{Timeout: 10 * time.Second},
		limiter:      rate.NewLimiter(rate.Limit(defaultRequestsPerSecond), defaultBurst),
		logger:       logging.NewComponentLogger(nil, "tmdb"),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// SearchMovie searches TMDB movies by title. Only the first page is fetched.
func (c *Client) SearchMovie(ctx context.Context, query string) (*SearchResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.New("query must not be empty")
	}
	params := url.Values{}
	params.Set("query", query)
	params.Set("page", "1")
	params.Set("include_adult", "false")

	var payload SearchResponse
	if err := c.getJSON(ctx, "search", "/search/movie", params, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// MovieCredits fetches the cast for a movie.
func (c *Client) MovieCredits(ctx context.Context, movieID int64) (*Credits, error) {
	if movieID <= 0 {
		return nil, errors.New("movie id must be positive")
	}
	var payload Credits
	if err := c.getJSON(ctx, "credits", "/movie/"+strconv.FormatInt(movieID, 10)+"/credits", nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// MovieDetails fetches movie details by TMDB ID.
func (c *Client) MovieDetails(ctx context.Context, movieID int64) (*MovieResult, error) {
	if movieID <= 0 {
		return nil, errors.New("movie id must be positive")
	}
	var payload MovieResult
	if err := c.getJSON(ctx, "movie details", "/movie/"+strconv.FormatInt(movieID, 10), nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Ping verifies reachability and the API key with the /configuration endpoint.
func (c *Client) Ping(ctx context.Context) error {
	var payload map[string]any
	return c.getJSON(ctx, "configuration", "/configuration", nil, &payload)
}

// Movie returns a movie's details as an aggregator movie.
func (c *Client) Movie(ctx context.Context, movieID int64) (overlap.Movie, error) {
	details, err := c.MovieDetails(ctx, movieID)
	if err != nil {
		return overlap.Movie{}, err
	}
	return details.Movie(), nil
}

// MovieCast returns the movie's cast in TMDB order.
func (c *Client) MovieCast(ctx context.Context, movieID int64) ([]overlap.CastMember, error) {
	credits, err := c.MovieCredits(ctx, movieID)
	if err != nil {
		return nil, err
	}
	return credits.CastMembers(), nil
}

// Search returns search hits as aggregator movies.
func (c *Client) Search(ctx context.Context, query string) ([]overlap.Movie, error) {
	resp, err := c.SearchMovie(ctx, query)
	if err != nil {
		return nil, err
	}
	movies := make([]overlap.Movie, 0, len(resp.Results))
	for _, result := range resp.Results {
		movies = append(movies, result.Movie())
	}
	return movies, nil
}

// ProfileURL builds an image URL for a profile path at the given size
// (for example "w92" or "w185"). Empty paths yield "".
func (c *Client) ProfileURL(profilePath, size string) string {
	return ImageURL(c.imageBaseURL, profilePath, size)
}

// ImageURL joins an image base, size, and TMDB file path.
func ImageURL(base, filePath, size string) string {
	filePath = strings.TrimSpace(filePath)
	if filePath == "" {
		return ""
	}
	if base == "" {
		base = defaultImageBaseURL
	}
	if size == "" {
		size = "original"
	}
	if !strings.HasPrefix(filePath, "/") {
		filePath = "/" + filePath
	}
	return strings.TrimRight(base, "/") + "/" + size + filePath
}

func (c *Client) getJSON(ctx context.Context, label, path string, params url.Values, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("tmdb rate limit: %w", err)
		}
	}

	endpoint, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("parse tmdb url: %w", err)
	}
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)
	if c.language != "" {
		params.Set("language", c.language)
	}
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("tmdb request",
		logging.String("endpoint", label),
		logging.String("path", path),
		logging.Int("status", resp.StatusCode),
		logging.Duration("latency", latency),
	)

	if resp.StatusCode != http.StatusOK {
		return &StatusError{Endpoint: label, StatusCode: resp.StatusCode, Latency: latency}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode tmdb %s response: %w", label, err)
	}
	return nil
}
