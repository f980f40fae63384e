// Package tmdb provides the TMDB API client costar uses for movie search and
// cast lookups.
//
// It authenticates requests with an API key, throttles them client-side, and
// decodes search, credits, and movie detail payloads into typed responses.
// Adapters expose the client as the overlap cast collaborator and the
// selection searcher. Options let tests supply custom HTTP clients or turn the
// limiter off.
package tmdb
