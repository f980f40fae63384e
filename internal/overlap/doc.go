// Package overlap finds the actors shared between two or more movies.
//
// Compute fetches every movie's cast concurrently through a CastFetcher,
// indexes appearances by actor, keeps actors credited in at least two of the
// supplied movies, and orders them by appearance count and then name.
// Appearances always carry the movie's position in the caller's list, never
// the order in which fetches happened to finish.
//
// The package holds no state between calls and never caches cast lists.
package overlap
