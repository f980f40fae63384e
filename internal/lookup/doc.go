// Package lookup turns user input into movies for an overlap run.
//
// Numeric arguments are treated as TMDB ids and fetched directly. Anything
// else is searched by title and the best-ranked hit is taken. Lookups run
// concurrently and fail fast like the cast fetches themselves.
package lookup
