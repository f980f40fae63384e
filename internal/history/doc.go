// Package history keeps a SQLite log of past overlap runs.
//
// Each run records the selected movies, the number of shared actors and the
// most frequent ones. The log is informational only: cast data is always
// fetched fresh and never served from here.
package history
