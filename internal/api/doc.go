// Package api defines the wire-format types and the service layer shared by
// the HTTP server and the CLI's JSON output.
//
// # Key Types
//
// Service: movie search, cast lookup, overlap runs and history reads. It owns
// the aggregator, stamps every run with a uuid and records it in history
// when a store is configured.
//
// OverlapResponse: selected movies, ranked shared actors and a summary.
//
// HistoryRun: a condensed past run as stored by the history package.
//
// # Design Notes
//
// DTOs use camelCase JSON tags. Release years are derived once here so
// consumers never parse dates. Profile image URLs are absolute when the
// actor has a profile path and omitted otherwise.
package api
