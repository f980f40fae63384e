// Package logging assembles the slog loggers used by the costar CLI and API
// server.
//
// It owns the console and JSON handlers, routes output to stdout and an
// optional log file, and exposes context helpers so a comparison run or an
// HTTP request can tag every line with its run or correlation id. NewNop
// gives tests and optional wiring a logger that cannot fail.
package logging
