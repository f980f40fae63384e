// Package preflight runs environment checks before costar talks to TMDB:
// directory permissions, the history database and TMDB reachability with the
// configured API key. Each check returns a Result the CLI renders as a
// status line.
package preflight
