// Package main hosts the costar CLI entrypoint and command graph.
//
// The Cobra command tree resolves movies from TMDB ids or titles, prints the
// actors they share, serves the HTTP API and manages the run history and the
// configuration file. Configuration, logging and the TMDB client are built
// once per invocation by commandContext so subcommands only deal with
// presentation.
package main
