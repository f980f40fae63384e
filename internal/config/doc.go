// Package config loads, normalizes, and validates costar configuration data.
//
// It supplies defaults, expands user paths (including tilde shortcuts), reads
// TOML files, loads a .env file from the working directory, and honours
// environment fallbacks such as TMDB_API_KEY. Always obtain settings through
// this package so the CLI and API server see the same sanitized values.
package config
