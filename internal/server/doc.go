// Package server exposes the costar service over HTTP.
//
// Routes:
//
//	GET /api/search?query=       movie search hits
//	GET /api/credits?id=         cast of one movie
//	GET /api/overlap?id=&id=     shared actors of two or more movies
//	GET /api/history[?limit=]    recent overlap runs
//	GET /api/history/{id}        one overlap run
//
// Every response carries a permissive CORS header and an X-Request-ID. Only
// one server may run per state directory; a file lock enforces this.
package server
