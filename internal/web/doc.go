// Package web is the HTTP adapter around the compute engine.
//
// The server exposes the JSON API served by popflyd; the client calls the
// same API from the CLI when a remote instance is configured. Both speak the
// exact wire shape of the CLI's --json output, so every interface reports
// identical numbers.
//
// HTTP API
//
//	GET  /api/health
//	    Liveness probe; returns {"status":"ok"}.
//
//	GET  /api/version
//	    Returns the build version.
//
//	POST /api/compute
//	    Body: {start:[token|number, token|number], end:[...],
//	    precision?: 0..6, faction?: "nato"|"ru"}.
//	    Malformed shapes/types are rejected with 422 before the engine runs;
//	    engine errors (bad token, non-finite value, wrong arity) return 400
//	    with the error message. Success echoes the CLI JSON payload plus the
//	    resolved faction.
package web
