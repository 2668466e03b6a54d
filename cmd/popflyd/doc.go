// Package main runs popflyd, the HTTP API server for the popfly compute
// engine.
//
// Configuration comes from the environment:
//
//	POPFLY_ADDR     listen address (default 127.0.0.1:8080)
//	POPFLY_ENV      "production" switches gin to release mode
//
// The server is stateless: every computation is independent and the persisted
// CLI config is never read here, so any number of instances can run side by
// side. SIGINT/SIGTERM trigger a graceful shutdown.
package main
