// Package app builds the dependency graph for the CLI: the persisted config
// store and, when configured, the remote compute client. The engine itself
// needs no wiring; it is pure.
package app
