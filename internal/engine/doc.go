// Package engine is the computation core shared by the CLI and HTTP adapters.
//
// It is pure and synchronous: no I/O, no shared state, safe to call from any
// number of goroutines. Errors from coordinate parsing propagate to the caller
// untouched; each adapter translates them into its own failure signal.
package engine
