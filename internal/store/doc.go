// Package store provides file-based persistence for the CLI's defaults.
//
// A single config.json under the user's config directory holds the persisted
// start point and default faction. Read-modify-write sequences are serialized
// via internal locking and writes go through a temp file plus rename, so a
// set-start cannot race a concurrent show-start into a torn file.
package store
