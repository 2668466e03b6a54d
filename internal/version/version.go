// Package version carries the build version stamped via -ldflags.
package version

// Version is overridden at build time:
//
//	go build -ldflags "-X popfly/internal/version.Version=1.2.3"
var Version = "0.0.0-dev"
