// Package commands defines the popfly CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - popfly --start EEE,NNN --end EEE,NNN   Compute distance and azimuth
//   - set-start EEE,NNN                      Persist a default start point
//   - show-start                             Show the persisted start
//   - clear-start                            Remove the persisted start
//   - set-faction nato|ru                    Persist the default mil system
//   - version                                Print the build version
//
// # Implementation
//
// The root command resolves the config directory and builds the dependency
// graph (config store, optional remote client) before any subcommand runs.
// Input and engine errors exit with status 2; everything else exits 1.
package commands
