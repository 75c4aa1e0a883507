// Package commands defines the venueplan CLI and wires dependencies for subcommands.
//
// Commands
//
//   - venues    Print the venues of the venue file in venue file format
//   - validate  Check the venue file and report the first format error
//   - shell     Start an interactive allocation session on stdin/stdout
//
// # Implementation
//
// The root command resolves configuration (defaults, VENUEPLAN_* environment,
// flags) and builds the zap logger before any subcommand runs. Subcommands
// load the venue file themselves so that each reports its own read errors.
package commands
