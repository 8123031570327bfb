// Package cmd implements the command-line interface for the serbench
// serialization benchmark harness.
//
// The package is organized into several subpackages:
//
//   - run: The benchmark command itself (select, measure, report)
//   - util: Shared utilities for command-line processing and configuration (internal use)
//
// See serbench -help for a list of all commands.
package cmd
