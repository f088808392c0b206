// Package logging provides structured logging helpers built on log/slog.
//
// All diagnostics go to stderr: stdout is reserved for the CLI's JSON
// output and for the stdio MCP transport. The package defines the common
// attribute keys used across the codebase so that log lines stay
// consistent and machine-filterable.
package logging
