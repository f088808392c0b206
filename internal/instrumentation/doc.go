// Package instrumentation provides the OpenTelemetry meter provider
// and the metric recorders used across lark-mcp.
//
// Metrics are exported through a Prometheus reader and served from the
// /metrics endpoint when the MCP server runs over a network transport.
// When instrumentation is disabled the recorders become no-ops, so
// callers never have to branch on whether metrics are on.
package instrumentation
