// Package server wires the tool catalog onto an MCP server: it owns
// the shared context (OpenAPI client, credential store, dispatcher)
// and registers each filtered catalog entry as an MCP tool whose
// handler runs through the dispatcher.
package server
