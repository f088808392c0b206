// Package cmd implements the command-line interface for lark-mcp.
//
// This package provides the following commands:
//   - mcp: Start the MCP server exposing the tool catalog to AI assistants
//   - list-tools: List the tools a given configuration would expose
//   - describe: Show one tool's description, bindings and parameter schema
//   - call: Invoke a single tool directly and print its result as JSON
//   - login: Run the OAuth flow and store a user access token
//   - logout: Remove one or all stored user access tokens
//   - whoami: List the stored login sessions
//   - mail-export: Fetch, parse and export mailbox messages as a text digest
//   - generate-docs: Generate markdown documentation for all catalog tools
//   - version: Display version information
package cmd
