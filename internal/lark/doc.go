// Package lark provides a minimal client for the Lark/Feishu OpenAPI.
//
// The client is deliberately generic: it knows how to obtain and cache
// the tenant access token, attach either tenant- or user-level
// authorization to a request, and decode the standard response
// envelope. Which endpoints exist and what their payloads look like is
// the catalog's business, not the client's.
package lark
