// Package catalog holds the static descriptor catalog for all Lark
// OpenAPI tools exposed by lark-mcp, together with the preset expander
// and the token-mode/keyword filter that select the active tool set.
//
// The catalog is immutable after construction: descriptors are plain
// data, descriptions are locale-parameterized (English and Chinese out
// of one name-aligned structure), and filtering is a pure function over
// catalog order. Nothing in this package performs I/O.
package catalog
