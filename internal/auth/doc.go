// Package auth manages OAuth-issued user access tokens across multiple
// application identities.
//
// Tokens are persisted in a bbolt database under the user cache
// directory, one record per application id, last write wins. The login
// flow runs the OAuth authorization-code dance with a short-lived local
// callback listener; expiry is re-checked on every read and never
// auto-refreshed, so an expired record behaves like no record at all
// until the user logs in again.
package auth
