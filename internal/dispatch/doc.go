// Package dispatch resolves tool names against the catalog, validates
// caller-supplied parameters, attaches stored credentials and executes
// the tool against the OpenAPI client, normalizing every outcome into
// either an unwrapped data payload or a typed Error.
//
// The dispatcher never retries and never writes to the credential
// store; a failed credential lookup degrades to "no credential
// attached" because most tools run fine on the tenant token. Tools
// that only accept user authorization are the exception: without a
// usable user token they fail with KindCredentialUnavailable before
// any remote call.
package dispatch
