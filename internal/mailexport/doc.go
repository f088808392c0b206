// Package mailexport implements the batch mail export pipeline: fetch
// a page-bounded list of message ids from a mailbox folder, fetch each
// message's detail, reduce HTML bodies to plain text, and export the
// result in a summarization-friendly format.
//
// The pipeline is sequential: one message detail fetch at a time, with
// a short delay between requests, so a large export never hammers the
// mail API.
package mailexport
