package dispatch

import (
	"errors"
	"fmt"
)

// Kind classifies dispatch failures. All kinds are terminal: the
// dispatcher reports them to the caller and never retries.
type Kind string

const (
	// KindToolNotFound: the name resolved to no catalog entry.
	KindToolNotFound Kind = "tool_not_found"
	// KindParamsParse: the parameter payload was malformed JSON or
	// violated the tool's schema.
	KindParamsParse Kind = "params_parse_failure"
	// KindCredentialUnavailable: a user-level credential was required
	// but none is stored or live.
	KindCredentialUnavailable Kind = "credential_unavailable"
	// KindRemoteCall: the OpenAPI client raised; the message is passed
	// through verbatim.
	KindRemoteCall Kind = "remote_call_failure"
)

// Error is the normalized dispatch failure envelope.
type Error struct {
	Kind Kind
	Tool string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Tool)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Tool, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is a dispatch Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var de *Error
	return errors.As(err, &de) && de.Kind == kind
}
