package lark

import "fmt"

// APIError describes a failed OpenAPI call. Code and Msg carry the
// platform's own error envelope when one was returned; Err carries
// transport-level failures.
type APIError struct {
	Op         string
	HTTPStatus int
	Code       int
	Msg        string
	Err        error
}

func (e *APIError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("lark %s: %v", e.Op, e.Err)
	case e.Msg != "":
		return fmt.Sprintf("lark %s: code %d: %s", e.Op, e.Code, e.Msg)
	default:
		return fmt.Sprintf("lark %s: HTTP %d", e.Op, e.HTTPStatus)
	}
}

func (e *APIError) Unwrap() error {
	return e.Err
}
