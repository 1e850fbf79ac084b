package openai

import (
	"errors"
	"fmt"
)

var (
	ErrRequestFailed   = errors.New("request failed")
	ErrDecodeFailed    = errors.New("decode response failed")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrStreamFailed    = errors.New("stream failed")
)

// APIError is the error payload the service returns alongside a
// non-success status. Param and Code vary across error types upstream,
// so they stay untyped.
type APIError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Param   any    `json:"param,omitempty"`
	Code    any    `json:"code,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: %s (type %s)", e.Message, e.Type)
}

type apiErrorResponse struct {
	Error APIError `json:"error"`
}
