package matchcache

import (
	"errors"
	"fmt"
)

// Code classifies why matches could not be loaded.
type Code string

const (
	CodeHTTP    Code = "HTTP_ERROR"
	CodeNetwork Code = "NETWORK_ERROR"
	CodeTimeout Code = "TIMEOUT_ERROR"
	CodeParse   Code = "PARSE_ERROR"
)

const (
	messageTimeout = "Request timed out. Please check your connection and try again."
	messageNetwork = "Unable to load matches. Please check your connection and try again."
	messageParse   = "Unable to read match data. The server sent an unexpected response."
)

// Error is returned by GetMatches when no data, fresh or stale, can be served.
type Error struct {
	Code       Code
	Message    string
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// AsError unwraps err into a cache error when possible.
func AsError(err error) (*Error, bool) {
	var ce *Error
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

func httpError(status int, err error) *Error {
	return &Error{
		Code:       CodeHTTP,
		Message:    fmt.Sprintf("Failed to fetch matches: Server returned %d", status),
		StatusCode: status,
		Err:        err,
	}
}

func timeoutError(err error) *Error {
	return &Error{Code: CodeTimeout, Message: messageTimeout, Err: err}
}

func networkError(err error) *Error {
	return &Error{Code: CodeNetwork, Message: messageNetwork, Err: err}
}

func parseError(err error) *Error {
	return &Error{Code: CodeParse, Message: messageParse, Err: err}
}
