package blogsmith

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// The extraction codes (EINVALID through EEMPTY) are fatal to a generation
// run. EGENERATION and EPARSE are absorbed by the article and illustration
// stages and only surface from the analysis stage or standalone backend calls.
const (
	EINVALID     = "invalid"
	EUNREACHABLE = "unreachable"
	ENOTFOUND    = "not_found"
	EFORBIDDEN   = "forbidden"
	ETIMEOUT     = "timeout"
	EEMPTY       = "empty_content"
	EGENERATION  = "generation"
	EPARSE       = "parse"
	EINTERNAL    = "internal"
)

// Error represents an application-specific error. Application errors can be
// unwrapped by the caller to extract out the code & message.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("blogsmith error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error.".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
