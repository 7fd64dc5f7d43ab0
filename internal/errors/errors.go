package errors

import (
	"errors"
	"strings"
)

// Code identifies a structured error type used across the application.
type Code string

const (
	CodeUnknown Code = "unknown"

	// Client/API errors
	CodeNetwork    Code = "network"
	CodeHTTPStatus Code = "http_status"
	CodeParse      Code = "parse"

	// Storage errors
	CodeStorage            Code = "storage"
	CodeChannel            Code = "channel"
	CodeMigration          Code = "migration"
	CodeNoDBPathParent     Code = "no_db_path_parent"
	CodeIO                 Code = "io"
	CodeConfigurationError Code = "configuration_error"
)

// Error represents a structured error with a machine-readable code plus message.
type Error struct {
	Code       Code
	Message    string
	Err        error
	HTTPStatus int // only meaningful when Code == CodeHTTPStatus
}

// Error implements the error interface.
func (e Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Code)
}

// Unwrap returns the wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// Fatal reports whether this error should terminate the program. Only
// migration failures are fatal; every other code is reported upward and
// the controller keeps running.
func (e Error) Fatal() bool {
	return e.Code == CodeMigration
}

// New wraps an error with a code/message.
func New(code Code, msg string, err error) Error {
	return Error{Code: code, Message: msg, Err: err}
}

// NewHTTPStatus builds a structured error for a non-2xx upstream response,
// mapping the status to a user-facing message. reason is the response's
// HTTP status text (e.g. "403 Forbidden"); it is surfaced verbatim for any
// 4xx code that isn't one of the two special-cased below.
func NewHTTPStatus(status int, reason string) Error {
	var msg string
	switch {
	case status == 429:
		msg = "Rate limited. Please wait."
	case status == 404:
		msg = "Item not found."
	case status >= 500:
		msg = "Server error."
	default:
		msg = reason
	}
	return Error{Code: CodeHTTPStatus, Message: msg, HTTPStatus: status}
}

// NewNetwork maps common transport failure substrings to a user-facing
// message, falling back to a generic network message.
func NewNetwork(err error) Error {
	msg := "Network error."
	if err != nil {
		s := strings.ToLower(err.Error())
		switch {
		case strings.Contains(s, "timed out"), strings.Contains(s, "timeout"), strings.Contains(s, "deadline exceeded"):
			msg = "Request timed out."
		case strings.Contains(s, "dns"), strings.Contains(s, "resolve"), strings.Contains(s, "no such host"):
			msg = "Could not reach server."
		}
	}
	return Error{Code: CodeNetwork, Message: msg, Err: err}
}

// CodeOf walks the error chain and returns the first structured code found.
func CodeOf(err error) Code {
	var structured Error
	if errors.As(err, &structured) {
		return structured.Code
	}
	return CodeUnknown
}

// IsCode reports whether the error (or its unwrap chain) matches the provided code.
func IsCode(err error, code Code) bool {
	return CodeOf(err) == code
}
