package model

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	ErrorStream ErrorKind = "stream"
	ErrorParse  ErrorKind = "parse"
	ErrorWrite  ErrorKind = "write"
)

// Error is a failure of one conversion run. Input holds the text involved,
// if any.
type Error struct {
	Kind  ErrorKind
	Input string
	Err   error
}

func NewStreamError(err error) *Error {
	return &Error{Kind: ErrorStream, Err: err}
}

func NewParseError(input string, err error) *Error {
	return &Error{Kind: ErrorParse, Input: input, Err: err}
}

func NewWriteError(err error) *Error {
	return &Error{Kind: ErrorWrite, Err: err}
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrorParse:
		return fmt.Sprintf("parse error: %q is not a whole number: %v", e.Input, e.Err)
	case ErrorStream:
		return fmt.Sprintf("failed to read line: %v", e.Err)
	case ErrorWrite:
		return fmt.Sprintf("failed to write output: %v", e.Err)
	}
	return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err, or anything it wraps, is an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
