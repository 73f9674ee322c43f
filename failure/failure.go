// Package failure defines the error kinds raised by fluentcheck assertions.
//
// An [AssertionError] means the value under test did not satisfy an assertion. An
// [ArgumentError] means the assertion itself was called incorrectly, for example with a nil
// value to compare against. The two never overlap, so tooling can tell "the test failed" apart
// from "the test is wrong". Parse errors produced while reading a textual argument are not
// wrapped by this package and reach the caller as the parser returned them.
package failure

import (
	"errors"
	"fmt"
)

var (
	// ErrAssertionFailed is the sentinel wrapped by every AssertionError.
	ErrAssertionFailed = errors.New("assertion failed")
	// ErrInvalidArgument is the sentinel wrapped by every ArgumentError.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Location identifies the call site of a failing assertion.
type Location struct {
	Function string `json:"function"`
	Filename string `json:"filename"`
	Line     int    `json:"line"`
}

func (l Location) String() string {
	if l.Filename == "" {
		return "unknown"
	}
	return fmt.Sprintf("%s:%d", l.Filename, l.Line)
}

// AssertionError is raised when a predicate evaluates to false or the actual value is absent.
type AssertionError struct {
	// Template is the id of the message template the failure was rendered from.
	Template    string
	Description string
	// Message is the rendered text, including the description prefix when there is one.
	Message  string
	Location Location
}

// NewAssertion builds an AssertionError, prefixing the message with "[description] " when a
// description is set.
func NewAssertion(template, description, rendered string) *AssertionError {
	msg := rendered
	if description != "" {
		msg = "[" + description + "] " + rendered
	}
	return &AssertionError{Template: template, Description: description, Message: msg}
}

func (e *AssertionError) Error() string {
	if e == nil {
		return ErrAssertionFailed.Error()
	}
	return e.Message
}

// Unwrap returns ErrAssertionFailed so that errors.Is works on any assertion failure.
func (e *AssertionError) Unwrap() error {
	return ErrAssertionFailed
}

// ArgumentError is raised when an assertion receives a nil or unusable argument.
type ArgumentError struct {
	Message string
}

// NewArgument builds an ArgumentError with a fixed message.
func NewArgument(msg string) *ArgumentError {
	return &ArgumentError{Message: msg}
}

// NewArgumentf formats a message and builds an ArgumentError.
func NewArgumentf(format string, args ...any) *ArgumentError {
	return NewArgument(fmt.Sprintf(format, args...))
}

func (e *ArgumentError) Error() string {
	if e == nil {
		return ErrInvalidArgument.Error()
	}
	return e.Message
}

// Unwrap returns ErrInvalidArgument.
func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// AsAssertion extracts an AssertionError from err.
func AsAssertion(err error) (*AssertionError, bool) {
	var target *AssertionError
	if errors.As(err, &target) && target != nil {
		return target, true
	}
	return nil, false
}

// AsArgument extracts an ArgumentError from err.
func AsArgument(err error) (*ArgumentError, bool) {
	var target *ArgumentError
	if errors.As(err, &target) && target != nil {
		return target, true
	}
	return nil, false
}
