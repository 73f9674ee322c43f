// Package guard enforces the null policy shared by every assertion: an absent actual value is
// an assertion failure, a nil argument is an invalid argument.
package guard

import (
	"fmt"

	"github.com/fluentcheck/fluentcheck/failure"
	"github.com/fluentcheck/fluentcheck/message"
)

const (
	nullValueFormat = "The %s to compare actual with should not be null"
	nullTextFormat  = "The String representing the %s to compare actual with should not be null"
	emptyListFormat = "The %s values to compare actual with should not be empty"
)

// Actual returns the actual-is-null failure when present is false. It must run before any other
// check so that an absent actual wins over every argument problem.
func Actual(present bool, catalog *message.Catalog, description string) error {
	if present {
		return nil
	}
	rendered, err := catalog.Render(message.ActualIsNull, message.Standard)
	if err != nil {
		return err
	}
	return failure.NewAssertion(string(message.ActualIsNull), description, rendered)
}

// Argument rejects a nil argument. The message depends on the declared type of the argument: a
// nil *string yields the string form, any other nil the typed form.
func Argument(raw any, name string) error {
	if _, ok := raw.(*string); ok && message.IsNil(raw) {
		return failure.NewArgumentf(nullTextFormat, name)
	}
	if message.IsNil(raw) {
		return failure.NewArgumentf(nullValueFormat, name)
	}
	return nil
}

// Arguments applies Argument to each of raws, returning the first error.
func Arguments(raws []any, name string) error {
	for _, raw := range raws {
		if err := Argument(raw, name); err != nil {
			return err
		}
	}
	return nil
}

// NotEmpty rejects an empty list of values to compare with.
func NotEmpty(raws []any, name string) error {
	if len(raws) == 0 {
		return failure.NewArgumentf(emptyListFormat, name)
	}
	return nil
}

// NullValueMessage is the message of the typed nil-argument error for the named type.
func NullValueMessage(name string) string {
	return fmt.Sprintf(nullValueFormat, name)
}

// NullTextMessage is the message of the string nil-argument error for the named type.
func NullTextMessage(name string) string {
	return fmt.Sprintf(nullTextFormat, name)
}
