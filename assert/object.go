package assert

import (
	"fmt"
	"reflect"

	"github.com/google/go-cmp/cmp"

	"github.com/fluentcheck/fluentcheck/failure"
	"github.com/fluentcheck/fluentcheck/internal/guard"
	"github.com/fluentcheck/fluentcheck/message"
)

const objectKind = "Object"

// ObjectAssert holds an arbitrary value and checks it for nil-ness and deep equality.
//
// Equality is decided by cmp.Equal. Structs with unexported fields need an option such as
// cmpopts.IgnoreUnexported, passed through UsingCmpOptions; without it cmp panics.
type ObjectAssert struct {
	on          *Assertions
	actual      any
	description string
	opts        []cmp.Option
}

func newObject(on *Assertions, actual any) *ObjectAssert {
	if on == nil {
		on = std
	}
	return &ObjectAssert{on: on, actual: actual}
}

// As returns a copy of the facade whose failure messages are prefixed with the description.
func (a *ObjectAssert) As(format string, args ...any) *ObjectAssert {
	next := *a
	next.description = fmt.Sprintf(format, args...)
	return &next
}

// UsingCmpOptions returns a copy of the facade comparing with the given options.
func (a *ObjectAssert) UsingCmpOptions(opts ...cmp.Option) *ObjectAssert {
	next := *a
	next.opts = append(append([]cmp.Option(nil), a.opts...), opts...)
	return &next
}

// IsNil checks that actual is nil, including a typed nil.
func (a *ObjectAssert) IsNil() *ObjectAssert {
	a.on.failer.Helper()
	if !message.IsNil(a.actual) {
		a.fail(message.ShouldBeNull, a.actual)
	}
	return a
}

// IsNotNil checks that actual is not nil.
func (a *ObjectAssert) IsNotNil() *ObjectAssert {
	a.on.failer.Helper()
	if message.IsNil(a.actual) {
		a.fail(message.ShouldNotBeNull)
	}
	return a
}

// IsEqualTo checks that actual deeply equals expected. Two nil values are equal. When both
// sides are composite values the failure message carries a diff.
func (a *ObjectAssert) IsEqualTo(expected any) *ObjectAssert {
	a.on.failer.Helper()
	if a.equal(expected) {
		return a
	}
	if isComposite(a.actual) && isComposite(expected) {
		diff := cmp.Diff(expected, a.actual, a.opts...)
		a.fail(message.ShouldBeEqualDiff, a.actual, expected, message.Literal(diff))
		return a
	}
	a.fail(message.ShouldBeEqual, a.actual, expected)
	return a
}

// IsNotEqualTo checks that actual does not deeply equal other.
func (a *ObjectAssert) IsNotEqualTo(other any) *ObjectAssert {
	a.on.failer.Helper()
	if a.equal(other) {
		a.fail(message.ShouldNotBeEqual, a.actual, other)
	}
	return a
}

// IsIn checks that actual deeply equals one of values.
func (a *ObjectAssert) IsIn(values ...any) *ObjectAssert {
	a.on.failer.Helper()
	if a.admitted(values) && !a.in(values) {
		a.fail(message.ShouldBeIn, a.actual, values)
	}
	return a
}

// IsNotIn checks that actual deeply equals none of values.
func (a *ObjectAssert) IsNotIn(values ...any) *ObjectAssert {
	a.on.failer.Helper()
	if a.admitted(values) && a.in(values) {
		a.fail(message.ShouldNotBeIn, a.actual, values)
	}
	return a
}

func (a *ObjectAssert) admitted(values []any) bool {
	a.on.failer.Helper()
	if err := guard.NotEmpty(values, objectKind); err != nil {
		a.on.raise(objectKind, a.description, err)
		return false
	}
	return true
}

func (a *ObjectAssert) in(values []any) bool {
	for _, v := range values {
		if a.equal(v) {
			return true
		}
	}
	return false
}

func (a *ObjectAssert) equal(other any) bool {
	if message.IsNil(a.actual) || message.IsNil(other) {
		return message.IsNil(a.actual) && message.IsNil(other)
	}
	return cmp.Equal(a.actual, other, a.opts...)
}

func (a *ObjectAssert) fail(id message.TemplateID, values ...any) {
	a.on.failer.Helper()

	rendered, err := a.on.catalog.Render(id, a.on.repr, values...)
	if err != nil {
		a.on.raise(objectKind, a.description, fmt.Errorf("rendering %s failure: %w", id, err))
		return
	}
	a.on.raise(objectKind, a.description, failure.NewAssertion(string(id), a.description, rendered))
}

func isComposite(v any) bool {
	if message.IsNil(v) {
		return false
	}
	switch reflect.Indirect(reflect.ValueOf(v)).Kind() {
	case reflect.Struct, reflect.Map, reflect.Slice, reflect.Array:
		return true
	}
	return false
}
