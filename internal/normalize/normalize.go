// Package normalize resolves a predicate argument into the canonical value it stands for.
//
// An argument is either the value itself, a pointer to it, its textual representation or a
// pointer to that text. Nil arguments never get here: the guard package rejects them first.
package normalize

import (
	"github.com/fluentcheck/fluentcheck/failure"
)

// Parser reads the canonical textual form of a value.
type Parser[T any] func(string) (T, error)

// Converter optionally accepts values of other Go types, such as an untyped integer constant
// for an int64 assertion. It reports false when it cannot convert without loss.
type Converter[T any] func(any) (T, bool)

// Resolve returns the canonical value for raw. Parse errors are returned exactly as the parser
// produced them.
func Resolve[T any](raw any, name string, parse Parser[T], convert Converter[T]) (T, error) {
	var zero T

	switch v := raw.(type) {
	case T:
		return v, nil
	case *T:
		return *v, nil
	case string:
		return parse(v)
	case *string:
		return parse(*v)
	}

	if convert != nil {
		if v, ok := convert(raw); ok {
			return v, nil
		}
	}
	return zero, failure.NewArgumentf(
		"Expecting a %s or a String representing a %s to compare actual with but got %T", name, name, raw)
}

// ResolveAll resolves each of raws, stopping at the first error.
func ResolveAll[T any](raws []any, name string, parse Parser[T], convert Converter[T]) ([]T, error) {
	values := make([]T, 0, len(raws))
	for _, raw := range raws {
		v, err := Resolve(raw, name, parse, convert)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}
