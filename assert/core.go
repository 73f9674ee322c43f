package assert

import (
	"fmt"
	"time"

	"github.com/fluentcheck/fluentcheck/failure"
	"github.com/fluentcheck/fluentcheck/internal/guard"
	"github.com/fluentcheck/fluentcheck/internal/normalize"
	"github.com/fluentcheck/fluentcheck/internal/predicate"
	"github.com/fluentcheck/fluentcheck/message"
)

// core is the state shared by the comparable facades. It is copied, never mutated, so a facade
// can be reused freely.
type core[T any] struct {
	on          *Assertions
	kind        Kind[T]
	actual      *T
	description string
}

func newCore[T any](on *Assertions, actual *T, kind Kind[T]) core[T] {
	if on == nil {
		on = std
	}
	return core[T]{on: on, kind: kind, actual: actual}
}

func (c core[T]) described(format string, args ...any) core[T] {
	c.description = fmt.Sprintf(format, args...)
	return c
}

// admit runs the guard: actual first, then every argument. It reports whether evaluation may
// proceed.
func (c core[T]) admit(raws ...any) (T, bool) {
	c.on.failer.Helper()

	var zero T
	if err := guard.Actual(c.actual != nil, c.on.catalog, c.description); err != nil {
		c.raise(err)
		return zero, false
	}
	if err := guard.Arguments(raws, c.kind.Name); err != nil {
		c.raise(err)
		return zero, false
	}
	return *c.actual, true
}

func (c core[T]) resolve(raw any) (T, bool) {
	c.on.failer.Helper()

	v, err := normalize.Resolve(raw, c.kind.Name, c.kind.Parse, c.kind.Convert)
	if err != nil {
		c.raise(err)
		return v, false
	}
	return v, true
}

// binary checks a single-argument ordering predicate.
func (c core[T]) binary(op predicate.Op, id message.TemplateID, other any) {
	c.on.failer.Helper()

	actual, ok := c.admit(other)
	if !ok {
		return
	}
	resolved, ok := c.resolve(other)
	if !ok {
		return
	}
	if !predicate.Eval(op, c.kind.Compare, actual, resolved) {
		c.fail(id, actual, resolved)
	}
}

func (c core[T]) between(id message.TemplateID, start, end any, inclusive bool) {
	c.on.failer.Helper()

	actual, ok := c.admit(start, end)
	if !ok {
		return
	}
	lo, ok := c.resolve(start)
	if !ok {
		return
	}
	hi, ok := c.resolve(end)
	if !ok {
		return
	}
	if !predicate.Between(c.kind.Compare, actual, lo, hi, inclusive, inclusive) {
		c.fail(id, actual, lo, hi)
	}
}

func (c core[T]) membership(id message.TemplateID, values []any, want bool) {
	c.on.failer.Helper()

	actual, ok := c.admit(values...)
	if !ok {
		return
	}
	if err := guard.NotEmpty(values, c.kind.Name); err != nil {
		c.raise(err)
		return
	}
	resolved, err := normalize.ResolveAll(values, c.kind.Name, c.kind.Parse, c.kind.Convert)
	if err != nil {
		c.raise(err)
		return
	}
	if predicate.In(c.kind.Compare, actual, resolved) != want {
		c.fail(id, actual, resolved)
	}
}

// ignoring compares actual and other after truncating both to unit.
func (c core[T]) ignoring(id message.TemplateID, other any, unit time.Duration) {
	c.on.failer.Helper()

	actual, ok := c.admit(other)
	if !ok {
		return
	}
	if c.kind.Truncate == nil {
		c.raise(failure.NewArgumentf("%s values cannot be compared ignoring time fields", c.kind.Name))
		return
	}
	resolved, ok := c.resolve(other)
	if !ok {
		return
	}
	if c.kind.Compare(c.kind.Truncate(actual, unit), c.kind.Truncate(resolved, unit)) != 0 {
		c.fail(id, actual, resolved)
	}
}

// against checks actual against a fixed value of T, such as zero.
func (c core[T]) against(op predicate.Op, id message.TemplateID, fixed T) {
	c.on.failer.Helper()

	actual, ok := c.admit()
	if !ok {
		return
	}
	if !predicate.Eval(op, c.kind.Compare, actual, fixed) {
		c.fail(id, actual, fixed)
	}
}

func (c core[T]) fail(id message.TemplateID, values ...any) {
	c.on.failer.Helper()

	rendered, err := c.on.catalog.Render(id, c.on.repr, values...)
	if err != nil {
		c.raise(fmt.Errorf("rendering %s failure: %w", id, err))
		return
	}
	c.raise(failure.NewAssertion(string(id), c.description, rendered))
}

func (c core[T]) raise(err error) {
	c.on.failer.Helper()
	c.on.raise(c.kind.Name, c.description, err)
}
