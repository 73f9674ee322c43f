package assert

import (
	"github.com/fluentcheck/fluentcheck/internal/predicate"
	"github.com/fluentcheck/fluentcheck/message"
)

// ComparableAssert holds an ordered quantity (a number or a duration) and checks it with
// less/greater predicates. Arguments follow the same rules as TemporalAssert; numbers of
// another Go type are accepted when they convert without loss.
type ComparableAssert[T any] struct {
	core[T]
}

// As returns a copy of the facade whose failure messages are prefixed with the description.
func (a *ComparableAssert[T]) As(format string, args ...any) *ComparableAssert[T] {
	return &ComparableAssert[T]{a.described(format, args...)}
}

// IsLessThan checks that actual < other.
func (a *ComparableAssert[T]) IsLessThan(other any) *ComparableAssert[T] {
	a.on.failer.Helper()
	a.binary(predicate.Before, message.ShouldBeLess, other)
	return a
}

// IsLessThanOrEqualTo checks that actual <= other.
func (a *ComparableAssert[T]) IsLessThanOrEqualTo(other any) *ComparableAssert[T] {
	a.on.failer.Helper()
	a.binary(predicate.BeforeOrEqual, message.ShouldBeLessOrEqual, other)
	return a
}

// IsGreaterThan checks that actual > other.
func (a *ComparableAssert[T]) IsGreaterThan(other any) *ComparableAssert[T] {
	a.on.failer.Helper()
	a.binary(predicate.After, message.ShouldBeGreater, other)
	return a
}

// IsGreaterThanOrEqualTo checks that actual >= other.
func (a *ComparableAssert[T]) IsGreaterThanOrEqualTo(other any) *ComparableAssert[T] {
	a.on.failer.Helper()
	a.binary(predicate.AfterOrEqual, message.ShouldBeGreaterOrEqual, other)
	return a
}

// IsEqualTo checks that actual and other compare as equal.
func (a *ComparableAssert[T]) IsEqualTo(other any) *ComparableAssert[T] {
	a.on.failer.Helper()
	a.binary(predicate.Equal, message.ShouldBeEqual, other)
	return a
}

// IsNotEqualTo checks that actual and other do not compare as equal.
func (a *ComparableAssert[T]) IsNotEqualTo(other any) *ComparableAssert[T] {
	a.on.failer.Helper()
	a.binary(predicate.NotEqual, message.ShouldNotBeEqual, other)
	return a
}

// IsIn checks that actual equals one of values.
func (a *ComparableAssert[T]) IsIn(values ...any) *ComparableAssert[T] {
	a.on.failer.Helper()
	a.membership(message.ShouldBeIn, values, true)
	return a
}

// IsNotIn checks that actual equals none of values.
func (a *ComparableAssert[T]) IsNotIn(values ...any) *ComparableAssert[T] {
	a.on.failer.Helper()
	a.membership(message.ShouldNotBeIn, values, false)
	return a
}

// IsBetween checks that start <= actual <= end.
func (a *ComparableAssert[T]) IsBetween(start, end any) *ComparableAssert[T] {
	a.on.failer.Helper()
	a.between(message.ShouldBeBetween, start, end, true)
	return a
}

// IsStrictlyBetween checks that start < actual < end.
func (a *ComparableAssert[T]) IsStrictlyBetween(start, end any) *ComparableAssert[T] {
	a.on.failer.Helper()
	a.between(message.ShouldBeStrictlyBetween, start, end, false)
	return a
}

// IsZero checks that actual equals the zero value of T.
func (a *ComparableAssert[T]) IsZero() *ComparableAssert[T] {
	a.on.failer.Helper()
	var zero T
	a.against(predicate.Equal, message.ShouldBeEqual, zero)
	return a
}

// IsNotZero checks that actual differs from the zero value of T.
func (a *ComparableAssert[T]) IsNotZero() *ComparableAssert[T] {
	a.on.failer.Helper()
	var zero T
	a.against(predicate.NotEqual, message.ShouldNotBeEqual, zero)
	return a
}

// IsPositive checks that actual is greater than the zero value of T.
func (a *ComparableAssert[T]) IsPositive() *ComparableAssert[T] {
	a.on.failer.Helper()
	var zero T
	a.against(predicate.After, message.ShouldBeGreater, zero)
	return a
}

// IsNegative checks that actual is less than the zero value of T.
func (a *ComparableAssert[T]) IsNegative() *ComparableAssert[T] {
	a.on.failer.Helper()
	var zero T
	a.against(predicate.Before, message.ShouldBeLess, zero)
	return a
}
