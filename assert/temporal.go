package assert

import (
	"time"

	"github.com/fluentcheck/fluentcheck/internal/predicate"
	"github.com/fluentcheck/fluentcheck/message"
)

// TemporalAssert holds a point in time (a date-time, a date, a time of day or an instant) and
// checks it with before/after predicates.
//
// Each predicate argument is a T, a *T, the string form of a T or a *string. Methods return the
// receiver so that assertions can be chained.
type TemporalAssert[T any] struct {
	core[T]
}

// As returns a copy of the facade whose failure messages are prefixed with the description.
func (a *TemporalAssert[T]) As(format string, args ...any) *TemporalAssert[T] {
	return &TemporalAssert[T]{a.described(format, args...)}
}

// IsBefore checks that actual is strictly before other.
func (a *TemporalAssert[T]) IsBefore(other any) *TemporalAssert[T] {
	a.on.failer.Helper()
	a.binary(predicate.Before, message.ShouldBeBefore, other)
	return a
}

// IsBeforeOrEqualTo checks that actual is before or equal to other.
func (a *TemporalAssert[T]) IsBeforeOrEqualTo(other any) *TemporalAssert[T] {
	a.on.failer.Helper()
	a.binary(predicate.BeforeOrEqual, message.ShouldBeBeforeOrEqualTo, other)
	return a
}

// IsAfter checks that actual is strictly after other.
func (a *TemporalAssert[T]) IsAfter(other any) *TemporalAssert[T] {
	a.on.failer.Helper()
	a.binary(predicate.After, message.ShouldBeAfter, other)
	return a
}

// IsAfterOrEqualTo checks that actual is after or equal to other.
func (a *TemporalAssert[T]) IsAfterOrEqualTo(other any) *TemporalAssert[T] {
	a.on.failer.Helper()
	a.binary(predicate.AfterOrEqual, message.ShouldBeAfterOrEqualTo, other)
	return a
}

// IsEqualTo checks that actual and other denote the same value.
func (a *TemporalAssert[T]) IsEqualTo(other any) *TemporalAssert[T] {
	a.on.failer.Helper()
	a.binary(predicate.Equal, message.ShouldBeEqual, other)
	return a
}

// IsNotEqualTo checks that actual and other differ.
func (a *TemporalAssert[T]) IsNotEqualTo(other any) *TemporalAssert[T] {
	a.on.failer.Helper()
	a.binary(predicate.NotEqual, message.ShouldNotBeEqual, other)
	return a
}

// IsIn checks that actual equals one of values.
func (a *TemporalAssert[T]) IsIn(values ...any) *TemporalAssert[T] {
	a.on.failer.Helper()
	a.membership(message.ShouldBeIn, values, true)
	return a
}

// IsNotIn checks that actual equals none of values.
func (a *TemporalAssert[T]) IsNotIn(values ...any) *TemporalAssert[T] {
	a.on.failer.Helper()
	a.membership(message.ShouldNotBeIn, values, false)
	return a
}

// IsBetween checks that start <= actual <= end.
func (a *TemporalAssert[T]) IsBetween(start, end any) *TemporalAssert[T] {
	a.on.failer.Helper()
	a.between(message.ShouldBeInPeriod, start, end, true)
	return a
}

// IsStrictlyBetween checks that start < actual < end.
func (a *TemporalAssert[T]) IsStrictlyBetween(start, end any) *TemporalAssert[T] {
	a.on.failer.Helper()
	a.between(message.ShouldBeStrictlyInPeriod, start, end, false)
	return a
}

// IsEqualToIgnoringNanos checks that actual and other share every field down to the second.
func (a *TemporalAssert[T]) IsEqualToIgnoringNanos(other any) *TemporalAssert[T] {
	a.on.failer.Helper()
	a.ignoring(message.ShouldBeEqualIgnoringNanos, other, time.Second)
	return a
}

// IsEqualToIgnoringSeconds checks that actual and other share every field down to the minute.
func (a *TemporalAssert[T]) IsEqualToIgnoringSeconds(other any) *TemporalAssert[T] {
	a.on.failer.Helper()
	a.ignoring(message.ShouldBeEqualIgnoringSeconds, other, time.Minute)
	return a
}

// IsEqualToIgnoringMinutes checks that actual and other share every field down to the hour.
func (a *TemporalAssert[T]) IsEqualToIgnoringMinutes(other any) *TemporalAssert[T] {
	a.on.failer.Helper()
	a.ignoring(message.ShouldBeEqualIgnoringMinutes, other, time.Hour)
	return a
}

// IsEqualToIgnoringHours checks that actual and other fall on the same day.
func (a *TemporalAssert[T]) IsEqualToIgnoringHours(other any) *TemporalAssert[T] {
	a.on.failer.Helper()
	a.ignoring(message.ShouldBeEqualIgnoringHours, other, Day)
	return a
}
