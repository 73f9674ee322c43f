package assert

import (
	"time"

	"cloud.google.com/go/civil"
)

// ThatTemporalOn wraps actual, which may be nil, for the given kind.
func ThatTemporalOn[T any](a *Assertions, actual *T, kind Kind[T]) *TemporalAssert[T] {
	return &TemporalAssert[T]{newCore(a, actual, kind)}
}

// ThatComparableOn wraps actual, which may be nil, for the given kind.
func ThatComparableOn[T any](a *Assertions, actual *T, kind Kind[T]) *ComparableAssert[T] {
	return &ComparableAssert[T]{newCore(a, actual, kind)}
}

// ThatNumberOn wraps a number on a.
func ThatNumberOn[N Number](a *Assertions, actual N) *ComparableAssert[N] {
	return ThatComparableOn(a, &actual, NumberKind[N]())
}

// ThatLocalDateTime wraps a date-time without a time zone.
func (a *Assertions) ThatLocalDateTime(actual civil.DateTime) *TemporalAssert[civil.DateTime] {
	return ThatTemporalOn(a, &actual, LocalDateTimeKind)
}

// ThatLocalDateTimePtr wraps a possibly nil date-time. A nil actual fails every predicate.
func (a *Assertions) ThatLocalDateTimePtr(actual *civil.DateTime) *TemporalAssert[civil.DateTime] {
	return ThatTemporalOn(a, actual, LocalDateTimeKind)
}

// ThatLocalDate wraps a calendar date.
func (a *Assertions) ThatLocalDate(actual civil.Date) *TemporalAssert[civil.Date] {
	return ThatTemporalOn(a, &actual, LocalDateKind)
}

// ThatLocalDatePtr wraps a possibly nil date.
func (a *Assertions) ThatLocalDatePtr(actual *civil.Date) *TemporalAssert[civil.Date] {
	return ThatTemporalOn(a, actual, LocalDateKind)
}

// ThatLocalTime wraps a time of day.
func (a *Assertions) ThatLocalTime(actual civil.Time) *TemporalAssert[civil.Time] {
	return ThatTemporalOn(a, &actual, LocalTimeKind)
}

// ThatLocalTimePtr wraps a possibly nil time of day.
func (a *Assertions) ThatLocalTimePtr(actual *civil.Time) *TemporalAssert[civil.Time] {
	return ThatTemporalOn(a, actual, LocalTimeKind)
}

// ThatTime wraps an instant.
func (a *Assertions) ThatTime(actual time.Time) *TemporalAssert[time.Time] {
	return ThatTemporalOn(a, &actual, TimeKind)
}

// ThatTimePtr wraps a possibly nil instant.
func (a *Assertions) ThatTimePtr(actual *time.Time) *TemporalAssert[time.Time] {
	return ThatTemporalOn(a, actual, TimeKind)
}

// ThatDuration wraps a duration.
func (a *Assertions) ThatDuration(actual time.Duration) *ComparableAssert[time.Duration] {
	return ThatComparableOn(a, &actual, DurationKind)
}

// ThatDurationPtr wraps a possibly nil duration.
func (a *Assertions) ThatDurationPtr(actual *time.Duration) *ComparableAssert[time.Duration] {
	return ThatComparableOn(a, actual, DurationKind)
}

// ThatInt wraps an int.
func (a *Assertions) ThatInt(actual int) *ComparableAssert[int] {
	return ThatNumberOn(a, actual)
}

// ThatInt64 wraps an int64.
func (a *Assertions) ThatInt64(actual int64) *ComparableAssert[int64] {
	return ThatNumberOn(a, actual)
}

// ThatFloat64 wraps a float64.
func (a *Assertions) ThatFloat64(actual float64) *ComparableAssert[float64] {
	return ThatNumberOn(a, actual)
}

// ThatObject wraps any value for nil and deep-equality checks.
func (a *Assertions) ThatObject(actual any) *ObjectAssert {
	return newObject(a, actual)
}

// The functions below use the default Assertions, which panic with the raised error.

// ThatLocalDateTime wraps a date-time without a time zone.
func ThatLocalDateTime(actual civil.DateTime) *TemporalAssert[civil.DateTime] {
	return std.ThatLocalDateTime(actual)
}

// ThatLocalDateTimePtr wraps a possibly nil date-time.
func ThatLocalDateTimePtr(actual *civil.DateTime) *TemporalAssert[civil.DateTime] {
	return std.ThatLocalDateTimePtr(actual)
}

// ThatLocalDate wraps a calendar date.
func ThatLocalDate(actual civil.Date) *TemporalAssert[civil.Date] {
	return std.ThatLocalDate(actual)
}

// ThatLocalDatePtr wraps a possibly nil date.
func ThatLocalDatePtr(actual *civil.Date) *TemporalAssert[civil.Date] {
	return std.ThatLocalDatePtr(actual)
}

// ThatLocalTime wraps a time of day.
func ThatLocalTime(actual civil.Time) *TemporalAssert[civil.Time] {
	return std.ThatLocalTime(actual)
}

// ThatLocalTimePtr wraps a possibly nil time of day.
func ThatLocalTimePtr(actual *civil.Time) *TemporalAssert[civil.Time] {
	return std.ThatLocalTimePtr(actual)
}

// ThatTime wraps an instant.
func ThatTime(actual time.Time) *TemporalAssert[time.Time] {
	return std.ThatTime(actual)
}

// ThatTimePtr wraps a possibly nil instant.
func ThatTimePtr(actual *time.Time) *TemporalAssert[time.Time] {
	return std.ThatTimePtr(actual)
}

// ThatDuration wraps a duration.
func ThatDuration(actual time.Duration) *ComparableAssert[time.Duration] {
	return std.ThatDuration(actual)
}

// ThatDurationPtr wraps a possibly nil duration.
func ThatDurationPtr(actual *time.Duration) *ComparableAssert[time.Duration] {
	return std.ThatDurationPtr(actual)
}

// ThatInt wraps an int.
func ThatInt(actual int) *ComparableAssert[int] {
	return std.ThatInt(actual)
}

// ThatInt64 wraps an int64.
func ThatInt64(actual int64) *ComparableAssert[int64] {
	return std.ThatInt64(actual)
}

// ThatFloat64 wraps a float64.
func ThatFloat64(actual float64) *ComparableAssert[float64] {
	return std.ThatFloat64(actual)
}

// ThatNumber wraps a number of any numeric type, including named ones.
func ThatNumber[N Number](actual N) *ComparableAssert[N] {
	return ThatNumberOn(std, actual)
}

// ThatNumberPtr wraps a possibly nil number.
func ThatNumberPtr[N Number](actual *N) *ComparableAssert[N] {
	return ThatComparableOn(std, actual, NumberKind[N]())
}

// ThatTemporal wraps a value of a custom temporal kind.
func ThatTemporal[T any](actual T, kind Kind[T]) *TemporalAssert[T] {
	return ThatTemporalOn(std, &actual, kind)
}

// ThatComparable wraps a value of a custom ordered kind.
func ThatComparable[T any](actual T, kind Kind[T]) *ComparableAssert[T] {
	return ThatComparableOn(std, &actual, kind)
}

// ThatObject wraps any value for nil and deep-equality checks.
func ThatObject(actual any) *ObjectAssert {
	return std.ThatObject(actual)
}
