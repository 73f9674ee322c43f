package assert

import (
	"cmp"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"cloud.google.com/go/civil"
)

// Kind describes a comparable value type: the name used in argument errors, how to read its
// textual form and how to order two values. The generic facades are instantiated per Kind.
type Kind[T any] struct {
	Name    string
	Parse   func(string) (T, error)
	Compare func(a, b T) int
	// Convert accepts arguments of other Go types. Optional.
	Convert func(any) (T, bool)
	// Truncate drops every field finer than unit (time.Second, time.Minute, time.Hour or Day).
	// Optional; kinds without it reject the IsEqualToIgnoring family.
	Truncate func(v T, unit time.Duration) T
}

// Day is the truncation unit that keeps only the date.
const Day = 24 * time.Hour

// LocalDateTimeKind orders civil date-times, written as 2000-01-01T00:00:00.
var LocalDateTimeKind = Kind[civil.DateTime]{
	Name:     "LocalDateTime",
	Parse:    civil.ParseDateTime,
	Compare:  compareDateTime,
	Truncate: truncateDateTime,
}

// LocalDateKind orders civil dates, written as 2000-01-01.
var LocalDateKind = Kind[civil.Date]{
	Name:    "LocalDate",
	Parse:   civil.ParseDate,
	Compare: compareDate,
}

// LocalTimeKind orders times of day, written as 23:59:59.
var LocalTimeKind = Kind[civil.Time]{
	Name:     "LocalTime",
	Parse:    civil.ParseTime,
	Compare:  compareTime,
	Truncate: truncateTime,
}

// TimeKind orders instants: two times in different zones denoting the same instant are equal.
var TimeKind = Kind[time.Time]{
	Name:     "Time",
	Parse:    func(s string) (time.Time, error) { return time.Parse(time.RFC3339Nano, s) },
	Compare:  func(a, b time.Time) int { return a.Compare(b) },
	Truncate: truncateInstant,
}

// DurationKind orders durations, written as time.ParseDuration reads them, e.g. 1m30s.
var DurationKind = Kind[time.Duration]{
	Name:    "Duration",
	Parse:   time.ParseDuration,
	Compare: cmp.Compare[time.Duration],
}

func compareDate(a, b civil.Date) int {
	return cmp.Or(
		cmp.Compare(a.Year, b.Year),
		cmp.Compare(a.Month, b.Month),
		cmp.Compare(a.Day, b.Day),
	)
}

func compareTime(a, b civil.Time) int {
	return cmp.Or(
		cmp.Compare(a.Hour, b.Hour),
		cmp.Compare(a.Minute, b.Minute),
		cmp.Compare(a.Second, b.Second),
		cmp.Compare(a.Nanosecond, b.Nanosecond),
	)
}

func compareDateTime(a, b civil.DateTime) int {
	return cmp.Or(compareDate(a.Date, b.Date), compareTime(a.Time, b.Time))
}

func truncateTime(t civil.Time, unit time.Duration) civil.Time {
	switch unit {
	case time.Second:
		t.Nanosecond = 0
	case time.Minute:
		t.Nanosecond, t.Second = 0, 0
	case time.Hour:
		t.Nanosecond, t.Second, t.Minute = 0, 0, 0
	case Day:
		t = civil.Time{}
	}
	return t
}

func truncateDateTime(dt civil.DateTime, unit time.Duration) civil.DateTime {
	dt.Time = truncateTime(dt.Time, unit)
	return dt
}

// truncateInstant works on the wall clock of t's own location.
func truncateInstant(t time.Time, unit time.Duration) time.Time {
	year, month, day := t.Date()
	hour, minute, second := t.Clock()
	nanos := t.Nanosecond()
	switch unit {
	case time.Second:
		nanos = 0
	case time.Minute:
		nanos, second = 0, 0
	case time.Hour:
		nanos, second, minute = 0, 0, 0
	case Day:
		nanos, second, minute, hour = 0, 0, 0, 0
	}
	return time.Date(year, month, day, hour, minute, second, nanos, t.Location())
}

// Number is the set of numeric types ThatNumber accepts.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// NumberKind returns the Kind of N, named after its Go type.
//
// Floats follow cmp.Compare: NaN equals NaN and is less than every other value, -Inf included.
func NumberKind[N Number]() Kind[N] {
	var zero N
	return Kind[N]{
		Name:    fmt.Sprintf("%T", zero),
		Parse:   parseNumber[N],
		Compare: cmp.Compare[N],
		Convert: convertNumber[N],
	}
}

func parseNumber[N Number](s string) (N, error) {
	var n N
	rv := reflect.ValueOf(&n).Elem()
	bits := rv.Type().Bits()

	switch {
	case rv.CanInt():
		i, err := strconv.ParseInt(s, 10, bits)
		if err != nil {
			return n, err
		}
		rv.SetInt(i)
	case rv.CanUint():
		u, err := strconv.ParseUint(s, 10, bits)
		if err != nil {
			return n, err
		}
		rv.SetUint(u)
	case rv.CanFloat():
		f, err := strconv.ParseFloat(s, bits)
		if err != nil {
			return n, err
		}
		rv.SetFloat(f)
	}
	return n, nil
}

// convertNumber converts any numeric argument to N when no information is lost.
func convertNumber[N Number](raw any) (N, bool) {
	var n N
	rv := reflect.ValueOf(raw)
	if !rv.IsValid() || !(rv.CanInt() || rv.CanUint() || rv.CanFloat()) {
		return n, false
	}

	target := reflect.TypeOf(n)
	if rv.CanInt() && rv.Int() < 0 && (target.Kind() >= reflect.Uint && target.Kind() <= reflect.Uintptr) {
		return n, false
	}

	converted := rv.Convert(target)
	if !converted.Convert(rv.Type()).Equal(rv) {
		return n, false
	}
	if converted.CanInt() && rv.CanUint() && converted.Int() < 0 {
		return n, false
	}
	return converted.Interface().(N), true
}
