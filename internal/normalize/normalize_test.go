package normalize

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/go-quicktest/qt"
	"pgregory.net/rapid"

	"github.com/fluentcheck/fluentcheck/failure"
)

var reference = civil.DateTime{Date: civil.Date{Year: 2000, Month: time.January, Day: 1}}

func resolveDateTime(raw any) (civil.DateTime, error) {
	return Resolve[civil.DateTime](raw, "LocalDateTime", civil.ParseDateTime, nil)
}

func TestResolveForms(t *testing.T) {
	text := reference.String()
	tests := []struct {
		name string
		raw  any
	}{
		{name: "value", raw: reference},
		{name: "pointer", raw: &reference},
		{name: "string", raw: text},
		{name: "string pointer", raw: &text},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveDateTime(tt.raw)
			qt.Assert(t, qt.IsNil(err))
			qt.Assert(t, qt.Equals(got, reference))
		})
	}
}

func TestResolvePropagatesParseErrorUnwrapped(t *testing.T) {
	_, err := resolveDateTime("not a date")
	var parseErr *time.ParseError
	qt.Assert(t, qt.IsTrue(errors.As(err, &parseErr)))
	qt.Assert(t, qt.IsFalse(errors.Is(err, failure.ErrInvalidArgument)))
}

func TestResolveRejectsUnsupportedType(t *testing.T) {
	_, err := resolveDateTime(42)
	qt.Assert(t, qt.ErrorIs(err, failure.ErrInvalidArgument))
	qt.Assert(t, qt.Equals(err.Error(),
		"Expecting a LocalDateTime or a String representing a LocalDateTime to compare actual with but got int"))
}

func TestResolveUsesConverter(t *testing.T) {
	toInt64 := func(raw any) (int64, bool) {
		v, ok := raw.(int)
		return int64(v), ok
	}
	parse := func(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) }

	got, err := Resolve[int64](7, "int64", parse, toInt64)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(got, int64(7)))

	_, err = Resolve[int64](7.5, "int64", parse, toInt64)
	qt.Assert(t, qt.ErrorIs(err, failure.ErrInvalidArgument))
}

func TestResolveAll(t *testing.T) {
	got, err := ResolveAll[civil.DateTime]([]any{reference, "1999-12-31T23:59:59"}, "LocalDateTime", civil.ParseDateTime, nil)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.HasLen(got, 2))
	qt.Assert(t, qt.Equals(got[1].Date.Year, 1999))

	_, err = ResolveAll[civil.DateTime]([]any{reference, "nope"}, "LocalDateTime", civil.ParseDateTime, nil)
	qt.Assert(t, qt.IsNotNil(err))
}

func TestStringFormRoundTrips(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		dt := civil.DateTime{
			Date: civil.Date{
				Year:  rapid.IntRange(1, 9999).Draw(t, "year"),
				Month: time.Month(rapid.IntRange(1, 12).Draw(t, "month")),
				Day:   rapid.IntRange(1, 28).Draw(t, "day"),
			},
			Time: civil.Time{
				Hour:       rapid.IntRange(0, 23).Draw(t, "hour"),
				Minute:     rapid.IntRange(0, 59).Draw(t, "minute"),
				Second:     rapid.IntRange(0, 59).Draw(t, "second"),
				Nanosecond: rapid.IntRange(0, 999999999).Draw(t, "nanos"),
			},
		}
		got, err := resolveDateTime(dt.String())
		if err != nil {
			t.Fatalf("resolving %q: %v", dt.String(), err)
		}
		if got != dt {
			t.Fatalf("resolved %v, want %v", got, dt)
		}
	})
}
