package assert

import (
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/go-quicktest/qt"

	"github.com/fluentcheck/fluentcheck/failure"
	"github.com/fluentcheck/fluentcheck/message"
)

var (
	reference = civil.DateTime{Date: civil.Date{Year: 2000, Month: time.January, Day: 1}}
	before    = civil.DateTime{
		Date: civil.Date{Year: 1999, Month: time.December, Day: 31},
		Time: civil.Time{Hour: 23, Minute: 59, Second: 59},
	}
	after = civil.DateTime{
		Date: civil.Date{Year: 2000, Month: time.January, Day: 1},
		Time: civil.Time{Second: 1},
	}
)

func shouldBeAfterOrEqualTo(actual, other civil.DateTime) string {
	msg, err := message.Default().Render(message.ShouldBeAfterOrEqualTo, message.Standard, actual, other)
	if err != nil {
		panic(err)
	}
	return msg
}

func assertionMessage(t *testing.T, err error) string {
	t.Helper()
	got, ok := failure.AsAssertion(err)
	qt.Assert(t, qt.IsTrue(ok), qt.Commentf("expected an assertion error, got %#v", err))
	return got.Message
}

func argumentMessage(t *testing.T, err error) string {
	t.Helper()
	got, ok := failure.AsArgument(err)
	qt.Assert(t, qt.IsTrue(ok), qt.Commentf("expected an argument error, got %#v", err))
	return got.Message
}

func TestIsAfterOrEqualToPassesWhenActualIsAfter(t *testing.T) {
	qt.Assert(t, qt.IsNil(Catch(func() { ThatLocalDateTime(after).IsAfterOrEqualTo(reference) })))
}

func TestIsAfterOrEqualToPassesWhenActualIsAfterString(t *testing.T) {
	qt.Assert(t, qt.IsNil(Catch(func() { ThatLocalDateTime(after).IsAfterOrEqualTo(reference.String()) })))
}

func TestIsAfterOrEqualToPassesWhenEqual(t *testing.T) {
	qt.Assert(t, qt.IsNil(Catch(func() { ThatLocalDateTime(reference).IsAfterOrEqualTo(reference) })))
}

func TestIsAfterOrEqualToPassesWhenEqualString(t *testing.T) {
	qt.Assert(t, qt.IsNil(Catch(func() { ThatLocalDateTime(reference).IsAfterOrEqualTo(reference.String()) })))
}

func TestIsAfterOrEqualToFailsWhenActualIsBefore(t *testing.T) {
	err := Catch(func() { ThatLocalDateTime(before).IsAfterOrEqualTo(reference) })

	qt.Assert(t, qt.Equals(assertionMessage(t, err), shouldBeAfterOrEqualTo(before, reference)))
	qt.Assert(t, qt.Equals(err.Error(),
		"\nExpecting:\n  <1999-12-31T23:59:59>\nto be after or equal to:\n  <2000-01-01T00:00:00>"))
}

func TestIsAfterOrEqualToFailsWhenActualIsBeforeString(t *testing.T) {
	err := Catch(func() { ThatLocalDateTime(before).IsAfterOrEqualTo(reference.String()) })

	qt.Assert(t, qt.Equals(assertionMessage(t, err), shouldBeAfterOrEqualTo(before, reference)))
}

func TestIsAfterOrEqualToFailsWhenActualIsNull(t *testing.T) {
	var dateTime *civil.DateTime
	now := civil.DateTimeOf(time.Now())

	err := Catch(func() { ThatLocalDateTimePtr(dateTime).IsAfterOrEqualTo(now) })

	qt.Assert(t, qt.Equals(assertionMessage(t, err), "\nExpecting actual not to be null"))
}

func TestIsAfterOrEqualToFailsWhenDateTimeParameterIsNull(t *testing.T) {
	var otherDateTime *civil.DateTime

	err := Catch(func() { ThatLocalDateTime(civil.DateTimeOf(time.Now())).IsAfterOrEqualTo(otherDateTime) })

	qt.Assert(t, qt.Equals(argumentMessage(t, err), "The LocalDateTime to compare actual with should not be null"))
}

func TestIsAfterOrEqualToFailsWhenStringParameterIsNull(t *testing.T) {
	var otherDateTimeAsString *string

	err := Catch(func() { ThatLocalDateTime(civil.DateTimeOf(time.Now())).IsAfterOrEqualTo(otherDateTimeAsString) })

	qt.Assert(t, qt.Equals(argumentMessage(t, err),
		"The String representing the LocalDateTime to compare actual with should not be null"))
}

func TestIsAfterOrEqualToFailsWhenUntypedNil(t *testing.T) {
	err := Catch(func() { ThatLocalDateTime(reference).IsAfterOrEqualTo(nil) })

	qt.Assert(t, qt.Equals(argumentMessage(t, err), "The LocalDateTime to compare actual with should not be null"))
}

func TestActualNullTakesPrecedence(t *testing.T) {
	var actual *civil.DateTime
	var nilText *string

	for name, arg := range map[string]any{
		"typed nil":    (*civil.DateTime)(nil),
		"string nil":   nilText,
		"unparsable":   "not a date",
		"wrong type":   42,
		"valid string": reference.String(),
	} {
		t.Run(name, func(t *testing.T) {
			err := Catch(func() { ThatLocalDateTimePtr(actual).IsAfterOrEqualTo(arg) })
			qt.Assert(t, qt.ErrorIs(err, failure.ErrAssertionFailed))
			qt.Assert(t, qt.Equals(err.Error(), "\nExpecting actual not to be null"))
		})
	}
}

func TestIsAfterOrEqualToPropagatesParseError(t *testing.T) {
	err := Catch(func() { ThatLocalDateTime(reference).IsAfterOrEqualTo("2000-13-01T00:00:00") })

	var parseErr *time.ParseError
	qt.Assert(t, qt.IsTrue(errors.As(err, &parseErr)))
	qt.Assert(t, qt.IsFalse(errors.Is(err, failure.ErrAssertionFailed)))
	qt.Assert(t, qt.IsFalse(errors.Is(err, failure.ErrInvalidArgument)))
}

func TestIsAfterOrEqualToAcceptsPointers(t *testing.T) {
	text := reference.String()
	qt.Assert(t, qt.IsNil(Catch(func() {
		ThatLocalDateTime(after).IsAfterOrEqualTo(&reference).IsAfterOrEqualTo(&text)
	})))
}

func TestIsAfterOrEqualToRejectsOtherTypes(t *testing.T) {
	err := Catch(func() { ThatLocalDateTime(after).IsAfterOrEqualTo(time.Now()) })

	qt.Assert(t, qt.Equals(argumentMessage(t, err),
		"Expecting a LocalDateTime or a String representing a LocalDateTime to compare actual with but got time.Time"))
}

func TestIsAfterOrEqualToChains(t *testing.T) {
	first := ThatLocalDateTime(after)
	second := first.IsAfterOrEqualTo(reference)
	qt.Assert(t, qt.Equals(first, second))

	qt.Assert(t, qt.IsNil(Catch(func() {
		ThatLocalDateTime(after).
			IsAfterOrEqualTo(reference).
			IsAfterOrEqualTo(before).
			IsAfterOrEqualTo(after.String())
	})))
}

func BenchmarkIsAfterOrEqualTo(b *testing.B) {
	for i := 0; i < b.N; i++ {
		ThatLocalDateTime(after).IsAfterOrEqualTo(reference)
	}
}

func BenchmarkIsAfterOrEqualToString(b *testing.B) {
	text := reference.String()
	for i := 0; i < b.N; i++ {
		ThatLocalDateTime(after).IsAfterOrEqualTo(text)
	}
}
