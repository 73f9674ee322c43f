// Package predicate evaluates the ordering and membership predicates behind every assertion.
//
// Predicates work on a three-way compare function, so any totally ordered value type can be
// plugged in. Comparison is exact: there is no tolerance.
package predicate

// Compare returns a negative number when a < b, zero when a == b and a positive number when a > b.
type Compare[T any] func(a, b T) int

// Op names a binary ordering predicate.
type Op int

const (
	Before Op = iota
	BeforeOrEqual
	After
	AfterOrEqual
	Equal
	NotEqual
)

var opNames = [...]string{
	Before:        "before",
	BeforeOrEqual: "before-or-equal",
	After:         "after",
	AfterOrEqual:  "after-or-equal",
	Equal:         "equal",
	NotEqual:      "not-equal",
}

func (op Op) String() string {
	if op < 0 || int(op) >= len(opNames) {
		return "unknown"
	}
	return opNames[op]
}

// Eval reports whether op holds between actual and other.
func Eval[T any](op Op, cmp Compare[T], actual, other T) bool {
	c := cmp(actual, other)
	switch op {
	case Before:
		return c < 0
	case BeforeOrEqual:
		return c <= 0
	case After:
		return c > 0
	case AfterOrEqual:
		return c >= 0
	case Equal:
		return c == 0
	case NotEqual:
		return c != 0
	}
	return false
}

// Between reports whether start <= actual <= end, with each bound made exclusive on request.
func Between[T any](cmp Compare[T], actual, start, end T, inclusiveStart, inclusiveEnd bool) bool {
	lower := AfterOrEqual
	if !inclusiveStart {
		lower = After
	}
	upper := BeforeOrEqual
	if !inclusiveEnd {
		upper = Before
	}
	return Eval(lower, cmp, actual, start) && Eval(upper, cmp, actual, end)
}

// In reports whether actual compares equal to one of values.
func In[T any](cmp Compare[T], actual T, values []T) bool {
	for _, v := range values {
		if cmp(actual, v) == 0 {
			return true
		}
	}
	return false
}
