package predicate

import (
	"cmp"
	"testing"

	"github.com/go-quicktest/qt"
	"pgregory.net/rapid"
)

var intCompare Compare[int] = cmp.Compare[int]

func TestEval(t *testing.T) {
	tests := []struct {
		op    Op
		a, b  int
		holds bool
	}{
		{Before, 1, 2, true},
		{Before, 2, 2, false},
		{BeforeOrEqual, 2, 2, true},
		{BeforeOrEqual, 3, 2, false},
		{After, 3, 2, true},
		{After, 2, 2, false},
		{AfterOrEqual, 2, 2, true},
		{AfterOrEqual, 1, 2, false},
		{Equal, 2, 2, true},
		{Equal, 1, 2, false},
		{NotEqual, 1, 2, true},
		{NotEqual, 2, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			qt.Assert(t, qt.Equals(Eval(tt.op, intCompare, tt.a, tt.b), tt.holds),
				qt.Commentf("%d %s %d", tt.a, tt.op, tt.b))
		})
	}
}

func TestUnknownOp(t *testing.T) {
	qt.Assert(t, qt.IsFalse(Eval(Op(99), intCompare, 1, 1)))
	qt.Assert(t, qt.Equals(Op(99).String(), "unknown"))
}

func TestBetween(t *testing.T) {
	qt.Assert(t, qt.IsTrue(Between(intCompare, 1, 1, 3, true, true)))
	qt.Assert(t, qt.IsTrue(Between(intCompare, 3, 1, 3, true, true)))
	qt.Assert(t, qt.IsFalse(Between(intCompare, 1, 1, 3, false, false)))
	qt.Assert(t, qt.IsFalse(Between(intCompare, 3, 1, 3, false, false)))
	qt.Assert(t, qt.IsTrue(Between(intCompare, 2, 1, 3, false, false)))
	qt.Assert(t, qt.IsFalse(Between(intCompare, 4, 1, 3, true, true)))
}

func TestIn(t *testing.T) {
	qt.Assert(t, qt.IsTrue(In(intCompare, 2, []int{1, 2})))
	qt.Assert(t, qt.IsFalse(In(intCompare, 3, []int{1, 2})))
	qt.Assert(t, qt.IsFalse(In(intCompare, 3, nil)))
}

func TestOrderingProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.Int().Draw(t, "a")
		b := rapid.Int().Draw(t, "b")

		if !Eval(AfterOrEqual, intCompare, a, a) || !Eval(BeforeOrEqual, intCompare, a, a) {
			t.Fatalf("-OrEqual predicates must be reflexive for %d", a)
		}
		if Eval(After, intCompare, a, b) != Eval(Before, intCompare, b, a) {
			t.Fatalf("after(%d, %d) must mirror before(%d, %d)", a, b, b, a)
		}
		if Eval(AfterOrEqual, intCompare, a, b) == Eval(Before, intCompare, a, b) {
			t.Fatalf("after-or-equal(%d, %d) must negate before", a, b)
		}
		if Eval(Equal, intCompare, a, b) == Eval(NotEqual, intCompare, a, b) {
			t.Fatalf("equal(%d, %d) must negate not-equal", a, b)
		}
	})
}
