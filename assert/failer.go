package assert

import (
	"fmt"
	"runtime"
)

// Failer receives raised errors. *testing.T, *testing.B and testing.TB satisfy it.
//
// Fatal is called with a single error argument so that the error kind survives.
type Failer interface {
	Helper()
	Fatal(args ...any)
}

// panicking is the Failer behind the package-level functions.
type panicking struct{}

func (panicking) Helper() {}

func (panicking) Fatal(args ...any) {
	if len(args) == 1 {
		if err, ok := args[0].(error); ok {
			panic(err)
		}
	}
	panic(fmt.Sprint(args...))
}

// Catch runs fn and returns the error it raised through a panicking Failer, or nil.
// Runtime errors and panics that are not errors are re-raised.
func Catch(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if _, isRuntime := r.(runtime.Error); isRuntime {
			panic(r)
		}
		e, ok := r.(error)
		if !ok {
			panic(r)
		}
		err = e
	}()

	fn()
	return nil
}
