package assert

import (
	"path"
	"runtime"
	"strings"

	"github.com/fluentcheck/fluentcheck/failure"
)

// modulePrefix marks the frames that belong to this module. They are skipped when looking for
// the call site of an assertion, unless they come from a test file.
const modulePrefix = "github.com/fluentcheck/fluentcheck/"

// maxFrames bounds the stack walk. Assertions are never nested deeper than this inside the module.
const maxFrames = 16

// callerLocation returns the first frame outside the module.
func callerLocation() failure.Location {
	pcs := make([]uintptr, maxFrames)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	for {
		frame, more := frames.Next()
		internal := strings.HasPrefix(frame.Function, modulePrefix) && !strings.HasSuffix(frame.File, "_test.go")
		if !internal && frame.Function != "" {
			return failure.Location{
				Function: funcName(frame.Function),
				Filename: frame.File,
				Line:     frame.Line,
			}
		}
		if !more {
			return failure.Location{}
		}
	}
}

// funcName strips the package path: "a/b/pkg.Func" becomes "Func".
func funcName(fullname string) string {
	base := path.Base(fullname)
	if i := strings.Index(base, "."); i >= 0 {
		return base[i+1:]
	}
	return base
}
