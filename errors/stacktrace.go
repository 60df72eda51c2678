package errors

import (
	"fmt"
	"io"
	"path"

	"github.com/pkg/errors"
)

func matchesFunc(f errors.Frame, prefixes ...string) bool {
	fn := funcName(f)
	for _, prefix := range prefixes {
		if len(fn) >= len(prefix) && fn[:len(prefix)] == prefix {
			return true
		}
	}
	return false
}

// funcName returns the name of this function, if known.
func funcName(f errors.Frame) string {
	// this looks a bit like magic, but follows example here:
	// https://github.com/pkg/errors/blob/v0.8.1/stack.go#L43-L50
	// as this is where we get the Frames
	return fmt.Sprintf("%n", f)
}

type stackTracer interface {
	error
	StackTrace() errors.StackTrace
}

// stackTrace returns the first found stack trace frame carried by given error
// or any wrapped error. It returns nil if no stack trace is found.
func stackTrace(err error) errors.StackTrace {
	for {
		if st, ok := err.(stackTracer); ok {
			return st.StackTrace()
		}

		if c, ok := err.(causer); ok {
			err = c.Cause()
		} else {
			return nil
		}
	}
}

// creationFrame returns the first stack frame that does not belong to the
// wrapping helpers of this package.
func creationFrame(st errors.StackTrace) (errors.Frame, bool) {
	for _, f := range st {
		if !matchesFunc(f, "Wrap", "Wrapf", "(*Error).New", "(*Error).Newf") {
			return f, true
		}
	}
	return 0, false
}

// Format works like pkg/errors, with additions.
// %s is just the error message
// %+v is the full stack trace
// %v appends a compressed [filename:line] where the error was created
func (e *wrappedError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			io.WriteString(s, e.Error())
			if st := stackTrace(e); st != nil {
				fmt.Fprintf(s, "%+v", st)
			}
			return
		}
		io.WriteString(s, e.Error())
		if st := stackTrace(e); st != nil {
			if f, ok := creationFrame(st); ok {
				fmt.Fprintf(s, " [%s:%d]", path.Base(fmt.Sprintf("%s", f)), lineNumber(f))
			}
		}
	default:
		io.WriteString(s, e.Error())
	}
}

func lineNumber(f errors.Frame) int {
	var n int
	fmt.Sscanf(fmt.Sprintf("%d", f), "%d", &n)
	return n
}
