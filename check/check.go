// Package check provides halt-with-message verifications.
//
// Verify and Check test a condition and, on failure, print a message with the
// caller's source location to stderr and terminate the process with a
// non-zero status. Verify is always on; Check is skipped entirely when
// runtime production mode is enabled, so it can guard expensive development
// checks without paying for them in production.
//
// For checks whose failure should be handled rather than fatal, use the
// assert package instead.
package check

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	goruntime "runtime"

	"github.com/nessan/utilities/runtime"
)

// output and exitFunc are indirections so tests can capture the failure path
// without killing the test process.
var (
	output   io.Writer      = os.Stderr
	exitFunc func(code int) = os.Exit
)

// exitCode is the process status used when a verification fails.
const exitCode = 1

// Verify checks that cond is true and, if not, exits the program with a
// formatted message. The message always includes the source location of the
// failed call.
//
// Example:
//
//	check.Verify(len(args) == 2, "expected 2 arguments, got %d", len(args))
func Verify(cond bool, format string, args ...any) {
	if cond {
		return
	}

	failAt(2, format, args...)
}

// Check behaves like Verify but is a no-op when runtime production mode is
// enabled. Use it for expensive sanity checks appropriate in development that
// should never run in production.
func Check(cond bool, format string, args ...any) {
	if runtime.IsProductionMode() {
		return
	}

	if cond {
		return
	}

	failAt(2, format, args...)
}

// Failed unconditionally prints a formatted message with the caller's source
// location and exits the program. Use it for unreachable or unrecoverable
// situations discovered without a boolean condition:
//
//	file, err := os.Open(path)
//	if err != nil {
//		check.Failed("cannot open %q: %v", path, err)
//	}
func Failed(format string, args ...any) {
	failAt(2, format, args...)
}

// failAt prints the failure message for the caller `skip` frames up and exits.
func failAt(skip int, format string, args ...any) {
	function, file, line := callerLocation(skip + 1)

	fmt.Fprintf(output, "\n[VERIFY FAILED] in function '%s' (%s, line %d)", function, file, line)

	if format != "" {
		fmt.Fprintf(output, ":\n"+format, args...)
	}

	fmt.Fprintln(output)
	exitFunc(exitCode)
}

// callerLocation resolves the function name, file basename, and line for the
// frame `skip` levels above this call.
func callerLocation(skip int) (function, file string, line int) {
	pc, path, line, ok := goruntime.Caller(skip)
	if !ok {
		return "unknown", "unknown", 0
	}

	function = "unknown"
	if fn := goruntime.FuncForPC(pc); fn != nil {
		function = filepath.Ext(fn.Name())
		if function == "" {
			function = fn.Name()
		} else {
			function = function[1:] // drop the leading dot from pkg.Func
		}
	}

	return function, filepath.Base(path), line
}
