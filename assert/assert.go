package assert

import (
	"fmt"
	"path"
	"runtime"
)

// Always asserts that cond is expected to always hold and returns its actual
// value.
//
// If cond is true it does nothing and evaluates to true.
//
// If cond is false:
//   - panics when the build is strict (debug or assertforce build tags),
//   - otherwise emits an error-level record through the registered logger,
//   - evaluates to false.
//
// The default message carries the call site; use Alwaysf to attach a
// descriptive message instead.
func Always(cond bool) bool {
	if cond {
		return true
	}

	file, line := callSite(1)
	fail(fmt.Sprintf("assertion failed at %s:%d", file, line), file, line)

	return false
}

// Alwaysf is Always with a fmt.Sprintf-style message describing the failure.
func Alwaysf(cond bool, format string, args ...any) bool {
	if cond {
		return true
	}

	file, line := callSite(1)
	fail(fmt.Sprintf(format, args...), file, line)

	return false
}

// Never asserts that cond is expected to never hold and returns its actual
// value. It is the polarity dual of Always: Never(c) == !Always(!c).
//
// If cond is false it does nothing and evaluates to false.
//
// If cond is true:
//   - panics when the build is strict (debug or assertforce build tags),
//   - otherwise emits an error-level record through the registered logger,
//   - evaluates to true, so callers can branch into a recovery path:
//
//	if assert.Never(delta.corrupted()) {
//		return rejectTransaction(tx)
//	}
func Never(cond bool) bool {
	if !cond {
		return false
	}

	file, line := callSite(1)
	fail(fmt.Sprintf("assertion failed: forbidden condition at %s:%d", file, line), file, line)

	return true
}

// Neverf is Never with a fmt.Sprintf-style message describing the failure.
func Neverf(cond bool, format string, args ...any) bool {
	if !cond {
		return false
	}

	file, line := callSite(1)
	fail(fmt.Sprintf(format, args...), file, line)

	return true
}

// fail handles a check whose condition came out in the unexpected polarity.
// Strict builds escalate to a panic carrying the formatted message; lenient
// builds forward the message to the registered logger and let the caller
// continue. Strict is a compile-time constant, so the branch below reduces
// to a single path in either build flavor.
func fail(msg, file string, line int) {
	if Strict {
		panic(msg)
	}

	emit(msg, file, line)
}

// callSite resolves the file and line of the assertion call. skip counts
// frames above the caller of callSite.
func callSite(skip int) (string, int) {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "unknown", 0
	}

	return path.Base(file), line
}
