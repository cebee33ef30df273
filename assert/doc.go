// Package assert provides recoverable assertions, inspired by the use of
// assert() in SQLite (https://www.sqlite.org/assert.html).
//
// Always and Never check an invariant and return the condition's actual
// value instead of unconditionally terminating the process. Use them when
// terminating on assertion failure is worse than continuing: the caller gets
// the truthful result back and decides how to degrade safely.
//
// # Build flavors
//
// Behavior on failure is fixed at compile time:
//
//   - Strict builds (-tags debug, or -tags assertforce to force escalation
//     in an otherwise release-like build) panic with the formatted message.
//     This is the fail-fast mode for development and CI.
//   - Lenient builds (the default) never panic. A failure is forwarded as an
//     error-level record to the logger registered via SetLogger, or dropped
//     silently when none is registered, and the boolean result is returned
//     either way.
//
// The two toggles are independent: any combination of strict/lenient and
// logging on/off behaves as described above.
//
// # When to use
//
// Assertions are for catching bugs, not for handling expected failures:
//
//   - Use Always/Never for conditions that cannot be false/true if the code
//     is correct.
//   - Use error returns for conditions that can legitimately fail (I/O,
//     user input, network).
//
// A critical long-running system such as a database is the typical user. If
// a transaction violates an internal invariant, that is a bug, but rejecting
// the one transaction beats crashing the whole server:
//
//	if assert.Never(!s.deltaConsistent(delta)) {
//		// Something in this transaction corrupted our internal state.
//		// Recover by rejecting the transaction.
//		return s.abort(tx)
//	}
//	s.commit(delta)
//
// Assertions about non-critical functionality are the other common use:
// substituting a fallback value beats failing outright.
//
// # Messages
//
// Alwaysf and Neverf accept fmt.Sprintf-style messages. The message-free
// forms default to a message carrying the call site (file:line), since Go
// cannot capture the condition's source text.
//
// Conditions are ordinary Go expressions evaluated by the caller, exactly
// once per call, before the function runs.
package assert
