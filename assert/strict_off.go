//go:build !debug && !assertforce

package assert

// Strict reports whether assertion failures escalate to a panic in this
// build. In lenient builds (no debug or assertforce tag) it is false and the
// panic branch compiles away; Always and Never then never terminate the
// process regardless of the condition.
const Strict = false
