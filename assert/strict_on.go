//go:build debug || assertforce

package assert

// Strict reports whether assertion failures escalate to a panic in this
// build. It is true when built with the debug tag (debug-like builds) or the
// assertforce tag (explicit always-escalate override).
//
// Guard expensive condition computation with `if assert.Strict { ... }` so
// lenient builds can eliminate it entirely.
const Strict = true
