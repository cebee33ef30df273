// Package log defines the logging interface and typed logging fields used to
// report recoverable assertion failures.
//
// Adapters (such as the zap and zerolog packages) implement Logger so the
// assertion library stays decoupled from any particular backend.
package log
