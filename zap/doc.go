// Package zap provides a zap-based backend for the log.Logger interface.
//
// Register it with the assert package to have lenient-mode assertion
// failures land in the application's structured logs, correlated with
// OpenTelemetry traces when a span is active.
package zap
