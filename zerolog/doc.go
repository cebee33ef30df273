// Package zerolog provides a zerolog-based backend for the log.Logger
// interface, with a console-writer profile for CLIs and local development.
package zerolog
