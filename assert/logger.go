package assert

import (
	"context"
	"strings"
	"sync"

	"github.com/matklad/always-assert/log"
)

// failureLogger is the process-wide sink for lenient-mode assertion
// failures. It remains nil unless explicitly configured.
var (
	failureLogger   log.Logger
	failureLoggerMu sync.RWMutex
)

// SetLogger registers the logger that receives lenient-mode assertion
// failures. Pass nil to disable logging.
//
// This should be called once during application startup; it is not intended
// as a per-call toggle. Failures observed while no logger is registered are
// dropped.
func SetLogger(logger log.Logger) {
	failureLoggerMu.Lock()
	defer failureLoggerMu.Unlock()

	failureLogger = logger
}

// ConfiguredLogger returns the currently registered logger.
// Returns nil if no logger has been configured.
//
//nolint:ireturn
func ConfiguredLogger() log.Logger {
	failureLoggerMu.RLock()
	defer failureLoggerMu.RUnlock()

	return failureLogger
}

// logControlCharReplacer escapes control characters that can be used for log
// injection (CWE-117). Assertion messages interpolate caller-supplied
// values, so raw newlines could otherwise forge fake log entries.
var logControlCharReplacer = strings.NewReplacer(
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// emit forwards a failure to the registered logger, if any. Best effort: no
// retry, no buffering; delivery problems are the backend's concern.
func emit(msg, file string, line int) {
	logger := ConfiguredLogger()
	if logger == nil {
		return
	}

	logger.Log(context.Background(), log.LevelError, logControlCharReplacer.Replace(msg),
		log.String("file", file),
		log.Int("line", line),
	)
}
