package assert

import (
	"context"
	"sync"

	"github.com/matklad/always-assert/log"
)

// recordingLogger captures emitted records for inspection. It stands in for
// a real backend so tests can assert on the exact failure records.
type recordingLogger struct {
	mu      sync.Mutex
	entries []recordedEntry
}

type recordedEntry struct {
	level  log.Level
	msg    string
	fields []log.Field
}

func (r *recordingLogger) Log(_ context.Context, level log.Level, msg string, fields ...log.Field) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, recordedEntry{level: level, msg: msg, fields: fields})
}

//nolint:ireturn
func (r *recordingLogger) With(_ ...log.Field) log.Logger { return r }

func (r *recordingLogger) Enabled(_ log.Level) bool { return true }

func (r *recordingLogger) Sync(_ context.Context) error { return nil }

func (r *recordingLogger) all() []recordedEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]recordedEntry(nil), r.entries...)
}

// fieldValue returns the value of the named field, or nil.
func fieldValue(entry recordedEntry, key string) any {
	for _, f := range entry.fields {
		if f.Key == key {
			return f.Value
		}
	}

	return nil
}
