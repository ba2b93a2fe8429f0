// File: timer.go
// Title: Performance Timer
// Description: Measures one operation and logs "<operation> completed" with
//              the elapsed time on the entry's Duration, so every formatter
//              renders it the same way.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with performance timing
// - 2025-03-02 v0.2.0: Duration carried on the entry, single Stop path

package log

import (
	"time"
)

// Timer measures a single operation. It logs at most once.
type Timer struct {
	logger    *Logger
	operation string
	started   time.Time
	fields    Fields
	level     Level
	done      bool
}

// NewTimer starts a timer for operation. A nil logger measures without
// logging.
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		started:   time.Now(),
		fields:    make(Fields),
		level:     LevelDebug,
	}
}

// WithLevel changes the level of the completion entry (default debug).
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField attaches a field to the completion entry.
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the time since the timer started.
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.started)
}

// Stop logs the completion entry and returns the elapsed time. Later calls
// return 0 and log nothing.
func (t *Timer) Stop() time.Duration {
	if t.done {
		return 0
	}
	t.done = true
	elapsed := t.Elapsed()

	if t.logger == nil || !t.logger.IsLevelEnabled(t.level) {
		return elapsed
	}

	entry := NewEntry(t.level, t.operation+" completed").WithDuration(elapsed)
	entry.Fields = t.fields.Merge(Fields{"operation": t.operation})
	t.logger.write(entry)

	return elapsed
}
