package model

import (
	"fmt"
	"time"
)

// Log collects human-readable activity entries for a session.
// Entries are never persisted.
type Log struct {
	entries []string
	now     func() time.Time
}

// NewLog returns an empty log stamped with the wall clock.
func NewLog() *Log {
	return &Log{now: time.Now}
}

// NewLogAt returns an empty log stamped by the given clock (useful for testing).
func NewLogAt(now func() time.Time) *Log {
	return &Log{now: now}
}

// Added records that qty of item was added.
func (l *Log) Added(item string, qty int) {
	l.append(fmt.Sprintf("Added %d of %s", qty, item))
}

func (l *Log) append(msg string) {
	now := time.Now
	if l.now != nil {
		now = l.now
	}
	l.entries = append(l.entries, fmt.Sprintf("%s: %s", now().Format("2006-01-02 15:04:05.000000"), msg))
}

// Entries returns the recorded entries in order.
func (l *Log) Entries() []string {
	out := make([]string, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of recorded entries.
func (l *Log) Len() int {
	return len(l.entries)
}
