// Package bricclog is a logrus hook that keeps a bounded ring of recent log
// entries in memory so they can be inspected through the api.
package bricclog

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const defaultLimit = 500

// check Log compliance to the hook interface during compile time
var _ logrus.Hook = (*Log)(nil)

type Entry struct {
	Time    time.Time `json:"time"`
	Level   string    `json:"level"`
	Message string    `json:"message"`
}

type Log struct {
	mtx     sync.Mutex
	entries []*Entry
	limit   int
}

func New() *Log {
	return &Log{
		limit: defaultLimit,
	}
}

func (l *Log) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (l *Log) Fire(entry *logrus.Entry) error {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	l.entries = append(l.entries, &Entry{
		Time:    entry.Time,
		Level:   entry.Level.String(),
		Message: entry.Message,
	})

	if len(l.entries) > l.limit {
		l.entries = l.entries[len(l.entries)-l.limit:]
	}

	return nil
}

// Latest returns the retained entries, oldest first.
func (l *Log) Latest() []*Entry {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	entries := make([]*Entry, len(l.entries))
	copy(entries, l.entries)

	return entries
}
