package database

import (
	"context"
	"sync"
	"time"

	"gorm.io/gorm/logger"
)

// QueryTrace is one executed SQL statement with its timing
type QueryTrace struct {
	SQL      string
	Duration time.Duration
	Rows     int64
	Error    string
}

// QueryTracer keeps a bounded, newest-first record of the SQL the snapshot
// loader executed, for debugging slow or failing loads
type QueryTracer struct {
	mu     sync.RWMutex
	traces []QueryTrace
	max    int
}

// Tracer is the shared query trace for this process
var Tracer = NewQueryTracer(50)

// NewQueryTracer creates a tracer holding at most max entries
func NewQueryTracer(max int) *QueryTracer {
	return &QueryTracer{traces: make([]QueryTrace, 0, max), max: max}
}

// Record adds one executed statement to the trace
func (qt *QueryTracer) Record(sql string, duration time.Duration, rows int64, err error) {
	qt.mu.Lock()
	defer qt.mu.Unlock()

	t := QueryTrace{SQL: sql, Duration: duration, Rows: rows}
	if err != nil {
		t.Error = err.Error()
	}
	qt.traces = append([]QueryTrace{t}, qt.traces...)
	if len(qt.traces) > qt.max {
		qt.traces = qt.traces[:qt.max]
	}
}

// Recent returns up to n of the most recent traces
func (qt *QueryTracer) Recent(n int) []QueryTrace {
	qt.mu.RLock()
	defer qt.mu.RUnlock()

	if n > len(qt.traces) {
		n = len(qt.traces)
	}
	out := make([]QueryTrace, n)
	copy(out, qt.traces[:n])
	return out
}

// tracingLogger feeds every statement gorm runs into the shared tracer
type tracingLogger struct {
	logger.Interface
}

func (l *tracingLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.Interface != nil {
		l.Interface.Trace(ctx, begin, fc, err)
	}
	sql, rows := fc()
	Tracer.Record(sql, time.Since(begin), rows, err)
}
