// Package rlog wraps charmbracelet/log to log an evaluation the way the
// reference service wraps it for application logging. riichi.Evaluate
// logs a validation failure at warn level and the final han/fu/tier at
// info level; the internal stages (decomposition candidates, shanten
// sub-results, yaku checks, fu accrual) are not logged. Logging is
// opt-in: a nil *Logger is silent, and nothing an evaluation returns
// depends on whether logging is enabled.
package rlog

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Logger is a thin, evaluation-scoped wrapper. The zero value is not
// usable; construct one with New or Discard.
type Logger struct {
	inner *log.Logger
	evalID string
}

// New builds a Logger that writes structured, leveled lines to stderr,
// tagging every line with a fresh evaluation ID so concurrent
// evaluations' interleaved output can be demultiplexed downstream.
func New() *Logger {
	l := log.New(os.Stderr)
	l.SetReportTimestamp(true)
	l.SetTimeFormat(time.RFC3339)
	l.SetLevel(log.DebugLevel)
	return &Logger{inner: l, evalID: uuid.NewString()}
}

// Discard returns a Logger whose calls are all no-ops.
func Discard() *Logger { return nil }

func (l *Logger) with() *log.Logger {
	return l.inner.With("eval_id", l.evalID)
}

func (l *Logger) Debug(msg string, kv ...any) {
	if l == nil {
		return
	}
	l.with().Debug(msg, kv...)
}

func (l *Logger) Info(msg string, kv ...any) {
	if l == nil {
		return
	}
	l.with().Info(msg, kv...)
}

func (l *Logger) Warn(msg string, kv ...any) {
	if l == nil {
		return
	}
	l.with().Warn(msg, kv...)
}
