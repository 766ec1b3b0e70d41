// Package logger provides the leveled logger used by the hufftree command.
package logger

import (
	"io"
	"log"
)

// Logger writes leveled, printf-style messages.  Debugf output is dropped
// unless DebugEnabled returns true.
type Logger interface {
	Debugf(format string, v ...any)
	Infof(format string, v ...any)
	Errorf(format string, v ...any)
	DebugEnabled() bool
}

type stdLogger struct {
	l     *log.Logger
	debug bool
}

// New returns a Logger writing to w.  Debug messages are dropped unless
// debug is set.
func New(w io.Writer, debug bool) Logger {
	return &stdLogger{l: log.New(w, "hufftree: ", 0), debug: debug}
}

// DebugEnabled lets callers skip building expensive debug output.
func (s *stdLogger) DebugEnabled() bool { return s.debug }

func (s *stdLogger) Debugf(format string, v ...any) {
	if s.debug {
		s.l.Printf("[DEBUG] "+format, v...)
	}
}

func (s *stdLogger) Infof(format string, v ...any)  { s.l.Printf("[INFO] "+format, v...) }
func (s *stdLogger) Errorf(format string, v ...any) { s.l.Printf("[ERROR] "+format, v...) }
