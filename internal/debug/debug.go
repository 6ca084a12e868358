// Package debug writes troubleshooting output for --debug. A nil *Logger is
// valid and discards everything, so callers never need to check for it.
package debug

import (
	"fmt"
	"io"
)

// Logger writes debug lines to a writer.
type Logger struct {
	w io.Writer
}

// NewLogger creates a Logger that writes to w.
func NewLogger(w io.Writer) *Logger {
	return &Logger{w: w}
}

// Printf writes a formatted debug line. No-op on nil receiver.
func (l *Logger) Printf(format string, args ...any) {
	if l == nil {
		return
	}
	fmt.Fprintf(l.w, "[debug] "+format+"\n", args...)
}

// Enabled reports whether output is written anywhere.
func (l *Logger) Enabled() bool {
	return l != nil
}
