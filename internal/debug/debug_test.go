package debug

import (
	"bytes"
	"testing"
)

func TestNilLoggerIsNoop(t *testing.T) {
	var l *Logger
	l.Printf("ignored %d", 1)
	if l.Enabled() {
		t.Fatalf("nil logger must report disabled")
	}
}

func TestPrintfPrefixesLines(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf)
	l.Printf("selector: %s", "rofi")
	if got := buf.String(); got != "[debug] selector: rofi\n" {
		t.Fatalf("unexpected output: %q", got)
	}
	if !l.Enabled() {
		t.Fatalf("expected enabled logger")
	}
}
