package logger

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func fixedLogger(buf *bytes.Buffer, level string) *Console {
	l := New(buf, level)
	l.now = func() time.Time { return time.Date(2025, 6, 1, 9, 30, 5, 0, time.UTC) }
	return l
}

func TestConsole_Format(t *testing.T) {
	var buf bytes.Buffer
	l := fixedLogger(&buf, "info")

	l.Warnf("Could not remove %s: %s", "a.png", "busy")

	want := "[09:30:05] [WARN] Could not remove a.png: busy\n"
	if buf.String() != want {
		t.Fatalf("output = %q, want %q", buf.String(), want)
	}
}

func TestConsole_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := fixedLogger(&buf, "warn")

	l.Debugf("debug")
	l.Infof("info")
	l.Warnf("warn")
	l.Errorf("error")

	out := buf.String()
	if strings.Contains(out, "[DEBUG]") || strings.Contains(out, "[INFO]") {
		t.Errorf("below-level messages leaked: %q", out)
	}
	if !strings.Contains(out, "[WARN] warn") || !strings.Contains(out, "[ERROR] error") {
		t.Errorf("missing messages: %q", out)
	}
}

func TestConsole_UnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := fixedLogger(&buf, "verbose")

	l.Debugf("hidden")
	l.Infof("shown")

	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Fatalf("output = %q", buf.String())
	}
}

func TestConsole_NilWriterAndNilLogger(t *testing.T) {
	Discard().Errorf("dropped")

	var l *Console
	l.Infof("no panic")
}
