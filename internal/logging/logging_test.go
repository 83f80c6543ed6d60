package logging

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func fixedClock() time.Time {
	return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
}

func newTestLogger(buf *bytes.Buffer, level Level) *Logger {
	l := New(Config{Level: level, Output: buf, Prefix: "test"})
	l.now = fixedClock
	return l
}

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.expected {
			t.Errorf("Level(%d).String() = %q, expected %q", tt.level, got, tt.expected)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{" error ", LevelError},
		{"unknown", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.expected {
			t.Errorf("ParseLevel(%q) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}

func TestValidLevel(t *testing.T) {
	for _, s := range []string{"debug", "info", "warn", "warning", "error", "INFO"} {
		if !ValidLevel(s) {
			t.Errorf("ValidLevel(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "trace", "fatal"} {
		if ValidLevel(s) {
			t.Errorf("ValidLevel(%q) = true, want false", s)
		}
	}
}

func TestLogger_Format(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, LevelDebug)

	l.Info("opened %s", "root")

	want := "2024-01-02T03:04:05.000 [INFO] test: opened root\n"
	if got := buf.String(); got != want {
		t.Errorf("log line = %q, want %q", got, want)
	}
}

func TestLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, LevelWarn)

	l.Debug("debug")
	l.Info("info")
	if buf.Len() != 0 {
		t.Fatalf("expected no output below warn, got %q", buf.String())
	}

	l.Warn("warn")
	l.Error("error")
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}
}

func TestLogger_FieldsSorted(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, LevelDebug).
		WithField("window", "abc").
		WithComponent("adapter")

	l.Debug("polled")

	if !strings.HasSuffix(buf.String(), "polled {component=adapter, window=abc}\n") {
		t.Errorf("unexpected fields rendering: %q", buf.String())
	}
}

func TestLogger_WithFieldDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	parent := newTestLogger(&buf, LevelDebug)
	_ = parent.WithField("k", "v")

	parent.Info("plain")
	if strings.Contains(buf.String(), "k=v") {
		t.Errorf("parent logger picked up child field: %q", buf.String())
	}
}

func TestLogger_DisableEnable(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, LevelDebug)

	l.Disable()
	l.Error("hidden")
	if buf.Len() != 0 {
		t.Fatalf("disabled logger wrote %q", buf.String())
	}

	l.Enable()
	l.Error("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("enabled logger did not write")
	}
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Error("nothing")
	l.WithField("a", 1).Error("still nothing")
}

func TestNew_NilOutput(t *testing.T) {
	l := New(Config{})
	if l.output == nil {
		t.Fatal("expected default output to be set")
	}
	l.Info("discarded")
}
