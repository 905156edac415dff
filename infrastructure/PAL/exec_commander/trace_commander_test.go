package exec_commander

import (
	"strings"
	"testing"
)

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Printf(format string, v ...any) {
	l.lines = append(l.lines, format)
	_ = v
}

func TestTraceCommander_TracesEveryCall(t *testing.T) {
	logger := &recordingLogger{}
	c := NewTraceCommander(&ExecCommander{}, logger)

	if _, err := c.Output("/bin/sh", "-c", "true"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := c.CombinedOutput("/bin/sh", "-c", "true"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.Run("/bin/sh", "-c", "true"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(logger.lines) != 3 {
		t.Fatalf("expected 3 traced commands, got %d", len(logger.lines))
	}
	for _, line := range logger.lines {
		if !strings.HasPrefix(line, "+ ") {
			t.Fatalf("expected trace prefix, got %q", line)
		}
	}
}

func TestTraceCommander_TracesFailingCommandToo(t *testing.T) {
	logger := &recordingLogger{}
	c := NewTraceCommander(&ExecCommander{}, logger)

	if err := c.Run("/bin/sh", "-c", "exit 3"); err == nil {
		t.Fatal("expected error")
	}
	if len(logger.lines) != 1 {
		t.Fatalf("expected failing command to be traced, got %d lines", len(logger.lines))
	}
}
