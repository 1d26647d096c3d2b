package debuglog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_EmptyPathIsNop(t *testing.T) {
	l, err := New("", "box")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if l.Enabled() {
		t.Error("expected no-op logger")
	}
	l.Log("ignored %d", 1)
	if err := l.Close(); err != nil {
		t.Errorf("Close on no-op logger: %v", err)
	}
}

func TestNilLogger(t *testing.T) {
	var l *Logger
	l.Log("nothing")
	if l.Enabled() {
		t.Error("nil logger reports enabled")
	}
	if err := l.Close(); err != nil {
		t.Errorf("Close on nil logger: %v", err)
	}
}

func TestLog_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "debug.log")

	l, err := New(path, "tf")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	l.Log("parsed %s", "1:00/2:00")
	if err := l.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := l.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log: %v", err)
	}
	content := string(data)

	if !strings.Contains(content, "=== tf debug log started at") {
		t.Errorf("missing header in %q", content)
	}
	if !strings.Contains(content, "parsed 1:00/2:00") {
		t.Errorf("missing message in %q", content)
	}
	if n := strings.Count(content, "\n"); n != 2 {
		t.Errorf("expected 2 lines, got %d", n)
	}
}

func TestLog_Appends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")

	for i := 0; i < 2; i++ {
		l, err := New(path, "box")
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		l.Log("run")
		l.Close()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log: %v", err)
	}
	if n := strings.Count(string(data), "] run\n"); n != 2 {
		t.Errorf("expected 2 run entries, got %d", n)
	}
}
