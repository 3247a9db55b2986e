package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNew_RenamesErrorKey(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Writer: &buf})
	l.Info("hello", "error", "boom")
	if !strings.Contains(buf.String(), "err=boom") {
		t.Errorf("expected err key, got %q", buf.String())
	}
}

func TestNew_LevelVar(t *testing.T) {
	var buf bytes.Buffer
	level := &slog.LevelVar{}
	l := New(Options{Writer: &buf, Level: level})
	l.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug should be filtered at info, got %q", buf.String())
	}
	level.Set(slog.LevelDebug)
	l.Debug("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("expected debug record after lowering level, got %q", buf.String())
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	New(Options{Writer: &buf, Format: FormatJSON}).Info("x", "k", 1)
	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("expected JSON output: %v", err)
	}
	if rec["msg"] != "x" {
		t.Errorf("unexpected record %v", rec)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARNING": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"chatty":  slog.LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
