package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelWarn, &buf)

	l.Debug("debug msg")
	l.Info("info msg")
	l.Warn("warn msg")
	l.Error("error msg")

	out := buf.String()
	if strings.Contains(out, "debug msg") || strings.Contains(out, "info msg") {
		t.Errorf("below-level messages leaked: %q", out)
	}
	if !strings.Contains(out, "warn msg") || !strings.Contains(out, "error msg") {
		t.Errorf("expected warn and error messages: %q", out)
	}
}

func TestFieldsAppearInOrder(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelInfo, &buf).WithComponent("chain").WithField("stage", "existence")

	l.Info("checked")

	out := buf.String()
	ci := strings.Index(out, "component=chain")
	si := strings.Index(out, "stage=existence")
	if ci < 0 || si < 0 {
		t.Fatalf("missing fields: %q", out)
	}
	if ci > si {
		t.Errorf("fields out of attachment order: %q", out)
	}
}

func TestWithFieldDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	parent := New(LevelInfo, &buf)
	_ = parent.WithField("k", "v")

	parent.Info("plain")
	if strings.Contains(buf.String(), "k=v") {
		t.Errorf("parent logger gained child field: %q", buf.String())
	}
}

func TestFormatArgs(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelInfo, &buf)

	l.Info("ran %s (%d)", "Delete", 3)
	if !strings.Contains(buf.String(), "ran Delete (3)") {
		t.Errorf("format args not applied: %q", buf.String())
	}
}

func TestNopDiscards(t *testing.T) {
	// Must not panic and must not write anywhere.
	Nop.Info("dropped")
	Nop.WithField("a", 1).Error("dropped too")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"bogus", LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
