package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want log.Level
	}{
		{"debug", log.DebugLevel},
		{"INFO", log.InfoLevel},
		{"warning", log.WarnLevel},
		{"", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"verbose", log.WarnLevel},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q): got %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFromConfigFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := FromConfig(&buf, "warn", "text")
	l.Info("hidden")
	l.Warn("persist failed", "key", "todos")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info logged at warn level: %q", out)
	}
	if !strings.Contains(out, "persist failed") || !strings.Contains(out, "key=todos") {
		t.Errorf("warning missing: %q", out)
	}
}

func TestFromConfigJSON(t *testing.T) {
	var buf bytes.Buffer
	l := FromConfig(&buf, "debug", "json")
	l.Debug("loaded", "items", 3)
	out := buf.String()
	if !strings.HasPrefix(out, "{") || !strings.Contains(out, `"items":3`) {
		t.Errorf("not json: %q", out)
	}
}

func TestDiscard(t *testing.T) {
	Discard().Error("nothing to see")
}
