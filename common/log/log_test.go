package log

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]log.Level{
		"debug":   log.DebugLevel,
		" WARN ":  log.WarnLevel,
		"error":   log.ErrorLevel,
		"info":    log.InfoLevel,
		"":        log.InfoLevel,
		"verbose": log.InfoLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) expected %v, got %v", in, want, got)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	InitLogTo(&buf, "scorer", "warn")
	Info("hidden %d", 1)
	Warn("shown %d", 2)
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown 2") {
		t.Fatalf("unexpected log output: %q", out)
	}

	SetLevel("debug")
	Debug("detail")
	if !strings.Contains(buf.String(), "detail") {
		t.Fatalf("debug level not applied: %q", buf.String())
	}
}
