package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"":        zerolog.InfoLevel,
		"DEBUG":   zerolog.DebugLevel,
		"warning": zerolog.WarnLevel,
		"off":     zerolog.Disabled,
	}
	for name, want := range cases {
		got, err := ParseLevel(name)
		if err != nil {
			t.Fatalf("parse %q: %v", name, err)
		}
		if got != want {
			t.Fatalf("parse %q: expected %v, got %v", name, want, got)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestNewWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWriter(&buf, Settings{Level: "warn", Format: FormatJSON})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	logger.Info().Msg("hidden")
	logger.Warn().Str("key", "address=Paris").Msg("over query limit")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one line, got %q", buf.String())
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if entry["level"] != "warn" || entry["key"] != "address=Paris" || entry["message"] != "over query limit" {
		t.Fatalf("unexpected entry %#v", entry)
	}
}

func TestNewWriterConsole(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWriter(&buf, Settings{})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	logger.Info().Msg("ready")
	if !strings.Contains(buf.String(), "ready") || strings.HasPrefix(buf.String(), "{") {
		t.Fatalf("expected console output, got %q", buf.String())
	}
}

func TestNewWriterRejectsUnknownFormat(t *testing.T) {
	if _, err := NewWriter(&bytes.Buffer{}, Settings{Format: "xml"}); err == nil {
		t.Fatalf("expected error")
	}
}
