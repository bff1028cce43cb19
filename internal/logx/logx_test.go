package logx

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, zerolog.InfoLevel)

	log.Debug().Msg("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug message written at info level: %q", buf.String())
	}

	log.Info().Str("mode", "chromatic").Msg("converted")
	out := buf.String()
	if !strings.Contains(out, "converted") || !strings.Contains(out, "mode=chromatic") {
		t.Errorf("unexpected output %q", out)
	}
	if !strings.Contains(out, "logx_test.go:") {
		t.Errorf("caller missing from %q", out)
	}
}

func TestShortCaller(t *testing.T) {
	got := strings.TrimSpace(shortCaller(0, "/src/pgnmusic/internal/sonify/convert.go", 42))
	if got != "convert.go:42" {
		t.Errorf("shortCaller = %q, want convert.go:42", got)
	}
}
