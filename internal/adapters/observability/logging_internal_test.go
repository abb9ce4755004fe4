package observability

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewLogger_JSONOutsideDev(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "prod")
	l.Info().Str("locale", "es").Msg("no matching place")

	var ev map[string]any
	if err := json.Unmarshal(buf.Bytes(), &ev); err != nil {
		t.Fatalf("expected JSON line, got %q: %v", buf.String(), err)
	}
	if ev["locale"] != "es" || ev["message"] != "no matching place" {
		t.Fatalf("unexpected event: %v", ev)
	}
}

func TestNewLogger_ConsoleInDev(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "dev")
	l.Warn().Msg("country has no cities")

	out := buf.String()
	if strings.HasPrefix(out, "{") || !strings.Contains(out, "country has no cities") {
		t.Fatalf("expected console output, got %q", out)
	}
}
