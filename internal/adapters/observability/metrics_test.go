package observability_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"relaygeo/internal/adapters/observability"
)

func TestMetricsRegistryGathers(t *testing.T) {
	reg := observability.InitRegistry()

	// record one sample so counters are non-zero
	observability.ObserveExternal("relayapi", "relay_list_v2", 200, 12*time.Millisecond)
	observability.ObserveLookup("pt-BR", "hit")

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	seen := map[string]bool{}
	for _, mf := range mfs {
		seen[mf.GetName()] = true
	}
	for _, want := range []string{"relaygeo_external_requests_total", "relaygeo_translation_lookups_total"} {
		if !seen[want] {
			t.Fatalf("expected %s in registry", want)
		}
	}
}

func TestWriteTextfile(t *testing.T) {
	reg := observability.InitRegistry()
	observability.ObserveAsset("copied")

	if err := observability.WriteTextfile(reg, ""); err != nil {
		t.Fatalf("empty path should be a no-op: %v", err)
	}

	p := filepath.Join(t.TempDir(), "relaygeo.prom")
	if err := observability.WriteTextfile(reg, p); err != nil {
		t.Fatalf("write textfile: %v", err)
	}
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read textfile: %v", err)
	}
	if !strings.Contains(string(b), `relaygeo_asset_files_total{action="copied"}`) {
		t.Fatalf("unexpected textfile:\n%s", b)
	}
}
