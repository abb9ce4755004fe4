package shared_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"relaygeo/internal/shared"
)

func TestLoad_DefaultsDeriveFromScriptsDir(t *testing.T) {
	t.Setenv("SCRIPTS_DIR", "/gui/scripts")
	t.Setenv("OUT_DIR", "")
	t.Setenv("LOCALE_DIR", "")
	t.Setenv("MANIFEST_FILE", "")

	c := shared.Load()
	if c.OutDir != filepath.Join("/gui/scripts", "out") {
		t.Fatalf("out dir: %s", c.OutDir)
	}
	if c.LocaleDir != filepath.Join("/gui", "locales") {
		t.Fatalf("locale dir: %s", c.LocaleDir)
	}
	if c.TranslationsOutDir() != filepath.Join("/gui/scripts", "out", "locales") {
		t.Fatalf("translations out: %s", c.TranslationsOutDir())
	}
	if c.RelayAPIAttempts != 1 {
		t.Fatalf("expected a single attempt by default, got %d", c.RelayAPIAttempts)
	}
	if len(c.Manifest.GeoAssetsToCopy) != 6 {
		t.Fatalf("unexpected default manifest: %+v", c.Manifest)
	}
}

func TestLoad_ManifestOverridesOnlyGivenLists(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "manifest.yaml")
	body := "translations_to_copy:\n  - cities.po\n"
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("MANIFEST_FILE", p)

	c := shared.Load()
	if len(c.Manifest.TranslationsToCopy) != 1 || c.Manifest.TranslationsToCopy[0] != "cities.po" {
		t.Fatalf("copy list not overridden: %+v", c.Manifest.TranslationsToCopy)
	}
	if len(c.Manifest.TranslationsToMerge) != 1 || c.Manifest.TranslationsToMerge[0] != "relay-locations.po" {
		t.Fatalf("merge list should keep default: %+v", c.Manifest.TranslationsToMerge)
	}
}

func TestValidate_CollectsAllProblems(t *testing.T) {
	c := shared.Config{}
	err := c.Validate()
	if err == nil {
		t.Fatalf("expected validation error")
	}
	for _, want := range []string{"RELAY_API_URL", "RELAY_API_RPS", "RELAY_API_ATTEMPTS", "OUT_DIR", "LOCALE_DIR"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("missing %s in %q", want, err.Error())
		}
	}
}
