package shared

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

type Config struct {
	AppEnv string

	ScriptsDir   string
	OutDir       string
	LocaleDir    string
	GeoAssetsDir string
	PlacesShp    string

	RelayAPIURL      string
	RelayAPIRPS      int
	RelayAPIAttempts int
	HTTPTimeout      time.Duration

	RedisAddr string
	RedisPass string
	RedisDB   int
	CacheTTL  time.Duration

	MetricsTextfile string

	Manifest Manifest
}

// Manifest holds the file allowlists used by the asset integrator.
type Manifest struct {
	GeoAssetsToCopy     []string `yaml:"geo_assets_to_copy"`
	TranslationsToCopy  []string `yaml:"translations_to_copy"`
	TranslationsToMerge []string `yaml:"translations_to_merge"`
}

func DefaultManifest() Manifest {
	return Manifest{
		GeoAssetsToCopy: []string{
			"cities.rbush.json",
			"countries.rbush.json",
			"geometry.json",
			"geometry.rbush.json",
			"states-provinces-lines.json",
			"states-provinces-lines.rbush.json",
		},
		TranslationsToCopy:  []string{"cities.po", "countries.po"},
		TranslationsToMerge: []string{"relay-locations.po"},
	}
}

// Load reads .env (if any), then the environment, then the optional manifest.
func Load() Config {
	_ = godotenv.Load(".env")

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	scripts := env("SCRIPTS_DIR", ".")
	c := Config{
		AppEnv:           env("APP_ENV", "dev"),
		ScriptsDir:       scripts,
		OutDir:           env("OUT_DIR", filepath.Join(scripts, "out")),
		LocaleDir:        env("LOCALE_DIR", filepath.Join(scripts, "..", "locales")),
		GeoAssetsDir:     env("GEO_ASSETS_DIR", filepath.Join(scripts, "..", "assets", "geo")),
		PlacesShp:        env("PLACES_SHP", filepath.Join(scripts, "data", "ne_10m_populated_places", "ne_10m_populated_places.shp")),
		RelayAPIURL:      env("RELAY_API_URL", "https://api.mullvad.net/rpc/"),
		RelayAPIRPS:      atoi("RELAY_API_RPS", 5),
		RelayAPIAttempts: atoi("RELAY_API_ATTEMPTS", 1),
		HTTPTimeout:      time.Duration(atoi("HTTP_TIMEOUT_SECONDS", 20)) * time.Second,
		RedisAddr:        env("REDIS_ADDR", ""),
		RedisPass:        env("REDIS_PASSWORD", ""),
		RedisDB:          atoi("REDIS_DB", 0),
		CacheTTL:         time.Duration(atoi("CACHE_TTL_SECONDS", 3600)) * time.Second,
		MetricsTextfile:  env("METRICS_TEXTFILE", ""),
		Manifest:         DefaultManifest(),
	}
	if p := os.Getenv("MANIFEST_FILE"); p != "" {
		m, err := LoadManifest(p)
		if err != nil {
			log.Warn().Err(err).Str("path", p).Msg("manifest ignored")
		} else {
			c.Manifest = m
		}
	}
	return c
}

// LoadManifest reads a YAML manifest. Lists left out of the file keep their defaults.
func LoadManifest(path string) (Manifest, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, err
	}
	var m Manifest
	if err := yaml.Unmarshal(b, &m); err != nil {
		return Manifest{}, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	def := DefaultManifest()
	if m.GeoAssetsToCopy == nil {
		m.GeoAssetsToCopy = def.GeoAssetsToCopy
	}
	if m.TranslationsToCopy == nil {
		m.TranslationsToCopy = def.TranslationsToCopy
	}
	if m.TranslationsToMerge == nil {
		m.TranslationsToMerge = def.TranslationsToMerge
	}
	return m, nil
}

// Validate reports every problem at once.
func (c Config) Validate() error {
	var merr *multierror.Error
	if c.RelayAPIURL == "" {
		merr = multierror.Append(merr, errors.New("RELAY_API_URL is empty"))
	}
	if c.RelayAPIRPS <= 0 {
		merr = multierror.Append(merr, fmt.Errorf("RELAY_API_RPS must be positive, got %d", c.RelayAPIRPS))
	}
	if c.RelayAPIAttempts <= 0 {
		merr = multierror.Append(merr, fmt.Errorf("RELAY_API_ATTEMPTS must be positive, got %d", c.RelayAPIAttempts))
	}
	if c.OutDir == "" {
		merr = multierror.Append(merr, errors.New("OUT_DIR is empty"))
	}
	if c.LocaleDir == "" {
		merr = multierror.Append(merr, errors.New("LOCALE_DIR is empty"))
	}
	return merr.ErrorOrNil()
}

// TranslationsOutDir is where the extractor stages its PO/POT files.
func (c Config) TranslationsOutDir() string { return filepath.Join(c.OutDir, "locales") }

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
