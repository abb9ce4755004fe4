package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"relaygeo/internal/adapters/pofile"
	"relaygeo/internal/domain"
)

const (
	TemplateFile = "relay-locations.pot"
	CatalogFile  = "relay-locations.po"
)

type ExtractorConfig struct {
	LocaleDir string // app locale root; subdirectory names are the locales
	OutDir    string // staging root for generated PO/POT files
}

type ExtractReport struct {
	Template string
	Catalogs map[string]string // locale -> written path
}

// DiscoverLocales lists the subdirectories of dir. Names are not validated.
func DiscoverLocales(dir string) ([]string, error) {
	ents, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read locale dir: %w", err)
	}
	var out []string
	for _, e := range ents {
		if e.IsDir() {
			out = append(out, e.Name())
		}
	}
	return out, nil
}

// BuildTemplate emits one untranslated entry per named city in response order.
func BuildTemplate(list domain.RelayList) domain.Catalog {
	var c domain.Catalog
	for _, ref := range list.Cities() {
		if ref.City.Name == "" {
			continue
		}
		c.Append(domain.TranslationEntry{
			MsgID:   ref.City.Name,
			Comment: domain.EntryComment(ref.CountryCode, ref.City.Code),
		})
	}
	return c
}

// BuildCatalog is BuildTemplate with translations for locale filled in.
func BuildCatalog(list domain.RelayList, locale string, m *Matcher) domain.Catalog {
	c := domain.Catalog{Language: locale}
	for _, ref := range list.Cities() {
		if ref.City.Name == "" {
			continue
		}
		c.Append(domain.TranslationEntry{
			MsgID:   ref.City.Name,
			MsgStr:  m.TranslateCity(locale, ref.CountryCode, ref.City.Name),
			Comment: domain.EntryComment(ref.CountryCode, ref.City.Code),
		})
	}
	return c
}

type Extractor struct {
	cfg     ExtractorConfig
	matcher *Matcher
}

func NewExtractor(cfg ExtractorConfig, places []domain.GeoRecord) *Extractor {
	return &Extractor{cfg: cfg, matcher: NewMatcher(places)}
}

// Extract writes the template and one catalog per discovered locale.
func (e *Extractor) Extract(list domain.RelayList) (ExtractReport, error) {
	rep := ExtractReport{Catalogs: map[string]string{}}

	rep.Template = filepath.Join(e.cfg.OutDir, TemplateFile)
	if err := pofile.WriteFile(rep.Template, BuildTemplate(list)); err != nil {
		return rep, fmt.Errorf("write template: %w", err)
	}
	log.Info().Str("path", rep.Template).Msg("template written")

	locales, err := DiscoverLocales(e.cfg.LocaleDir)
	if err != nil {
		return rep, err
	}
	for _, locale := range locales {
		p := filepath.Join(e.cfg.OutDir, locale, CatalogFile)
		if err := pofile.WriteFile(p, BuildCatalog(list, locale, e.matcher)); err != nil {
			return rep, fmt.Errorf("write %s catalog: %w", locale, err)
		}
		rep.Catalogs[locale] = p
		log.Info().Str("locale", locale).Str("path", p).Msg("catalog written")
	}
	return rep, nil
}
