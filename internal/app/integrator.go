package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/leonelquinteros/gotext"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"relaygeo/internal/adapters/observability"
	"relaygeo/internal/adapters/pofile"
)

type IntegratorConfig struct {
	SourceDir             string // staging output, holds the geo assets
	GeoAssetsDestDir      string
	TranslationsSourceDir string
	TranslationsDestDir   string

	GeoAssetsToCopy     []string
	TranslationsToCopy  []string
	TranslationsToMerge []string
}

type Report struct {
	Copied       []string
	MergePending []string
	Unexpected   []string
}

type Integrator struct{ cfg IntegratorConfig }

func NewIntegrator(cfg IntegratorConfig) *Integrator { return &Integrator{cfg: cfg} }

// Integrate copies geo assets first; any failure there halts the run. Files
// on the merge list are only copied when the destination is absent.
func (in *Integrator) Integrate() (Report, error) {
	var rep Report

	if err := os.MkdirAll(in.cfg.GeoAssetsDestDir, 0o755); err != nil {
		return rep, err
	}
	for _, f := range in.cfg.GeoAssetsToCopy {
		src := filepath.Join(in.cfg.SourceDir, f)
		dst := filepath.Join(in.cfg.GeoAssetsDestDir, f)
		if err := in.copy(&rep, src, dst); err != nil {
			return rep, err
		}
	}

	ents, err := os.ReadDir(in.cfg.TranslationsSourceDir)
	if err != nil {
		return rep, fmt.Errorf("read translations dir: %w", err)
	}
	for _, e := range ents {
		src := filepath.Join(in.cfg.TranslationsSourceDir, e.Name())
		dst := filepath.Join(in.cfg.TranslationsDestDir, e.Name())
		if !e.IsDir() {
			if err := in.copy(&rep, src, dst); err != nil {
				return rep, err
			}
			continue
		}
		if err := in.integrateLocale(&rep, src, dst); err != nil {
			return rep, err
		}
	}
	return rep, nil
}

func (in *Integrator) integrateLocale(rep *Report, srcDir, dstDir string) error {
	ents, err := os.ReadDir(srcDir)
	if err != nil {
		return err
	}
	for _, e := range ents {
		f := e.Name()
		src := filepath.Join(srcDir, f)
		dst := filepath.Join(dstDir, f)

		switch {
		case lo.Contains(in.cfg.TranslationsToCopy, f):
			if err := in.copy(rep, src, dst); err != nil {
				return err
			}
		case lo.Contains(in.cfg.TranslationsToMerge, f):
			if _, err := os.Stat(dst); err == nil {
				in.mergePending(rep, src, dst)
				continue
			}
			if err := in.copy(rep, src, dst); err != nil {
				return err
			}
		default:
			log.Warn().Str("path", src).Msg("unexpected file")
			observability.ObserveAsset("unexpected")
			rep.Unexpected = append(rep.Unexpected, src)
		}
	}
	return nil
}

// mergePending leaves dst untouched and reports how far behind it is.
// TODO: implement msgmerge-style merging once its semantics are agreed on.
func (in *Integrator) mergePending(rep *Report, src, dst string) {
	observability.ObserveAsset("merge_pending")
	rep.MergePending = append(rep.MergePending, dst)

	gen, err := pofile.ReadFile(src)
	if err != nil {
		log.Warn().Err(err).Str("path", src).Msg("merge pending, generated file unreadable")
		return
	}
	existing := gotext.NewPo()
	existing.ParseFile(dst)
	missing := 0
	for _, e := range gen.Entries {
		if existing.Get(e.MsgID) == e.MsgID {
			missing++
		}
	}
	s, d := commonPathSuffixes(src, dst)
	log.Warn().Str("src", s).Str("dst", d).Int("untranslated", missing).Msg("merge pending, destination kept")
}

func (in *Integrator) copy(rep *Report, src, dst string) error {
	s, d := commonPathSuffixes(src, dst)
	log.Info().Msgf("Copying %s to %s", s, d)
	if err := copyFile(src, dst); err != nil {
		return fmt.Errorf("copy %s: %w", src, err)
	}
	observability.ObserveAsset("copied")
	rep.Copied = append(rep.Copied, dst)
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// commonPathSuffixes strips the shared leading bytes of src and dst for display.
func commonPathSuffixes(src, dst string) (string, string) {
	n := 0
	for n < len(src) && n < len(dst) && src[n] == dst[n] {
		n++
	}
	return src[n:], dst[n:]
}
