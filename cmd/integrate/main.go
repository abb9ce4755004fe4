package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"relaygeo/internal/adapters/observability"
	"relaygeo/internal/app"
	"relaygeo/internal/shared"
)

func main() {
	cfg := shared.Load()
	log.Logger = observability.NewLogger(cfg.AppEnv)
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	reg := observability.InitRegistry()

	in := app.NewIntegrator(app.IntegratorConfig{
		SourceDir:             cfg.OutDir,
		GeoAssetsDestDir:      cfg.GeoAssetsDir,
		TranslationsSourceDir: cfg.TranslationsOutDir(),
		TranslationsDestDir:   cfg.LocaleDir,
		GeoAssetsToCopy:       cfg.Manifest.GeoAssetsToCopy,
		TranslationsToCopy:    cfg.Manifest.TranslationsToCopy,
		TranslationsToMerge:   cfg.Manifest.TranslationsToMerge,
	})
	rep, err := in.Integrate()
	app.PrintReport(os.Stdout, rep)

	if werr := observability.WriteTextfile(reg, cfg.MetricsTextfile); werr != nil {
		log.Warn().Err(werr).Msg("metrics textfile not written")
	}
	if err != nil {
		log.Fatal().Err(err).Msg("integration failed")
	}
}
