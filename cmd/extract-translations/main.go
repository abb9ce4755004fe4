package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"relaygeo/internal/adapters/observability"
	redisad "relaygeo/internal/adapters/redis"
	"relaygeo/internal/adapters/relayapi"
	"relaygeo/internal/adapters/shapefile"
	"relaygeo/internal/app"
	"relaygeo/internal/domain"
	"relaygeo/internal/shared"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	reg := observability.InitRegistry()
	defer func() {
		if err := observability.WriteTextfile(reg, cfg.MetricsTextfile); err != nil {
			log.Warn().Err(err).Msg("metrics textfile not written")
		}
	}()

	log.Info().
		Str("endpoint", cfg.RelayAPIURL).
		Str("locales", cfg.LocaleDir).
		Str("places", cfg.PlacesShp).
		Msg("extractor starting")

	client, err := relayapi.New(cfg.RelayAPIURL, cfg.RelayAPIRPS, cfg.RelayAPIAttempts, cfg.HTTPTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize relay API client")
	}
	var cache domain.RelayCache
	if cfg.RedisAddr != "" {
		rc := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		defer rc.Close()
		cache = rc
	}

	// 1) relay list; a failed fetch produces no artifacts
	out := app.NewFetchService(client, cache, int(cfg.CacheTTL.Seconds())).Fetch(ctx)
	app.LogOutcome(out)
	if !out.OK() {
		return
	}

	// 2) places dataset
	var src domain.PlacesSource = shapefile.New(cfg.PlacesShp)
	places, err := src.Records()
	if err != nil {
		log.Error().Err(err).Msg("failed to load places dataset")
		return
	}
	log.Info().Int("records", len(places)).Msg("places dataset loaded")

	// 3) template + one catalog per locale
	ex := app.NewExtractor(app.ExtractorConfig{LocaleDir: cfg.LocaleDir, OutDir: cfg.TranslationsOutDir()}, places)
	rep, err := ex.Extract(out.List)
	if err != nil {
		log.Error().Err(err).Msg("extraction failed")
		return
	}
	log.Info().Int("locales", len(rep.Catalogs)).Msg("extraction completed")
}
