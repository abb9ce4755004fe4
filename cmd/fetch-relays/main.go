package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"relaygeo/internal/adapters/observability"
	redisad "relaygeo/internal/adapters/redis"
	"relaygeo/internal/adapters/relayapi"
	"relaygeo/internal/app"
	"relaygeo/internal/domain"
	"relaygeo/internal/shared"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// console in dev, JSON otherwise
	log.Logger = observability.NewLogger(cfg.AppEnv)
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	reg := observability.InitRegistry()

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

	out := app.NewFetchService(client, cache, int(cfg.CacheTTL.Seconds())).Fetch(ctx)
	app.LogOutcome(out)
	if out.OK() {
		for _, ref := range out.List.Cities() {
			fmt.Printf("%s (%s)\n", ref.City.Name, ref.City.Code)
		}
	}

	if err := observability.WriteTextfile(reg, cfg.MetricsTextfile); err != nil {
		log.Warn().Err(err).Msg("metrics textfile not written")
	}
}
