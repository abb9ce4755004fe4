package app

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"relaygeo/internal/adapters/observability"
	"relaygeo/internal/domain"
)

const relayListCacheKey = "relaygeo:relay_list_v2"

type OutcomeKind string

const (
	OutcomeSuccess      OutcomeKind = "success"
	OutcomeMalformed    OutcomeKind = "malformed"
	OutcomeNetworkError OutcomeKind = "network_error"
)

// FetchOutcome is the tagged result of one relay list fetch. List is only
// meaningful for OutcomeSuccess; Err is set otherwise.
type FetchOutcome struct {
	Kind OutcomeKind
	List domain.RelayList
	Err  error
}

func (o FetchOutcome) OK() bool { return o.Kind == OutcomeSuccess }

type FetchService struct {
	client   domain.RelayClient
	cache    domain.RelayCache
	cacheTTL int
}

// NewFetchService wires the relay client with an optional cache (nil disables it).
func NewFetchService(c domain.RelayClient, cache domain.RelayCache, ttlSec int) *FetchService {
	return &FetchService{client: c, cache: cache, cacheTTL: ttlSec}
}

// Fetch never panics or returns a bare error: every failure is folded into the outcome.
func (s *FetchService) Fetch(ctx context.Context) FetchOutcome {
	out := s.fetch(ctx)
	observability.ObserveFetch(string(out.Kind))
	return out
}

func (s *FetchService) fetch(ctx context.Context) FetchOutcome {
	if s.cache != nil {
		if b, ok, err := s.cache.Get(ctx, relayListCacheKey); err != nil {
			log.Warn().Err(err).Msg("relay list cache read failed")
		} else if ok {
			if list, err := mapRelayList(b); err == nil {
				log.Info().Msg("relay list served from cache")
				return FetchOutcome{Kind: OutcomeSuccess, List: list}
			}
		}
	}

	raw, err := s.client.RelayList(ctx)
	if err != nil {
		return FetchOutcome{Kind: OutcomeNetworkError, Err: err}
	}
	list, err := mapRelayList(raw)
	if err != nil {
		return FetchOutcome{Kind: OutcomeMalformed, Err: err}
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, relayListCacheKey, raw, s.cacheTTL); err != nil {
			log.Warn().Err(err).Msg("relay list cache write failed")
		}
	}
	return FetchOutcome{Kind: OutcomeSuccess, List: list}
}

// LogOutcome prints the diagnostic for a failed fetch.
func LogOutcome(o FetchOutcome) {
	switch {
	case o.OK():
		log.Info().Int("countries", len(o.List.Countries)).Msg("relay list fetched")
	case o.Kind == OutcomeNetworkError:
		log.Error().Err(o.Err).Msg("failed to fetch the relays list")
	case errors.Is(o.Err, domain.ErrMissingResult):
		log.Error().Msg("missing the result field")
	case errors.Is(o.Err, domain.ErrMissingCountries):
		log.Error().Msg("missing the countries field")
	default:
		log.Error().Err(o.Err).Msg("malformed relay list response")
	}
}
