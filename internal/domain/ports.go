package domain

import (
	"context"
	"encoding/json"
	"errors"
)

var (
	ErrMissingResult    = errors.New("relay list: missing result field")
	ErrMissingCountries = errors.New("relay list: missing countries field")
	ErrRPC              = errors.New("relay list: rpc error")
)

// RelayClient issues the relay_list_v2 call and returns the raw response body.
type RelayClient interface {
	RelayList(ctx context.Context) (json.RawMessage, error)
}

type RelayCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, v []byte, ttlSec int) error
}

type PlacesSource interface {
	Records() ([]GeoRecord, error)
}
