package app

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"relaygeo/internal/domain"
)

/********** tiny helpers **********/

// lookupAny: safe nested lookup with dot paths on maps.
func lookupAny(m map[string]any, path string) any {
	cur := any(m)
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		v, ok := obj[part]
		if !ok {
			return nil
		}
		cur = v
	}
	return cur
}

// lookupStr returns string at path or "".
func lookupStr(m map[string]any, path string) string {
	if v := lookupAny(m, path); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// lookupSlice returns the list at path and whether it was present.
func lookupSlice(m map[string]any, path string) ([]any, bool) {
	raw, ok := lookupAny(m, path).([]any)
	return raw, ok
}

/********** relay list mapper **********/

// mapRelayList turns a raw relay_list_v2 JSON-RPC response into the domain tree.
// Missing envelope fields are reported as errors; missing leaf fields are skipped.
func mapRelayList(body []byte) (domain.RelayList, error) {
	var resp map[string]any
	if err := json.Unmarshal(body, &resp); err != nil {
		return domain.RelayList{}, fmt.Errorf("decode relay list: %w", err)
	}
	if rpcErr, ok := resp["error"].(map[string]any); ok {
		return domain.RelayList{}, fmt.Errorf("%w: %s", domain.ErrRPC, lookupStr(rpcErr, "message"))
	}
	if _, ok := resp["result"].(map[string]any); !ok {
		return domain.RelayList{}, domain.ErrMissingResult
	}
	countries, ok := lookupSlice(resp, "result.countries")
	if !ok {
		return domain.RelayList{}, domain.ErrMissingCountries
	}

	out := domain.RelayList{Countries: make([]domain.Country, 0, len(countries))}
	for _, it := range countries {
		cm, ok := it.(map[string]any)
		if !ok {
			continue
		}
		country := domain.Country{Code: lookupStr(cm, "code"), Name: lookupStr(cm, "name")}
		cities, ok := lookupSlice(cm, "cities")
		if !ok {
			log.Warn().Str("country", country.Name).Msg("country has no cities")
			continue
		}
		for _, c := range cities {
			cc, ok := c.(map[string]any)
			if !ok {
				continue
			}
			city := domain.City{Code: lookupStr(cc, "code"), Name: lookupStr(cc, "name")}
			if city.Name == "" {
				log.Warn().Str("country", country.Code).Str("city", city.Code).Msg("city has no name")
				continue
			}
			country.Cities = append(country.Cities, city)
		}
		out.Countries = append(out.Countries, country)
	}
	return out, nil
}
