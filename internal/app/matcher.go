package app

import (
	"strings"

	"github.com/rs/zerolog/log"

	"relaygeo/internal/adapters/observability"
	"relaygeo/internal/domain"
)

// Fields compared against the English city name. namepar carries names with
// diacritics (Wien), nameascii the transliterated ones (Sao Paulo).
var matchFields = []string{"name", "namepar", "nameascii"}

// LookupResult says why a lookup did or did not yield a translation.
type LookupResult string

const (
	LookupHit          LookupResult = "hit"
	LookupMiss         LookupResult = "miss"
	LookupUntranslated LookupResult = "untranslated"
)

// Matcher finds localized city names in a places dataset. The index maps each
// match-field value to the first record carrying it, so a lookup returns the
// same record a front-to-back scan would.
type Matcher struct {
	records []domain.GeoRecord
	index   map[string]int
}

// NewMatcher indexes records once; the slice must not change afterwards.
func NewMatcher(records []domain.GeoRecord) *Matcher {
	m := &Matcher{records: records, index: make(map[string]int, len(records)*2)}
	for i, r := range records {
		for _, f := range matchFields {
			v, ok := r.Get(f)
			if !ok {
				continue
			}
			if _, seen := m.index[v]; !seen {
				m.index[v] = i
			}
		}
	}
	return m
}

// localeKeys returns name_<lang> and name_<locale_with_underscore>.
func localeKeys(locale string) (string, string) {
	lang, _, _ := strings.Cut(locale, "-")
	return "name_" + lang, "name_" + strings.ReplaceAll(locale, "-", "_")
}

func translate(r domain.GeoRecord, locale string) (string, bool) {
	langKey, fullKey := localeKeys(locale)
	if v, ok := r.Get(langKey); ok {
		return v, true
	}
	if v, ok := r.Get(fullKey); ok {
		return v, true
	}
	return "", false
}

// Lookup returns the localized name of city for locale, or "" with the reason.
func (m *Matcher) Lookup(locale, city string) (string, LookupResult) {
	i, ok := m.index[city]
	if !ok {
		return "", LookupMiss
	}
	if v, ok := translate(m.records[i], locale); ok {
		return v, LookupHit
	}
	return "", LookupUntranslated
}

// MatchLinear is the reference scan: first record whose name, namepar or
// nameascii equals city decides the outcome.
func MatchLinear(records []domain.GeoRecord, locale, city string) (string, LookupResult) {
	for _, r := range records {
		if !matches(r, city) {
			continue
		}
		if v, ok := translate(r, locale); ok {
			return v, LookupHit
		}
		return "", LookupUntranslated
	}
	return "", LookupMiss
}

func matches(r domain.GeoRecord, city string) bool {
	for _, f := range matchFields {
		if v, ok := r.Get(f); ok && v == city {
			return true
		}
	}
	return false
}

// splitUSName splits "City, ST[, County]" at most twice from the right and
// returns the bare city and the state suffix ("" when there is none).
func splitUSName(name string) (string, string) {
	parts := rsplitN(name, ",", 3)
	city := strings.TrimSpace(parts[0])
	if len(parts) < 2 {
		return city, ""
	}
	return city, strings.TrimSpace(parts[1])
}

func rsplitN(s, sep string, n int) []string {
	var tail []string
	for len(tail) < n-1 {
		i := strings.LastIndex(s, sep)
		if i < 0 {
			break
		}
		tail = append([]string{s[i+len(sep):]}, tail...)
		s = s[:i]
	}
	return append([]string{s}, tail...)
}

// TranslateCity applies the country-specific name handling around Lookup,
// logs unmatched names and records the outcome.
func (m *Matcher) TranslateCity(locale, countryCode, name string) string {
	lookupName, suffix := name, ""
	if countryCode == "us" {
		lookupName, suffix = splitUSName(name)
	}

	tr, res := m.Lookup(locale, lookupName)
	observability.ObserveLookup(locale, string(res))
	switch res {
	case LookupMiss:
		log.Warn().Str("locale", locale).Str("city", lookupName).Msg("no matching place")
		return ""
	case LookupUntranslated:
		log.Warn().Str("locale", locale).Str("city", lookupName).Msg("place has no translation")
		return ""
	}
	if suffix != "" {
		return tr + ", " + suffix
	}
	return tr
}
