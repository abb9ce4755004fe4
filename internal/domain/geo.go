package domain

import "strings"

// GeoRecord is one row of the places dataset keyed by lower-cased property name.
// Absent keys are null.
type GeoRecord map[string]string

func NewGeoRecord(props map[string]string) GeoRecord {
	r := make(GeoRecord, len(props))
	for k, v := range props {
		r[strings.ToLower(k)] = v
	}
	return r
}

// Get looks the key up case-insensitively.
func (r GeoRecord) Get(key string) (string, bool) {
	v, ok := r[strings.ToLower(key)]
	return v, ok
}
