// Package shapefile reads the populated places dataset.
package shapefile

import (
	"fmt"
	"os"
	"strings"

	"github.com/jonas-p/go-shp"

	"relaygeo/internal/domain"
)

// Source loads every feature of a point shapefile as a GeoRecord.
type Source struct{ Path string }

var _ domain.PlacesSource = (*Source)(nil)

func New(path string) *Source { return &Source{Path: path} }

// Records returns rows in file order. Blank attributes are left out so they
// read as null.
func (s *Source) Records() ([]domain.GeoRecord, error) {
	if _, err := os.Stat(s.Path); err != nil {
		return nil, fmt.Errorf("places dataset: %w", err)
	}
	r, err := shp.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.Path, err)
	}
	defer r.Close()

	fields := r.Fields()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = strings.ToLower(f.String())
	}

	var out []domain.GeoRecord
	for r.Next() {
		n, _ := r.Shape()
		rec := make(domain.GeoRecord, len(fields))
		for k := range fields {
			v := strings.TrimSpace(strings.Trim(r.ReadAttribute(n, k), "\x00"))
			if v == "" {
				continue
			}
			rec[names[k]] = v
		}
		out = append(out, rec)
	}
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", s.Path, err)
	}
	return out, nil
}
