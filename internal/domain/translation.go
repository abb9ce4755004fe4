package domain

import "fmt"

type TranslationEntry struct {
	MsgID   string
	MsgStr  string
	Comment string // "<country_code> <city_code>"
}

// Catalog is an ordered set of entries persisted once as a PO/POT file.
// Language is empty for the template.
type Catalog struct {
	Language string
	Entries  []TranslationEntry
}

func (c *Catalog) Append(e TranslationEntry) { c.Entries = append(c.Entries, e) }

// EntryComment formats the traceability comment of an entry.
func EntryComment(countryCode, cityCode string) string {
	return fmt.Sprintf("%s %s", countryCode, cityCode)
}
