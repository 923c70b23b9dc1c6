package messages

import (
	"fmt"
	"sort"
)

// Supported locales.
const (
	LocaleID = "id"
	LocaleEN = "en"
)

// Catalog resolves message keys for one locale. Unknown keys fall back to
// Indonesian, then to the key itself.
type Catalog struct {
	locale string
	table  map[string]string
}

// New returns the catalog for locale, defaulting to Indonesian.
func New(locale string) *Catalog {
	table, ok := tables[locale]
	if !ok {
		locale, table = LocaleID, tables[LocaleID]
	}
	return &Catalog{locale: locale, table: table}
}

func (c *Catalog) Locale() string { return c.locale }

// T returns the message for key, formatted with args when given.
func (c *Catalog) T(key string, args ...interface{}) string {
	msg, ok := c.table[key]
	if !ok {
		if msg, ok = tables[LocaleID][key]; !ok {
			return key
		}
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

// Keys lists every key of locale, sorted.
func Keys(locale string) []string {
	keys := make([]string, 0, len(tables[locale]))
	for k := range tables[locale] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var tables = map[string]map[string]string{
	LocaleID: id,
	LocaleEN: en,
}
