// Package deeplink resolves the item=<n> parameter an NFC tag (or a shell
// alias) carries into a collection index.
package deeplink

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/idilsaglam/endurance/internal/model"
)

// Param is the query parameter naming the item to open.
const Param = "item"

// Parse extracts the item index from raw, which may be a full URL
// ("https://tag.example/?item=2"), a query ("?item=2", "item=2") or empty.
// ok is false unless the value is a base-10 integer addressing a slot.
func Parse(raw string) (index int, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	query := raw
	if u, err := url.Parse(raw); err == nil && (u.Scheme != "" || u.RawQuery != "" || strings.HasPrefix(raw, "?")) {
		query = u.RawQuery
	}
	// Malformed pairs elsewhere in the query are skipped; values still holds
	// every pair that parsed.
	values, _ := url.ParseQuery(strings.TrimPrefix(query, "?"))
	if !values.Has(Param) {
		return 0, false
	}
	return Index(values.Get(Param))
}

// Index parses a bare item value.
func Index(v string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || !model.ValidIndex(n) {
		return 0, false
	}
	return n, true
}
