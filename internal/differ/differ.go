package differ

import (
	"strings"

	"restockwatch/internal/models"
)

// NewProducts returns the current products whose titles were absent from the
// previous scrape, preserving current order. Titles compare
// case-insensitively after whitespace collapsing. An empty previous list
// returns nil regardless of current: the change detector already suppresses
// the initial scrape, but the diff re-asserts it so it is safe standalone.
//
// A price-only or availability-only change on an already-seen title is
// deliberately not "new" — title is the sole identity. The page fingerprint
// still flags such cycles as changed, so a Changed outcome with an empty
// new-product list is a legitimate (and alert-free) result.
func NewProducts(current, previous []models.ProductRecord) []models.ProductRecord {
	if len(previous) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(previous))
	for _, p := range previous {
		seen[titleKey(p.Title)] = struct{}{}
	}

	var fresh []models.ProductRecord
	for _, p := range current {
		if _, ok := seen[titleKey(p.Title)]; !ok {
			fresh = append(fresh, p)
		}
	}
	return fresh
}

func titleKey(title string) string {
	return strings.ToLower(strings.Join(strings.Fields(title), " "))
}
