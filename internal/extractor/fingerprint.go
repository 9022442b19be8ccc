package extractor

import (
	"crypto/sha256"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"restockwatch/internal/models"
)

// NormalizeLine renders one product as its canonical fingerprint line:
// lower-cased whitespace-collapsed title, whitespace-stripped price and
// lower-cased availability, joined with '|'. Display values on the record
// itself are left untouched.
func NormalizeLine(p models.ProductRecord) string {
	title := strings.ToLower(collapseWhitespace(p.Title))
	price := stripWhitespace(p.Price)
	availability := strings.ToLower(collapseWhitespace(p.Availability))
	return title + "|" + price + "|" + availability
}

// BuildFingerprintText builds the canonical text a page fingerprint is
// digested from: one normalized line per product, sorted lexicographically.
// Sorting makes the fingerprint invariant to DOM reordering of an otherwise
// identical product set. Zero products yield the empty string.
func BuildFingerprintText(products []models.ProductRecord) string {
	if len(products) == 0 {
		return ""
	}
	lines := make([]string, 0, len(products))
	for _, p := range products {
		lines = append(lines, NormalizeLine(p))
	}
	sort.Strings(lines)
	return strings.Join(lines, "\n")
}

// Fingerprint digests the canonical fingerprint text. SHA-256 is used for
// stability, not security; any deterministic digest would do.
func Fingerprint(text string) string {
	sum := sha256.Sum256([]byte(text))
	return fmt.Sprintf("%x", sum)
}

// collapseWhitespace trims and collapses internal whitespace runs to single
// spaces.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// stripWhitespace removes all whitespace characters.
func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
