package differ

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const maxSummaryLines = 12

// ListingDiff summarizes how the fingerprint text of a page moved between two
// cycles. It is informational only — alerting decisions come from NewProducts.
type ListingDiff struct {
	LinesAdded   int
	LinesRemoved int
	Summary      string
}

// ListingDiffer renders a line-based diff between the previous and current
// fingerprint texts for logs and alert descriptions.
type ListingDiffer struct {
	dmp *diffmatchpatch.DiffMatchPatch
}

// NewListingDiffer creates a ListingDiffer.
func NewListingDiffer() *ListingDiffer {
	return &ListingDiffer{dmp: diffmatchpatch.New()}
}

// Diff computes a line-level diff between the two fingerprint texts.
func (ld *ListingDiffer) Diff(previousText, currentText string) ListingDiff {
	prevChars, curChars, lines := ld.dmp.DiffLinesToChars(withTrailingNewline(previousText), withTrailingNewline(currentText))
	diffs := ld.dmp.DiffCharsToLines(ld.dmp.DiffMain(prevChars, curChars, false), lines)

	var result ListingDiff
	var rendered []string
	for _, d := range diffs {
		for _, line := range splitDiffLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffInsert:
				result.LinesAdded++
				rendered = append(rendered, "+ "+line)
			case diffmatchpatch.DiffDelete:
				result.LinesRemoved++
				rendered = append(rendered, "- "+line)
			}
		}
	}

	if len(rendered) > maxSummaryLines {
		omitted := len(rendered) - maxSummaryLines
		rendered = append(rendered[:maxSummaryLines], fmt.Sprintf("… %d more lines", omitted))
	}
	result.Summary = strings.Join(rendered, "\n")
	return result
}

func withTrailingNewline(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}

func splitDiffLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
