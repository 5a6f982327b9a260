package analysis

import (
	"strings"

	pkgerrors "insightapi/pkg/errors"
)

// bulletMarkers are accepted at the start of an item line. The prompt
// asks for "-", but model output drifts.
var bulletMarkers = []string{"-", "*", "+", "•"}

// ParseResponse extracts the four category sections from a raw language
// backend response. The response is untrusted free text: headings are
// matched case- and whitespace-tolerantly, a missing section yields an
// empty slice, and only when every section comes back empty does the
// parse fail.
//
// The scan is a single forward pass: find each label's first heading
// line, capture up to the next heading of any label (or end of text),
// keep the bullet lines, strip markers. No regular expressions, so no
// backtracking concerns. Repeated headings for the same label terminate
// the first span rather than extending it.
func ParseResponse(raw string) (Record, error) {
	lines := strings.Split(raw, "\n")

	// Pass 1: heading line indices. headingAt marks every heading line;
	// firstIdx keeps only the first occurrence per label.
	headingAt := make([]bool, len(lines))
	firstIdx := make(map[Category]int, len(Categories))
	for i, line := range lines {
		c, ok := matchHeading(line)
		if !ok {
			continue
		}
		headingAt[i] = true
		if _, seen := firstIdx[c]; !seen {
			firstIdx[c] = i
		}
	}

	// Pass 2: collect bullet items within each label's span.
	var record Record
	for _, c := range Categories {
		start, ok := firstIdx[c]
		if !ok {
			continue
		}
		var items []string
		for i := start + 1; i < len(lines); i++ {
			if headingAt[i] {
				break
			}
			if item, ok := stripBullet(lines[i]); ok {
				items = append(items, item)
			}
		}
		record.setItems(c, items)
	}

	if record.IsEmpty() {
		return Record{}, pkgerrors.NewMalformedResponseError(
			"no analysis sections recognized in model response")
	}

	return record, nil
}

// matchHeading reports whether a line is a heading for one of the four
// fixed labels. Tolerates markdown decoration: leading '#' runs,
// surrounding '*' emphasis, and a trailing colon.
func matchHeading(line string) (Category, bool) {
	s := strings.TrimSpace(line)
	if s == "" {
		return "", false
	}

	// Bullet lines are items, never headings. '*' doubles as markdown
	// emphasis, so it only counts as a bullet marker when a space
	// follows; "*Strengths*" and "**Strengths**" remain headings.
	for _, m := range []string{"-", "+", "•"} {
		if strings.HasPrefix(s, m) {
			return "", false
		}
	}
	if strings.HasPrefix(s, "* ") {
		return "", false
	}

	s = strings.TrimLeft(s, "#")
	s = strings.Trim(s, "*")
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, ":")
	s = strings.TrimSpace(s)

	for _, c := range Categories {
		if strings.EqualFold(s, string(c)) {
			return c, true
		}
	}
	return "", false
}

// stripBullet returns the item text of a bullet line with the marker and
// surrounding whitespace removed. Lines that are not bullets, or that
// are empty after stripping, are rejected.
func stripBullet(line string) (string, bool) {
	s := strings.TrimSpace(line)
	for _, m := range bulletMarkers {
		if strings.HasPrefix(s, m) {
			item := strings.TrimSpace(strings.TrimPrefix(s, m))
			if item == "" {
				return "", false
			}
			return item, true
		}
	}
	return "", false
}
