// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"regexp"
	"strings"

	"github.com/pdiddy/paper-engine/pkg/types"
)

var (
	// refStartRe matches the start of a numbered entry: "[12] ..." or "12. ...".
	refStartRe = regexp.MustCompile(`^(?:\[(\d{1,3})\]|(\d{1,3})\.)\s+(.+)$`)

	// yearRe matches a 4-digit year.
	yearRe = regexp.MustCompile(`\b((?:19|20)\d{2})\b`)

	// initialRe matches single-letter initials like "A." so period
	// splitting does not break author names.
	initialRe = regexp.MustCompile(`\b([A-Z])\.`)
)

// ParseReferences extracts numbered bibliography entries from the content
// of a References section. Lines that do not start a new entry are joined
// onto the previous one, since PDF text wraps long entries. Unnumbered
// bibliographies yield nil.
func ParseReferences(content string) []types.Reference {
	var refs []types.Reference
	var key string
	var raw []string

	flush := func() {
		if key != "" {
			refs = append(refs, parseReference(key, joinWrapped(raw)))
		}
		raw = raw[:0]
	}

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if m := refStartRe.FindStringSubmatch(line); m != nil {
			flush()
			key = m[1] + m[2]
			raw = append(raw, m[3])
			continue
		}
		if key != "" {
			raw = append(raw, line)
		}
	}
	flush()
	return refs
}

// joinWrapped joins wrapped lines, mending words hyphenated across a break.
func joinWrapped(lines []string) string {
	var b strings.Builder
	for i, l := range lines {
		if i > 0 {
			prev := lines[i-1]
			if strings.HasSuffix(prev, "-") && len(prev) > 1 && isLower(l[0]) {
				s := b.String()
				b.Reset()
				b.WriteString(strings.TrimSuffix(s, "-"))
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteString(l)
	}
	return b.String()
}

func isLower(c byte) bool { return c >= 'a' && c <= 'z' }

// parseReference splits a raw entry into authors, title and year. Entries
// read "Authors. Title. Venue, Year." so the first period-delimited segment
// is taken as the author list when it looks like one.
func parseReference(key, raw string) types.Reference {
	ref := types.Reference{Key: key, Raw: raw, Year: extractYear(raw)}

	parts := splitOnPeriods(raw)
	switch {
	case len(parts) >= 2 && looksLikeAuthors(parts[0]):
		ref.Authors = parts[0]
		ref.Title = parts[1]
	case len(parts) >= 1:
		ref.Title = parts[0]
	}
	ref.Title = strings.Trim(ref.Title, `"“” `)
	return ref
}

func looksLikeAuthors(s string) bool {
	return strings.Contains(s, ",") ||
		strings.Contains(s, " and ") ||
		strings.Contains(s, "&") ||
		strings.Contains(s, "et al")
}

// extractYear finds the first 4-digit year (19xx or 20xx) in the text.
func extractYear(text string) string {
	if m := yearRe.FindStringSubmatch(text); len(m) >= 2 {
		return m[1]
	}
	return ""
}

// splitOnPeriods splits an entry at ". " boundaries, leaving common
// abbreviations and single-letter initials intact. "et al." ends a segment
// unless a comma follows it.
func splitOnPeriods(text string) []string {
	safe := strings.ReplaceAll(text, "et al.,", "et al\x00,")
	safe = strings.ReplaceAll(safe, "e.g.", "e\x00g\x00")
	safe = strings.ReplaceAll(safe, "i.e.", "i\x00e\x00")
	safe = initialRe.ReplaceAllString(safe, "${1}\x00")

	var result []string
	for _, p := range strings.Split(safe, ". ") {
		p = strings.ReplaceAll(p, "\x00", ".")
		p = strings.TrimSpace(strings.TrimRight(p, "."))
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
