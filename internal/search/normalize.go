// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"strings"
	"unicode"

	"github.com/pdiddy/paper-engine/pkg/types"
)

// NormalizeTitle returns a lowercased, punctuation-stripped version of the
// title with whitespace runs collapsed to single spaces. All title
// comparisons go through it.
func NormalizeTitle(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Deduplicate removes papers whose normalized title equals that of an
// earlier paper. Order is preserved and the first occurrence wins, so arXiv
// records beat Semantic Scholar records for the same title.
func Deduplicate(papers []types.Paper) []types.Paper {
	seen := make(map[string]struct{}, len(papers))
	deduped := make([]types.Paper, 0, len(papers))
	for _, p := range papers {
		key := NormalizeTitle(p.Title)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		deduped = append(deduped, p)
	}
	return deduped
}
