// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"github.com/pdiddy/paper-engine/pkg/types"
)

// DefaultThreshold is the fuzzy distance accepted by title lookups unless
// the caller configures another.
const DefaultThreshold = 0.3

// Match is the best fuzzy candidate for a query.
type Match struct {
	Paper    types.Paper
	Index    int
	Distance float64
}

// Similarity returns the normalized Levenshtein similarity of a and b in
// [0, 1]: 1 - distance / max rune length. Two empty strings are identical.
func Similarity(a, b string) float64 {
	la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	longest := max(la, lb)
	if longest == 0 {
		return 1
	}
	return 1 - float64(levenshtein.ComputeDistance(a, b))/float64(longest)
}

// TitleDistance is 1 - Similarity over the normalized titles.
func TitleDistance(query, title string) float64 {
	return 1 - Similarity(NormalizeTitle(query), NormalizeTitle(title))
}

// BestMatch returns the candidate whose title is closest to query. Ties go
// to the earliest candidate. It reports false when there are no candidates.
func BestMatch(query string, candidates []types.Paper) (Match, bool) {
	if len(candidates) == 0 {
		return Match{}, false
	}
	nq := NormalizeTitle(query)
	best := Match{Index: -1}
	for i, c := range candidates {
		d := 1 - Similarity(nq, NormalizeTitle(c.Title))
		if best.Index < 0 || d < best.Distance {
			best = Match{Paper: c, Index: i, Distance: d}
		}
	}
	return best, true
}

// AcceptMatch runs BestMatch and applies threshold. It returns
// ErrNoPapersFound for an empty candidate set and a *NoMatchError when the
// best distance exceeds threshold.
func AcceptMatch(query string, candidates []types.Paper, threshold float64) (Match, error) {
	m, ok := BestMatch(query, candidates)
	if !ok {
		return Match{}, ErrNoPapersFound
	}
	if m.Distance > threshold {
		return Match{}, &NoMatchError{
			Query:     query,
			BestTitle: m.Paper.Title,
			Distance:  m.Distance,
			Threshold: threshold,
		}
	}
	return m, nil
}
