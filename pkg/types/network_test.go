// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestSummarizePaperSnippet(t *testing.T) {
	tests := []struct {
		name     string
		abstract string
		want     string
	}{
		{"short kept as is", "A short abstract.", "A short abstract."},
		{"exactly the limit", strings.Repeat("a", AbstractSnippetLen), strings.Repeat("a", AbstractSnippetLen)},
		{"one over is cut", strings.Repeat("a", AbstractSnippetLen+1), strings.Repeat("a", AbstractSnippetLen) + "..."},
		{"multi-byte counted by rune", strings.Repeat("注", AbstractSnippetLen+20), strings.Repeat("注", AbstractSnippetLen) + "..."},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SummarizePaper(Paper{Abstract: tt.abstract}).AbstractSnippet
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

func TestSummarizePaperFields(t *testing.T) {
	p := Paper{
		ScholarID:                "ss1",
		ArxivID:                  "1706.03762",
		DOI:                      "10.1/x",
		Title:                    "Attention Is All You Need",
		Authors:                  []Author{{Name: "Ashish Vaswani"}, {Name: "Noam Shazeer"}},
		Journal:                  "NeurIPS",
		PublishedDate:            time.Date(2017, 6, 12, 0, 0, 0, 0, time.UTC),
		CitationCount:            100,
		InfluentialCitationCount: 9,
		URL:                      "https://example.org",
	}

	assert.Equal(t, PaperSummary{
		ScholarID:                "ss1",
		ArxivID:                  "1706.03762",
		DOI:                      "10.1/x",
		Title:                    "Attention Is All You Need",
		Authors:                  []string{"Ashish Vaswani", "Noam Shazeer"},
		Year:                     2017,
		Venue:                    "NeurIPS",
		CitationCount:            100,
		InfluentialCitationCount: 9,
		URL:                      "https://example.org",
	}, SummarizePaper(p))
}
