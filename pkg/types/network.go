// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// AbstractSnippetLen is the number of characters kept in a summary snippet.
const AbstractSnippetLen = 500

// PaperSummary is a reduced projection of a Paper used in citation and
// reference networks. Built once by SummarizePaper and never mutated.
type PaperSummary struct {
	ScholarID                string   `json:"ss_id" yaml:"ss_id" toml:"ss_id" xml:"ss_id"`
	ArxivID                  string   `json:"arxiv_id" yaml:"arxiv_id" toml:"arxiv_id" xml:"arxiv_id"`
	DOI                      string   `json:"doi" yaml:"doi" toml:"doi" xml:"doi"`
	Title                    string   `json:"title" yaml:"title" toml:"title" xml:"title"`
	Authors                  []string `json:"authors" yaml:"authors" toml:"authors" xml:"authors>author"`
	Year                     int      `json:"year" yaml:"year" toml:"year" xml:"year"`
	Venue                    string   `json:"venue" yaml:"venue" toml:"venue" xml:"venue"`
	CitationCount            int      `json:"citation_count" yaml:"citation_count" toml:"citation_count" xml:"citation_count"`
	InfluentialCitationCount int      `json:"influential_citation_count" yaml:"influential_citation_count" toml:"influential_citation_count" xml:"influential_citation_count"`
	AbstractSnippet          string   `json:"abstract_snippet" yaml:"abstract_snippet" toml:"abstract_snippet" xml:"abstract_snippet"`
	URL                      string   `json:"url" yaml:"url" toml:"url" xml:"url"`
}

// SummarizePaper projects p into a PaperSummary. The abstract is cut to
// AbstractSnippetLen runes with "..." appended when longer.
func SummarizePaper(p Paper) PaperSummary {
	return PaperSummary{
		ScholarID:                p.ScholarID,
		ArxivID:                  p.ArxivID,
		DOI:                      p.DOI,
		Title:                    p.Title,
		Authors:                  p.AuthorNames(),
		Year:                     p.Year(),
		Venue:                    p.Journal,
		CitationCount:            p.CitationCount,
		InfluentialCitationCount: p.InfluentialCitationCount,
		AbstractSnippet:          snippet(p.Abstract, AbstractSnippetLen),
		URL:                      p.URL,
	}
}

func snippet(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}

// YearCount is the number of papers published in Year.
type YearCount struct {
	Year  int `json:"year" yaml:"year" toml:"year" xml:"year"`
	Count int `json:"count" yaml:"count" toml:"count" xml:"count"`
}

// VenueCount is the number of papers published at Venue.
type VenueCount struct {
	Venue string `json:"venue" yaml:"venue" toml:"venue" xml:"venue"`
	Count int    `json:"count" yaml:"count" toml:"count" xml:"count"`
}

// YearRange is the inclusive span of publication years.
type YearRange struct {
	Min int `json:"min" yaml:"min" toml:"min" xml:"min"`
	Max int `json:"max" yaml:"max" toml:"max" xml:"max"`
}

// CitationStatistics aggregates the papers citing a paper.
type CitationStatistics struct {
	// ByYear counts citing papers per year, ascending; unknown years are skipped.
	ByYear []YearCount `json:"by_year" yaml:"by_year" toml:"by_year" xml:"by_year>entry"`

	// TopVenues holds at most ten venues by descending count.
	TopVenues []VenueCount `json:"top_venues" yaml:"top_venues" toml:"top_venues" xml:"top_venues>entry"`

	AvgCitationCount float64 `json:"avg_citation_count" yaml:"avg_citation_count" toml:"avg_citation_count" xml:"avg_citation_count"`

	// MostInfluential holds the titles of the five most cited papers.
	MostInfluential []string `json:"most_influential" yaml:"most_influential" toml:"most_influential" xml:"most_influential>title"`
}

// ReferenceStatistics aggregates the papers a paper cites.
type ReferenceStatistics struct {
	ByYear    []YearCount  `json:"by_year" yaml:"by_year" toml:"by_year" xml:"by_year>entry"`
	YearRange *YearRange   `json:"year_range,omitempty" yaml:"year_range,omitempty" toml:"year_range,omitempty" xml:"year_range,omitempty"`
	TopVenues []VenueCount `json:"top_venues" yaml:"top_venues" toml:"top_venues" xml:"top_venues>entry"`
}

// CitationData is the bounded set of papers citing a paper.
type CitationData struct {
	// TotalCount is the paper's own citation counter, not len(Papers).
	TotalCount   int                `json:"total_count" yaml:"total_count" toml:"total_count" xml:"total_count"`
	FetchedCount int                `json:"fetched_count" yaml:"fetched_count" toml:"fetched_count" xml:"fetched_count"`
	Papers       []PaperSummary     `json:"papers" yaml:"papers" toml:"papers" xml:"papers>paper"`
	Statistics   CitationStatistics `json:"statistics" yaml:"statistics" toml:"statistics" xml:"statistics"`
}

// ReferenceData is the bounded set of papers a paper cites.
type ReferenceData struct {
	TotalCount   int                 `json:"total_count" yaml:"total_count" toml:"total_count" xml:"total_count"`
	FetchedCount int                 `json:"fetched_count" yaml:"fetched_count" toml:"fetched_count" xml:"fetched_count"`
	Papers       []PaperSummary      `json:"papers" yaml:"papers" toml:"papers" xml:"papers>paper"`
	Statistics   ReferenceStatistics `json:"statistics" yaml:"statistics" toml:"statistics" xml:"statistics"`
}
