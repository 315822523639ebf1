// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the paper-engine pipeline:
// the Paper record and its attachments, raw source records, search
// parameters and results, citation network data and the export record.
//
// Every type that appears in an export carries json, yaml, toml and xml tags
// with the same field names so the record reads the same in every format.
package types

// DefaultMaxResults is the result bound used when none is given.
const DefaultMaxResults = 10

// SearchParams specifies a paper query. Either an ID lookup (ArxivID and/or
// ScholarID) or at least one of Query, Title, Author or Abstract is required.
type SearchParams struct {
	// Query is a free-text query.
	Query string `json:"query,omitempty" yaml:"query,omitempty"`

	// Title restricts matches to the paper title.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Author restricts matches to an author name.
	Author string `json:"author,omitempty" yaml:"author,omitempty"`

	// Abstract restricts matches to abstracts containing the text.
	Abstract string `json:"abstract,omitempty" yaml:"abstract,omitempty"`

	// ArxivID fetches one paper directly from arXiv.
	ArxivID string `json:"arxiv_id,omitempty" yaml:"arxiv_id,omitempty"`

	// ScholarID fetches one paper directly from Semantic Scholar.
	ScholarID string `json:"ss_id,omitempty" yaml:"ss_id,omitempty"`

	// MaxResults bounds the results requested from each source.
	MaxResults int `json:"max_results" yaml:"max_results"`

	// Categories filters arXiv results by category (e.g. "cs.CL").
	Categories []string `json:"categories,omitempty" yaml:"categories,omitempty"`

	// MinCitations filters Semantic Scholar results by citation count.
	MinCitations *int `json:"min_citations,omitempty" yaml:"min_citations,omitempty"`

	// Year filters Semantic Scholar results: "2023" or "2020-2023".
	Year string `json:"year,omitempty" yaml:"year,omitempty"`
}

// NewSearchParams returns params with the default result bound.
func NewSearchParams() SearchParams {
	return SearchParams{MaxResults: DefaultMaxResults}
}

// IsIDLookup reports whether the params request a direct ID fetch.
func (p SearchParams) IsIDLookup() bool {
	return p.ArxivID != "" || p.ScholarID != ""
}

// HasCriteria reports whether any search criterion is set.
func (p SearchParams) HasCriteria() bool {
	return p.Query != "" || p.Title != "" || p.Author != "" || p.Abstract != ""
}

// Limit returns MaxResults, or DefaultMaxResults when unset.
func (p SearchParams) Limit() int {
	if p.MaxResults <= 0 {
		return DefaultMaxResults
	}
	return p.MaxResults
}

// SearchResult is the merged, deduplicated output of a search. Papers from
// arXiv precede papers from Semantic Scholar.
type SearchResult struct {
	Papers []Paper `json:"papers" yaml:"papers"`

	// Sources lists the sources that answered successfully.
	Sources []Source `json:"sources" yaml:"sources"`

	// TotalCount is the source-reported total, when known.
	TotalCount *int `json:"total_count,omitempty" yaml:"total_count,omitempty"`
}

// HasSource reports whether s contributed to the result.
func (r SearchResult) HasSource(s Source) bool {
	for _, src := range r.Sources {
		if src == s {
			return true
		}
	}
	return false
}
