// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"strings"
	"time"
)

// Analysis is an LLM-generated structured analysis of a paper.
type Analysis struct {
	// Summary is a two to three paragraph summary.
	Summary string `json:"summary" yaml:"summary" toml:"summary" xml:"summary"`

	// SummaryJA is an optional Japanese translation of Summary.
	SummaryJA string `json:"summary_ja,omitempty" yaml:"summary_ja,omitempty" toml:"summary_ja,omitempty" xml:"summary_ja,omitempty"`

	BackgroundAndPurpose string    `json:"background_and_purpose" yaml:"background_and_purpose" toml:"background_and_purpose" xml:"background_and_purpose"`
	Methodology          string    `json:"methodology" yaml:"methodology" toml:"methodology" xml:"methodology"`
	Datasets             []Dataset `json:"datasets" yaml:"datasets" toml:"datasets" xml:"datasets>dataset"`
	Results              string    `json:"results" yaml:"results" toml:"results" xml:"results"`

	// AdvantagesLimitationsAndFutureWork covers strengths, weaknesses and
	// follow-up directions in one field.
	AdvantagesLimitationsAndFutureWork string `json:"advantages_limitations_and_future_work" yaml:"advantages_limitations_and_future_work" toml:"advantages_limitations_and_future_work" xml:"advantages_limitations_and_future_work"`

	KeyContributions []string `json:"key_contributions" yaml:"key_contributions" toml:"key_contributions" xml:"key_contributions>contribution"`
	Tasks            []string `json:"tasks" yaml:"tasks" toml:"tasks" xml:"tasks>task"`

	// AnalyzedAt records when the analysis ran.
	AnalyzedAt time.Time `json:"analyzed_at" yaml:"analyzed_at" toml:"analyzed_at" xml:"analyzed_at"`

	// Provider and Model identify the LLM that produced the analysis.
	Provider string `json:"provider" yaml:"provider" toml:"provider" xml:"provider"`
	Model    string `json:"model" yaml:"model" toml:"model" xml:"model"`
}

// IsComplete reports whether both the summary and methodology are present.
func (a *Analysis) IsComplete() bool {
	return a.Summary != "" && a.Methodology != ""
}

// Dataset describes a dataset used by a paper.
type Dataset struct {
	Name         string `json:"name" yaml:"name" toml:"name" xml:"name"`
	URL          string `json:"url,omitempty" yaml:"url,omitempty" toml:"url,omitempty" xml:"url,omitempty"`
	PaperTitle   string `json:"paper_title,omitempty" yaml:"paper_title,omitempty" toml:"paper_title,omitempty" xml:"paper_title,omitempty"`
	PaperURL     string `json:"paper_url,omitempty" yaml:"paper_url,omitempty" toml:"paper_url,omitempty" xml:"paper_url,omitempty"`
	PaperAuthors string `json:"paper_authors,omitempty" yaml:"paper_authors,omitempty" toml:"paper_authors,omitempty" xml:"paper_authors,omitempty"`
	Description  string `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty" xml:"description,omitempty"`
	Domain       string `json:"domain,omitempty" yaml:"domain,omitempty" toml:"domain,omitempty" xml:"domain,omitempty"`
	Size         string `json:"size,omitempty" yaml:"size,omitempty" toml:"size,omitempty" xml:"size,omitempty"`
}

// IsValid reports whether the dataset has a name.
func (d Dataset) IsValid() bool {
	return strings.TrimSpace(d.Name) != ""
}

// Section is one section of a paper's extracted text.
type Section struct {
	Index   int    `json:"index" yaml:"index" toml:"index" xml:"index"`
	Title   string `json:"title" yaml:"title" toml:"title" xml:"title"`
	Content string `json:"content" yaml:"content" toml:"content" xml:"content"`
}

// Reference is a bibliography entry parsed from a paper's References section.
type Reference struct {
	Key     string `json:"key" yaml:"key" toml:"key" xml:"key"`
	Authors string `json:"authors,omitempty" yaml:"authors,omitempty" toml:"authors,omitempty" xml:"authors,omitempty"`
	Title   string `json:"title" yaml:"title" toml:"title" xml:"title"`
	Year    string `json:"year,omitempty" yaml:"year,omitempty" toml:"year,omitempty" xml:"year,omitempty"`
	Raw     string `json:"raw" yaml:"raw" toml:"raw" xml:"raw"`
}

// PaperText is the text extracted from a paper PDF.
type PaperText struct {
	// PlainText is all section contents joined by blank lines.
	PlainText string `json:"plain_text" yaml:"plain_text" toml:"plain_text" xml:"plain_text"`

	// Sections preserves the document structure in reading order.
	Sections []Section `json:"sections" yaml:"sections" toml:"sections" xml:"sections>section"`

	// Markdown renders each section as "## Title" followed by its content.
	Markdown string `json:"markdown" yaml:"markdown" toml:"markdown" xml:"markdown"`

	// References holds bibliography entries, when a References section was found.
	References []Reference `json:"references,omitempty" yaml:"references,omitempty" toml:"references,omitempty" xml:"references>reference,omitempty"`

	ExtractedAt time.Time `json:"extracted_at" yaml:"extracted_at" toml:"extracted_at" xml:"extracted_at"`
	SourceURL   string    `json:"source_url" yaml:"source_url" toml:"source_url" xml:"source_url"`
}

// IsValid reports whether the extraction produced text and sections.
func (t *PaperText) IsValid() bool {
	return t.PlainText != "" && len(t.Sections) > 0
}

// Section returns the section whose title matches case-insensitively.
func (t *PaperText) Section(title string) (Section, bool) {
	for _, s := range t.Sections {
		if strings.EqualFold(s.Title, title) {
			return s, true
		}
	}
	return Section{}, false
}
