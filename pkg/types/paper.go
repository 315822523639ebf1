// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Author is a paper author. Source A (arXiv) only supplies the name; source B
// (Semantic Scholar) supplies the remaining fields. Name is the join key when
// the two sources are merged.
type Author struct {
	// Name is the author's display name as returned by the source.
	Name string `json:"name" yaml:"name" toml:"name" xml:"name"`

	// ScholarID is the Semantic Scholar author ID.
	ScholarID string `json:"ss_id" yaml:"ss_id" toml:"ss_id" xml:"ss_id"`

	// HIndex is the author's h-index as reported by Semantic Scholar.
	HIndex int `json:"h_index" yaml:"h_index" toml:"h_index" xml:"h_index"`

	// Affiliations lists the author's institutions.
	Affiliations []string `json:"affiliations" yaml:"affiliations" toml:"affiliations" xml:"affiliations>affiliation"`

	// PaperCount is the author's total number of papers.
	PaperCount int `json:"paper_count" yaml:"paper_count" toml:"paper_count" xml:"paper_count"`

	// CitationCount is the author's total number of citations.
	CitationCount int `json:"citation_count" yaml:"citation_count" toml:"citation_count" xml:"citation_count"`
}

// AuthorFromName builds an Author from a bare name string.
func AuthorFromName(name string) Author {
	return Author{Name: strings.TrimSpace(name)}
}

// AuthorFromScholar builds an Author from a Semantic Scholar author record.
func AuthorFromScholar(a ScholarAuthor) Author {
	return Author{
		Name:          a.Name,
		ScholarID:     a.AuthorID,
		HIndex:        a.HIndex,
		Affiliations:  a.Affiliations,
		PaperCount:    a.PaperCount,
		CitationCount: a.CitationCount,
	}
}

// Paper is the canonical in-memory representation of an academic paper and
// its optional derived attachments. Identity is carried by three independent
// identifiers; at least one is set for any paper obtained from a search.
type Paper struct {
	// ScholarID is the Semantic Scholar paper ID.
	ScholarID string `json:"ss_id" yaml:"ss_id" toml:"ss_id" xml:"ss_id"`

	// ArxivID is the version-less arXiv ID (e.g. "1706.03762").
	ArxivID string `json:"arxiv_id" yaml:"arxiv_id" toml:"arxiv_id" xml:"arxiv_id"`

	// DOI is the Digital Object Identifier.
	DOI string `json:"doi" yaml:"doi" toml:"doi" xml:"doi"`

	// Title is the paper title.
	Title string `json:"title" yaml:"title" toml:"title" xml:"title"`

	// Authors lists the paper authors in source order.
	Authors []Author `json:"authors" yaml:"authors" toml:"authors" xml:"authors>author"`

	// Abstract is the paper abstract.
	Abstract string `json:"abstract_text" yaml:"abstract_text" toml:"abstract_text" xml:"abstract_text"`

	// AbstractJA is an optional Japanese translation of the abstract.
	AbstractJA string `json:"abstract_text_ja,omitempty" yaml:"abstract_text_ja,omitempty" toml:"abstract_text_ja,omitempty" xml:"abstract_text_ja,omitempty"`

	// URL is the paper landing page.
	URL string `json:"url" yaml:"url" toml:"url" xml:"url"`

	// Journal is the venue or journal name.
	Journal string `json:"journal" yaml:"journal" toml:"journal" xml:"journal"`

	// PrimaryCategory is the primary arXiv category (e.g. "cs.CL").
	PrimaryCategory string `json:"primary_category" yaml:"primary_category" toml:"primary_category" xml:"primary_category"`

	// Categories lists all arXiv categories.
	Categories []string `json:"categories" yaml:"categories" toml:"categories" xml:"categories>category"`

	// PublishedDate is the publication or preprint date.
	PublishedDate time.Time `json:"published_date" yaml:"published_date" toml:"published_date" xml:"published_date"`

	// Bibtex is the formatted BibTeX citation.
	Bibtex string `json:"bibtex" yaml:"bibtex" toml:"bibtex" xml:"bibtex"`

	CitationCount            int `json:"citations_count" yaml:"citations_count" toml:"citations_count" xml:"citations_count"`
	ReferenceCount           int `json:"references_count" yaml:"references_count" toml:"references_count" xml:"references_count"`
	InfluentialCitationCount int `json:"influential_citation_count" yaml:"influential_citation_count" toml:"influential_citation_count" xml:"influential_citation_count"`

	// IsOpenAccess reports whether an open access PDF is available.
	IsOpenAccess bool `json:"is_open_access" yaml:"is_open_access" toml:"is_open_access" xml:"is_open_access"`

	// OpenAccessPDFURL is the open access PDF location. Empty means absent.
	OpenAccessPDFURL string `json:"open_access_pdf_url,omitempty" yaml:"open_access_pdf_url,omitempty" toml:"open_access_pdf_url,omitempty" xml:"open_access_pdf_url,omitempty"`

	// Analysis is the LLM-generated analysis, nil until produced.
	Analysis *Analysis `json:"analysis,omitempty" yaml:"analysis,omitempty" toml:"analysis,omitempty" xml:"analysis,omitempty"`

	// ExtractedText is the text extracted from the PDF, nil until produced.
	ExtractedText *PaperText `json:"extracted_text,omitempty" yaml:"extracted_text,omitempty" toml:"extracted_text,omitempty" xml:"extracted_text,omitempty"`

	CreatedAt time.Time `json:"created_at" yaml:"created_at" toml:"created_at" xml:"created_at"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at" toml:"updated_at" xml:"updated_at"`
}

// NewPaper returns an empty paper with both timestamps set to now.
func NewPaper() Paper {
	now := time.Now()
	return Paper{CreatedAt: now, UpdatedAt: now}
}

// PaperFromArxiv maps an arXiv record to a Paper. The journal defaults to
// "arXiv" when the record carries no journal reference.
func PaperFromArxiv(rec ArxivRecord) Paper {
	p := NewPaper()
	p.ArxivID = ExtractArxivID(rec.ID)
	p.Title = collapseSpace(rec.Title)
	p.Abstract = strings.TrimSpace(rec.Summary)
	p.DOI = rec.DOI
	p.PrimaryCategory = rec.PrimaryCategory
	p.Categories = rec.Categories
	p.PublishedDate = rec.Published
	p.URL = "https://arxiv.org/abs/" + p.ArxivID
	p.Journal = rec.JournalRef
	if p.Journal == "" {
		p.Journal = "arXiv"
	}
	for _, name := range rec.Authors {
		p.Authors = append(p.Authors, AuthorFromName(name))
	}
	return p
}

// PaperFromScholar maps a Semantic Scholar record to a Paper. The journal
// name is preferred over the venue; a missing or malformed publication date
// falls back to January 1st of the record's year.
func PaperFromScholar(rec ScholarRecord) Paper {
	p := NewPaper()
	p.ScholarID = rec.PaperID
	p.ArxivID = rec.ExternalIDs.ArXiv
	p.DOI = rec.ExternalIDs.DOI
	p.Title = rec.Title
	p.Abstract = rec.Abstract
	p.URL = rec.URL
	p.Journal = rec.Venue
	if rec.Journal != nil && rec.Journal.Name != "" {
		p.Journal = rec.Journal.Name
	}
	p.CitationCount = rec.CitationCount
	p.ReferenceCount = rec.ReferenceCount
	p.InfluentialCitationCount = rec.InfluentialCitationCount
	p.IsOpenAccess = rec.IsOpenAccess
	if rec.OpenAccessPDF != nil && rec.OpenAccessPDF.URL != "" {
		p.IsOpenAccess = true
		p.OpenAccessPDFURL = rec.OpenAccessPDF.URL
	}
	if rec.CitationStyles != nil {
		p.Bibtex = rec.CitationStyles.Bibtex
	}
	p.PublishedDate = scholarDate(rec.PublicationDate, rec.Year)
	for _, a := range rec.Authors {
		p.Authors = append(p.Authors, AuthorFromScholar(a))
	}
	return p
}

// scholarDate parses a Semantic Scholar publication date, falling back to
// January 1st of year when the date is missing or malformed.
func scholarDate(date string, year int) time.Time {
	if date != "" {
		if t, err := time.Parse("2006-01-02", date); err == nil {
			return t
		}
	}
	if year > 0 {
		return time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	return time.Time{}
}

// Year returns the publication year, or 0 when the date is unknown.
func (p *Paper) Year() int {
	if p.PublishedDate.IsZero() {
		return 0
	}
	return p.PublishedDate.Year()
}

// Touch marks the paper as modified now.
func (p *Paper) Touch() {
	p.UpdatedAt = time.Now()
}

// SetAnalysis attaches an LLM analysis.
func (p *Paper) SetAnalysis(a *Analysis) {
	p.Analysis = a
	p.Touch()
}

// SetExtractedText attaches extracted PDF text.
func (p *Paper) SetExtractedText(t *PaperText) {
	p.ExtractedText = t
	p.Touch()
}

// IsAnalyzed reports whether the paper carries a complete analysis.
func (p *Paper) IsAnalyzed() bool {
	return p.Analysis != nil && p.Analysis.IsComplete()
}

// HasExtractedText reports whether the paper carries usable extracted text.
func (p *Paper) HasExtractedText() bool {
	return p.ExtractedText != nil && p.ExtractedText.IsValid()
}

// PDFURL returns the URL to extract text from: the open access PDF when
// known, otherwise the arXiv PDF.
func (p *Paper) PDFURL() (string, bool) {
	if p.OpenAccessPDFURL != "" {
		return p.OpenAccessPDFURL, true
	}
	if p.ArxivID != "" {
		return "https://arxiv.org/pdf/" + p.ArxivID, true
	}
	return "", false
}

// Citation returns a short text citation: "Authors (Year). Title".
func (p *Paper) Citation() string {
	var authors string
	if len(p.Authors) > 3 {
		authors = p.Authors[0].Name + " et al."
	} else {
		names := make([]string, len(p.Authors))
		for i, a := range p.Authors {
			names[i] = a.Name
		}
		authors = strings.Join(names, ", ")
	}
	year := "n.d."
	if y := p.Year(); y > 0 {
		year = strconv.Itoa(y)
	}
	return fmt.Sprintf("%s (%s). %s", authors, year, p.Title)
}

// AuthorNames returns the author names in order.
func (p *Paper) AuthorNames() []string {
	names := make([]string, len(p.Authors))
	for i, a := range p.Authors {
		names[i] = a.Name
	}
	return names
}

// ExtractArxivID returns the bare arXiv ID from an abs URL or versioned ID
// (e.g. "http://arxiv.org/abs/1706.03762v7" -> "1706.03762").
func ExtractArxivID(raw string) string {
	id := strings.TrimSpace(raw)
	for _, prefix := range []string{"http://arxiv.org/abs/", "https://arxiv.org/abs/"} {
		id = strings.TrimPrefix(id, prefix)
	}
	if i := strings.LastIndex(id, "v"); i > 0 && i < len(id)-1 {
		if _, err := strconv.Atoi(id[i+1:]); err == nil {
			id = id[:i]
		}
	}
	return id
}

// collapseSpace joins whitespace-separated fields with single spaces. arXiv
// titles wrap across lines in the Atom feed.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
