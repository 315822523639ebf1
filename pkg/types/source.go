// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Source identifies a bibliographic source.
type Source string

const (
	SourceArxiv           Source = "arxiv"
	SourceSemanticScholar Source = "semantic_scholar"
)

// ArxivRecord is a paper as returned by the arXiv API. ID is the raw abs URL
// from the feed; use ExtractArxivID for the bare identifier.
type ArxivRecord struct {
	ID              string
	Title           string
	Summary         string
	Authors         []string
	Published       time.Time
	Updated         time.Time
	DOI             string
	JournalRef      string
	PrimaryCategory string
	Categories      []string
	PDFURL          string
}

// ScholarRecord is a paper as returned by the Semantic Scholar Graph API.
// Field names follow the API's JSON so records decode directly.
type ScholarRecord struct {
	PaperID                  string              `json:"paperId"`
	ExternalIDs              ScholarExternalIDs  `json:"externalIds"`
	URL                      string              `json:"url"`
	Title                    string              `json:"title"`
	Abstract                 string              `json:"abstract"`
	Venue                    string              `json:"venue"`
	Year                     int                 `json:"year"`
	PublicationDate          string              `json:"publicationDate"`
	Journal                  *ScholarJournal     `json:"journal"`
	Authors                  []ScholarAuthor     `json:"authors"`
	CitationCount            int                 `json:"citationCount"`
	ReferenceCount           int                 `json:"referenceCount"`
	InfluentialCitationCount int                 `json:"influentialCitationCount"`
	IsOpenAccess             bool                `json:"isOpenAccess"`
	OpenAccessPDF            *ScholarOpenAccess  `json:"openAccessPdf"`
	CitationStyles           *ScholarCitationFmt `json:"citationStyles"`
}

// ScholarExternalIDs holds identifiers from other systems.
type ScholarExternalIDs struct {
	DOI      string `json:"DOI"`
	ArXiv    string `json:"ArXiv"`
	CorpusID int    `json:"CorpusId"`
}

// ScholarJournal is the journal block of a Semantic Scholar paper.
type ScholarJournal struct {
	Name   string `json:"name"`
	Volume string `json:"volume"`
	Pages  string `json:"pages"`
}

// ScholarAuthor is an author as returned by Semantic Scholar. The detail
// fields are only present when requested.
type ScholarAuthor struct {
	AuthorID      string   `json:"authorId"`
	Name          string   `json:"name"`
	HIndex        int      `json:"hIndex"`
	Affiliations  []string `json:"affiliations"`
	PaperCount    int      `json:"paperCount"`
	CitationCount int      `json:"citationCount"`
}

// ScholarOpenAccess is the openAccessPdf block.
type ScholarOpenAccess struct {
	URL    string `json:"url"`
	Status string `json:"status"`
}

// ScholarCitationFmt is the citationStyles block.
type ScholarCitationFmt struct {
	Bibtex string `json:"bibtex"`
}
