// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package enrich merges a Semantic Scholar record into a paper obtained
// from arXiv. Citation metrics and identifiers come from Semantic Scholar;
// descriptive fields already on the paper are kept.
package enrich

import "github.com/pdiddy/paper-engine/pkg/types"

// FromScholar merges rec into p:
//
//   - ScholarID and the three citation counters are always overwritten,
//     zero values included.
//   - DOI and ArxivID are overwritten only when rec carries them. Unlike
//     the counters, an empty identifier on rec never blanks the one the
//     paper already has from arXiv.
//   - Authors are matched to rec's authors by exact name and take their
//     Semantic Scholar ID and metrics. Unmatched authors on either side
//     are left alone or discarded.
//   - Bibtex and the open access PDF URL are only filled when empty.
//
// UpdatedAt is touched on every call.
func FromScholar(p *types.Paper, rec types.ScholarRecord) {
	p.ScholarID = rec.PaperID
	if rec.ExternalIDs.DOI != "" {
		p.DOI = rec.ExternalIDs.DOI
	}
	if rec.ExternalIDs.ArXiv != "" {
		p.ArxivID = rec.ExternalIDs.ArXiv
	}
	p.CitationCount = rec.CitationCount
	p.ReferenceCount = rec.ReferenceCount
	p.InfluentialCitationCount = rec.InfluentialCitationCount

	mergeAuthors(p.Authors, rec.Authors)

	if p.Bibtex == "" && rec.CitationStyles != nil {
		p.Bibtex = rec.CitationStyles.Bibtex
	}
	if p.OpenAccessPDFURL == "" && rec.OpenAccessPDF != nil && rec.OpenAccessPDF.URL != "" {
		p.OpenAccessPDFURL = rec.OpenAccessPDF.URL
		p.IsOpenAccess = true
	}

	p.Touch()
}

func mergeAuthors(authors []types.Author, scholar []types.ScholarAuthor) {
	byName := make(map[string]types.ScholarAuthor, len(scholar))
	for _, a := range scholar {
		if _, ok := byName[a.Name]; !ok {
			byName[a.Name] = a
		}
	}
	for i := range authors {
		sa, ok := byName[authors[i].Name]
		if !ok {
			continue
		}
		authors[i].ScholarID = sa.AuthorID
		authors[i].HIndex = sa.HIndex
		authors[i].Affiliations = sa.Affiliations
		authors[i].PaperCount = sa.PaperCount
		authors[i].CitationCount = sa.CitationCount
	}
}
