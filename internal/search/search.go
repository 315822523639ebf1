// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search queries arXiv and Semantic Scholar, merges the two result
// lists into Paper records and resolves papers by ID or by fuzzy title.
//
// The two sources are queried concurrently. A source that fails contributes
// nothing and is left out of SearchResult.Sources; the search only fails
// when neither source produced a paper.
package search

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/pdiddy/paper-engine/internal/enrich"
	"github.com/pdiddy/paper-engine/internal/logging"
	"github.com/pdiddy/paper-engine/pkg/types"
)

// CandidateWidth is the number of results requested from each source when
// resolving a paper by fuzzy title.
const CandidateWidth = 20

// PrimarySource is the preprint source (arXiv).
type PrimarySource interface {
	Name() types.Source
	Search(ctx context.Context, params types.SearchParams) ([]types.ArxivRecord, error)
	FetchByID(ctx context.Context, id string) (types.ArxivRecord, error)
}

// SecondarySource is the citation-graph source (Semantic Scholar).
type SecondarySource interface {
	Name() types.Source
	Search(ctx context.Context, params types.SearchParams) ([]types.ScholarRecord, error)
	MatchTitle(ctx context.Context, title string) (types.ScholarRecord, error)
	FetchDetails(ctx context.Context, id string) (types.ScholarRecord, error)
	FetchCitations(ctx context.Context, id string, limit int) ([]types.ScholarRecord, error)
	FetchReferences(ctx context.Context, id string, limit int) ([]types.ScholarRecord, error)
}

// TextExtractor turns a PDF URL into extracted text.
type TextExtractor interface {
	Extract(ctx context.Context, pdfURL string) (*types.PaperText, error)
}

// Orchestrator runs searches across both sources. Extractor is optional;
// when nil, ID fetches skip PDF text extraction.
type Orchestrator struct {
	Primary   PrimarySource
	Secondary SecondarySource
	Extractor TextExtractor
	Logger    *zap.Logger
}

// NewOrchestrator wires the two sources and an optional extractor.
func NewOrchestrator(primary PrimarySource, secondary SecondarySource, extractor TextExtractor, log *zap.Logger) *Orchestrator {
	return &Orchestrator{
		Primary:   primary,
		Secondary: secondary,
		Extractor: extractor,
		Logger:    logging.OrNop(log),
	}
}

func (o *Orchestrator) log() *zap.Logger { return logging.OrNop(o.Logger) }

// Search resolves params to a merged, deduplicated result. ID lookups fetch
// directly; any other request needs at least one criterion and fans out to
// both sources.
func (o *Orchestrator) Search(ctx context.Context, params types.SearchParams) (types.SearchResult, error) {
	if params.IsIDLookup() {
		return o.fetchByID(ctx, params)
	}
	if !params.HasCriteria() {
		return types.SearchResult{}, ErrNoCriteria
	}

	res := o.searchBoth(ctx, params)
	res.Papers = Deduplicate(res.Papers)
	if len(res.Papers) == 0 {
		return types.SearchResult{}, ErrNoPapersFound
	}
	return res, nil
}

type sourceResult struct {
	source types.Source
	papers []types.Paper
	err    error
}

// searchBoth queries the two sources concurrently and concatenates the
// successful results, arXiv first. Failures are logged and dropped.
func (o *Orchestrator) searchBoth(ctx context.Context, params types.SearchParams) types.SearchResult {
	ch := make(chan sourceResult, 2)
	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		records, err := o.Primary.Search(ctx, params)
		r := sourceResult{source: o.Primary.Name(), err: err}
		for _, rec := range records {
			r.papers = append(r.papers, types.PaperFromArxiv(rec))
		}
		ch <- r
	}()
	go func() {
		defer wg.Done()
		records, err := o.Secondary.Search(ctx, params)
		r := sourceResult{source: o.Secondary.Name(), err: err}
		for _, rec := range records {
			r.papers = append(r.papers, types.PaperFromScholar(rec))
		}
		ch <- r
	}()

	go func() {
		wg.Wait()
		close(ch)
	}()

	byName := make(map[types.Source]sourceResult, 2)
	for r := range ch {
		if r.err != nil {
			o.log().Warn("source search failed", zap.String("source", string(r.source)), zap.Error(r.err))
			continue
		}
		byName[r.source] = r
	}

	var res types.SearchResult
	for _, name := range []types.Source{o.Primary.Name(), o.Secondary.Name()} {
		r, ok := byName[name]
		if !ok {
			continue
		}
		res.Papers = append(res.Papers, r.papers...)
		res.Sources = append(res.Sources, name)
	}
	return res
}

func (o *Orchestrator) fetchByID(ctx context.Context, params types.SearchParams) (types.SearchResult, error) {
	var res types.SearchResult
	if params.ArxivID != "" {
		p, err := o.FetchByArxivID(ctx, params.ArxivID)
		if err != nil {
			return types.SearchResult{}, err
		}
		res.Papers = append(res.Papers, p)
		res.Sources = append(res.Sources, types.SourceArxiv)
	}
	if params.ScholarID != "" {
		p, err := o.FetchByScholarID(ctx, params.ScholarID)
		if err != nil {
			return types.SearchResult{}, err
		}
		res.Papers = append(res.Papers, p)
		res.Sources = append(res.Sources, types.SourceSemanticScholar)
	}
	return res, nil
}

// FetchByArxivID fetches one paper from arXiv, then enriches it from
// Semantic Scholar's exact title match and attaches PDF text. Both of
// those steps are best effort.
func (o *Orchestrator) FetchByArxivID(ctx context.Context, id string) (types.Paper, error) {
	rec, err := o.Primary.FetchByID(ctx, id)
	if err != nil {
		return types.Paper{}, fmt.Errorf("fetching arXiv paper %s: %w", id, err)
	}
	p := types.PaperFromArxiv(rec)

	if match, err := o.Secondary.MatchTitle(ctx, p.Title); err != nil {
		o.log().Debug("semantic scholar enrichment skipped", zap.String("title", p.Title), zap.Error(err))
	} else {
		enrich.FromScholar(&p, match)
	}

	o.tryExtract(ctx, &p)
	return p, nil
}

// FetchByScholarID fetches one paper's details from Semantic Scholar and
// attaches PDF text on a best-effort basis.
func (o *Orchestrator) FetchByScholarID(ctx context.Context, id string) (types.Paper, error) {
	rec, err := o.Secondary.FetchDetails(ctx, id)
	if err != nil {
		return types.Paper{}, fmt.Errorf("fetching Semantic Scholar paper %s: %w", id, err)
	}
	p := types.PaperFromScholar(rec)
	o.tryExtract(ctx, &p)
	return p, nil
}

func (o *Orchestrator) tryExtract(ctx context.Context, p *types.Paper) {
	if o.Extractor == nil {
		return
	}
	pdfURL, ok := p.PDFURL()
	if !ok {
		o.log().Warn("no PDF available", zap.String("title", p.Title))
		return
	}
	text, err := o.Extractor.Extract(ctx, pdfURL)
	if err != nil {
		o.log().Warn("PDF extraction failed", zap.String("title", p.Title), zap.Error(err))
		return
	}
	p.SetExtractedText(text)
}

// FindByTitle searches both sources for title with a wider candidate set
// and returns the closest paper whose distance is within threshold.
func (o *Orchestrator) FindByTitle(ctx context.Context, title string, threshold float64) (types.Paper, error) {
	params := types.SearchParams{Title: title, MaxResults: CandidateWidth}
	res := o.searchBoth(ctx, params)
	candidates := Deduplicate(res.Papers)

	m, err := AcceptMatch(title, candidates, threshold)
	if err != nil {
		return types.Paper{}, err
	}
	o.log().Debug("title matched",
		zap.String("query", title),
		zap.String("title", m.Paper.Title),
		zap.Float64("distance", m.Distance))
	return m.Paper, nil
}
