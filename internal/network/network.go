// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package network fetches the citation and reference neighbourhood of a
// paper from Semantic Scholar and derives summary statistics from it.
package network

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/pdiddy/paper-engine/internal/logging"
	"github.com/pdiddy/paper-engine/pkg/types"
)

// DefaultMaxCitations bounds the citing and cited papers kept per export.
const DefaultMaxCitations = 50

// ErrScholarIDUnavailable is returned when a paper has no Semantic Scholar
// ID; the citation graph is keyed by it.
var ErrScholarIDUnavailable = errors.New("paper has no Semantic Scholar ID")

// Graph is the citation-graph source. search.SemanticScholarSource
// satisfies it.
type Graph interface {
	FetchCitations(ctx context.Context, id string, limit int) ([]types.ScholarRecord, error)
	FetchReferences(ctx context.Context, id string, limit int) ([]types.ScholarRecord, error)
}

// Fetcher builds CitationData and ReferenceData for a paper.
type Fetcher struct {
	Graph  Graph
	Logger *zap.Logger
}

// NewFetcher returns a Fetcher over g.
func NewFetcher(g Graph, log *zap.Logger) *Fetcher {
	return &Fetcher{Graph: g, Logger: logging.OrNop(log)}
}

// FetchCitations returns at most max papers citing p with their
// statistics. TotalCount is p's own citation counter. A paper with no
// fetched citations, or a max of zero, yields nil.
func (f *Fetcher) FetchCitations(ctx context.Context, p *types.Paper, max int) (*types.CitationData, error) {
	if max <= 0 {
		return nil, nil
	}
	if p.ScholarID == "" {
		return nil, ErrScholarIDUnavailable
	}
	records, err := f.Graph.FetchCitations(ctx, p.ScholarID, max)
	if err != nil {
		return nil, fmt.Errorf("fetching citations for %s: %w", p.ScholarID, err)
	}
	summaries := summarize(records, max)
	logging.OrNop(f.Logger).Debug("citations fetched",
		zap.String("ss_id", p.ScholarID),
		zap.Int("received", len(records)),
		zap.Int("kept", len(summaries)))
	if len(summaries) == 0 {
		return nil, nil
	}
	return &types.CitationData{
		TotalCount:   p.CitationCount,
		FetchedCount: len(summaries),
		Papers:       summaries,
		Statistics:   CitationStats(summaries),
	}, nil
}

// FetchReferences returns at most max papers referenced by p with their
// statistics. TotalCount is p's own reference counter.
func (f *Fetcher) FetchReferences(ctx context.Context, p *types.Paper, max int) (*types.ReferenceData, error) {
	if max <= 0 {
		return nil, nil
	}
	if p.ScholarID == "" {
		return nil, ErrScholarIDUnavailable
	}
	records, err := f.Graph.FetchReferences(ctx, p.ScholarID, max)
	if err != nil {
		return nil, fmt.Errorf("fetching references for %s: %w", p.ScholarID, err)
	}
	summaries := summarize(records, max)
	logging.OrNop(f.Logger).Debug("references fetched",
		zap.String("ss_id", p.ScholarID),
		zap.Int("received", len(records)),
		zap.Int("kept", len(summaries)))
	if len(summaries) == 0 {
		return nil, nil
	}
	return &types.ReferenceData{
		TotalCount:   p.ReferenceCount,
		FetchedCount: len(summaries),
		Papers:       summaries,
		Statistics:   ReferenceStats(summaries),
	}, nil
}

// summarize keeps the first max records, in source order, as summaries.
func summarize(records []types.ScholarRecord, max int) []types.PaperSummary {
	if len(records) > max {
		records = records[:max]
	}
	out := make([]types.PaperSummary, 0, len(records))
	for _, rec := range records {
		out = append(out, types.SummarizePaper(types.PaperFromScholar(rec)))
	}
	return out
}
