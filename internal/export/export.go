// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export assembles a paper and its optional derived blocks into a
// single ExportedPaper record. Only resolving the paper is fatal; every
// other step that fails adds a warning to the record and the export
// carries on.
package export

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/paper-engine/internal/logging"
	"github.com/pdiddy/paper-engine/pkg/types"
)

var (
	// ErrNoTarget is returned when a request names no paper.
	ErrNoTarget = errors.New("either an arXiv ID, a Semantic Scholar ID or a title is required")

	// ErrInvalidThreshold is returned for a title threshold outside [0, 1].
	ErrInvalidThreshold = errors.New("threshold must be between 0 and 1")

	// ErrInvalidMaxCitations is returned for a negative citation bound.
	ErrInvalidMaxCitations = errors.New("max citations must not be negative")

	// ErrNoAnalyzer is recorded when an LLM step is requested without an analyzer.
	ErrNoAnalyzer = errors.New("no LLM provider configured")
)

// Step names used in warnings.
const (
	stepText       = "Text extraction"
	stepAnalysis   = "LLM analysis"
	stepCitations  = "Citations fetch"
	stepReferences = "References fetch"
	stepKeywords   = "Keyword extraction"
	stepContext    = "Research context classification"
)

// Resolver finds the paper to export.
type Resolver interface {
	Search(ctx context.Context, params types.SearchParams) (types.SearchResult, error)
	FindByTitle(ctx context.Context, title string, threshold float64) (types.Paper, error)
}

// TextExtractor turns a PDF URL into extracted text.
type TextExtractor interface {
	Extract(ctx context.Context, pdfURL string) (*types.PaperText, error)
}

// Analyzer runs the LLM steps.
type Analyzer interface {
	ProviderName() string
	Model() string
	Analyze(ctx context.Context, p *types.Paper) (*types.Analysis, error)
	ExtractKeywords(ctx context.Context, p *types.Paper) (*types.KeywordsData, error)
	ExtractResearchContext(ctx context.Context, p *types.Paper, keywords []string) (*types.ResearchContext, error)
}

// NetworkFetcher fetches the citation network of a paper.
type NetworkFetcher interface {
	FetchCitations(ctx context.Context, p *types.Paper, max int) (*types.CitationData, error)
	FetchReferences(ctx context.Context, p *types.Paper, max int) (*types.ReferenceData, error)
}

// Request selects the paper and the optional steps of an export.
type Request struct {
	// ArxivID and ScholarID resolve the paper directly. Title is used when
	// set, with fuzzy matching against Threshold. A Threshold of 0 accepts
	// exact matches only.
	ArxivID   string
	ScholarID string
	Title     string
	Threshold float64

	Analyze     bool
	ExtractText bool
	Citations   bool
	References  bool
	Keywords    bool

	// MaxCitations bounds both the citing and the cited papers. Zero leaves
	// the citations and references blocks out.
	MaxCitations int
}

func (r Request) validate() error {
	if r.Threshold < 0 || r.Threshold > 1 || math.IsNaN(r.Threshold) {
		return fmt.Errorf("%w: got %v", ErrInvalidThreshold, r.Threshold)
	}
	if r.MaxCitations < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidMaxCitations, r.MaxCitations)
	}
	return nil
}

// Assembler builds export records. Extractor, Analyzer and Network may be
// nil; a step that needs a missing collaborator fails with a warning.
type Assembler struct {
	Resolver    Resolver
	Extractor   TextExtractor
	Analyzer    Analyzer
	Network     NetworkFetcher
	ToolVersion string
	Logger      *zap.Logger

	// now is replaced in tests.
	now func() time.Time
}

// NewAssembler wires an Assembler.
func NewAssembler(r Resolver, ex TextExtractor, an Analyzer, nf NetworkFetcher, version string, log *zap.Logger) *Assembler {
	return &Assembler{
		Resolver:    r,
		Extractor:   ex,
		Analyzer:    an,
		Network:     nf,
		ToolVersion: version,
		Logger:      logging.OrNop(log),
	}
}

func (a *Assembler) clock() time.Time {
	if a.now != nil {
		return a.now()
	}
	return time.Now()
}

// Assemble resolves the requested paper and runs the requested steps in
// order: text extraction, analysis, the citations and references pair,
// then keywords and research context.
func (a *Assembler) Assemble(ctx context.Context, req Request) (*types.ExportedPaper, error) {
	log := logging.OrNop(a.Logger)

	if err := req.validate(); err != nil {
		return nil, err
	}
	paper, err := a.resolve(ctx, req)
	if err != nil {
		return nil, err
	}
	log.Info("export target resolved", zap.String("title", paper.Title))

	var warn Warnings
	opts := types.ExportOptions{
		Analyzed:           req.Analyze,
		TextExtracted:      req.ExtractText,
		CitationsIncluded:  req.Citations,
		ReferencesIncluded: req.References,
		KeywordsExtracted:  req.Keywords,
		MaxCitations:       req.MaxCitations,
	}
	out := &types.ExportedPaper{SchemaVersion: types.ExportSchemaVersion}

	if req.ExtractText && !paper.HasExtractedText() {
		if err := a.extractText(ctx, &paper); err != nil {
			warn.Add(stepText, err)
		}
	}

	if req.Analyze && !paper.IsAnalyzed() {
		if err := a.analyze(ctx, &paper, &opts); err != nil {
			warn.Add(stepAnalysis, err)
		}
	}

	if req.Citations || req.References {
		out.Citations, out.References = a.fetchNetwork(ctx, &paper, req, &warn)
	}

	if req.Keywords {
		out.Keywords, out.ResearchContext = a.extractKeywords(ctx, &paper, &opts, &warn)
	}

	out.Paper = paper
	out.ExportMetadata = types.ExportMetadata{
		ExportID:    uuid.NewString(),
		ExportedAt:  a.clock(),
		ToolVersion: a.ToolVersion,
		Options:     opts,
		Warnings:    warn.List(),
	}
	if warn.Len() > 0 {
		log.Warn("export completed with warnings", zap.Strings("warnings", out.ExportMetadata.Warnings))
	}
	return out, nil
}

// resolve finds the paper by title when one is given, otherwise by ID.
// With both IDs the first paper returned wins.
func (a *Assembler) resolve(ctx context.Context, req Request) (types.Paper, error) {
	switch {
	case req.Title != "":
		p, err := a.Resolver.FindByTitle(ctx, req.Title, req.Threshold)
		if err != nil {
			return types.Paper{}, fmt.Errorf("resolving title %q: %w", req.Title, err)
		}
		return p, nil

	case req.ArxivID != "" || req.ScholarID != "":
		res, err := a.Resolver.Search(ctx, types.SearchParams{ArxivID: req.ArxivID, ScholarID: req.ScholarID})
		if err != nil {
			return types.Paper{}, fmt.Errorf("resolving paper: %w", err)
		}
		if len(res.Papers) == 0 {
			return types.Paper{}, errors.New("paper not found")
		}
		return res.Papers[0], nil

	default:
		return types.Paper{}, ErrNoTarget
	}
}

func (a *Assembler) extractText(ctx context.Context, p *types.Paper) error {
	if a.Extractor == nil {
		return errors.New("no text extractor configured")
	}
	pdfURL, ok := p.PDFURL()
	if !ok {
		return errors.New("no PDF URL available for this paper")
	}
	text, err := a.Extractor.Extract(ctx, pdfURL)
	if err != nil {
		return err
	}
	p.SetExtractedText(text)
	return nil
}

func (a *Assembler) analyze(ctx context.Context, p *types.Paper, opts *types.ExportOptions) error {
	if a.Analyzer == nil {
		return ErrNoAnalyzer
	}
	a.recordLLM(opts)
	analysis, err := a.Analyzer.Analyze(ctx, p)
	if err != nil {
		return err
	}
	p.SetAnalysis(analysis)
	return nil
}

func (a *Assembler) recordLLM(opts *types.ExportOptions) {
	opts.LLMProvider = a.Analyzer.ProviderName()
	opts.LLMModel = a.Analyzer.Model()
}

// fetchNetwork runs the requested citation and reference fetches
// concurrently. Each branch keeps its own error so one failing does not
// cancel the other.
func (a *Assembler) fetchNetwork(ctx context.Context, p *types.Paper, req Request, warn *Warnings) (*types.CitationData, *types.ReferenceData) {
	if req.MaxCitations == 0 {
		return nil, nil
	}
	if a.Network == nil {
		err := errors.New("no citation network source configured")
		if req.Citations {
			warn.Add(stepCitations, err)
		}
		if req.References {
			warn.Add(stepReferences, err)
		}
		return nil, nil
	}

	var (
		cites            *types.CitationData
		refs             *types.ReferenceData
		citeErr, refsErr error
		g                errgroup.Group
	)
	limit := req.MaxCitations

	if req.Citations {
		g.Go(func() error {
			cites, citeErr = a.Network.FetchCitations(ctx, p, limit)
			return nil
		})
	}
	if req.References {
		g.Go(func() error {
			refs, refsErr = a.Network.FetchReferences(ctx, p, limit)
			return nil
		})
	}
	_ = g.Wait()

	if citeErr != nil {
		warn.Add(stepCitations, citeErr)
	}
	if refsErr != nil {
		warn.Add(stepReferences, refsErr)
	}
	return cites, refs
}

// extractKeywords runs keyword extraction and then research-context
// classification, which needs the keywords.
func (a *Assembler) extractKeywords(ctx context.Context, p *types.Paper, opts *types.ExportOptions, warn *Warnings) (*types.KeywordsData, *types.ResearchContext) {
	if a.Analyzer == nil {
		warn.Add(stepKeywords, ErrNoAnalyzer)
		return nil, nil
	}
	a.recordLLM(opts)

	kw, err := a.Analyzer.ExtractKeywords(ctx, p)
	if err != nil {
		warn.Add(stepKeywords, err)
		return nil, nil
	}
	rc, err := a.Analyzer.ExtractResearchContext(ctx, p, kw.Keywords)
	if err != nil {
		warn.Add(stepContext, err)
		return kw, nil
	}
	return kw, rc
}
