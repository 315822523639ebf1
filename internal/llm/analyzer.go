// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package llm

import (
	"context"
	"fmt"
	"text/template"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/paper-engine/internal/logging"
	"github.com/pdiddy/paper-engine/pkg/types"
)

// DefaultTemperature is the sampling temperature used for analysis.
const DefaultTemperature = 0.3

// Analyzer produces structured analyses of papers from their title and
// abstract.
type Analyzer struct {
	Provider Provider
	Config   Config
	Logger   *zap.Logger
}

// NewAnalyzer returns an analyzer over p. A zero cfg gets the default
// temperature and token bound.
func NewAnalyzer(p Provider, cfg Config, log *zap.Logger) *Analyzer {
	if cfg.Temperature == nil {
		t := DefaultTemperature
		cfg.Temperature = &t
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	return &Analyzer{Provider: p, Config: cfg, Logger: logging.OrNop(log)}
}

// ProviderName returns the provider's name.
func (a *Analyzer) ProviderName() string { return a.Provider.Name() }

// Model returns the model the analyzer calls.
func (a *Analyzer) Model() string { return a.Config.model(a.Provider) }

type analysisResponse struct {
	Summary                            string          `json:"summary"`
	BackgroundAndPurpose               string          `json:"background_and_purpose"`
	Methodology                        string          `json:"methodology"`
	Datasets                           []types.Dataset `json:"datasets"`
	Results                            string          `json:"results"`
	AdvantagesLimitationsAndFutureWork string          `json:"advantages_limitations_and_future_work"`
	KeyContributions                   []string        `json:"key_contributions"`
	Tasks                              []string        `json:"tasks"`
}

// Analyze runs the full structured analysis. Datasets without a name are
// dropped.
func (a *Analyzer) Analyze(ctx context.Context, p *types.Paper) (*types.Analysis, error) {
	prompt, err := render(analysisTmpl, paperData(p.Title, p.Abstract, nil))
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := CompleteJSON[analysisResponse](ctx, a.Provider, a.messages(prompt), a.Config)
	if err != nil {
		return nil, fmt.Errorf("analyzing %q: %w", p.Title, err)
	}
	logging.OrNop(a.Logger).Debug("analysis complete",
		zap.String("provider", a.ProviderName()),
		zap.String("model", a.Model()),
		zap.Duration("elapsed", time.Since(start)))

	datasets := make([]types.Dataset, 0, len(resp.Datasets))
	for _, d := range resp.Datasets {
		if d.IsValid() {
			datasets = append(datasets, d)
		}
	}

	return &types.Analysis{
		Summary:                            resp.Summary,
		BackgroundAndPurpose:               resp.BackgroundAndPurpose,
		Methodology:                        resp.Methodology,
		Datasets:                           datasets,
		Results:                            resp.Results,
		AdvantagesLimitationsAndFutureWork: resp.AdvantagesLimitationsAndFutureWork,
		KeyContributions:                   resp.KeyContributions,
		Tasks:                              resp.Tasks,
		AnalyzedAt:                         time.Now(),
		Provider:                           a.ProviderName(),
		Model:                              a.Model(),
	}, nil
}

// AnalyzeAndUpdate runs Analyze and attaches the result to p.
func (a *Analyzer) AnalyzeAndUpdate(ctx context.Context, p *types.Paper) error {
	analysis, err := a.Analyze(ctx, p)
	if err != nil {
		return err
	}
	p.SetAnalysis(analysis)
	return nil
}

// Summarize returns a free-text summary.
func (a *Analyzer) Summarize(ctx context.Context, p *types.Paper) (string, error) {
	return a.completeText(ctx, summaryTmpl, paperData(p.Title, p.Abstract, nil))
}

// Methodology returns a free-text description of the paper's methods.
func (a *Analyzer) Methodology(ctx context.Context, p *types.Paper) (string, error) {
	return a.completeText(ctx, methodologyTmpl, paperData(p.Title, p.Abstract, nil))
}

// Translate translates text into language.
func (a *Analyzer) Translate(ctx context.Context, text, language string) (string, error) {
	prompt, err := render(translationTmpl, struct{ Text, Language string }{text, language})
	if err != nil {
		return "", err
	}
	msgs := []Message{SystemMessage(translationSystemPrompt), UserMessage(prompt)}
	return a.Provider.Complete(ctx, msgs, a.Config)
}

// TranslateAnalysis fills the Japanese summary of an analysis and the
// Japanese abstract of its paper.
func (a *Analyzer) TranslateAnalysis(ctx context.Context, p *types.Paper) error {
	if p.Analysis == nil {
		return fmt.Errorf("translating %q: paper has no analysis", p.Title)
	}
	summary, err := a.Translate(ctx, p.Analysis.Summary, "Japanese")
	if err != nil {
		return fmt.Errorf("translating summary: %w", err)
	}
	p.Analysis.SummaryJA = summary

	if p.Abstract != "" {
		abstract, err := a.Translate(ctx, p.Abstract, "Japanese")
		if err != nil {
			return fmt.Errorf("translating abstract: %w", err)
		}
		p.AbstractJA = abstract
	}
	p.Touch()
	return nil
}

// ExtractKeywords returns keywords, topics, technical terms, methods and
// datasets for the paper.
func (a *Analyzer) ExtractKeywords(ctx context.Context, p *types.Paper) (*types.KeywordsData, error) {
	prompt, err := render(keywordsTmpl, paperData(p.Title, p.Abstract, nil))
	if err != nil {
		return nil, err
	}
	kw, err := CompleteJSON[types.KeywordsData](ctx, a.Provider, a.messages(prompt), a.Config)
	if err != nil {
		return nil, fmt.Errorf("extracting keywords for %q: %w", p.Title, err)
	}
	return &kw, nil
}

// ExtractResearchContext places the paper in its field. keywords come
// from ExtractKeywords and may be empty.
func (a *Analyzer) ExtractResearchContext(ctx context.Context, p *types.Paper, keywords []string) (*types.ResearchContext, error) {
	prompt, err := render(contextTmpl, paperData(p.Title, p.Abstract, keywords))
	if err != nil {
		return nil, err
	}
	rc, err := CompleteJSON[types.ResearchContext](ctx, a.Provider, a.messages(prompt), a.Config)
	if err != nil {
		return nil, fmt.Errorf("extracting research context for %q: %w", p.Title, err)
	}
	return &rc, nil
}

func (a *Analyzer) completeText(ctx context.Context, t *template.Template, data paperPrompt) (string, error) {
	prompt, err := render(t, data)
	if err != nil {
		return "", err
	}
	return a.Provider.Complete(ctx, a.messages(prompt), a.Config)
}

func (a *Analyzer) messages(prompt string) []Message {
	return []Message{SystemMessage(systemPrompt), UserMessage(prompt)}
}
