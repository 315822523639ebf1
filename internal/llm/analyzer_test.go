// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paper-engine/pkg/types"
)

// fakeProvider returns canned replies in order and records what it was sent.
type fakeProvider struct {
	replies []string
	err     error
	calls   [][]Message
	configs []Config
}

func (f *fakeProvider) Name() string         { return "fake" }
func (f *fakeProvider) DefaultModel() string { return "fake-model" }

func (f *fakeProvider) Complete(_ context.Context, msgs []Message, cfg Config) (string, error) {
	f.calls = append(f.calls, msgs)
	f.configs = append(f.configs, cfg)
	if f.err != nil {
		return "", f.err
	}
	if len(f.replies) == 0 {
		return "", ErrEmptyResponse
	}
	r := f.replies[0]
	f.replies = f.replies[1:]
	return r, nil
}

const analysisReply = "```json\n" + `{
  "summary": "Test summary",
  "background_and_purpose": "Test background",
  "methodology": "Test methodology",
  "datasets": [
    {"name": "WMT 2014", "domain": "NLP", "size": "4.5M sentence pairs"},
    {"name": "  ", "description": "unnamed"}
  ],
  "results": "Test results",
  "advantages_limitations_and_future_work": "Test advantages",
  "key_contributions": ["contribution 1"],
  "tasks": ["machine translation"]
}` + "\n```"

func testPaper() *types.Paper {
	p := types.NewPaper()
	p.Title = "Attention Is All You Need"
	p.Abstract = "The dominant sequence transduction models are based on complex recurrent networks."
	return &p
}

func TestNewAnalyzerDefaults(t *testing.T) {
	a := NewAnalyzer(&fakeProvider{}, Config{}, nil)

	require.NotNil(t, a.Config.Temperature)
	assert.Equal(t, DefaultTemperature, *a.Config.Temperature)
	assert.Equal(t, DefaultMaxTokens, a.Config.MaxTokens)
	assert.Equal(t, "fake-model", a.Model())

	a = NewAnalyzer(&fakeProvider{}, Config{Model: "custom"}, nil)
	assert.Equal(t, "custom", a.Model())
}

func TestAnalyze(t *testing.T) {
	fp := &fakeProvider{replies: []string{analysisReply}}
	a := NewAnalyzer(fp, Config{}, nil)
	p := testPaper()

	analysis, err := a.Analyze(context.Background(), p)

	require.NoError(t, err)
	assert.Equal(t, "Test summary", analysis.Summary)
	assert.Equal(t, "Test methodology", analysis.Methodology)
	assert.True(t, analysis.IsComplete())
	require.Len(t, analysis.Datasets, 1, "unnamed datasets are dropped")
	assert.Equal(t, "WMT 2014", analysis.Datasets[0].Name)
	assert.Equal(t, "fake", analysis.Provider)
	assert.Equal(t, "fake-model", analysis.Model)
	assert.False(t, analysis.AnalyzedAt.IsZero())

	require.Len(t, fp.calls, 1)
	msgs := fp.calls[0]
	require.Len(t, msgs, 2)
	assert.Equal(t, RoleSystem, msgs[0].Role)
	assert.Contains(t, msgs[1].Content, p.Title)
	assert.Contains(t, msgs[1].Content, p.Abstract)
	assert.True(t, fp.configs[0].JSON)
}

func TestAnalyzeAndUpdate(t *testing.T) {
	a := NewAnalyzer(&fakeProvider{replies: []string{analysisReply}}, Config{}, nil)
	p := testPaper()

	require.NoError(t, a.AnalyzeAndUpdate(context.Background(), p))

	assert.True(t, p.IsAnalyzed())
}

func TestAnalyzeParseError(t *testing.T) {
	a := NewAnalyzer(&fakeProvider{replies: []string{"I cannot help with that."}}, Config{}, nil)

	_, err := a.Analyze(context.Background(), testPaper())

	var pe *ParseError
	assert.ErrorAs(t, err, &pe)
}

func TestAnalyzeProviderError(t *testing.T) {
	boom := errors.New("boom")
	a := NewAnalyzer(&fakeProvider{err: boom}, Config{}, nil)

	_, err := a.Analyze(context.Background(), testPaper())

	assert.ErrorIs(t, err, boom)
}

func TestSummarizeAndMethodology(t *testing.T) {
	fp := &fakeProvider{replies: []string{"a summary", "a method"}}
	a := NewAnalyzer(fp, Config{}, nil)

	s, err := a.Summarize(context.Background(), testPaper())
	require.NoError(t, err)
	assert.Equal(t, "a summary", s)

	m, err := a.Methodology(context.Background(), testPaper())
	require.NoError(t, err)
	assert.Equal(t, "a method", m)

	assert.Contains(t, fp.calls[0][1].Content, "summary")
	assert.Contains(t, fp.calls[1][1].Content, "methodology")
	assert.False(t, fp.configs[0].JSON)
}

func TestTranslateAnalysis(t *testing.T) {
	fp := &fakeProvider{replies: []string{"要約", "概要"}}
	a := NewAnalyzer(fp, Config{}, nil)
	p := testPaper()
	p.Analysis = &types.Analysis{Summary: "summary", Methodology: "m"}

	require.NoError(t, a.TranslateAnalysis(context.Background(), p))

	assert.Equal(t, "要約", p.Analysis.SummaryJA)
	assert.Equal(t, "概要", p.AbstractJA)
	assert.Contains(t, fp.calls[0][1].Content, "Japanese")
	assert.Equal(t, translationSystemPrompt, fp.calls[0][0].Content)
}

func TestTranslateAnalysisRequiresAnalysis(t *testing.T) {
	a := NewAnalyzer(&fakeProvider{}, Config{}, nil)

	assert.Error(t, a.TranslateAnalysis(context.Background(), testPaper()))
}

func TestExtractKeywords(t *testing.T) {
	reply := `{"keywords": ["transformer", "attention"], "topics": ["NLP"],
		"technical_terms": [{"term": "self-attention", "definition": "attention within one sequence"}, {"term": "BLEU"}],
		"methods": ["multi-head attention"], "datasets": ["WMT 2014"]}`
	a := NewAnalyzer(&fakeProvider{replies: []string{reply}}, Config{}, nil)

	kw, err := a.ExtractKeywords(context.Background(), testPaper())

	require.NoError(t, err)
	assert.Equal(t, []string{"transformer", "attention"}, kw.Keywords)
	assert.Equal(t, []types.TechnicalTerm{
		{Term: "self-attention", Definition: "attention within one sequence"},
		{Term: "BLEU"},
	}, kw.TechnicalTerms)
	assert.Equal(t, []string{"WMT 2014"}, kw.Datasets)
}

func TestExtractResearchContext(t *testing.T) {
	reply := `{"primary_field": "Natural Language Processing", "sub_fields": ["Machine Translation"],
		"research_type": "methodology", "positioning": "Replaces recurrence with attention.",
		"related_directions": ["efficient attention"]}`
	fp := &fakeProvider{replies: []string{reply}}
	a := NewAnalyzer(fp, Config{}, nil)

	rc, err := a.ExtractResearchContext(context.Background(), testPaper(), []string{"transformer", "attention"})

	require.NoError(t, err)
	assert.Equal(t, "Natural Language Processing", rc.PrimaryField)
	assert.Equal(t, "methodology", rc.ResearchType)
	assert.Contains(t, fp.calls[0][1].Content, "Keywords: transformer, attention")
}
