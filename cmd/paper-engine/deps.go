// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paper-engine/internal/llm"
	"github.com/pdiddy/paper-engine/internal/network"
	"github.com/pdiddy/paper-engine/internal/pdftext"
	"github.com/pdiddy/paper-engine/internal/search"
	"github.com/pdiddy/paper-engine/pkg/types"
)

// llmTimeout bounds a single completion; analysis prompts are long.
const llmTimeout = 5 * time.Minute

// pipeline holds the components a command needs.
type pipeline struct {
	cfg       types.Config
	arxiv     *search.ArxivSource
	scholar   *search.SemanticScholarSource
	extractor *pdftext.Extractor
	search    *search.Orchestrator
}

// newPipeline wires both sources and the PDF extractor. With withPDF
// false, ID fetches skip text extraction.
func newPipeline(withPDF bool) *pipeline {
	cfg := loadConfig(viper.GetViper(), loadedSecrets)
	p := &pipeline{
		cfg:       cfg,
		arxiv:     search.NewArxivSource(cfg.Sources.HTTPConfig, logger),
		scholar:   search.NewSemanticScholarSource(cfg.Sources, logger),
		extractor: pdftext.NewExtractor(cfg.Sources.HTTPConfig, logger),
	}
	var ex search.TextExtractor
	if withPDF {
		ex = p.extractor
	}
	p.search = search.NewOrchestrator(p.arxiv, p.scholar, ex, logger)
	return p
}

func (p *pipeline) network() *network.Fetcher {
	return network.NewFetcher(p.scholar, logger)
}

// analyzer builds the LLM analyzer, honoring --provider and --model when
// the command defines them.
func (p *pipeline) analyzer(cmd *cobra.Command) (*llm.Analyzer, error) {
	cfg := p.cfg.LLM
	if f := cmd.Flags().Lookup("provider"); f != nil && f.Changed {
		cfg.Provider = types.LLMProviderKind(f.Value.String())
	}
	if f := cmd.Flags().Lookup("model"); f != nil && f.Changed {
		cfg.Model = f.Value.String()
	}

	provider, err := llm.NewProvider(cfg, &http.Client{Timeout: llmTimeout})
	if err != nil {
		return nil, err
	}
	temp := cfg.Temperature
	return llm.NewAnalyzer(provider, llm.Config{Temperature: &temp, MaxTokens: cfg.MaxTokens}, logger), nil
}
