// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-engine/pkg/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a paper with an LLM",
	Long: `Analyze resolves a paper by ID or title and asks the configured LLM
provider for a structured analysis: summary, background, methodology,
datasets, results, limitations, key contributions and tasks.

With --japanese the summary and abstract are also translated.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().String("arxiv", "", "arXiv ID")
	analyzeCmd.Flags().String("ss", "", "Semantic Scholar paper ID")
	analyzeCmd.Flags().String("title", "", "resolve the paper by fuzzy title match")
	analyzeCmd.Flags().String("provider", "", "LLM provider: openai, anthropic or ollama")
	analyzeCmd.Flags().String("model", "", "model name, overriding the provider default")
	analyzeCmd.Flags().Bool("japanese", false, "also translate the summary and abstract into Japanese")
	analyzeCmd.Flags().StringP("output", "o", outputText, "output format: text, json, xml, toml or yaml")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	p := newPipeline(false)

	analyzer, err := p.analyzer(cmd)
	if err != nil {
		return err
	}

	var paper types.Paper
	if title, _ := cmd.Flags().GetString("title"); title != "" {
		paper, err = p.search.FindByTitle(ctx, title, p.cfg.Export.Threshold)
		if err != nil {
			return err
		}
	} else {
		params, err := idParamsFromFlags(cmd)
		if err != nil {
			return fmt.Errorf("either --arxiv, --ss or --title is required")
		}
		res, err := p.search.Search(ctx, params)
		if err != nil {
			return err
		}
		paper = res.Papers[0]
	}

	fmt.Fprintf(os.Stderr, "Analyzing %q with %s (%s)...\n", paper.Title, analyzer.ProviderName(), analyzer.Model())
	if err := analyzer.AnalyzeAndUpdate(ctx, &paper); err != nil {
		return err
	}
	if ja, _ := cmd.Flags().GetBool("japanese"); ja {
		if err := analyzer.TranslateAnalysis(ctx, &paper); err != nil {
			return err
		}
	}

	format, _ := cmd.Flags().GetString("output")
	if strings.EqualFold(format, outputText) || format == "" {
		printAnalysisText(os.Stdout, paper)
		return nil
	}
	return writePapers(os.Stdout, types.SearchResult{Papers: []types.Paper{paper}}, format)
}
