// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/paper-engine/internal/export"
	"github.com/pdiddy/paper-engine/internal/network"
	"github.com/pdiddy/paper-engine/internal/search"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a paper with optional analysis, text, network and keywords",
	Long: `Export assembles a single self-describing record for one paper. The paper
is resolved by --title (fuzzy, within --threshold) or by --arxiv / --ss.

Each optional step is best effort: a failure is recorded in
export_metadata.warnings and the export still succeeds.

Formats: json (default), xml, toml, yaml.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().String("arxiv", "", "arXiv ID")
	exportCmd.Flags().String("ss", "", "Semantic Scholar paper ID")
	exportCmd.Flags().String("title", "", "resolve the paper by fuzzy title match")
	exportCmd.Flags().Float64("threshold", search.DefaultThreshold, "maximum fuzzy title distance, 0 for exact matches only (0-1)")
	exportCmd.Flags().Bool("analyze", false, "include an LLM analysis")
	exportCmd.Flags().Bool("extract-text", false, "include PDF text")
	exportCmd.Flags().Bool("citations", false, "include citing papers and statistics")
	exportCmd.Flags().Bool("references", false, "include referenced papers and statistics")
	exportCmd.Flags().Int("max-citations", network.DefaultMaxCitations, "maximum citations and references listed")
	exportCmd.Flags().Bool("keywords", false, "include LLM keywords and research context")
	exportCmd.Flags().String("provider", "", "LLM provider: openai, anthropic or ollama")
	exportCmd.Flags().String("model", "", "model name, overriding the provider default")
	exportCmd.Flags().StringP("format", "f", string(export.FormatJSON), "output format: json, xml, toml or yaml")
	exportCmd.Flags().Bool("compact", false, "compact output without indentation")
	exportCmd.Flags().StringP("output", "o", "", "output file (default stdout)")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	format, _ := flags.GetString("format")
	f, err := export.ParseFormat(format)
	if err != nil {
		return err
	}

	p := newPipeline(false)
	req := export.Request{
		Threshold:    p.cfg.Export.Threshold,
		MaxCitations: p.cfg.Export.MaxCitations,
	}
	req.ArxivID, _ = flags.GetString("arxiv")
	req.ScholarID, _ = flags.GetString("ss")
	req.Title, _ = flags.GetString("title")
	req.Analyze, _ = flags.GetBool("analyze")
	req.ExtractText, _ = flags.GetBool("extract-text")
	req.Citations, _ = flags.GetBool("citations")
	req.References, _ = flags.GetBool("references")
	req.Keywords, _ = flags.GetBool("keywords")
	if flags.Changed("threshold") {
		req.Threshold, _ = flags.GetFloat64("threshold")
	}
	if flags.Changed("max-citations") {
		req.MaxCitations, _ = flags.GetInt("max-citations")
	}
	if req.Title == "" && req.ArxivID == "" && req.ScholarID == "" {
		return fmt.Errorf("one of --title, --arxiv or --ss is required")
	}

	// A nil Analyzer turns the LLM steps into warnings instead of failing
	// the whole export.
	var an export.Analyzer
	if req.Analyze || req.Keywords {
		a, err := p.analyzer(cmd)
		if err != nil {
			logger.Warn("LLM provider unavailable", zap.Error(err))
		} else {
			an = a
		}
	}

	asm := export.NewAssembler(p.search, p.extractor, an, p.network(), version, logger)
	record, err := asm.Assemble(cmd.Context(), req)
	if err != nil {
		return err
	}

	path, _ := flags.GetString("output")
	w, closeFn, err := openOutput(path)
	if err != nil {
		return err
	}
	compact, _ := flags.GetBool("compact")
	if err := export.Encode(w, record, f, compact); err != nil {
		closeFn()
		return err
	}
	if err := closeFn(); err != nil {
		return err
	}

	for _, warning := range record.ExportMetadata.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", warning)
	}
	if path != "" {
		fmt.Fprintf(os.Stderr, "Exported to: %s\n", path)
	}
	return nil
}
