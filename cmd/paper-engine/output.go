// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pdiddy/paper-engine/internal/export"
	"github.com/pdiddy/paper-engine/internal/search"
	"github.com/pdiddy/paper-engine/pkg/types"
)

// Output formats for paper listings. CSL is only offered by search.
const (
	outputText = "text"
	outputCSL  = "csl"
)

// paperList wraps papers so XML and TOML get a named root.
type paperList struct {
	XMLName xml.Name       `json:"-" yaml:"-" toml:"-" xml:"papers"`
	Sources []types.Source `json:"sources,omitempty" yaml:"sources,omitempty" toml:"sources,omitempty" xml:"sources>source,omitempty"`
	Papers  []types.Paper  `json:"papers" yaml:"papers" toml:"paper" xml:"paper"`
}

// writePapers renders res in format to w.
func writePapers(w io.Writer, res types.SearchResult, format string) error {
	switch strings.ToLower(format) {
	case "", outputText:
		printPapersText(w, res.Papers)
		return nil
	case outputCSL:
		return search.FormatCSL(res.Papers, w)
	}
	f, err := export.ParseFormat(format)
	if err != nil {
		return err
	}
	return export.Encode(w, paperList{Sources: res.Sources, Papers: res.Papers}, f, false)
}

func printPapersText(w io.Writer, papers []types.Paper) {
	if len(papers) == 0 {
		fmt.Fprintln(w, "No papers found.")
		return
	}
	for i, p := range papers {
		fmt.Fprintf(w, "%d. %s\n", i+1, p.Title)
		if names := p.AuthorNames(); len(names) > 0 {
			authors := strings.Join(names, ", ")
			if len(names) > 5 {
				authors = strings.Join(names[:5], ", ") + " et al."
			}
			fmt.Fprintf(w, "   Authors:   %s\n", authors)
		}
		if y := p.Year(); y > 0 {
			fmt.Fprintf(w, "   Year:      %d\n", y)
		}
		if p.Journal != "" {
			fmt.Fprintf(w, "   Venue:     %s\n", p.Journal)
		}
		var ids []string
		if p.ArxivID != "" {
			ids = append(ids, "arXiv:"+p.ArxivID)
		}
		if p.ScholarID != "" {
			ids = append(ids, "S2:"+p.ScholarID)
		}
		if p.DOI != "" {
			ids = append(ids, "DOI:"+p.DOI)
		}
		if len(ids) > 0 {
			fmt.Fprintf(w, "   IDs:       %s\n", strings.Join(ids, "  "))
		}
		if p.ScholarID != "" {
			fmt.Fprintf(w, "   Citations: %d (influential %d)\n", p.CitationCount, p.InfluentialCitationCount)
		}
		if p.HasExtractedText() {
			fmt.Fprintf(w, "   Text:      %d sections, %d characters\n", len(p.ExtractedText.Sections), len(p.ExtractedText.PlainText))
		}
		if p.URL != "" {
			fmt.Fprintf(w, "   URL:       %s\n", p.URL)
		}
		fmt.Fprintln(w)
	}
}

func printAnalysisText(w io.Writer, p types.Paper) {
	a := p.Analysis
	fmt.Fprintf(w, "# %s\n\n", p.Title)
	fmt.Fprintf(w, "Provider: %s  Model: %s\n\n", a.Provider, a.Model)

	section := func(title, body string) {
		if strings.TrimSpace(body) == "" {
			return
		}
		fmt.Fprintf(w, "## %s\n\n%s\n\n", title, strings.TrimSpace(body))
	}
	list := func(title string, items []string) {
		if len(items) == 0 {
			return
		}
		fmt.Fprintf(w, "## %s\n\n", title)
		for _, it := range items {
			fmt.Fprintf(w, "- %s\n", it)
		}
		fmt.Fprintln(w)
	}

	section("Summary", a.Summary)
	section("Summary (Japanese)", a.SummaryJA)
	section("Background and Purpose", a.BackgroundAndPurpose)
	section("Methodology", a.Methodology)
	if len(a.Datasets) > 0 {
		fmt.Fprint(w, "## Datasets\n\n")
		for _, d := range a.Datasets {
			if d.Description != "" {
				fmt.Fprintf(w, "- %s: %s\n", d.Name, d.Description)
			} else {
				fmt.Fprintf(w, "- %s\n", d.Name)
			}
		}
		fmt.Fprintln(w)
	}
	section("Results", a.Results)
	section("Advantages, Limitations and Future Work", a.AdvantagesLimitationsAndFutureWork)
	list("Key Contributions", a.KeyContributions)
	list("Tasks", a.Tasks)
}

// openOutput returns stdout, or a created file when path is set.
func openOutput(path string) (io.Writer, func() error, error) {
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file: %w", err)
	}
	return f, f.Close, nil
}
