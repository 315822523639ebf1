package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-engine/internal/search"
	"github.com/pdiddy/paper-engine/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search arXiv and Semantic Scholar for papers",
	Long: `Search queries arXiv and Semantic Scholar concurrently. Results are merged
(arXiv first), deduplicated by normalized title and printed.

Field filters (--title, --author, --abstract) take precedence over --query on
arXiv. Semantic Scholar searches the query, else the title, else the author.
Use --save to keep the query and results in a YAML file and --load to print
a saved file again without querying the APIs.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().String("query", "", "free-text query")
	searchCmd.Flags().String("title", "", "filter by title")
	searchCmd.Flags().String("author", "", "filter by author name")
	searchCmd.Flags().String("abstract", "", "filter by abstract text (arXiv only)")
	searchCmd.Flags().Int("max-results", types.DefaultMaxResults, "maximum results per source")
	searchCmd.Flags().StringSlice("category", nil, "arXiv category filter, repeatable (e.g. cs.CL)")
	searchCmd.Flags().String("year", "", "Semantic Scholar year filter: 2023 or 2020-2023")
	searchCmd.Flags().Int("min-citations", 0, "Semantic Scholar minimum citation count")
	searchCmd.Flags().StringP("output", "o", outputText, "output format: text, json, xml, toml, yaml or csl")
	searchCmd.Flags().String("save", "", "save query and results to a YAML file")
	searchCmd.Flags().String("load", "", "print results from a saved YAML file")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("output")

	if load, _ := cmd.Flags().GetString("load"); load != "" {
		qf, err := search.ReadQueryFile(load)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Loaded %d papers from %s (saved %s)\n",
			qf.Summary.Total, load, qf.Summary.Timestamp.Format("2006-01-02 15:04"))
		return writePapers(os.Stdout, qf.Result(), format)
	}

	params := searchParamsFromFlags(cmd)
	p := newPipeline(false)
	res, err := p.search.Search(cmd.Context(), params)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Found %d papers (sources: %v)\n", len(res.Papers), res.Sources)

	if save, _ := cmd.Flags().GetString("save"); save != "" {
		if err := search.WriteQueryFile(save, params, res); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved to %s\n", save)
	}
	return writePapers(os.Stdout, res, format)
}

func searchParamsFromFlags(cmd *cobra.Command) types.SearchParams {
	params := types.NewSearchParams()
	params.Query, _ = cmd.Flags().GetString("query")
	params.Title, _ = cmd.Flags().GetString("title")
	params.Author, _ = cmd.Flags().GetString("author")
	params.Abstract, _ = cmd.Flags().GetString("abstract")
	params.MaxResults, _ = cmd.Flags().GetInt("max-results")
	params.Categories, _ = cmd.Flags().GetStringSlice("category")
	params.Year, _ = cmd.Flags().GetString("year")
	if cmd.Flags().Changed("min-citations") {
		n, _ := cmd.Flags().GetInt("min-citations")
		params.MinCitations = &n
	}
	return params
}
