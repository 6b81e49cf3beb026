// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/scholar-pipeline/internal/arxiv"
	"github.com/pdiddy/scholar-pipeline/internal/dataset"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download paper metadata for an arXiv category",
	Long: `Fetch downloads one page of paper metadata for an arXiv category and
writes it as flat records, one per paper, ready for the build stage.
Pagination is explicit: pass --start-index to continue where a previous
fetch left off.

The output path takes no extension; fetch appends .json or .csv based on
--format.`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().String("category", "cs.AI", "arXiv category to fetch")
	fetchCmd.Flags().Int("max-results", 100, "papers per page")
	fetchCmd.Flags().Int("start-index", 0, "feed offset to start from")
	fetchCmd.Flags().String("sort-order", arxiv.SortDescending, "submission date order: ascending or descending")
	fetchCmd.Flags().String("format", "json", "output format: json or csv")
	fetchCmd.Flags().String("output", "arxiv_data", "output path without extension")

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	category, _ := cmd.Flags().GetString("category")
	maxResults, _ := cmd.Flags().GetInt("max-results")
	startIndex, _ := cmd.Flags().GetInt("start-index")
	sortOrder, _ := cmd.Flags().GetString("sort-order")
	format, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")

	client := arxiv.NewClient(feedConfig())
	papers, err := client.Fetch(context.Background(), arxiv.Query{
		Category:   category,
		MaxResults: maxResults,
		StartIndex: startIndex,
		SortOrder:  sortOrder,
	})
	if err != nil {
		return err
	}

	var path string
	switch format {
	case "json":
		path = output + ".json"
		err = dataset.WritePapers(path, papers)
	case "csv":
		path = output + ".csv"
		err = dataset.WritePapersCSV(path, papers)
	default:
		return fmt.Errorf("unsupported format %q: use json or csv", format)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Fetched %d paper(s) for %s into %s\n", len(papers), category, path)
	return nil
}
