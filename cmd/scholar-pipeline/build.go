// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pdiddy/scholar-pipeline/internal/dataset"
	"github.com/pdiddy/scholar-pipeline/internal/pace"
	"github.com/pdiddy/scholar-pipeline/internal/pipeline"
	"github.com/pdiddy/scholar-pipeline/internal/scholar"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Enrich fetched papers with scholar search results and profiles",
	Long: `Build reads a flat paper records file, runs one scholar search per
paper and one author search per listed author, deepens linked profile
candidates with a profile page fetch, and writes the joined records as one
nested dataset.

The run is sequential and paced between requests; per-paper and per-author
failures degrade to empty sections instead of aborting the run. Pacing
delays come from the pacing.* config keys.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().String("input", "arxiv_data.json", "flat paper records file from the fetch stage")
	buildCmd.Flags().String("output", "final_database.json", "dataset output file")
	buildCmd.Flags().String("summary", "", "optional YAML run summary file")

	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
	output, _ := cmd.Flags().GetString("output")
	summaryPath, _ := cmd.Flags().GetString("summary")

	papers, err := dataset.ReadPapers(input)
	if err != nil {
		return err
	}

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	client := scholar.NewClient(scholarConfig())
	pacing := pacingConfig()
	runner := pipeline.New(client, pace.FromConfig(pacing), log)

	result := runner.Run(context.Background(), papers)

	if err := dataset.WriteDataset(output, result.Records); err != nil {
		return err
	}

	if summaryPath != "" {
		rf := dataset.RunFile{
			Input:  input,
			Output: output,
			Pacing: dataset.NewPacingParams(pacing),
			Summary: dataset.RunSummary{
				Papers:      len(result.Records),
				Authors:     result.Authors,
				Profiles:    result.Profiles,
				FailedUnits: result.Failures,
				Timestamp:   time.Now().UTC(),
			},
		}
		if err := dataset.WriteRunFile(summaryPath, rf); err != nil {
			return err
		}
	}

	fmt.Printf("Built %d paper(s): %d author(s), %d profile(s), %d failed unit(s) -> %s\n",
		len(result.Records), result.Authors, result.Profiles, result.Failures, output)
	return nil
}
