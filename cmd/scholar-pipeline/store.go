// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/scholar-pipeline/internal/dataset"
	"github.com/pdiddy/scholar-pipeline/internal/store"
)

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Load built datasets into a local SQLite database",
	Long: `Store manages a SQLite mirror of built datasets so papers, search
results, and author profiles can be queried with plain SQL. Importing a
dataset again replaces its previous rows.`,
}

var storeImportCmd = &cobra.Command{
	Use:   "import [dataset.json]",
	Short: "Import a built dataset file into the database",
	Args:  cobra.ExactArgs(1),
	RunE:  runStoreImport,
}

var storeStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show row counts for the database",
	RunE:  runStoreStats,
}

func init() {
	storeCmd.PersistentFlags().String("db", "scholar-pipeline.db", "SQLite database file")

	storeCmd.AddCommand(storeImportCmd)
	storeCmd.AddCommand(storeStatsCmd)
	rootCmd.AddCommand(storeCmd)
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, _ := cmd.Flags().GetString("db")
	return store.Open(dbPath)
}

func runStoreImport(cmd *cobra.Command, args []string) error {
	records, err := dataset.ReadDataset(args[0])
	if err != nil {
		return err
	}

	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	summary, err := s.Import(records)
	if err != nil {
		return err
	}

	fmt.Printf("Imported %d paper(s), %d search result(s), %d profile(s)\n",
		summary.Papers, summary.SearchResults, summary.Profiles)
	return nil
}

func runStoreStats(cmd *cobra.Command, args []string) error {
	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	stats, err := s.Stats()
	if err != nil {
		return err
	}

	fmt.Printf("papers:         %d\n", stats.Papers)
	fmt.Printf("search_results: %d\n", stats.SearchResults)
	fmt.Printf("profiles:       %d\n", stats.Profiles)
	return nil
}
