// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the scholar-pipeline CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the scholar-pipeline CLI.
var rootCmd = &cobra.Command{
	Use:   "scholar-pipeline",
	Short: "Build citation datasets from arXiv metadata and scholar profiles",
	Long: `scholar-pipeline assembles research datasets in two stages. The fetch
stage downloads paper metadata for an arXiv category into a flat records
file. The build stage enriches each paper with scholar search results and
per-author profile details, joining everything into one nested dataset.

Built datasets can be loaded into a local SQLite database with the store
subcommands for ad-hoc SQL queries.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./scholar-pipeline.yaml or ~/.config/scholar-pipeline/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("scholar-pipeline")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "scholar-pipeline"))
		}
	}

	viper.SetEnvPrefix("SCHOLAR_PIPELINE")
	viper.AutomaticEnv()

	viper.SetDefault("http.timeout", 60*time.Second)
	viper.SetDefault("http.user_agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64)")
	viper.SetDefault("arxiv.base_url", "https://export.arxiv.org/api/query")
	viper.SetDefault("scholar.base_url", "https://scholar.google.com")
	viper.SetDefault("scholar.requests_per_second", 1.0)
	viper.SetDefault("pacing.profile", 1*time.Second)
	viper.SetDefault("pacing.author", 1*time.Second)
	viper.SetDefault("pacing.paper", 2*time.Second)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
