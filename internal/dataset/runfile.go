// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/scholar-pipeline/pkg/types"
)

// RunFile is the on-disk summary of one build run: where the data came
// from and went, how the run was paced, and what it produced. It lets a
// researcher audit a crawl later without re-reading logs.
type RunFile struct {
	Input   string       `yaml:"input"`
	Output  string       `yaml:"output"`
	Pacing  PacingParams `yaml:"pacing"`
	Summary RunSummary   `yaml:"summary"`
}

// PacingParams records the delay tiers the run used.
type PacingParams struct {
	Profile time.Duration `yaml:"profile"`
	Author  time.Duration `yaml:"author"`
	Paper   time.Duration `yaml:"paper"`
}

// RunSummary records result statistics and a timestamp.
type RunSummary struct {
	Papers      int       `yaml:"papers"`
	Authors     int       `yaml:"authors"`
	Profiles    int       `yaml:"profiles"`
	FailedUnits int       `yaml:"failed_units"`
	Timestamp   time.Time `yaml:"timestamp"`
}

// WriteRunFile saves the run summary to a YAML file.
func WriteRunFile(path string, rf RunFile) error {
	data, err := yaml.Marshal(&rf)
	if err != nil {
		return fmt.Errorf("marshaling run summary: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing run summary %s: %w", path, err)
	}
	return nil
}

// ReadRunFile loads a run summary from a YAML file.
func ReadRunFile(path string) (RunFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RunFile{}, fmt.Errorf("reading run summary %s: %w", path, err)
	}
	var rf RunFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return RunFile{}, fmt.Errorf("parsing run summary %s: %w", path, err)
	}
	return rf, nil
}

// NewPacingParams copies the pacing configuration into its serializable form.
func NewPacingParams(cfg types.PacingConfig) PacingParams {
	return PacingParams{Profile: cfg.Profile, Author: cfg.Author, Paper: cfg.Paper}
}
