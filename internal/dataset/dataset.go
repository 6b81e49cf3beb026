// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dataset reads and writes the pipeline's persisted files: the flat
// paper records the fetch stage produces and the nested output records the
// build stage emits. File errors here are fatal to a run; there is nothing
// to process without input and nowhere to persist without output.
package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdiddy/scholar-pipeline/pkg/types"
)

// ReadPapers loads the flat paper records file produced by the fetch stage.
func ReadPapers(path string) ([]types.PaperRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading input %s: %w", path, err)
	}
	var papers []types.PaperRecord
	if err := json.Unmarshal(data, &papers); err != nil {
		return nil, fmt.Errorf("parsing input %s: %w", path, err)
	}
	return papers, nil
}

// ReadDataset loads a built dataset file.
func ReadDataset(path string) ([]types.PaperOutputRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset %s: %w", path, err)
	}
	var records []types.PaperOutputRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing dataset %s: %w", path, err)
	}
	return records, nil
}

// WritePapers writes flat paper records as indented JSON. An empty or nil
// slice writes an empty array, not null.
func WritePapers(path string, papers []types.PaperRecord) error {
	if papers == nil {
		papers = []types.PaperRecord{}
	}
	return writeJSON(path, papers)
}

// WriteDataset writes built output records as indented JSON. An empty or
// nil slice writes an empty array, not null.
func WriteDataset(path string, records []types.PaperOutputRecord) error {
	if records == nil {
		records = []types.PaperOutputRecord{}
	}
	return writeJSON(path, records)
}

// writeJSON marshals v as human-readable UTF-8 JSON (4-space indent, no
// HTML escaping) and writes it via a temp file renamed into place, so a
// failed run never leaves a truncated output file behind.
func writeJSON(path string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("marshaling %s: %w", path, err)
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".dataset-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	_, writeErr := tmpFile.Write(buf.Bytes())
	closeErr := tmpFile.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing %s: %w", path, writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
