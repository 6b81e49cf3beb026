// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/pdiddy/scholar-pipeline/pkg/types"
)

// csvHeader fixes the flat-record column order for CSV export.
var csvHeader = []string{
	"id", "submitter", "published", "authors", "title", "comments",
	"journal-ref", "doi", "report-no", "categories", "license", "abstract",
}

// WritePapersCSV writes flat paper records as CSV with a fixed header.
// Null fields become empty cells. An empty record list writes an empty
// file, matching the feed exporter's behavior.
func WritePapersCSV(path string, papers []types.PaperRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if len(papers) == 0 {
		return nil
	}

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, p := range papers {
		row := []string{
			p.ID,
			deref(p.Submitter),
			p.Published,
			p.Authors,
			p.Title,
			deref(p.Comments),
			deref(p.JournalRef),
			deref(p.DOI),
			deref(p.ReportNo),
			deref(p.Categories),
			deref(p.License),
			p.Abstract,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing row for %s: %w", p.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
