// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"path/filepath"
	"testing"

	"github.com/pdiddy/scholar-pipeline/pkg/types"
)

func stringPtr(s string) *string { return &s }

func sampleRecords() []types.PaperOutputRecord {
	return []types.PaperOutputRecord{
		{
			Arxiv: types.PaperRecord{
				ID:         "2301.07041v1",
				Published:  "2023-01-17",
				Authors:    "A. Smith, B. Lee",
				Title:      "Paper X",
				Categories: stringPtr("cs.AI"),
				Abstract:   "We study X.",
			},
			ScholarSearch: []types.Fields{
				{"title": "Paper X", "title_link": "https://scholar.example/x", "cited_by_count": "12"},
				{"title": "Paper X preprint"},
			},
			AuthorsDetails: []types.AuthorOutputRecord{
				{
					AuthorName: "A. Smith",
					Profiles: []types.Profile{
						{
							"name":      "A. Smith",
							"name_link": "https://scholar.example/citations?user=abc123",
							"position":  "Full Professor",
							"articles": []types.Fields{
								{"title": "Paper X"},
								{"title": "Paper Y"},
							},
						},
					},
				},
				{AuthorName: "B. Lee", Profiles: []types.Profile{}},
			},
		},
		{
			Arxiv:          types.PaperRecord{ID: "2301.08000v2", Title: "Paper Z", Authors: "C. Park"},
			ScholarSearch:  []types.Fields{},
			AuthorsDetails: []types.AuthorOutputRecord{{AuthorName: "C. Park", Profiles: []types.Profile{}}},
		},
	}
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "dataset.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestImportAndStats(t *testing.T) {
	s := openTestStore(t)

	summary, err := s.Import(sampleRecords())
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if summary.Papers != 2 || summary.SearchResults != 2 || summary.Profiles != 1 {
		t.Errorf("summary = %+v, want 2 papers, 2 search results, 1 profile", summary)
	}

	stats, err := s.Stats()
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Papers != 2 || stats.SearchResults != 2 || stats.Profiles != 1 {
		t.Errorf("stats = %+v, want 2 papers, 2 search results, 1 profile", stats)
	}
}

func TestImportIsIdempotentPerPaper(t *testing.T) {
	s := openTestStore(t)
	records := sampleRecords()

	if _, err := s.Import(records); err != nil {
		t.Fatalf("first Import: %v", err)
	}
	if _, err := s.Import(records); err != nil {
		t.Fatalf("second Import: %v", err)
	}

	stats, err := s.Stats()
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Papers != 2 || stats.SearchResults != 2 || stats.Profiles != 1 {
		t.Errorf("re-import should replace rows, stats = %+v", stats)
	}
}

func TestImportStoresProfileColumns(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.Import(sampleRecords()); err != nil {
		t.Fatalf("Import: %v", err)
	}

	var name, link string
	var articles int
	err := s.db.QueryRow(
		`SELECT name, link, article_count FROM author_profiles WHERE author_name = ?`,
		"A. Smith",
	).Scan(&name, &link, &articles)
	if err != nil {
		t.Fatalf("querying profile row: %v", err)
	}
	if name != "A. Smith" {
		t.Errorf("name = %q", name)
	}
	if link != "https://scholar.example/citations?user=abc123" {
		t.Errorf("link = %q", link)
	}
	if articles != 2 {
		t.Errorf("article_count = %d, want 2", articles)
	}
}

func TestImportHandlesReloadedProfiles(t *testing.T) {
	// After a JSON round trip, profile values decode as generic maps and
	// slices rather than the in-memory field types.
	s := openTestStore(t)
	records := []types.PaperOutputRecord{
		{
			Arxiv: types.PaperRecord{ID: "1", Title: "A", Authors: "X"},
			AuthorsDetails: []types.AuthorOutputRecord{
				{
					AuthorName: "X",
					Profiles: []types.Profile{
						{
							"name":     "X",
							"articles": []any{map[string]any{"title": "A"}},
						},
					},
				},
			},
		},
	}

	if _, err := s.Import(records); err != nil {
		t.Fatalf("Import: %v", err)
	}

	var articles int
	if err := s.db.QueryRow(`SELECT article_count FROM author_profiles`).Scan(&articles); err != nil {
		t.Fatalf("querying profile row: %v", err)
	}
	if articles != 1 {
		t.Errorf("article_count = %d, want 1", articles)
	}
}

func TestStatsOnEmptyStore(t *testing.T) {
	s := openTestStore(t)
	stats, err := s.Stats()
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats != (Stats{}) {
		t.Errorf("stats = %+v, want zero", stats)
	}
}
