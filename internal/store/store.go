// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists built datasets in a local SQLite database so they
// can be queried with SQL instead of walking nested JSON. Importing the
// same dataset twice replaces the previous rows for each paper.
package store

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/scholar-pipeline/pkg/types"
)

// Store manages the dataset SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the dataset database at path and ensures the
// schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS papers (
			id TEXT PRIMARY KEY,
			title TEXT,
			authors TEXT,
			published TEXT,
			categories TEXT,
			abstract TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS search_results (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			paper_id TEXT NOT NULL REFERENCES papers(id),
			position INTEGER NOT NULL,
			title TEXT,
			title_link TEXT,
			displayed_link TEXT,
			snippet TEXT,
			cited_by_count TEXT,
			cited_link TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS author_profiles (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			paper_id TEXT NOT NULL REFERENCES papers(id),
			author_position INTEGER NOT NULL,
			author_name TEXT NOT NULL,
			position INTEGER NOT NULL,
			name TEXT,
			link TEXT,
			affiliation TEXT,
			email TEXT,
			departments TEXT,
			cited_by_count TEXT,
			article_count INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_search_results_paper ON search_results(paper_id)`,
		`CREATE INDEX IF NOT EXISTS idx_author_profiles_paper ON author_profiles(paper_id)`,
		`CREATE INDEX IF NOT EXISTS idx_author_profiles_name ON author_profiles(author_name)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// ImportSummary holds the row counts of one import.
type ImportSummary struct {
	Papers        int
	SearchResults int
	Profiles      int
}

// Import loads output records into the database inside one transaction.
// Existing rows for the same paper are replaced.
func (s *Store) Import(records []types.PaperOutputRecord) (ImportSummary, error) {
	var summary ImportSummary

	tx, err := s.db.Begin()
	if err != nil {
		return summary, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, record := range records {
		if err := importRecord(tx, record, &summary); err != nil {
			return ImportSummary{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return ImportSummary{}, fmt.Errorf("committing import: %w", err)
	}
	return summary, nil
}

func importRecord(tx *sql.Tx, record types.PaperOutputRecord, summary *ImportSummary) error {
	paper := record.Arxiv
	_, err := tx.Exec(
		`INSERT OR REPLACE INTO papers (id, title, authors, published, categories, abstract)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		paper.ID, paper.Title, paper.Authors, paper.Published, textOrEmpty(paper.Categories), paper.Abstract,
	)
	if err != nil {
		return fmt.Errorf("inserting paper %s: %w", paper.ID, err)
	}
	summary.Papers++

	for _, table := range []string{"search_results", "author_profiles"} {
		if _, err := tx.Exec("DELETE FROM "+table+" WHERE paper_id = ?", paper.ID); err != nil {
			return fmt.Errorf("clearing %s for %s: %w", table, paper.ID, err)
		}
	}

	for i, result := range record.ScholarSearch {
		_, err := tx.Exec(
			`INSERT INTO search_results (paper_id, position, title, title_link, displayed_link, snippet, cited_by_count, cited_link)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			paper.ID, i,
			result["title"], result["title_link"], result["displayed_link"],
			result["snippet"], result["cited_by_count"], result["cited_link"],
		)
		if err != nil {
			return fmt.Errorf("inserting search result for %s: %w", paper.ID, err)
		}
		summary.SearchResults++
	}

	for authorPos, author := range record.AuthorsDetails {
		for profilePos, profile := range author.Profiles {
			_, err := tx.Exec(
				`INSERT INTO author_profiles (paper_id, author_position, author_name, position, name, link, affiliation, email, departments, cited_by_count, article_count)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				paper.ID, authorPos, author.AuthorName, profilePos,
				profileText(profile, "name"), profileText(profile, "name_link"),
				profileText(profile, "position"), profileText(profile, "email"),
				profileText(profile, "departments"), profileText(profile, "cited_by_count"),
				articleCount(profile),
			)
			if err != nil {
				return fmt.Errorf("inserting profile for %s / %s: %w", paper.ID, author.AuthorName, err)
			}
			summary.Profiles++
		}
	}
	return nil
}

// Stats holds the current row counts of the database.
type Stats struct {
	Papers        int
	SearchResults int
	Profiles      int
}

// Stats counts the rows in each table.
func (s *Store) Stats() (Stats, error) {
	var stats Stats
	counts := []struct {
		table string
		dest  *int
	}{
		{"papers", &stats.Papers},
		{"search_results", &stats.SearchResults},
		{"author_profiles", &stats.Profiles},
	}
	for _, c := range counts {
		if err := s.db.QueryRow("SELECT COUNT(*) FROM " + c.table).Scan(c.dest); err != nil {
			return Stats{}, fmt.Errorf("counting %s: %w", c.table, err)
		}
	}
	return stats, nil
}

// profileText reads a string-valued profile field. Profiles hold strings
// for plain fields in memory and after a JSON reload alike; anything else
// (the nested articles and metrics values) is not a text field.
func profileText(profile types.Profile, key string) string {
	if v, ok := profile[key].(string); ok {
		return v
	}
	return ""
}

// articleCount reports how many authored works a merged profile carries.
// Unmerged candidates have no articles key at all.
func articleCount(profile types.Profile) int {
	switch v := profile["articles"].(type) {
	case []types.Fields:
		return len(v)
	case []any:
		return len(v)
	default:
		return 0
	}
}

func textOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
