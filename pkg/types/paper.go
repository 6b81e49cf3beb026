// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the scholar-pipeline
// stages: flat paper records from the metadata feed, sparse extracted field
// maps from the scholar pages, and the nested output records that join them.
package types

// Fields is a sparse mapping of extracted field names to text or link values.
// A key is present only when the page carried a non-empty value for it;
// absence means the field was not on the page, not that extraction failed.
type Fields map[string]string

// PaperRecord is one flat entry from the metadata feed. Field names and
// nullability follow the feed export format; Authors is a single
// comma-delimited string, not a list.
type PaperRecord struct {
	ID         string  `json:"id"`
	Submitter  *string `json:"submitter"`
	Published  string  `json:"published"`
	Authors    string  `json:"authors"`
	Title      string  `json:"title"`
	Comments   *string `json:"comments"`
	JournalRef *string `json:"journal-ref"`
	DOI        *string `json:"doi"`
	ReportNo   *string `json:"report-no"`
	Categories *string `json:"categories"`
	License    *string `json:"license"`
	Abstract   string  `json:"abstract"`
}

// Profile is one resolved author profile in the output dataset: the candidate
// fields from the author-search page, shallow-merged with the profile-page
// detail when the candidate carried a link. Values are strings for plain
// fields, []Fields under "articles", and CitationMetrics under
// "citation_metrics".
type Profile map[string]any

// AuthorOutputRecord joins one author-list token to its resolved profiles.
type AuthorOutputRecord struct {
	AuthorName string    `json:"author_name"`
	Profiles   []Profile `json:"profiles"`
}

// PaperOutputRecord is the final nested record for one paper: the feed
// record, the scholar search results for its quoted title, and one entry per
// author-list token.
type PaperOutputRecord struct {
	Arxiv          PaperRecord          `json:"arxiv"`
	ScholarSearch  []Fields             `json:"scholar_search"`
	AuthorsDetails []AuthorOutputRecord `json:"authors_details"`
}
