// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package arxiv fetches flat paper records from the arXiv metadata feed.
// The feed is the pipeline's structured input source; records come back in
// the export format the build stage consumes (comma-joined author string,
// nullable bibliographic fields).
package arxiv

import (
	"context"
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/pdiddy/scholar-pipeline/internal/httputil"
	"github.com/pdiddy/scholar-pipeline/pkg/types"
)

// DefaultAPIBase is the arXiv query endpoint.
const DefaultAPIBase = "https://export.arxiv.org/api/query"

// Sort orders accepted by the feed.
const (
	SortAscending  = "ascending"
	SortDescending = "descending"
)

// Query holds the paginated feed parameters.
type Query struct {
	Category   string
	MaxResults int
	StartIndex int
	SortOrder  string
}

// Client fetches pages of the metadata feed.
type Client struct {
	http    *httputil.Client
	baseURL string
}

// NewClient builds a Client from cfg, defaulting the endpoint.
func NewClient(cfg types.FeedConfig) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultAPIBase
	}
	return &Client{
		// The feed imposes no rate cap of its own; one page per run.
		http:    httputil.NewClient(cfg.HTTPConfig, 0),
		baseURL: cfg.BaseURL,
	}
}

// Fetch retrieves one page of paper records for q, in feed order.
func (c *Client) Fetch(ctx context.Context, q Query) ([]types.PaperRecord, error) {
	if q.Category == "" {
		return nil, fmt.Errorf("feed query needs a category")
	}
	sortOrder := q.SortOrder
	if sortOrder == "" {
		sortOrder = SortDescending
	}
	if sortOrder != SortAscending && sortOrder != SortDescending {
		return nil, fmt.Errorf("sort order must be %q or %q, got %q", SortAscending, SortDescending, sortOrder)
	}
	maxResults := q.MaxResults
	if maxResults <= 0 {
		maxResults = 100
	}

	url := fmt.Sprintf("%s?search_query=cat:%s&start=%d&max_results=%d&sortBy=submittedDate&sortOrder=%s",
		c.baseURL, q.Category, q.StartIndex, maxResults, sortOrder)

	resp, err := c.http.Get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("feed request: %w", err)
	}
	defer resp.Body.Close()

	var feed atomFeed
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("parsing feed response: %w", err)
	}

	papers := make([]types.PaperRecord, 0, len(feed.Entries))
	for _, entry := range feed.Entries {
		papers = append(papers, entry.toRecord())
	}
	return papers, nil
}

// Atom feed XML structures. The arxiv: extension elements match by local
// name.
type atomFeed struct {
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	ID         string         `xml:"id"`
	Published  string         `xml:"published"`
	Title      string         `xml:"title"`
	Summary    string         `xml:"summary"`
	Authors    []atomAuthor   `xml:"author"`
	Comment    string         `xml:"comment"`
	JournalRef string         `xml:"journal_ref"`
	DOI        string         `xml:"doi"`
	ReportNo   string         `xml:"report_no"`
	License    string         `xml:"license"`
	Categories []atomCategory `xml:"category"`
}

type atomAuthor struct {
	Name string `xml:"name"`
}

type atomCategory struct {
	Term string `xml:"term,attr"`
}

func (e atomEntry) toRecord() types.PaperRecord {
	record := types.PaperRecord{
		ID:         extractID(e.ID),
		Title:      flattenText(e.Title),
		Abstract:   flattenText(e.Summary),
		Comments:   optional(e.Comment),
		JournalRef: optional(e.JournalRef),
		DOI:        optional(e.DOI),
		ReportNo:   optional(e.ReportNo),
		License:    optional(e.License),
	}

	if t, err := time.Parse(time.RFC3339, e.Published); err == nil {
		record.Published = t.Format("2006-01-02")
	}

	names := make([]string, 0, len(e.Authors))
	for _, a := range e.Authors {
		names = append(names, strings.TrimSpace(a.Name))
	}
	record.Authors = strings.Join(names, ", ")

	if len(e.Categories) > 0 {
		record.Categories = optional(e.Categories[0].Term)
	}
	return record
}

// extractID pulls the paper identifier from the entry's <id> URL
// (e.g. "http://arxiv.org/abs/2301.07041v1" yields "2301.07041v1"; the
// version suffix is part of the record identifier).
func extractID(idURL string) string {
	const prefix = "/abs/"
	if idx := strings.Index(idURL, prefix); idx >= 0 {
		return idURL[idx+len(prefix):]
	}
	return idURL
}

// flattenText trims the value and folds feed line breaks into spaces.
func flattenText(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), "\n", " ")
}

// optional maps the feed's empty string to a null record field.
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
