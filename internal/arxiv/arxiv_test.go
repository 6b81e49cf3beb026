// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pdiddy/scholar-pipeline/pkg/types"
)

const sampleFeedXML = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom" xmlns:arxiv="http://arxiv.org/schemas/atom">
  <entry>
    <id>http://arxiv.org/abs/2301.07041v1</id>
    <published>2023-01-17T14:30:00Z</published>
    <title>A Survey of
  Large Language Models</title>
    <summary>
      We survey large language models.
    </summary>
    <author><name>A. Smith</name></author>
    <author><name>B. Lee</name></author>
    <arxiv:comment>42 pages</arxiv:comment>
    <arxiv:journal_ref>JMLR 2023</arxiv:journal_ref>
    <arxiv:doi>10.1000/test.1</arxiv:doi>
    <category term="cs.AI" scheme="http://arxiv.org/schemas/atom"/>
    <category term="cs.CL" scheme="http://arxiv.org/schemas/atom"/>
  </entry>
  <entry>
    <id>http://arxiv.org/abs/2301.99999v2</id>
    <published>2023-01-20T09:00:00Z</published>
    <title>Minimal Entry</title>
    <summary>Short.</summary>
    <author><name>C. Wu</name></author>
  </entry>
</feed>`

func newFeedServer(t *testing.T) (*httptest.Server, *string) {
	t.Helper()
	var lastQuery string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lastQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/xml")
		fmt.Fprint(w, sampleFeedXML)
	}))
	return ts, &lastQuery
}

func testClient(baseURL string) *Client {
	return NewClient(types.FeedConfig{
		HTTPConfig: types.HTTPConfig{Timeout: 5 * time.Second, UserAgent: "test/0.1"},
		BaseURL:    baseURL,
	})
}

func TestFetchMapsEntriesToRecords(t *testing.T) {
	ts, _ := newFeedServer(t)
	defer ts.Close()

	papers, err := testClient(ts.URL).Fetch(context.Background(), Query{Category: "cs.AI"})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(papers) != 2 {
		t.Fatalf("len(papers) = %d, want 2", len(papers))
	}

	p := papers[0]
	if p.ID != "2301.07041v1" {
		t.Errorf("ID = %q", p.ID)
	}
	if p.Published != "2023-01-17" {
		t.Errorf("Published = %q", p.Published)
	}
	if p.Title != "A Survey of   Large Language Models" {
		t.Errorf("Title = %q, line breaks should fold to spaces", p.Title)
	}
	if p.Authors != "A. Smith, B. Lee" {
		t.Errorf("Authors = %q", p.Authors)
	}
	if p.Abstract != "We survey large language models." {
		t.Errorf("Abstract = %q", p.Abstract)
	}
	if p.Comments == nil || *p.Comments != "42 pages" {
		t.Errorf("Comments = %v", p.Comments)
	}
	if p.JournalRef == nil || *p.JournalRef != "JMLR 2023" {
		t.Errorf("JournalRef = %v", p.JournalRef)
	}
	if p.DOI == nil || *p.DOI != "10.1000/test.1" {
		t.Errorf("DOI = %v", p.DOI)
	}
	// Only the first category term is kept.
	if p.Categories == nil || *p.Categories != "cs.AI" {
		t.Errorf("Categories = %v", p.Categories)
	}
	if p.Submitter != nil {
		t.Errorf("Submitter = %v, the feed never carries one", p.Submitter)
	}
}

func TestFetchAbsentFieldsAreNull(t *testing.T) {
	ts, _ := newFeedServer(t)
	defer ts.Close()

	papers, err := testClient(ts.URL).Fetch(context.Background(), Query{Category: "cs.AI"})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	p := papers[1]
	if p.Comments != nil || p.JournalRef != nil || p.DOI != nil || p.ReportNo != nil ||
		p.Categories != nil || p.License != nil {
		t.Errorf("absent feed fields must map to null: %+v", p)
	}
}

func TestFetchBuildsPaginatedQuery(t *testing.T) {
	ts, lastQuery := newFeedServer(t)
	defer ts.Close()

	_, err := testClient(ts.URL).Fetch(context.Background(), Query{
		Category:   "cs.AI",
		MaxResults: 25,
		StartIndex: 50,
		SortOrder:  SortAscending,
	})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	want := "search_query=cat:cs.AI&start=50&max_results=25&sortBy=submittedDate&sortOrder=ascending"
	if *lastQuery != want {
		t.Errorf("query = %q, want %q", *lastQuery, want)
	}
}

func TestFetchValidatesParameters(t *testing.T) {
	ts, _ := newFeedServer(t)
	defer ts.Close()
	c := testClient(ts.URL)

	if _, err := c.Fetch(context.Background(), Query{}); err == nil {
		t.Error("expected error for missing category")
	}
	if _, err := c.Fetch(context.Background(), Query{Category: "cs.AI", SortOrder: "sideways"}); err == nil {
		t.Error("expected error for invalid sort order")
	}
}

func TestFetchServerErrorIsError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer ts.Close()

	if _, err := testClient(ts.URL).Fetch(context.Background(), Query{Category: "cs.AI"}); err == nil {
		t.Fatal("expected error on HTTP 502")
	}
}
