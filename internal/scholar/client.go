// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scholar resolves queries against the scholar site: free-text
// search, author search, and profile pages. Each resolver issues one fetch
// and one extraction pass and returns zero or more records in page order.
//
// Resolvers report fetch failures as errors; the pipeline decides how to
// fold them into the output. A page with no result blocks is an empty
// result, never an error.
package scholar

import (
	"context"
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"github.com/pdiddy/scholar-pipeline/internal/httputil"
	"github.com/pdiddy/scholar-pipeline/pkg/types"
)

const (
	// DefaultBaseURL is the scholar site root.
	DefaultBaseURL = "https://scholar.google.com"

	// DefaultUserAgent is the browser-identifying header the scholar
	// endpoints expect; requests without one are served a degraded page.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64)"

	// DefaultRequestsPerSecond is the outbound rate cap for scholar fetches.
	DefaultRequestsPerSecond = 1.0
)

// Client fetches and parses scholar pages.
type Client struct {
	http    *httputil.Client
	baseURL string
}

// NewClient builds a Client from cfg, filling unset values with the
// defaults above.
func NewClient(cfg types.ScholarConfig) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	rps := cfg.RequestsPerSecond
	if rps == 0 {
		rps = DefaultRequestsPerSecond
	}
	return &Client{
		http:    httputil.NewClient(cfg.HTTPConfig, rps),
		baseURL: cfg.BaseURL,
	}
}

// document fetches url and parses the body into a goquery document.
func (c *Client) document(ctx context.Context, url string) (*goquery.Document, error) {
	resp, err := c.http.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", url, err)
	}
	return doc, nil
}
