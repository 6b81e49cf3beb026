// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholar

import (
	"context"
	"fmt"
	"net/url"

	"github.com/PuerkitoBio/goquery"

	"github.com/pdiddy/scholar-pipeline/internal/extract"
	"github.com/pdiddy/scholar-pipeline/pkg/types"
)

// Search fetches one search results page for query and extracts one record
// per result block, preserving page order. A page with no result blocks
// yields an empty slice and no error.
func (c *Client) Search(ctx context.Context, query string) ([]types.Fields, error) {
	pageURL := c.baseURL + "/scholar?q=" + url.QueryEscape(query)
	doc, err := c.document(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("scholar search %q: %w", query, err)
	}

	rules := searchResultRules(c.baseURL)
	results := make([]types.Fields, 0)
	doc.Find(".gs_r").Each(func(_ int, block *goquery.Selection) {
		results = append(results, extract.Extract(block, rules))
	})
	return results, nil
}
