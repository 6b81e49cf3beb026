// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholar

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pdiddy/scholar-pipeline/internal/extract"
	"github.com/pdiddy/scholar-pipeline/pkg/types"
)

const authorSearchPath = "/citations?hl=en&view_op=search_authors&mauthors="

// SearchAuthors fetches the author-search page for name and extracts one
// profile candidate per result block, preserving page order. A candidate
// without a "name_link" field cannot be deepened into a full profile.
func (c *Client) SearchAuthors(ctx context.Context, name string) ([]types.Fields, error) {
	pageURL := c.baseURL + authorSearchPath + url.QueryEscape(name)
	doc, err := c.document(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("author search %q: %w", name, err)
	}

	rules := profileCandidateRules(c.baseURL)
	candidates := make([]types.Fields, 0)
	doc.Find(".gsc_1usr").Each(func(_ int, block *goquery.Selection) {
		fields := extract.Extract(block, rules)
		// The page shows "Cited by N"; keep only the count.
		if v, ok := fields["cited_by_count"]; ok {
			parts := strings.Fields(v)
			fields["cited_by_count"] = parts[len(parts)-1]
		}
		candidates = append(candidates, fields)
	})
	return candidates, nil
}
