// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholar

import (
	"context"
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"github.com/pdiddy/scholar-pipeline/internal/extract"
	"github.com/pdiddy/scholar-pipeline/pkg/types"
)

// FetchProfile fetches one profile page and extracts identity fields, the
// authored-work list, and the citation table. Profile pages are the richest
// but least reliable source, so every sub-extraction is independently
// optional: a partial page yields a partial detail, and only a failed fetch
// is an error.
func (c *Client) FetchProfile(ctx context.Context, link string) (types.ProfileDetail, error) {
	doc, err := c.document(ctx, link)
	if err != nil {
		return types.ProfileDetail{}, fmt.Errorf("profile %s: %w", link, err)
	}

	detail := types.ProfileDetail{
		Identity: extract.Extract(doc.Selection, profileIdentityRules()),
		Articles: make([]types.Fields, 0),
	}

	rules := articleRules(c.baseURL)
	doc.Find("#gsc_a_b .gsc_a_t").Each(func(_ int, item *goquery.Selection) {
		detail.Articles = append(detail.Articles, extract.Extract(item, rules))
	})

	detail.Metrics = types.CitationMetrics{
		Citations: metricAt(doc, citationsSelector),
		HIndex:    metricAt(doc, hIndexSelector),
		IIndex:    metricAt(doc, iIndexSelector),
	}
	return detail, nil
}

// metricAt reads one citation-table cell, or nil when the row is absent.
func metricAt(doc *goquery.Document, selector string) *types.MetricCount {
	value := extract.CleanText(doc.Find(selector).First().Text())
	if value == "" {
		return nil
	}
	return &types.MetricCount{All: value}
}
