// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholar

import "github.com/pdiddy/scholar-pipeline/internal/extract"

// Selector rule tables for the three scholar page types. Site-relative
// links are composed against base so records carry absolute URLs.
//
// In the result footer the cited-by anchor directly follows the .gs_nph
// marker and the versions anchor is two anchors after it.

func searchResultRules(base string) []extract.Rule {
	return []extract.Rule{
		extract.Text("title", ".gs_rt"),
		extract.Attr("title_link", ".gs_rt a", "href"),
		extract.Attr("id", ".gs_rt a", "id"),
		extract.Text("displayed_link", ".gs_a"),
		extract.Text("snippet", ".gs_rs"),
		extract.Text("cited_by_count", ".gs_nph + a"),
		extract.Link("cited_link", ".gs_nph + a", base, "href"),
		extract.Text("versions_count", ".gs_nph + a + a + a"),
		extract.Link("versions_link", ".gs_nph + a + a + a", base, "href"),
	}
}

func profileCandidateRules(base string) []extract.Rule {
	return []extract.Rule{
		extract.Text("name", ".gs_ai_name"),
		extract.Link("name_link", ".gs_ai_name a", base, "href"),
		extract.Text("position", ".gs_ai_aff"),
		extract.Text("email", ".gs_ai_eml"),
		extract.Text("departments", ".gs_ai_int"),
		extract.Text("cited_by_count", ".gs_ai_cby"),
	}
}

func profileIdentityRules() []extract.Rule {
	return []extract.Rule{
		extract.Text("name", "#gsc_prf_in"),
		extract.Text("position", "#gsc_prf_inw + .gsc_prf_il"),
		extract.Text("email", "#gsc_prf_ivh"),
		extract.Text("departments", "#gsc_prf_int"),
	}
}

func articleRules(base string) []extract.Rule {
	return []extract.Rule{
		extract.Text("title", ".gsc_a_at"),
		extract.Link("link", ".gsc_a_at", base, "href"),
		extract.Text("authors", ".gs_gray:nth-of-type(1)"),
		extract.Text("publication", ".gs_gray:nth-of-type(2)"),
	}
}

// Fixed-position selectors for the three-row citation table.
const (
	citationsSelector = "#gsc_rsb_st tr:nth-child(1) .gsc_rsb_std"
	hIndexSelector    = "#gsc_rsb_st tr:nth-child(2) .gsc_rsb_std"
	iIndexSelector    = "#gsc_rsb_st tr:nth-child(3) .gsc_rsb_std"
)
