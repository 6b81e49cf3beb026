// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// MetricCount is one cell of the profile citation table. Only the "all time"
// column is captured.
type MetricCount struct {
	All string `json:"all"`
}

// CitationMetrics is the fixed three-slot citation table from a profile
// page. Each slot is independently optional; a nil slot means the page did
// not carry that row.
type CitationMetrics struct {
	Citations *MetricCount `json:"citations,omitempty"`
	HIndex    *MetricCount `json:"h_index,omitempty"`
	IIndex    *MetricCount `json:"i_index,omitempty"`
}

// ProfileDetail is the rich record extracted from one profile page: identity
// fields, the authored-work list in page order, and the citation table.
// Profile pages vary by account type and privacy settings, so every part is
// independently optional and a partial page yields a partial detail.
type ProfileDetail struct {
	Identity Fields
	Articles []Fields
	Metrics  CitationMetrics
}
