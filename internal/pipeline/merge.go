// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import "github.com/pdiddy/scholar-pipeline/pkg/types"

// asProfile converts candidate fields to an output profile without
// deepening: exactly the extracted fields, nothing else.
func asProfile(candidate types.Fields) types.Profile {
	profile := make(types.Profile, len(candidate))
	for k, v := range candidate {
		profile[k] = v
	}
	return profile
}

// Merge shallow-unions a profile candidate with its fetched detail. Detail
// fields win on key collision; the authored-work list and citation table are
// attached under fixed keys.
func Merge(candidate types.Fields, detail types.ProfileDetail) types.Profile {
	profile := asProfile(candidate)
	for k, v := range detail.Identity {
		profile[k] = v
	}
	profile["articles"] = detail.Articles
	profile["citation_metrics"] = detail.Metrics
	return profile
}
