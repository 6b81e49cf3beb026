// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline drives the extraction-and-join pass: one scholar search
// per paper, one author search per author-list token, one profile fetch per
// linked candidate, merged into a single nested record per paper.
//
// The pipeline is strictly sequential. Per-unit failures are logged with
// identifying context and fold to "produced nothing for this unit"; a run
// always completes one full pass over the input, never retries, and never
// aborts because one item failed.
package pipeline

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pdiddy/scholar-pipeline/internal/pace"
	"github.com/pdiddy/scholar-pipeline/pkg/types"
)

// Resolver turns queries and links into extracted scholar records.
// Implemented by scholar.Client; tests substitute mocks.
type Resolver interface {
	Search(ctx context.Context, query string) ([]types.Fields, error)
	SearchAuthors(ctx context.Context, name string) ([]types.Fields, error)
	FetchProfile(ctx context.Context, link string) (types.ProfileDetail, error)
}

// Result holds the outcome of a pipeline run.
type Result struct {
	Records []types.PaperOutputRecord

	// Authors and Profiles count the author entries and resolved profile
	// records produced; Failures counts units that degraded to empty.
	Authors  int
	Profiles int
	Failures int
}

// Runner sequences the resolvers over a paper list.
type Runner struct {
	resolver Resolver
	pacer    pace.Pacer
	log      zerolog.Logger
}

// New builds a Runner. A nil pacer disables pacing.
func New(resolver Resolver, pacer pace.Pacer, log zerolog.Logger) *Runner {
	if pacer == nil {
		pacer = pace.Fixed{}
	}
	return &Runner{resolver: resolver, pacer: pacer, log: log}
}

// Run processes every paper exactly once, in input order, and returns one
// output record per paper.
func (r *Runner) Run(ctx context.Context, papers []types.PaperRecord) Result {
	result := Result{Records: make([]types.PaperOutputRecord, 0, len(papers))}
	for _, paper := range papers {
		r.log.Info().Str("paper", paper.Title).Msg("processing paper")
		result.Records = append(result.Records, r.processPaper(ctx, paper, &result))
		r.pacer.AfterPaper(ctx)
	}
	return result
}

func (r *Runner) processPaper(ctx context.Context, paper types.PaperRecord, result *Result) types.PaperOutputRecord {
	record := types.PaperOutputRecord{
		Arxiv:          paper,
		ScholarSearch:  make([]types.Fields, 0),
		AuthorsDetails: make([]types.AuthorOutputRecord, 0),
	}

	// Quote the title for an exact-match search.
	query := `"` + paper.Title + `"`
	results, err := r.resolver.Search(ctx, query)
	if err != nil {
		result.Failures++
		r.log.Warn().Err(err).Str("paper", paper.Title).Msg("scholar search failed")
	} else if results != nil {
		record.ScholarSearch = results
	}

	for _, name := range SplitAuthors(paper.Authors) {
		record.AuthorsDetails = append(record.AuthorsDetails, r.processAuthor(ctx, name, result))
		result.Authors++
		r.pacer.AfterAuthor(ctx)
	}
	return record
}

func (r *Runner) processAuthor(ctx context.Context, name string, result *Result) types.AuthorOutputRecord {
	entry := types.AuthorOutputRecord{
		AuthorName: name,
		Profiles:   make([]types.Profile, 0),
	}

	candidates, err := r.resolver.SearchAuthors(ctx, name)
	if err != nil {
		result.Failures++
		r.log.Warn().Err(err).Str("author", name).Msg("author search failed")
		return entry
	}

	for _, candidate := range candidates {
		link, linked := candidate["name_link"]
		if !linked {
			// Without a link the candidate cannot be deepened.
			entry.Profiles = append(entry.Profiles, asProfile(candidate))
			result.Profiles++
			continue
		}

		detail, err := r.resolver.FetchProfile(ctx, link)
		if err != nil {
			result.Failures++
			r.log.Warn().Err(err).Str("author", name).Str("profile", link).Msg("profile fetch failed")
			entry.Profiles = append(entry.Profiles, asProfile(candidate))
		} else {
			entry.Profiles = append(entry.Profiles, Merge(candidate, detail))
		}
		result.Profiles++
		r.pacer.AfterProfile(ctx)
	}
	return entry
}

// SplitAuthors splits the flat comma-delimited author list into trimmed,
// non-empty tokens, preserving order. Repeated names are kept: the source
// feed does not deduplicate and neither do we.
func SplitAuthors(list string) []string {
	var names []string
	for _, token := range strings.Split(list, ",") {
		if name := strings.TrimSpace(token); name != "" {
			names = append(names, name)
		}
	}
	return names
}
