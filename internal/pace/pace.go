// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pace inserts delays between pipeline units to bound the outbound
// request rate. Pacing is injected into the pipeline so tests can disable it
// without touching extraction code.
package pace

import (
	"context"
	"time"

	"github.com/pdiddy/scholar-pipeline/pkg/types"
)

// Pacer waits after a pipeline unit finishes. The pipeline calls the tier
// matching the unit: each profile fetch, each author, each paper.
type Pacer interface {
	AfterProfile(ctx context.Context)
	AfterAuthor(ctx context.Context)
	AfterPaper(ctx context.Context)
}

// Fixed is a Pacer with a fixed delay per tier. The zero value never waits,
// which is what tests want.
type Fixed struct {
	Profile time.Duration
	Author  time.Duration
	Paper   time.Duration
}

// FromConfig builds a Fixed pacer from the pacing configuration.
func FromConfig(cfg types.PacingConfig) Fixed {
	return Fixed{Profile: cfg.Profile, Author: cfg.Author, Paper: cfg.Paper}
}

func (f Fixed) AfterProfile(ctx context.Context) { wait(ctx, f.Profile) }
func (f Fixed) AfterAuthor(ctx context.Context)  { wait(ctx, f.Author) }
func (f Fixed) AfterPaper(ctx context.Context)   { wait(ctx, f.Paper) }

// wait sleeps for d or until ctx is done, whichever comes first. A cancelled
// context only cuts the sleep short; the run itself carries on.
func wait(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
