// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests. The
	// scholar endpoints expect a browser-identifying value.
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// FeedConfig holds settings for the metadata feed client.
type FeedConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the feed query endpoint.
	BaseURL string `json:"base_url" yaml:"base_url"`
}

// ScholarConfig holds settings for the scholar page client.
type ScholarConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the scholar site root. Search and author-search paths are
	// appended to it, and relative page links are resolved against it.
	BaseURL string `json:"base_url" yaml:"base_url"`

	// RequestsPerSecond caps the outbound request rate of the client
	// (token bucket). Zero or negative disables the cap.
	RequestsPerSecond float64 `json:"requests_per_second" yaml:"requests_per_second"`
}

// PacingConfig holds the three pacing-delay tiers of the build pipeline:
// after each profile fetch, after each author, and after each paper.
type PacingConfig struct {
	Profile time.Duration `json:"profile" yaml:"profile"`
	Author  time.Duration `json:"author" yaml:"author"`
	Paper   time.Duration `json:"paper" yaml:"paper"`
}
