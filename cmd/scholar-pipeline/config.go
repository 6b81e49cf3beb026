// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/viper"

	"github.com/pdiddy/scholar-pipeline/pkg/types"
)

// Config assembly from viper. Defaults are registered in initConfig, so
// every lookup here resolves to a usable value even without a config file.

func httpConfig() types.HTTPConfig {
	return types.HTTPConfig{
		Timeout:   viper.GetDuration("http.timeout"),
		UserAgent: viper.GetString("http.user_agent"),
	}
}

func feedConfig() types.FeedConfig {
	return types.FeedConfig{
		HTTPConfig: httpConfig(),
		BaseURL:    viper.GetString("arxiv.base_url"),
	}
}

func scholarConfig() types.ScholarConfig {
	return types.ScholarConfig{
		HTTPConfig:        httpConfig(),
		BaseURL:           viper.GetString("scholar.base_url"),
		RequestsPerSecond: viper.GetFloat64("scholar.requests_per_second"),
	}
}

func pacingConfig() types.PacingConfig {
	return types.PacingConfig{
		Profile: viper.GetDuration("pacing.profile"),
		Author:  viper.GetDuration("pacing.author"),
		Paper:   viper.GetDuration("pacing.paper"),
	}
}
