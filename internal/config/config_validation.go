// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks that the merged [StructuredConfig] can be used to start the
// bot. It runs after defaults were applied, so only values that have no
// sensible default or that were overridden with garbage are rejected.
func (cfg *StructuredConfig) validate() error {
	if cfg.Telegram.BotToken == "" {
		return fmt.Errorf("%w: bot token is required", ErrInvalidTelegramConfigs)
	}
	if err := validateBaseURL(cfg.Telegram.APIURL); err != nil {
		return fmt.Errorf("%w: api url: %w", ErrInvalidTelegramConfigs, err)
	}
	if cfg.Telegram.PollTimeout <= 0 {
		return fmt.Errorf("%w: poll timeout must be positive", ErrInvalidTelegramConfigs)
	}
	if cfg.Telegram.WebhookURL != "" {
		if err := validateBaseURL(cfg.Telegram.WebhookURL); err != nil {
			return fmt.Errorf("%w: webhook url: %w", ErrInvalidTelegramConfigs, err)
		}
	}

	if err := validateBaseURL(cfg.Cloudflare.APIURL); err != nil {
		return fmt.Errorf("%w: api url: %w", ErrInvalidCloudflareConfigs, err)
	}
	if cfg.Cloudflare.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidCloudflareConfigs)
	}

	if err := validateBaseURL(cfg.GitHub.RawURL); err != nil {
		return fmt.Errorf("%w: raw url: %w", ErrInvalidGitHubConfigs, err)
	}
	if cfg.GitHub.Token != "" {
		if err := validateBaseURL(cfg.GitHub.APIURL); err != nil {
			return fmt.Errorf("%w: api url: %w", ErrInvalidGitHubConfigs, err)
		}
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database dsn is required", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: http address is required", ErrInvalidServerConfigs)
	}
	if cfg.Server.EventTimeout <= 0 {
		return fmt.Errorf("%w: event timeout must be positive", ErrInvalidServerConfigs)
	}

	return nil
}

func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%q must include scheme and host", raw)
	}
	return nil
}
