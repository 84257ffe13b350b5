package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a
// configuration group is incomplete or invalid.
var (
	// ErrInvalidTelegramConfigs indicates a missing bot token or a
	// malformed Bot API address.
	ErrInvalidTelegramConfigs = errors.New("invalid telegram configuration")
	// ErrInvalidCloudflareConfigs indicates a malformed API address or a
	// non-positive request timeout.
	ErrInvalidCloudflareConfigs = errors.New("invalid cloudflare configuration")
	// ErrInvalidGitHubConfigs indicates a malformed raw or API address.
	ErrInvalidGitHubConfigs = errors.New("invalid github configuration")
	// ErrInvalidStorageConfigs indicates an empty DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates an empty listen address or a
	// non-positive event timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
