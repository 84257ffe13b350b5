// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"slices"
	"time"
)

// StructuredConfig is the top-level configuration of the bot. It is
// populated by merging environment variables, command-line flags, an
// optional JSON or YAML file, the legacy environment variables and finally
// the built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-wide settings such as the log level.
	App App `envPrefix:"APP_"`

	// Telegram holds the chat transport settings.
	Telegram Telegram `envPrefix:"TELEGRAM_"`

	// Cloudflare holds the remote platform settings shared by all users.
	Cloudflare Cloudflare `envPrefix:"CLOUDFLARE_"`

	// GitHub holds the settings of the repository script fetcher.
	GitHub GitHub `envPrefix:"GITHUB_"`

	// Bot holds conversation policy settings.
	Bot Bot `envPrefix:"BOT_"`

	// Storage holds the persistence backends.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the HTTP surface and per-event limits.
	Server Server `envPrefix:"SERVER_"`

	// FilePath is the optional path to a JSON or YAML configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	FilePath string `env:"CONFIG"`
}

// App holds process-wide settings.
type App struct {
	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Version is reported by GET /api/status.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Telegram holds the Bot API settings.
type Telegram struct {
	// BotToken authorizes every Bot API call. Required.
	// Env: TELEGRAM_BOT_TOKEN
	BotToken string `env:"BOT_TOKEN"`

	// APIURL is the Bot API base address.
	// Env: TELEGRAM_API_URL
	APIURL string `env:"API_URL"`

	// PollTimeout is the long-polling timeout passed to getUpdates.
	// Env: TELEGRAM_POLL_TIMEOUT
	PollTimeout time.Duration `env:"POLL_TIMEOUT"`

	// WebhookURL switches the bot from long polling to webhook delivery.
	// The bot registers "<WebhookURL>/webhook/<token>" on startup.
	// Env: TELEGRAM_WEBHOOK_URL
	WebhookURL string `env:"WEBHOOK_URL"`
}

// Cloudflare holds settings applied to every per-user API client.
type Cloudflare struct {
	// APIURL is the v4 REST API base address.
	// Env: CLOUDFLARE_API_URL
	APIURL string `env:"API_URL"`

	// AccountID and APIToken are the global fallback credential. They are
	// logged at startup for diagnostics only; user flows always use the
	// credential stored on the profile.
	// Env: CLOUDFLARE_ACCOUNT_ID, CLOUDFLARE_API_TOKEN
	AccountID string `env:"ACCOUNT_ID"`
	APIToken  string `env:"API_TOKEN"`

	// RequestTimeout bounds every remote HTTP call.
	// Env: CLOUDFLARE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// WorkerVars are attached to every deployed script as plain_text
	// bindings. Format: "NAME:value,OTHER:value".
	// Env: CLOUDFLARE_WORKER_VARS
	WorkerVars map[string]string `env:"WORKER_VARS"`

	// KVNamespaces are attached to every deployed script as kv_namespace
	// bindings. Format: "BINDING:namespace-id,...".
	// Env: CLOUDFLARE_KV_NAMESPACES
	KVNamespaces map[string]string `env:"KV_NAMESPACES"`
}

// GitHub holds the repository fetcher settings.
type GitHub struct {
	// RawURL is the raw content host used without a token.
	// Env: GITHUB_RAW_URL
	RawURL string `env:"RAW_URL"`

	// APIURL is the REST API base used when Token is set.
	// Env: GITHUB_API_URL
	APIURL string `env:"API_URL"`

	// Token switches script fetching to the authenticated contents API.
	// Env: GITHUB_TOKEN
	Token string `env:"TOKEN"`
}

// Bot holds conversation policy settings.
type Bot struct {
	// OwnerID and AdminIDs are exempt from MaxWorkersPerUser.
	// Env: BOT_OWNER_ID, BOT_ADMIN_IDS (comma separated)
	OwnerID  int64   `env:"OWNER_ID"`
	AdminIDs []int64 `env:"ADMIN_IDS"`

	// MaxWorkersPerUser caps the number of bot-deployed worker records per
	// user. A negative value disables the cap, which is the default.
	// Env: BOT_MAX_WORKERS_PER_USER
	MaxWorkersPerUser int `env:"MAX_WORKERS_PER_USER"`
}

// IsPrivileged reports whether userID is the owner or an admin.
func (b Bot) IsPrivileged(userID int64) bool {
	if b.OwnerID != 0 && b.OwnerID == userID {
		return true
	}
	return slices.Contains(b.AdminIDs, userID)
}

// Storage groups the persistence backends.
type Storage struct {
	// DB holds the relational database settings.
	DB DB `envPrefix:"DB_"`

	// Sessions holds the optional dedicated session store settings.
	Sessions Sessions `envPrefix:"SESSIONS_"`
}

// DB holds the relational database settings.
type DB struct {
	// DSN is either a SQLite file path or a postgres:// URL.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Sessions holds the dedicated session store settings.
type Sessions struct {
	// BoltPath moves sessions out of the SQL database into a bbolt file.
	// Env: STORAGE_SESSIONS_BOLT_PATH
	BoltPath string `env:"BOLT_PATH"`
}

// Server holds the HTTP surface address and per-event limits.
type Server struct {
	// HTTPAddress is the health/webhook listener in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// EventTimeout bounds the processing of one inbound update.
	// Env: SERVER_EVENT_TIMEOUT
	EventTimeout time.Duration `env:"EVENT_TIMEOUT"`

	// ShutdownTimeout bounds the graceful shutdown of the HTTP server.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// GetStructuredConfig loads, merges and validates the configuration. For
// every field the first non-zero value wins, in this order:
//  1. Environment variables
//  2. Command-line flags
//  3. Config file (path resolved from sources 1 and 2)
//  4. Legacy environment variables (PORT, HOST, DB_FILENAME, MAX_WORKERS_PER_USER)
//  5. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withFile().
		withLegacyEnv().
		withDefaults().
		build()
}
