// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the clients of the remote services the bot talks
// to: the Cloudflare Workers API, GitHub (script fetching) and the Telegram
// Bot API.
//
// Every failed remote call returns a [*RemoteError] whose message is safe to
// show to the user and which unwraps to one of the sentinels in errors.go, so
// callers can use [errors.Is] (e.g. [ErrNotFound] for HTTP 404).
package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/go-workers-bot/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// CloudflareAdapterFactory builds a [CloudflareAdapter] bound to one
// credential. Adapters share the underlying HTTP client, the credential is
// attached per request.
type CloudflareAdapterFactory interface {
	ForCredential(credential models.Credential) CloudflareAdapter
}

// CloudflareAdapter performs Workers API calls on behalf of one credential.
type CloudflareAdapter interface {
	// VerifyCredential checks that the token is active and returns the first
	// account visible to it, carrying the token status.
	VerifyCredential(ctx context.Context) (models.Account, error)

	// ListScripts returns all scripts of the account.
	ListScripts(ctx context.Context) ([]models.Script, error)

	// GetScript checks that the named script exists. A missing script yields
	// an error matching [ErrNotFound].
	GetScript(ctx context.Context, name string) (models.Script, error)

	// DeployScript creates or replaces the named script.
	DeployScript(ctx context.Context, upload models.ScriptUpload) (models.Deployment, error)

	// DeleteScript removes the named script.
	DeleteScript(ctx context.Context, name string) error
}

// ScriptFetcher downloads the entry script of a public repository.
type ScriptFetcher interface {
	// FetchScript returns the content of index.js at the root of repo,
	// trying the main branch first and master second. When neither branch
	// has the file the error matches [ErrScriptNotFound].
	FetchScript(ctx context.Context, repo models.GitHubRepo) (string, error)
}

// Messenger is the outbound half of the chat transport.
type Messenger interface {
	SendMessage(ctx context.Context, msg models.OutgoingMessage) error
	EditMessage(ctx context.Context, edit models.MessageEdit) error
	AnswerCallback(ctx context.Context, callbackID string) error
}

// TelegramAdapter is the full Bot API client: outbound messages plus update
// delivery management.
type TelegramAdapter interface {
	Messenger

	// GetUpdates long-polls for updates with id >= offset, waiting up to
	// timeout for the first one.
	GetUpdates(ctx context.Context, offset int64, timeout time.Duration) ([]models.Update, error)

	// SetWebhook switches delivery to POSTs at url.
	SetWebhook(ctx context.Context, url string) error

	// DeleteWebhook switches delivery back to getUpdates.
	DeleteWebhook(ctx context.Context) error
}
