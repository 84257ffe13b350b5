// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the business logic of the bot.
//
// [ConversationService] is the per-event state machine driven by the
// transport handlers. It delegates credential handling to
// [CredentialService] and everything that touches Workers scripts to
// [DeployService]; both are plain services over the store repositories and
// the remote adapters. [AppInfoService] feeds the HTTP health endpoints.
package service

import (
	"context"

	"github.com/MKhiriev/go-workers-bot/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ConversationService consumes the three inbound event kinds. Every call ends
// with at least one outbound message unless the event is ignored (unknown
// commands and callbacks, text without an active flow).
type ConversationService interface {
	HandleCommand(ctx context.Context, cmd models.Command) error
	HandleCallback(ctx context.Context, cb models.Callback) error
	HandleMessage(ctx context.Context, msg models.IncomingMessage) error
}

// CredentialService owns user profiles and their stored Cloudflare
// credential.
type CredentialService interface {
	// RegisterUser creates the profile or refreshes its display fields. A
	// credential stored earlier is kept.
	RegisterUser(ctx context.Context, user models.User) error

	// GetUser returns the stored profile, or an error matching
	// store.ErrUserNotFound.
	GetUser(ctx context.Context, userID int64) (models.User, error)

	// Login verifies credential against the remote platform and, on success,
	// stores it on the profile. Remote failures are returned as
	// *adapter.RemoteError and leave the profile untouched.
	Login(ctx context.Context, userID int64, credential models.Credential) (models.Account, error)
}

// DeployService manages the Workers scripts of an authenticated user.
type DeployService interface {
	// CheckQuota reports ErrWorkerLimitReached when user may not deploy
	// another worker.
	CheckQuota(ctx context.Context, user models.User) error

	// CheckNameAvailable validates name and reports ErrWorkerExists when a
	// remote script with that name already exists.
	CheckNameAvailable(ctx context.Context, user models.User, name string) error

	// DeployBuiltin uploads the built-in script as name and records it.
	DeployBuiltin(ctx context.Context, user models.User, name string) (models.Worker, error)

	// DeployFromGitHub fetches index.js of repo, uploads it as name and
	// records it. Nothing is uploaded when the fetch fails.
	DeployFromGitHub(ctx context.Context, user models.User, name string, repo models.GitHubRepo) (models.Worker, error)

	// ListWorkers returns the remote scripts, marking the ones the bot
	// deployed.
	ListWorkers(ctx context.Context, user models.User) ([]models.WorkerListing, error)

	// DeleteWorker removes the remote script, then its local record.
	DeleteWorker(ctx context.Context, user models.User, name string) error
}

// AppInfoService reports process metadata for the HTTP surface.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Health(ctx context.Context) models.HealthStatus
	Status(ctx context.Context) models.BotStatus
}
