// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the application-layer texts shared across the bot:
// the chat messages produced by the conversation flows (messages.go) and the
// error strings written into HTTP response bodies by the health and webhook
// endpoints (this file).
package app

const (
	// MsgNotFound is written for requests to unknown routes, for known
	// routes requested with an unregistered method and for webhook
	// deliveries whose path secret does not match.
	MsgNotFound = "not found"

	// MsgInternalServerError is written when an unexpected failure occurs
	// while serving an HTTP request.
	MsgInternalServerError = "internal server error"

	// MsgInvalidUpdate is written when a webhook body cannot be decoded as
	// an update.
	MsgInvalidUpdate = "invalid update payload"
)
