// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the webhook route. Callers can match against
// them with [errors.Is].
var (
	// ErrInvalidWebhookSecret is returned when the path secret of a webhook
	// delivery does not match the bot token.
	ErrInvalidWebhookSecret = errors.New("invalid webhook secret")

	// ErrInvalidUpdate is returned when a webhook body is empty or is not a
	// JSON encoded update.
	ErrInvalidUpdate = errors.New("invalid update payload")
)
