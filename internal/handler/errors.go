// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

var (
	// errNoHandlersAreCreated is returned by NewHandlers when the services or
	// the messenger the update handler replies through are missing.
	errNoHandlersAreCreated = errors.New("no handlers are created")

	// errWebhookNeedsHTTP is returned when a webhook URL is configured but no
	// HTTP address is, so Telegram would have nowhere to deliver updates.
	errWebhookNeedsHTTP = errors.New("webhook mode requires an http address")
)
