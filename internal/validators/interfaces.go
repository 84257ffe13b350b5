// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the input rules of the conversation flows.
//
// Rules are available both as plain functions (ValidateWorkerName,
// ValidateToken, ParseRepoURL) and behind the generic Validator interface,
// which services receive by injection.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
