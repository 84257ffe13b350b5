// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Worker is the local record of a script deployed through the bot.
//
// The remote platform stays authoritative: a record is written only after the
// remote deploy succeeded and removed only after the remote delete succeeded,
// so drift is limited to scripts changed outside the bot.
type Worker struct {
	// ID is the autoincrement primary key assigned by the database.
	ID int64 `json:"id"`

	// UserID references the owning [User].
	UserID int64 `json:"user_id"`

	// Name is the script name. It is unique within one user's records.
	Name string `json:"worker_name"`

	// URL is the public workers.dev address synthesized at deploy time.
	URL string `json:"worker_url"`

	// Subdomain is the left-most label of URL. The bot always uses the
	// worker name.
	Subdomain string `json:"subdomain"`

	// ScriptContent is the full source that was uploaded.
	ScriptContent string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Worker model.
func (w Worker) TableName() string {
	return "workers"
}

// WorkerListing is one row of the worker list: a remote script, its public
// address and whether the bot holds a local record of deploying it.
type WorkerListing struct {
	Script        Script
	URL           string
	DeployedByBot bool
}
