// Package workers runs the bot's background loops.
//
// A Worker blocks in Run until its context is cancelled or it fails.
// Workers runs a set of them together and stops all of them as soon as one
// returns an error.
package workers

import (
	"context"

	"github.com/MKhiriev/go-workers-bot/models"
)

type Worker interface {
	// Run blocks until ctx is cancelled or the worker fails. A worker that
	// stops because ctx was cancelled returns nil.
	Run(ctx context.Context) error
}

// UpdateHandler receives the updates fetched by UpdatePoller.
type UpdateHandler interface {
	HandleUpdate(ctx context.Context, update models.Update)
}
