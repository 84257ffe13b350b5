package store

import (
	"context"

	"github.com/MKhiriev/go-workers-bot/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user profiles and their platform credential.
type UserRepository interface {
	// GetUser returns the profile of userID or [ErrUserNotFound].
	GetUser(ctx context.Context, userID int64) (models.User, error)
	// UpsertUser inserts the profile or refreshes its identity fields. A
	// credential already stored on the profile is left untouched.
	UpsertUser(ctx context.Context, user models.User) error
	// SetCredential stores a validated credential on an existing profile.
	SetCredential(ctx context.Context, userID int64, credential models.Credential) error
}

// WorkerRepository persists the local records of bot-deployed scripts.
type WorkerRepository interface {
	ListWorkers(ctx context.Context, userID int64) ([]models.Worker, error)
	// CreateWorker stores worker and returns its id. A record with the same
	// (user, name) is replaced.
	CreateWorker(ctx context.Context, worker models.Worker) (int64, error)
	// DeleteWorkerByName returns the number of removed records.
	DeleteWorkerByName(ctx context.Context, userID int64, name string) (int64, error)
}

// SessionRepository persists the per-user conversation state.
type SessionRepository interface {
	// GetSession returns the session of userID or [ErrSessionNotFound].
	GetSession(ctx context.Context, userID int64) (models.Session, error)
	SetSession(ctx context.Context, session models.Session) error
	ClearSession(ctx context.Context, userID int64) error
}

// ErrorClassificator decides whether a driver error is transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
