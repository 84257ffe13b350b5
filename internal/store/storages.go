package store

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-workers-bot/internal/config"
	"github.com/MKhiriev/go-workers-bot/internal/logger"
)

// Storages aggregates the repositories handed to the service layer.
type Storages struct {
	UserRepository    UserRepository
	WorkerRepository  WorkerRepository
	SessionRepository SessionRepository

	closers []io.Closer
}

// NewStorages connects the SQL database, applies migrations and builds the
// repositories. Sessions live in bbolt when cfg.Sessions.BoltPath is set,
// otherwise in the SQL database.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Str("dialect", db.Dialect()).Msg("error applying migrations")
		db.Close()
		return nil, err
	}

	storages := &Storages{
		UserRepository:   NewUserRepository(db, log),
		WorkerRepository: NewWorkerRepository(db, log),
		closers:          []io.Closer{db},
	}

	if cfg.Sessions.BoltPath != "" {
		sessions, err := NewBoltSessionRepository(cfg.Sessions.BoltPath, log)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("error opening session store: %w", err)
		}
		storages.SessionRepository = sessions
		storages.closers = append(storages.closers, sessions)
	} else {
		storages.SessionRepository = NewSessionRepository(db, log)
	}

	return storages, nil
}

// Close releases every underlying connection.
func (s *Storages) Close() error {
	var errs []error
	for _, closer := range s.closers {
		if err := closer.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
