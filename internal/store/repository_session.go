package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-workers-bot/internal/logger"
	"github.com/MKhiriev/go-workers-bot/models"
)

// sessionRepository is the SQL implementation of [SessionRepository]. The
// state is kept as JSON in the session_data column.
type sessionRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating sql session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *sessionRepository) GetSession(ctx context.Context, userID int64) (models.Session, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetSessionQuery(r.db.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.GetSession").Msg("failed to create query")
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		session models.Session
		data    string
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&session.UserID, &data, &session.CreatedAt, &session.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*sessionRepository.GetSession").
			Int64("user_id", userID).
			Bool("retryable", r.db.retryable(err)).
			Msg("failed to get session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	session.State, err = models.DecodeSessionState([]byte(data))
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.GetSession").Int64("user_id", userID).Msg("stored session is corrupt")
		return models.Session{}, fmt.Errorf("%w: %w", ErrDecodingSession, err)
	}

	return session, nil
}

func (r *sessionRepository) SetSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	data, err := models.EncodeSessionState(session.State)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.SetSession").Int64("user_id", session.UserID).Msg("failed to encode session")
		return fmt.Errorf("%w: %w", ErrEncodingSession, err)
	}

	query, args, err := buildSetSessionQuery(r.db.builder, session.UserID, data)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.SetSession").Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*sessionRepository.SetSession").
			Int64("user_id", session.UserID).
			Bool("retryable", r.db.retryable(err)).
			Msg("failed to save session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// ClearSession removes the session of userID. Clearing a missing session
// is not an error.
func (r *sessionRepository) ClearSession(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildClearSessionQuery(r.db.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.ClearSession").Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*sessionRepository.ClearSession").
			Int64("user_id", userID).
			Bool("retryable", r.db.retryable(err)).
			Msg("failed to clear session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
