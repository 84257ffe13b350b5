package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-workers-bot/internal/logger"
	"github.com/MKhiriev/go-workers-bot/models"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table.
type userRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// GetUser returns the profile of userID.
//
// Error handling:
//   - no row → [ErrUserNotFound].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) GetUser(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetUserQuery(r.db.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetUser").Msg("failed to create query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&user.UserID,
		&user.Username,
		&user.FirstName,
		&user.LastName,
		&user.CloudflareToken,
		&user.CloudflareAccountID,
		&user.IsActive,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.GetUser").
			Int64("user_id", userID).
			Bool("retryable", r.db.retryable(err)).
			Msg("failed to get user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// UpsertUser inserts the profile or refreshes its identity fields and
// active flag. The credential columns are never written here.
func (r *userRepository) UpsertUser(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertUserQuery(r.db.builder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpsertUser").Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*userRepository.UpsertUser").
			Int64("user_id", user.UserID).
			Bool("retryable", r.db.retryable(err)).
			Msg("failed to upsert user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Debug().Str("func", "*userRepository.UpsertUser").Int64("user_id", user.UserID).Msg("user saved")
	return nil
}

// SetCredential stores credential on the profile of userID. It returns
// [ErrUserNotFound] when no profile was updated.
func (r *userRepository) SetCredential(ctx context.Context, userID int64, credential models.Credential) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSetCredentialQuery(r.db.builder, userID, credential)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SetCredential").Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.SetCredential").
			Int64("user_id", userID).
			Bool("retryable", r.db.retryable(err)).
			Msg("failed to store credential")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		log.Warn().Str("func", "*userRepository.SetCredential").Int64("user_id", userID).Msg("no profile to update")
		return ErrUserNotFound
	}

	log.Info().Str("func", "*userRepository.SetCredential").Int64("user_id", userID).Msg("credential stored")
	return nil
}
