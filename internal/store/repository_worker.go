package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-workers-bot/internal/logger"
	"github.com/MKhiriev/go-workers-bot/models"
)

// workerRepository is the SQL implementation of [WorkerRepository] over the
// "workers" table.
type workerRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewWorkerRepository(db *DB, logger *logger.Logger) WorkerRepository {
	logger.Debug().Msg("creating worker repository")
	return &workerRepository{
		db:     db,
		logger: logger,
	}
}

// ListWorkers returns the worker records of userID, newest first. An empty
// slice is returned when the user has none.
func (r *workerRepository) ListWorkers(ctx context.Context, userID int64) ([]models.Worker, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListWorkersQuery(r.db.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "*workerRepository.ListWorkers").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*workerRepository.ListWorkers").
			Int64("user_id", userID).
			Bool("retryable", r.db.retryable(err)).
			Msg("failed to execute query for listing workers")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	workers := make([]models.Worker, 0, 8)
	for rows.Next() {
		var worker models.Worker
		if err := rows.Scan(
			&worker.ID,
			&worker.UserID,
			&worker.Name,
			&worker.URL,
			&worker.Subdomain,
			&worker.ScriptContent,
			&worker.CreatedAt,
			&worker.UpdatedAt,
		); err != nil {
			log.Err(err).Str("func", "*workerRepository.ListWorkers").Int64("user_id", userID).Msg("failed to scan worker row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		workers = append(workers, worker)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*workerRepository.ListWorkers").Int64("user_id", userID).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return workers, nil
}

// CreateWorker replaces any record named worker.Name of the same user and
// inserts worker, both inside one transaction.
func (r *workerRepository) CreateWorker(ctx context.Context, worker models.Worker) (int64, error) {
	log := logger.FromContext(ctx)

	deleteQuery, deleteArgs, err := buildDeleteWorkerQuery(r.db.builder, worker.UserID, worker.Name)
	if err != nil {
		log.Err(err).Str("func", "*workerRepository.CreateWorker").Msg("failed to create delete query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	insertQuery, insertArgs, err := buildInsertWorkerQuery(r.db.builder, worker)
	if err != nil {
		log.Err(err).Str("func", "*workerRepository.CreateWorker").Msg("failed to create insert query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*workerRepository.CreateWorker").Msg("failed to begin transaction")
		return 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		log.Err(err).
			Str("func", "*workerRepository.CreateWorker").
			Str("worker_name", worker.Name).
			Bool("retryable", r.db.retryable(err)).
			Msg("failed to remove previous record")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	var id int64
	if err := tx.QueryRowContext(ctx, insertQuery, insertArgs...).Scan(&id); err != nil {
		log.Err(err).
			Str("func", "*workerRepository.CreateWorker").
			Str("worker_name", worker.Name).
			Bool("retryable", r.db.retryable(err)).
			Msg("failed to insert worker record")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if id == 0 {
		return 0, ErrWorkerNotSaved
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*workerRepository.CreateWorker").Msg("failed to commit transaction")
		return 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Info().
		Str("func", "*workerRepository.CreateWorker").
		Int64("user_id", worker.UserID).
		Str("worker_name", worker.Name).
		Int64("id", id).
		Msg("worker record saved")

	return id, nil
}

func (r *workerRepository) DeleteWorkerByName(ctx context.Context, userID int64, name string) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteWorkerQuery(r.db.builder, userID, name)
	if err != nil {
		log.Err(err).Str("func", "*workerRepository.DeleteWorkerByName").Msg("failed to create query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*workerRepository.DeleteWorkerByName").
			Int64("user_id", userID).
			Str("worker_name", name).
			Bool("retryable", r.db.retryable(err)).
			Msg("failed to delete worker record")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}
