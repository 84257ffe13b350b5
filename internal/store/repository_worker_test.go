package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-workers-bot/internal/logger"
	"github.com/MKhiriev/go-workers-bot/migrations"
	"github.com/MKhiriev/go-workers-bot/models"
)

var workerRowColumns = []string{
	"id", "user_id", "worker_name", "worker_url", "subdomain", "script_content", "created_at", "updated_at",
}

func newTestWorkerRepo(t *testing.T) (*workerRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t, migrations.DialectSQLite)
	return &workerRepository{db: db, logger: logger.Nop()}, mock
}

func testWorker() models.Worker {
	return models.Worker{
		UserID:        7,
		Name:          "api",
		URL:           "https://api.acc.workers.dev",
		Subdomain:     "acc",
		ScriptContent: "export default {}",
	}
}

func TestListWorkers_NewestFirst(t *testing.T) {
	repo, mock := newTestWorkerRepo(t)

	older := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := older.Add(time.Hour)
	rows := sqlmock.NewRows(workerRowColumns).
		AddRow(int64(2), int64(7), "b", "https://b.acc.workers.dev", "acc", "", newer, newer).
		AddRow(int64(1), int64(7), "a", "https://a.acc.workers.dev", "acc", "", older, older)

	mock.ExpectQuery(`SELECT (.+) FROM workers WHERE user_id = \? ORDER BY created_at DESC, id DESC`).
		WithArgs(int64(7)).
		WillReturnRows(rows)

	workers, err := repo.ListWorkers(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, workers, 2)
	assert.Equal(t, "b", workers[0].Name)
	assert.Equal(t, "a", workers[1].Name)
}

func TestListWorkers_Empty(t *testing.T) {
	repo, mock := newTestWorkerRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM workers`).WillReturnRows(sqlmock.NewRows(workerRowColumns))

	workers, err := repo.ListWorkers(context.Background(), 7)
	require.NoError(t, err)
	assert.NotNil(t, workers)
	assert.Empty(t, workers)
}

func TestListWorkers_Errors(t *testing.T) {
	t.Run("query", func(t *testing.T) {
		repo, mock := newTestWorkerRepo(t)
		mock.ExpectQuery(`SELECT (.+) FROM workers`).WillReturnError(errors.New("boom"))

		_, err := repo.ListWorkers(context.Background(), 7)
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})

	t.Run("scan", func(t *testing.T) {
		repo, mock := newTestWorkerRepo(t)
		mock.ExpectQuery(`SELECT (.+) FROM workers`).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

		_, err := repo.ListWorkers(context.Background(), 7)
		assert.ErrorIs(t, err, ErrScanningRow)
	})

	t.Run("rows", func(t *testing.T) {
		repo, mock := newTestWorkerRepo(t)
		now := time.Now()
		rows := sqlmock.NewRows(workerRowColumns).
			AddRow(int64(1), int64(7), "a", "", "", "", now, now).
			RowError(0, errors.New("broken pipe"))
		mock.ExpectQuery(`SELECT (.+) FROM workers`).WillReturnRows(rows)

		_, err := repo.ListWorkers(context.Background(), 7)
		assert.ErrorIs(t, err, ErrScanningRows)
	})
}

func TestCreateWorker_ReplacesByNameInTransaction(t *testing.T) {
	repo, mock := newTestWorkerRepo(t)
	worker := testWorker()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM workers WHERE \(?user_id = \? AND worker_name = \?\)?`).
		WithArgs(int64(7), "api").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO workers \(user_id,worker_name,worker_url,subdomain,script_content\) VALUES \(\?,\?,\?,\?,\?\) RETURNING id`).
		WithArgs(int64(7), "api", worker.URL, "acc", worker.ScriptContent).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))
	mock.ExpectCommit()

	id, err := repo.CreateWorker(context.Background(), worker)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateWorker_RollsBackOnInsertError(t *testing.T) {
	repo, mock := newTestWorkerRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM workers`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`INSERT INTO workers`).WillReturnError(errors.New("constraint failed"))
	mock.ExpectRollback()

	_, err := repo.CreateWorker(context.Background(), testWorker())
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateWorker_BeginError(t *testing.T) {
	repo, mock := newTestWorkerRepo(t)

	mock.ExpectBegin().WillReturnError(errors.New("locked"))

	_, err := repo.CreateWorker(context.Background(), testWorker())
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestCreateWorker_CommitError(t *testing.T) {
	repo, mock := newTestWorkerRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM workers`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`INSERT INTO workers`).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
	mock.ExpectCommit().WillReturnError(errors.New("io error"))

	_, err := repo.CreateWorker(context.Background(), testWorker())
	assert.ErrorIs(t, err, ErrCommitingTransaction)
}

func TestDeleteWorkerByName(t *testing.T) {
	repo, mock := newTestWorkerRepo(t)

	mock.ExpectExec(`DELETE FROM workers WHERE \(?user_id = \? AND worker_name = \?\)?`).
		WithArgs(int64(7), "api").
		WillReturnResult(sqlmock.NewResult(0, 1))

	removed, err := repo.DeleteWorkerByName(context.Background(), 7, "api")
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)
}

func TestDeleteWorkerByName_ExecError(t *testing.T) {
	repo, mock := newTestWorkerRepo(t)

	mock.ExpectExec(`DELETE FROM workers`).WillReturnError(errors.New("boom"))

	_, err := repo.DeleteWorkerByName(context.Background(), 7, "api")
	assert.ErrorIs(t, err, ErrExecutingStatement)
}
