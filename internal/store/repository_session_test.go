package store

import (
	"context"
	"database/sql"
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

func newTestSessionRepo(t *testing.T) (*sessionRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t, migrations.DialectSQLite)
	return &sessionRepository{db: db, logger: logger.Nop()}, mock
}

var sessionRowColumns = []string{"user_id", "session_data", "created_at", "updated_at"}

func TestGetSession_DecodesState(t *testing.T) {
	repo, mock := newTestSessionRepo(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT user_id, session_data, created_at, updated_at FROM sessions WHERE user_id = \?`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(sessionRowColumns).
			AddRow(int64(7), `{"state":"deploy_github_url","workerName":"api"}`, now, now))

	session, err := repo.GetSession(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, models.DeployGithubURL{WorkerName: "api"}, session.State)
	assert.True(t, session.Active())
}

func TestGetSession_EmptyPayloadIsInactive(t *testing.T) {
	repo, mock := newTestSessionRepo(t)
	now := time.Now()

	mock.ExpectQuery(`FROM sessions`).
		WillReturnRows(sqlmock.NewRows(sessionRowColumns).AddRow(int64(7), `{}`, now, now))

	session, err := repo.GetSession(context.Background(), 7)
	require.NoError(t, err)
	assert.False(t, session.Active())
}

func TestGetSession_NotFound(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectQuery(`FROM sessions`).WillReturnError(sql.ErrNoRows)

	_, err := repo.GetSession(context.Background(), 7)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestGetSession_CorruptPayload(t *testing.T) {
	repo, mock := newTestSessionRepo(t)
	now := time.Now()

	mock.ExpectQuery(`FROM sessions`).
		WillReturnRows(sqlmock.NewRows(sessionRowColumns).AddRow(int64(7), `{"state":"flying"}`, now, now))

	_, err := repo.GetSession(context.Background(), 7)
	assert.ErrorIs(t, err, ErrDecodingSession)
	assert.ErrorIs(t, err, models.ErrUnknownSessionState)
}

func TestGetSession_QueryError(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectQuery(`FROM sessions`).WillReturnError(errors.New("boom"))

	_, err := repo.GetSession(context.Background(), 7)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestSetSession_UpsertsJSON(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectExec(`INSERT INTO sessions \(user_id,session_data\) VALUES \(\?,\?\) ON CONFLICT \(user_id\) DO UPDATE SET`).
		WithArgs(int64(7), `{"state":"waiting_account_id","tempToken":"secret-token-value-123"}`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SetSession(context.Background(), models.Session{
		UserID: 7,
		State:  models.WaitingAccountID{Token: "secret-token-value-123"},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetSession_ExecError(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectExec(`INSERT INTO sessions`).WillReturnError(errors.New("boom"))

	err := repo.SetSession(context.Background(), models.Session{UserID: 7, State: models.WaitingToken{}})
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestClearSession(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectExec(`DELETE FROM sessions WHERE user_id = \?`).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.ClearSession(context.Background(), 7))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClearSession_ExecError(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectExec(`DELETE FROM sessions`).WillReturnError(errors.New("boom"))

	assert.ErrorIs(t, repo.ClearSession(context.Background(), 7), ErrExecutingStatement)
}
