package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MKhiriev/go-workers-bot/internal/logger"
	"github.com/MKhiriev/go-workers-bot/migrations"
	"github.com/MKhiriev/go-workers-bot/models"
)

func newTestDB(t *testing.T, dialect string) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	classificator := ErrorClassificator(NewSQLiteErrorClassifier())
	if dialect == migrations.DialectPostgres {
		classificator = NewPostgresErrorClassifier()
	}
	return newDB(conn, dialect, classificator, logger.Nop()), mock
}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t, migrations.DialectPostgres)
	return &userRepository{db: db, logger: logger.Nop()}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var userRowColumns = []string{
	"user_id", "username", "first_name", "last_name",
	"cloudflare_token", "cloudflare_account_id", "is_active", "created_at", "updated_at",
}

func TestGetUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	now := time.Now()
	rows := sqlmock.NewRows(userRowColumns).
		AddRow(int64(7), "alice", "Alice", "", "cf-token-0123456789abc", "acc-1", true, now, now)

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE user_id = \$1`).
		WithArgs(int64(7)).
		WillReturnRows(rows)

	user, err := repo.GetUser(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Username != "alice" || !user.HasCredential() {
		t.Errorf("unexpected user: %+v", user)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestGetUser_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM users`).
		WithArgs(int64(7)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetUser(context.Background(), 7)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestGetUser_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM users`).
		WillReturnError(pgError(pgerrcode.ConnectionFailure))

	_, err := repo.GetUser(context.Background(), 7)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestGetUser_ScanError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	// intentionally wrong shape → scan error
	rows := sqlmock.NewRows([]string{"user_id"}).AddRow(1)
	mock.ExpectQuery(`SELECT (.+) FROM users`).WillReturnRows(rows)

	_, err := repo.GetUser(context.Background(), 7)
	if err == nil {
		t.Fatal("expected scan error, got nil")
	}
}

func TestUpsertUser_DoesNotWriteCredential(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	user := models.User{UserID: 7, Username: "alice", FirstName: "Alice", IsActive: true}

	mock.ExpectExec(`INSERT INTO users \(user_id,username,first_name,last_name,is_active\) VALUES \(\$1,\$2,\$3,\$4,\$5\) ON CONFLICT \(user_id\) DO UPDATE SET`).
		WithArgs(int64(7), "alice", "Alice", "", true).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpsertUser(context.Background(), user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestUpsertUser_ExecError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec(`INSERT INTO users`).WillReturnError(errors.New("disk full"))

	err := repo.UpsertUser(context.Background(), models.User{UserID: 7})
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}

func TestSetCredential_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec(`UPDATE users SET cloudflare_token = \$1, cloudflare_account_id = \$2, updated_at = CURRENT_TIMESTAMP WHERE user_id = \$3`).
		WithArgs("tok", "acc", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SetCredential(context.Background(), 7, models.Credential{Token: "tok", AccountID: "acc"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSetCredential_NoProfile(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec(`UPDATE users`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetCredential(context.Background(), 7, models.Credential{Token: "tok", AccountID: "acc"})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestSetCredential_ExecError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec(`UPDATE users`).WillReturnError(pgError(pgerrcode.DeadlockDetected))

	err := repo.SetCredential(context.Background(), 7, models.Credential{})
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}
