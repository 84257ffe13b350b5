package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-workers-bot/internal/config"
	"github.com/MKhiriev/go-workers-bot/internal/logger"
	"github.com/MKhiriev/go-workers-bot/models"
)

// ── sqlite-backed storages ────────────────────────────────────────────────────

func newSQLiteStorages(t *testing.T, boltPath string) *Storages {
	t.Helper()
	cfg := config.Storage{
		DB:       config.DB{DSN: filepath.Join(t.TempDir(), "data", "users.db")},
		Sessions: config.Sessions{BoltPath: boltPath},
	}
	storages, err := NewStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })
	return storages
}

func TestStorages_UserLifecycle(t *testing.T) {
	s := newSQLiteStorages(t, "")
	ctx := context.Background()

	_, err := s.UserRepository.GetUser(ctx, 7)
	require.ErrorIs(t, err, ErrUserNotFound)

	require.NoError(t, s.UserRepository.UpsertUser(ctx, models.User{UserID: 7, Username: "alice", IsActive: true}))
	require.NoError(t, s.UserRepository.SetCredential(ctx, 7, models.Credential{Token: "tok", AccountID: "acc"}))

	// a repeated /start refreshes identity fields and keeps the credential
	require.NoError(t, s.UserRepository.UpsertUser(ctx, models.User{UserID: 7, Username: "alice2", IsActive: true}))

	user, err := s.UserRepository.GetUser(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "alice2", user.Username)
	assert.True(t, user.HasCredential())
	assert.Equal(t, models.Credential{Token: "tok", AccountID: "acc"}, user.Credential())

	assert.ErrorIs(t, s.UserRepository.SetCredential(ctx, 8, models.Credential{Token: "x", AccountID: "y"}), ErrUserNotFound)
}

func TestStorages_WorkerReplaceAndDelete(t *testing.T) {
	s := newSQLiteStorages(t, "")
	ctx := context.Background()

	require.NoError(t, s.UserRepository.UpsertUser(ctx, models.User{UserID: 7, IsActive: true}))

	first, err := s.WorkerRepository.CreateWorker(ctx, models.Worker{UserID: 7, Name: "api", ScriptContent: "v1"})
	require.NoError(t, err)
	second, err := s.WorkerRepository.CreateWorker(ctx, models.Worker{UserID: 7, Name: "api", ScriptContent: "v2"})
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	_, err = s.WorkerRepository.CreateWorker(ctx, models.Worker{UserID: 7, Name: "web", ScriptContent: "w"})
	require.NoError(t, err)

	workers, err := s.WorkerRepository.ListWorkers(ctx, 7)
	require.NoError(t, err)
	require.Len(t, workers, 2)
	assert.Equal(t, "web", workers[0].Name)
	assert.Equal(t, "api", workers[1].Name)
	assert.Equal(t, "v2", workers[1].ScriptContent)

	removed, err := s.WorkerRepository.DeleteWorkerByName(ctx, 7, "api")
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	removed, err = s.WorkerRepository.DeleteWorkerByName(ctx, 7, "api")
	require.NoError(t, err)
	assert.Zero(t, removed)
}

// Session isolation holds for both session backends.
func TestStorages_SessionIsolation(t *testing.T) {
	backends := map[string]string{
		"sql":  "",
		"bolt": filepath.Join(t.TempDir(), "sessions.db"),
	}

	for name, boltPath := range backends {
		t.Run(name, func(t *testing.T) {
			s := newSQLiteStorages(t, boltPath)
			ctx := context.Background()
			sessions := s.SessionRepository

			require.NoError(t, sessions.SetSession(ctx, models.Session{UserID: 1, State: models.WaitingAccountID{Token: "one"}}))
			require.NoError(t, sessions.SetSession(ctx, models.Session{UserID: 2, State: models.DeployGithubURL{WorkerName: "two"}}))

			require.NoError(t, sessions.SetSession(ctx, models.Session{UserID: 1, State: models.DeployNautikaName{}}))
			require.NoError(t, sessions.ClearSession(ctx, 1))

			_, err := sessions.GetSession(ctx, 1)
			assert.ErrorIs(t, err, ErrSessionNotFound)

			other, err := sessions.GetSession(ctx, 2)
			require.NoError(t, err)
			assert.Equal(t, models.DeployGithubURL{WorkerName: "two"}, other.State)
		})
	}
}

func TestNewConnect_SelectsDialect(t *testing.T) {
	assert.True(t, isPostgresDSN("postgres://user@localhost/db"))
	assert.True(t, isPostgresDSN("postgresql://user@localhost/db"))
	assert.False(t, isPostgresDSN("./data/users.db"))

	assert.Equal(t, "./bot.db?"+sqliteConnParams, sqliteConnString("./bot.db"))
	assert.Equal(t, "file:bot.db?mode=rwc", sqliteConnString("file:bot.db?mode=rwc"))
}
