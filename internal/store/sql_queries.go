package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-workers-bot/models"
)

const sessionsTable = "sessions"

var (
	usersTable   = models.User{}.TableName()
	workersTable = models.Worker{}.TableName()
)

var userColumns = []string{
	"user_id",
	"username",
	"first_name",
	"last_name",
	"cloudflare_token",
	"cloudflare_account_id",
	"is_active",
	"created_at",
	"updated_at",
}

var workerColumns = []string{
	"id",
	"user_id",
	"worker_name",
	"worker_url",
	"subdomain",
	"script_content",
	"created_at",
	"updated_at",
}

// ON CONFLICT ... DO UPDATE is understood by PostgreSQL and SQLite >= 3.24.
const (
	upsertUserSuffix = `ON CONFLICT (user_id) DO UPDATE SET
		username = excluded.username,
		first_name = excluded.first_name,
		last_name = excluded.last_name,
		is_active = excluded.is_active,
		updated_at = CURRENT_TIMESTAMP`

	upsertSessionSuffix = `ON CONFLICT (user_id) DO UPDATE SET
		session_data = excluded.session_data,
		updated_at = CURRENT_TIMESTAMP`
)

func buildGetUserQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

// buildUpsertUserQuery never touches the credential columns, so a repeated
// /start keeps a stored credential.
func buildUpsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns("user_id", "username", "first_name", "last_name", "is_active").
		Values(user.UserID, user.Username, user.FirstName, user.LastName, user.IsActive).
		Suffix(upsertUserSuffix).
		ToSql()
}

func buildSetCredentialQuery(b sq.StatementBuilderType, userID int64, credential models.Credential) (string, []any, error) {
	return b.Update(usersTable).
		Set("cloudflare_token", credential.Token).
		Set("cloudflare_account_id", credential.AccountID).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildListWorkersQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select(workerColumns...).
		From(workersTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
}

func buildInsertWorkerQuery(b sq.StatementBuilderType, worker models.Worker) (string, []any, error) {
	return b.Insert(workersTable).
		Columns("user_id", "worker_name", "worker_url", "subdomain", "script_content").
		Values(worker.UserID, worker.Name, worker.URL, worker.Subdomain, worker.ScriptContent).
		Suffix("RETURNING id").
		ToSql()
}

func buildDeleteWorkerQuery(b sq.StatementBuilderType, userID int64, name string) (string, []any, error) {
	return b.Delete(workersTable).
		Where(sq.Eq{"user_id": userID, "worker_name": name}).
		ToSql()
}

func buildGetSessionQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select("user_id", "session_data", "created_at", "updated_at").
		From(sessionsTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildSetSessionQuery(b sq.StatementBuilderType, userID int64, data []byte) (string, []any, error) {
	return b.Insert(sessionsTable).
		Columns("user_id", "session_data").
		Values(userID, string(data)).
		Suffix(upsertSessionSuffix).
		ToSql()
}

func buildClearSessionQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Delete(sessionsTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}
