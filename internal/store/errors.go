package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when no profile exists for the requested
	// user id, i.e. /start was never processed for that identity.
	ErrUserNotFound = errors.New("user not found")

	// ErrSessionNotFound is returned when the user has no session record.
	// Callers treat it as "no flow in progress".
	ErrSessionNotFound = errors.New("session not found")

	// ErrWorkerNotSaved is returned when the INSERT of a worker record
	// completes without returning the new row id.
	ErrWorkerNotSaved = errors.New("worker record was not saved")

	// ErrUnsupportedDSN is returned when the configured DSN cannot be
	// mapped to a known SQL driver.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingSession and ErrDecodingSession wrap failures of the
	// session JSON codec.
	ErrEncodingSession = errors.New("failed to encode session")
	ErrDecodingSession = errors.New("failed to decode session")
)
