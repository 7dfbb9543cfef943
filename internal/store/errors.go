package store

import "errors"

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrSettingNotFound is returned when no row exists for the requested
	// config key or game setting.
	ErrSettingNotFound = errors.New("setting was not found")

	// ErrNilDatabase is returned when a repository is built without a
	// database connection.
	ErrNilDatabase = errors.New("database connection is nil")
)

// Low-level database operation errors, wrapped together with the driver
// error.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT or UPDATE fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when a result row cannot be scanned.
	ErrScanningRow = errors.New("failed to scan row")
)
