package store

import "errors"

// Sentinel errors returned by store methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrArchiveNotFound is returned when a restore is attempted but no
	// backup file exists at the configured path.
	ErrArchiveNotFound = errors.New("no backup file found")

	// ErrRecordNotSaved is returned when a catalog INSERT completes without
	// error but the number of affected rows is zero, indicating that no
	// record was actually persisted.
	ErrRecordNotSaved = errors.New("backup record was not saved")
)

// Low-level database operation errors. These are returned (or wrapped) by
// catalog methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan backup record rows")
)
