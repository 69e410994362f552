package repository

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrSnapshotNotFound is returned when no snapshot exists for the
	// requested (domain, actor) pair.
	ErrSnapshotNotFound = errors.New("snapshot was not found")

	// ErrSnapshotNotSaved is returned when an upsert completes without error
	// but the number of affected rows is zero, indicating that nothing was
	// actually persisted.
	ErrSnapshotNotSaved = errors.New("snapshot was not saved")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a result
	// row fails.
	ErrScanningRow = errors.New("failed to scan snapshot row")
)
