package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same username already exists.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrNoUserWasFound is returned when a lookup by username matches no user.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrTaskNotFound is returned when an update targets a task id that does
	// not exist in the user's task list.
	ErrTaskNotFound = errors.New("task was not found")

	// ErrSnapshotNotFound is returned by [SnapshotStorage.Load] when no
	// snapshot has been written yet (missing file or missing row).
	ErrSnapshotNotFound = errors.New("snapshot not found")

	// ErrMalformedSnapshot is returned by [SnapshotStorage.Load] when the
	// stored snapshot cannot be decoded.
	ErrMalformedSnapshot = errors.New("malformed snapshot")

	// ErrPersistence is returned by mutating repository methods when the new
	// state could not be written. The in-memory state is left unchanged.
	ErrPersistence = errors.New("failed to persist snapshot")

	// ErrStoreNotLoaded is returned when a repository is used before its
	// snapshot has been loaded.
	ErrStoreNotLoaded = errors.New("credential store is not loaded")
)

// Low-level database operation errors. These are returned (or wrapped) by
// the SQL snapshot storage when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or UPDATE
	// statement fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrUnknownDriver is returned by [NewStorages] for an unsupported
	// storage driver name.
	ErrUnknownDriver = errors.New("unknown storage driver")
)
