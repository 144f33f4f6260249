package store

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SnapshotStorage persists the complete credential store state as a single
// snapshot. Save replaces any previous snapshot wholesale.
//
// Load returns [ErrSnapshotNotFound] when nothing has been saved yet and
// [ErrMalformedSnapshot] when the stored content cannot be decoded.
type SnapshotStorage interface {
	Load(ctx context.Context) (models.Snapshot, error)
	Save(ctx context.Context, snapshot models.Snapshot) error
	Close() error
}

// UserRepository is the credential store: an in-memory username → user map
// mirrored to a [SnapshotStorage] on every mutation.
type UserRepository interface {
	// Load replaces the in-memory state with the stored snapshot.
	Load(ctx context.Context) error
	// CreateUser adds a new user; [ErrUserAlreadyExists] if the username is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByUsername returns a copy of the stored user or [ErrNoUserWasFound].
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	// UpdateUser applies fn to a copy of the stored user and persists the
	// result. Nothing changes if fn returns an error or the save fails.
	UpdateUser(ctx context.Context, username string, fn func(user *models.User) error) error
}

// TaskRepository manages the task list of a single user. Every method is
// scoped by the username resolved from the session token.
type TaskRepository interface {
	ListTasks(ctx context.Context, username string) ([]models.Task, error)
	CreateTask(ctx context.Context, username string, task models.Task) (models.Task, error)
	UpdateTask(ctx context.Context, username string, taskID int64, update models.TaskUpdate) (models.Task, error)
	DeleteTask(ctx context.Context, username string, taskID int64) error
}
