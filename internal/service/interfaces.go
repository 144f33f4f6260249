package service

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/models"
)

// AuthService registers accounts, verifies credentials and issues and
// verifies session tokens.
type AuthService interface {
	// RegisterUser stores a new account with a bcrypt hash of the password
	// and an empty task list.
	RegisterUser(ctx context.Context, credentials models.Credentials) error

	// Login verifies credentials and issues a signed session token.
	// Unknown usernames and wrong passwords yield the same error.
	Login(ctx context.Context, credentials models.Credentials) (models.Token, error)

	// ParseToken verifies a raw session token and returns it with the
	// username it was issued for.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// TaskService manages the task list of a single authenticated user.
// The username always comes from a verified session token.
type TaskService interface {
	ListTasks(ctx context.Context, username string) ([]models.Task, error)
	CreateTask(ctx context.Context, username string, task models.Task) (models.Task, error)
	UpdateTask(ctx context.Context, username string, taskID int64, update models.TaskUpdate) (models.Task, error)
	DeleteTask(ctx context.Context, username string, taskID int64) error
}

// TaskServiceWrapper defines middleware composition for TaskService.
// Implementations wrap an existing TaskService to add behavior such as
// logging or validating.
type TaskServiceWrapper interface {
	Wrap(TaskService) TaskService // returns a decorated TaskService applying additional behavior
}

// AppInfoService exposes static information about the running application.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
