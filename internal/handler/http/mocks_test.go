package http

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/models"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, credentials models.Credentials) error
	loginFn        func(ctx context.Context, credentials models.Credentials) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, credentials models.Credentials) error {
	return m.registerUserFn(ctx, credentials)
}

func (m *mockAuthService) Login(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	return m.loginFn(ctx, credentials)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// ─────────────────────────────────────────────
// Mock TaskService
// ─────────────────────────────────────────────

type mockTaskService struct {
	listTasksFn  func(ctx context.Context, username string) ([]models.Task, error)
	createTaskFn func(ctx context.Context, username string, task models.Task) (models.Task, error)
	updateTaskFn func(ctx context.Context, username string, taskID int64, update models.TaskUpdate) (models.Task, error)
	deleteTaskFn func(ctx context.Context, username string, taskID int64) error
}

func (m *mockTaskService) ListTasks(ctx context.Context, username string) ([]models.Task, error) {
	return m.listTasksFn(ctx, username)
}

func (m *mockTaskService) CreateTask(ctx context.Context, username string, task models.Task) (models.Task, error) {
	return m.createTaskFn(ctx, username, task)
}

func (m *mockTaskService) UpdateTask(ctx context.Context, username string, taskID int64, update models.TaskUpdate) (models.Task, error) {
	return m.updateTaskFn(ctx, username, taskID, update)
}

func (m *mockTaskService) DeleteTask(ctx context.Context, username string, taskID int64) error {
	return m.deleteTaskFn(ctx, username, taskID)
}

// ─────────────────────────────────────────────
// Mock AppInfoService
// ─────────────────────────────────────────────

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}
