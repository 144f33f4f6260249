package service

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/models"
)

type taskService struct {
	taskRepository store.TaskRepository

	logger *logger.Logger
}

func NewTaskService(taskRepository store.TaskRepository, logger *logger.Logger) TaskService {
	return &taskService{
		taskRepository: taskRepository,
		logger:         logger,
	}
}

func (s *taskService) ListTasks(ctx context.Context, username string) ([]models.Task, error) {
	return s.taskRepository.ListTasks(ctx, username)
}

// CreateTask stores task for username. A task without status starts as
// [models.StatusPending].
func (s *taskService) CreateTask(ctx context.Context, username string, task models.Task) (models.Task, error) {
	if task.Status == "" {
		task.Status = models.StatusPending
	}
	task.ID = 0

	return s.taskRepository.CreateTask(ctx, username, task)
}

func (s *taskService) UpdateTask(ctx context.Context, username string, taskID int64, update models.TaskUpdate) (models.Task, error) {
	return s.taskRepository.UpdateTask(ctx, username, taskID, update)
}

func (s *taskService) DeleteTask(ctx context.Context, username string, taskID int64) error {
	return s.taskRepository.DeleteTask(ctx, username, taskID)
}
