package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/validators"
	"github.com/MKhiriev/go-task-keeper/models"
)

// TaskValidationService rejects malformed task input before it reaches the
// wrapped TaskService. Every rejection wraps ErrInvalidDataProvided.
type TaskValidationService struct {
	inner     TaskService
	validator validators.Validator
}

func NewTaskValidationService() TaskServiceWrapper {
	return &TaskValidationService{
		validator: validators.NewTaskValidator(),
	}
}

func (v *TaskValidationService) ListTasks(ctx context.Context, username string) ([]models.Task, error) {
	return v.inner.ListTasks(ctx, username)
}

func (v *TaskValidationService) CreateTask(ctx context.Context, username string, task models.Task) (models.Task, error) {
	if err := v.validator.Validate(ctx, task, validators.FieldStatus); err != nil {
		logger.FromContext(ctx).Error().Err(err).Str("status", string(task.Status)).Msg("invalid task provided")
		return models.Task{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateTask(ctx, username, task)
}

func (v *TaskValidationService) UpdateTask(ctx context.Context, username string, taskID int64, update models.TaskUpdate) (models.Task, error) {
	if err := v.validateTaskID(ctx, taskID); err != nil {
		return models.Task{}, err
	}
	if err := v.validator.Validate(ctx, update, validators.FieldStatus); err != nil {
		logger.FromContext(ctx).Error().Err(err).Int64("task_id", taskID).Msg("invalid task update provided")
		return models.Task{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateTask(ctx, username, taskID, update)
}

// DeleteTask passes every id through: deleting an id that never existed,
// non-positive ones included, succeeds without changes.
func (v *TaskValidationService) DeleteTask(ctx context.Context, username string, taskID int64) error {
	return v.inner.DeleteTask(ctx, username, taskID)
}

func (v *TaskValidationService) Wrap(wrapper TaskService) TaskService {
	v.inner = wrapper
	return v
}

func (v *TaskValidationService) validateTaskID(ctx context.Context, taskID int64) error {
	if err := v.validator.Validate(ctx, models.Task{ID: taskID}, validators.FieldID); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}
