package store

import (
	"context"
	"slices"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/models"
)

// taskRepository implements [TaskRepository] on top of the credential store:
// tasks live inside their owner's user record and every change is persisted
// through [UserRepository.UpdateUser].
type taskRepository struct {
	users  UserRepository
	logger *logger.Logger
}

func NewTaskRepository(users UserRepository, logger *logger.Logger) TaskRepository {
	logger.Debug().Msg("creating task repository")
	return &taskRepository{
		users:  users,
		logger: logger,
	}
}

// ListTasks returns the user's tasks in insertion order; never nil.
func (r *taskRepository) ListTasks(ctx context.Context, username string) ([]models.Task, error) {
	user, err := r.users.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if user.Tasks == nil {
		return []models.Task{}, nil
	}
	return user.Tasks, nil
}

// CreateTask appends task under a freshly assigned id. Any id carried by
// task is discarded.
func (r *taskRepository) CreateTask(ctx context.Context, username string, task models.Task) (models.Task, error) {
	var created models.Task

	err := r.users.UpdateUser(ctx, username, func(user *models.User) error {
		if user.NextTaskID < 1 {
			user.NextTaskID = 1
		}

		task.ID = user.NextTaskID
		user.NextTaskID++
		user.Tasks = append(user.Tasks, task)
		created = task

		return nil
	})
	if err != nil {
		return models.Task{}, err
	}

	logger.FromContext(ctx).Debug().Str("username", username).Int64("task_id", created.ID).Msg("task created")
	return created, nil
}

// UpdateTask merges update onto the task with taskID. [ErrTaskNotFound] is
// returned, and nothing is saved, when the user has no such task.
func (r *taskRepository) UpdateTask(ctx context.Context, username string, taskID int64, update models.TaskUpdate) (models.Task, error) {
	var updated models.Task

	err := r.users.UpdateUser(ctx, username, func(user *models.User) error {
		idx := slices.IndexFunc(user.Tasks, func(t models.Task) bool { return t.ID == taskID })
		if idx < 0 {
			return ErrTaskNotFound
		}

		user.Tasks[idx] = update.Apply(user.Tasks[idx])
		updated = user.Tasks[idx]

		return nil
	})
	if err != nil {
		return models.Task{}, err
	}

	return updated, nil
}

// DeleteTask removes the task with taskID. Deleting an id that does not
// exist succeeds and leaves the list unchanged.
func (r *taskRepository) DeleteTask(ctx context.Context, username string, taskID int64) error {
	return r.users.UpdateUser(ctx, username, func(user *models.User) error {
		user.Tasks = slices.DeleteFunc(user.Tasks, func(t models.Task) bool { return t.ID == taskID })
		return nil
	})
}
