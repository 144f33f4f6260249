package validators

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldUsername targets the login name of a credentials pair.
	FieldUsername = "username"

	// FieldPassword targets the plain-text password of a credentials pair.
	FieldPassword = "password"

	// FieldID targets the repository-assigned task id.
	FieldID = "id"

	// FieldStatus targets the task status. An empty status is accepted and
	// later defaulted to [models.StatusPending].
	FieldStatus = "status"
)

// TaskValidator implements [Validator] for task and credential models:
// [models.Task], [models.TaskUpdate] and [models.Credentials], by value or
// by pointer.
type TaskValidator struct {
}

// NewTaskValidator constructs a new TaskValidator and returns it as the
// Validator interface.
func NewTaskValidator() Validator {
	return &TaskValidator{}
}

// Validate dispatches validation to the type-specific method. When fields
// is empty every rule applicable to the type is checked.
func (v *TaskValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Task:
		return v.validateTask(ctx, value, fields...)
	case *models.Task:
		return v.validateTask(ctx, *value, fields...)

	case models.TaskUpdate:
		return v.validateTaskUpdate(ctx, value, fields...)
	case *models.TaskUpdate:
		return v.validateTaskUpdate(ctx, *value, fields...)

	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *TaskValidator) validateTask(ctx context.Context, task models.Task, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldStatus}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if task.ID <= 0 {
				return ErrInvalidTaskID
			}
		case FieldStatus:
			if task.Status != "" && !task.Status.IsValid() {
				return ErrInvalidStatus
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *TaskValidator) validateTaskUpdate(ctx context.Context, update models.TaskUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldStatus}
	}

	for _, f := range fields {
		switch f {
		case FieldStatus:
			if update.Status != nil && !update.Status.IsValid() {
				return ErrInvalidStatus
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *TaskValidator) validateCredentials(ctx context.Context, credentials models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if credentials.Username == "" {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if credentials.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
