// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TaskStatus is the lifecycle state of a [Task].
type TaskStatus string

const (
	// StatusPending marks a task that has not been started yet.
	// It is assigned on creation when the client does not provide a status.
	StatusPending TaskStatus = "Pending"

	// StatusInProgress marks a task that is currently being worked on.
	StatusInProgress TaskStatus = "In Progress"

	// StatusCompleted marks a finished task.
	StatusCompleted TaskStatus = "Completed"
)

// IsValid reports whether s is one of the known task statuses.
func (s TaskStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Task is a single entry of a user's task list.
//
// Tasks are owned exclusively by the [User] whose Tasks slice contains them.
// ID is assigned by the task repository and is unique only within the owning
// user's list.
type Task struct {
	// ID is the per-user identifier assigned on creation.
	ID int64 `json:"id"`

	// Name is the short title of the task.
	Name string `json:"name"`

	// Description holds free-form details.
	Description string `json:"description"`

	// Status is one of [StatusPending], [StatusInProgress] or [StatusCompleted].
	Status TaskStatus `json:"status"`
}

// TaskInput is the body of a create request. It has no id, so any "id" in
// the body is ignored whatever its JSON type.
type TaskInput struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
}

// Task converts the input into a [Task] without an id.
func (in TaskInput) Task() Task {
	return Task{
		Name:        in.Name,
		Description: in.Description,
		Status:      in.Status,
	}
}

// TaskUpdate describes a partial update of a [Task].
// Only non-nil fields are merged onto the stored task (partial update support).
// Any "id" supplied in the request body is not part of this type and is
// therefore ignored.
type TaskUpdate struct {
	// Name replaces the task name when non-nil.
	Name *string `json:"name,omitempty"`

	// Description replaces the task description when non-nil.
	Description *string `json:"description,omitempty"`

	// Status replaces the task status when non-nil.
	Status *TaskStatus `json:"status,omitempty"`
}

// IsEmpty reports whether the update carries no fields at all.
func (u TaskUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.Status == nil
}

// Apply merges the non-nil fields of u onto task and returns the result.
// The task ID is never changed.
func (u TaskUpdate) Apply(task Task) Task {
	if u.Name != nil {
		task.Name = *u.Name
	}
	if u.Description != nil {
		task.Description = *u.Description
	}
	if u.Status != nil {
		task.Status = *u.Status
	}
	return task
}
