// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the task keeper server.
//
// The primary abstraction is [ServerAdapter], which decouples the command-line
// client from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the task
// keeper server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to the
// sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account. It does not log the user in.
	Register(ctx context.Context, credentials models.Credentials) error

	// Login authenticates the user, stores the returned session token via
	// SetToken and returns it.
	Login(ctx context.Context, credentials models.Credentials) (string, error)

	// ListTasks returns the caller's tasks in insertion order.
	ListTasks(ctx context.Context) ([]models.Task, error)

	// CreateTask appends a task and returns it with its assigned id.
	CreateTask(ctx context.Context, task models.Task) (models.Task, error)

	// UpdateTask merges the non-nil fields of update onto the task with
	// taskID and returns the merged task. A missing task yields [ErrNotFound].
	UpdateTask(ctx context.Context, taskID int64, update models.TaskUpdate) (models.Task, error)

	// DeleteTask removes the task with taskID. Deleting a missing task is not
	// an error.
	DeleteTask(ctx context.Context, taskID int64) error

	// Version returns the server application version.
	Version(ctx context.Context) (string, error)
}
