package client

import "errors"

var (
	ErrNotLoggedIn     = errors.New("not logged in, run the login command first")
	ErrMissingTaskID   = errors.New("task id argument is required")
	ErrInvalidTaskID   = errors.New("task id must be a positive integer")
	ErrInvalidStatus   = errors.New(`status must be one of "Pending", "In Progress", "Completed"`)
	ErrNothingToUpdate = errors.New("at least one of --name, --description or --status is required")
)
