package repository

import "errors"

// Common repository errors
var (
	// ErrEventNotFound is returned when an event does not exist or is not owned
	// by the requesting user. The two cases are deliberately indistinguishable.
	ErrEventNotFound = errors.New("event not found")

	// ErrTaskNotFound is returned when a task is not found
	ErrTaskNotFound = errors.New("task not found")
)
