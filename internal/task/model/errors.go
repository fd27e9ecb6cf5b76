package model

import "errors"

var (
	// ErrTaskNotFound indicates that the task does not exist or is not owned by the caller.
	ErrTaskNotFound = errors.New("task not found")
	// ErrInvalidTask indicates a task or subtask payload that fails validation.
	ErrInvalidTask = errors.New("invalid task")
	// ErrNestedSubtask indicates an attempt to attach a subtask to a subtask.
	ErrNestedSubtask = errors.New("subtasks cannot have subtasks")
)
