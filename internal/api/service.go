// Package api talks to the remote task REST endpoint.
package api

import (
	"context"
	"errors"

	"github.com/szydag/taskdeck/internal/task"
)

// Sentinel errors for non-success HTTP statuses. Transport errors are
// wrapped and carried alongside these.
var (
	ErrNotFound     = errors.New("task not found")
	ErrCreateFailed = errors.New("create failed")
	ErrUpdateFailed = errors.New("update failed")
	ErrDeleteFailed = errors.New("delete failed")
)

// Service defines the backend operations the screens depend on. Screens
// never import the HTTP client directly; tests substitute an in-memory
// implementation.
type Service interface {
	// ListTasks returns the filtered collection. No partial result is
	// returned on failure.
	ListTasks(ctx context.Context, f task.Filter) ([]task.Task, error)

	// GetTask fetches a single task by id. Returns ErrNotFound when the
	// response is not successful.
	GetTask(ctx context.Context, id string) (task.Task, error)

	// CreateTask creates a task from the draft and returns the
	// server-assigned id. Anything but a created status is a failure.
	CreateTask(ctx context.Context, d task.Draft) (string, error)

	// UpdateTask sends only the fields set on the draft.
	UpdateTask(ctx context.Context, id string, d task.Draft) error

	// DeleteTask deletes a task. Anything but a no-content status is a
	// failure.
	DeleteTask(ctx context.Context, id string) error
}
