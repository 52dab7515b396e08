// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/szydag/taskdeck/internal/api"
	"github.com/szydag/taskdeck/internal/task"
)

// FakeService is an in-memory implementation of api.Service for tests. It
// plays the server's role, including id assignment, and records every call
// so tests can assert exactly which requests a screen issued.
type FakeService struct {
	mu    sync.Mutex
	tasks []task.Task

	// Recorded calls, in order.
	ListCalls   []task.Filter
	GetCalls    []string
	CreateCalls []task.Draft
	UpdateCalls []UpdateCall
	DeleteCalls []string

	// Error injection.
	ListErr   error
	GetErr    error
	CreateErr error
	UpdateErr error
	DeleteErr error
}

// UpdateCall records one UpdateTask invocation.
type UpdateCall struct {
	ID    string
	Draft task.Draft
}

// NewFakeService creates an empty fake.
func NewFakeService() *FakeService {
	return &FakeService{}
}

// AddTask seeds a task and returns its assigned id.
func (f *FakeService) AddTask(t task.Task) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	f.tasks = append(f.tasks, t)
	return t.ID
}

// Tasks returns a copy of the stored tasks.
func (f *FakeService) Tasks() []task.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]task.Task, len(f.tasks))
	copy(out, f.tasks)
	return out
}

// ListTasks implements api.Service.
func (f *FakeService) ListTasks(ctx context.Context, filter task.Filter) ([]task.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ListCalls = append(f.ListCalls, filter)
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	var out []task.Task
	for _, t := range f.tasks {
		if filter.Matches(t) {
			out = append(out, t)
		}
	}
	return out, nil
}

// GetTask implements api.Service.
func (f *FakeService) GetTask(ctx context.Context, id string) (task.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.GetCalls = append(f.GetCalls, id)
	if f.GetErr != nil {
		return task.Task{}, f.GetErr
	}
	for _, t := range f.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return task.Task{}, api.ErrNotFound
}

// CreateTask implements api.Service.
func (f *FakeService) CreateTask(ctx context.Context, d task.Draft) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.CreateCalls = append(f.CreateCalls, d)
	if f.CreateErr != nil {
		return "", f.CreateErr
	}
	t := task.Task{
		ID:     uuid.NewString(),
		Title:  d.TitleValue(),
		Status: d.StatusValue(),
	}
	if d.Description != nil {
		t.Description = *d.Description
	}
	if d.DueDate != nil {
		t.DueDate = *d.DueDate
	}
	f.tasks = append(f.tasks, t)
	return t.ID, nil
}

// UpdateTask implements api.Service.
func (f *FakeService) UpdateTask(ctx context.Context, id string, d task.Draft) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.UpdateCalls = append(f.UpdateCalls, UpdateCall{ID: id, Draft: d})
	if f.UpdateErr != nil {
		return f.UpdateErr
	}
	for i := range f.tasks {
		if f.tasks[i].ID != id {
			continue
		}
		if d.Title != nil {
			f.tasks[i].Title = *d.Title
		}
		if d.Description != nil {
			f.tasks[i].Description = *d.Description
		}
		if d.DueDate != nil {
			f.tasks[i].DueDate = *d.DueDate
		}
		if d.Status != nil {
			f.tasks[i].Status = *d.Status
		}
		return nil
	}
	return api.ErrUpdateFailed
}

// DeleteTask implements api.Service.
func (f *FakeService) DeleteTask(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.DeleteCalls = append(f.DeleteCalls, id)
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return api.ErrDeleteFailed
}
