package task

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrEmptyTitle is returned when a draft fails title validation.
var ErrEmptyTitle = errors.New("title must not be empty")

// Task represents a single task as exchanged with the API.
type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	DueDate     string `json:"dueDate,omitempty"`
	Status      bool   `json:"status"`
}

// IsZero returns true if the task is empty (has no ID).
func (t *Task) IsZero() bool {
	return t.ID == ""
}

// Draft is the screen-local, not-yet-submitted copy of a task under edit.
// Unset fields are omitted from the JSON body, so a partial update carries
// only the fields being changed.
type Draft struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	DueDate     *string `json:"dueDate,omitempty"`
	Status      *bool   `json:"status,omitempty"`
}

// NewDraft returns an empty draft for the add flow.
func NewDraft() Draft {
	return Draft{}
}

// DraftOf builds a draft from a fetched task for the edit flow. Title and
// status are always set; description and due date only when the task
// carries them.
func DraftOf(t Task) Draft {
	d := Draft{}
	d.SetTitle(t.Title)
	d.SetStatus(t.Status)
	if t.Description != "" {
		d.SetDescription(t.Description)
	}
	if t.DueDate != "" {
		d.SetDueDate(t.DueDate)
	}
	return d
}

// SetTitle sets the draft title.
func (d *Draft) SetTitle(s string) { d.Title = &s }

// SetDescription sets the draft description.
func (d *Draft) SetDescription(s string) { d.Description = &s }

// SetDueDate sets the draft due date to an ISO-8601 string.
func (d *Draft) SetDueDate(s string) { d.DueDate = &s }

// SetStatus sets the draft completion flag.
func (d *Draft) SetStatus(v bool) { d.Status = &v }

// TitleValue returns the draft title or "" when unset.
func (d Draft) TitleValue() string {
	if d.Title == nil {
		return ""
	}
	return *d.Title
}

// StatusValue returns the draft completion flag, defaulting to false.
func (d Draft) StatusValue() bool {
	if d.Status == nil {
		return false
	}
	return *d.Status
}

// Validate checks the draft against the client-side invariants. It returns
// ErrEmptyTitle when the trimmed title is empty or unset.
func (d Draft) Validate() error {
	if strings.TrimSpace(d.TitleValue()) == "" {
		return ErrEmptyTitle
	}
	return nil
}

// Filter is the list view predicate, translated to a status query parameter.
type Filter string

const (
	FilterAll     Filter = "all"
	FilterPending Filter = "pending"
	FilterDone    Filter = "done"
)

// Query returns the status query parameter for the filter. ok is false for
// FilterAll, which applies no filtering.
func (f Filter) Query() (key, value string, ok bool) {
	switch f {
	case FilterPending:
		return "status", "false", true
	case FilterDone:
		return "status", "true", true
	default:
		return "", "", false
	}
}

// Next cycles all -> pending -> done -> all.
func (f Filter) Next() Filter {
	switch f {
	case FilterAll:
		return FilterPending
	case FilterPending:
		return FilterDone
	default:
		return FilterAll
	}
}

// ParseFilter parses a filter name from config or a CLI flag.
func ParseFilter(s string) (Filter, error) {
	switch Filter(strings.ToLower(strings.TrimSpace(s))) {
	case FilterAll, Filter(""):
		return FilterAll, nil
	case FilterPending:
		return FilterPending, nil
	case FilterDone:
		return FilterDone, nil
	default:
		return "", fmt.Errorf("invalid filter %q, must be one of: all, pending, done", s)
	}
}

// Matches reports whether the task satisfies the filter.
func (f Filter) Matches(t Task) bool {
	switch f {
	case FilterPending:
		return !t.Status
	case FilterDone:
		return t.Status
	default:
		return true
	}
}

// Date layouts accepted when editing a due date. The stored form is always
// RFC 3339.
var dueDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDueDate parses a user-entered due date and returns its RFC 3339 form.
func ParseDueDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errors.New("empty due date")
	}
	for _, layout := range dueDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC().Format(time.RFC3339), nil
		}
	}
	return "", fmt.Errorf("invalid due date %q", s)
}
