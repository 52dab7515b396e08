package task

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestFilterQuery(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		key    string
		value  string
		ok     bool
	}{
		{"all omits parameter", FilterAll, "", "", false},
		{"pending", FilterPending, "status", "false", true},
		{"done", FilterDone, "status", "true", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, value, ok := tt.filter.Query()
			if ok != tt.ok || key != tt.key || value != tt.value {
				t.Errorf("Query: got (%q, %q, %v), want (%q, %q, %v)",
					key, value, ok, tt.key, tt.value, tt.ok)
			}
		})
	}
}

func TestFilterNext(t *testing.T) {
	if got := FilterAll.Next(); got != FilterPending {
		t.Errorf("FilterAll.Next: got %s, want pending", got)
	}
	if got := FilterPending.Next(); got != FilterDone {
		t.Errorf("FilterPending.Next: got %s, want done", got)
	}
	if got := FilterDone.Next(); got != FilterAll {
		t.Errorf("FilterDone.Next: got %s, want all", got)
	}
}

func TestParseFilter(t *testing.T) {
	if f, err := ParseFilter(""); err != nil || f != FilterAll {
		t.Errorf("empty: got (%s, %v), want (all, nil)", f, err)
	}
	if f, err := ParseFilter(" Done "); err != nil || f != FilterDone {
		t.Errorf("mixed case: got (%s, %v), want (done, nil)", f, err)
	}
	if _, err := ParseFilter("bogus"); err == nil {
		t.Error("bogus: expected error, got nil")
	}
}

func TestFilterMatches(t *testing.T) {
	pending := Task{ID: "1", Title: "a", Status: false}
	done := Task{ID: "2", Title: "b", Status: true}

	if !FilterAll.Matches(pending) || !FilterAll.Matches(done) {
		t.Error("FilterAll should match everything")
	}
	if !FilterPending.Matches(pending) || FilterPending.Matches(done) {
		t.Error("FilterPending should match only pending tasks")
	}
	if FilterDone.Matches(pending) || !FilterDone.Matches(done) {
		t.Error("FilterDone should match only done tasks")
	}
}

func TestDraftValidate(t *testing.T) {
	tests := []struct {
		name    string
		title   *string
		wantErr bool
	}{
		{"unset title", nil, true},
		{"empty title", ptr(""), true},
		{"whitespace title", ptr("   \t"), true},
		{"valid title", ptr("Buy milk"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Draft{Title: tt.title}
			err := d.Validate()
			if tt.wantErr && !errors.Is(err, ErrEmptyTitle) {
				t.Errorf("Validate: got %v, want ErrEmptyTitle", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate: got %v, want nil", err)
			}
		})
	}
}

func TestDraftOf(t *testing.T) {
	d := DraftOf(Task{ID: "1", Title: "A", Status: false})

	if d.Title == nil || *d.Title != "A" {
		t.Error("Title should be set")
	}
	if d.Status == nil || *d.Status != false {
		t.Error("Status should be set even when false")
	}
	if d.Description != nil {
		t.Error("Description should stay unset when the task has none")
	}
	if d.DueDate != nil {
		t.Error("DueDate should stay unset when the task has none")
	}
}

// The detail round-trip: a fetched task with only title and status set,
// edited to a new title, must serialize to exactly those two fields.
func TestDraftUpdateBody(t *testing.T) {
	d := DraftOf(Task{ID: "1", Title: "A", Status: false})
	d.SetTitle("B")

	body, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"title":"B","status":false}`
	if string(body) != want {
		t.Errorf("body: got %s, want %s", body, want)
	}
}

func TestParseDueDate(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"date only", "2024-06-01", "2024-06-01T00:00:00Z", false},
		{"date and time", "2024-06-01T09:30", "2024-06-01T09:30:00Z", false},
		{"rfc3339 passthrough", "2024-06-01T09:30:00Z", "2024-06-01T09:30:00Z", false},
		{"empty", "", "", true},
		{"partial", "2024-06", "", true},
		{"garbage", "next tuesday", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDueDate(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseDueDate(%q): expected error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDueDate(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseDueDate(%q): got %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func ptr(s string) *string { return &s }
