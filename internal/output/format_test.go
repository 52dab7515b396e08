package output

import (
	"bytes"
	"testing"

	"github.com/szydag/taskdeck/internal/task"
)

func TestFormatTask(t *testing.T) {
	tests := []struct {
		name string
		num  int
		task task.Task
		want string
	}{
		{"pending", 1, task.Task{Title: "Buy milk"}, "   1  [ ]  Buy milk\n"},
		{"done", 12, task.Task{Title: "Ship it", Status: true}, "  12  [x]  Ship it\n"},
		{"with due date", 2, task.Task{Title: "Call", DueDate: "2024-06-01T00:00:00Z"},
			"   2  [ ]  Call  (due 2024-06-01T00:00:00Z)\n"},
		{"untitled", 3, task.Task{Title: "  "}, "   3  [ ]  (untitled)\n"},
		{"newlines flattened", 4, task.Task{Title: "a\nb"}, "   4  [ ]  a b\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			FormatTask(&buf, tt.num, tt.task)
			if got := buf.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatHeader(t *testing.T) {
	var buf bytes.Buffer
	FormatHeader(&buf, task.FilterPending, 3)
	if got := buf.String(); got != "tasks (pending): 3\n" {
		t.Errorf("got %q", got)
	}
}
