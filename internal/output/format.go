// Package output provides plain formatters for one-shot command output.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/szydag/taskdeck/internal/task"
)

// FormatTask writes one task line.
// Format: "{N:>4}  [{x| }]  {TITLE}  ({DUE})" with the due part omitted
// when the task has no due date.
func FormatTask(w io.Writer, num int, t task.Task) {
	marker := "[ ]"
	if t.Status {
		marker = "[x]"
	}
	line := fmt.Sprintf("%4d  %s  %s", num, marker, normalizeTitle(t.Title))
	if t.DueDate != "" {
		line += fmt.Sprintf("  (due %s)", t.DueDate)
	}
	fmt.Fprintln(w, line)
}

// FormatHeader writes the section header for a filtered listing.
func FormatHeader(w io.Writer, f task.Filter, count int) {
	fmt.Fprintf(w, "tasks (%s): %d\n", f, count)
}

// normalizeTitle flattens newlines and substitutes a placeholder for
// empty titles.
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")
	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
