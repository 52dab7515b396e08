package ui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/szydag/taskdeck/internal/api"
	"github.com/szydag/taskdeck/internal/task"
)

// tasksLoadedMsg carries the outcome of a collection fetch.
type tasksLoadedMsg struct {
	tasks []task.Task
	err   error
}

// toggledMsg carries the outcome of a status-toggle update.
type toggledMsg struct {
	err error
}

// ListScreen shows the filtered collection. Fetch failures degrade
// silently: the previous items stay on screen and the error goes to the
// log file only.
type ListScreen struct {
	svc    api.Service
	logger *log.Logger

	filter  task.Filter
	tasks   []task.Task
	cursor  int
	loading bool
	busy    bool // a toggle update is in flight
}

// NewListScreen creates the root list screen.
func NewListScreen(svc api.Service, logger *log.Logger, filter task.Filter) *ListScreen {
	return &ListScreen{svc: svc, logger: logger, filter: filter}
}

func (s *ListScreen) Init() tea.Cmd {
	s.loading = true
	return s.fetch()
}

// fetch issues one collection GET for the current filter.
func (s *ListScreen) fetch() tea.Cmd {
	svc, filter := s.svc, s.filter
	return func() tea.Msg {
		tasks, err := svc.ListTasks(context.Background(), filter)
		return tasksLoadedMsg{tasks: tasks, err: err}
	}
}

func (s *ListScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case focusMsg:
		s.loading = true
		return s, s.fetch()

	case tasksLoadedMsg:
		s.loading = false
		if msg.err != nil {
			// Silent degradation: stale items stay, no alert.
			s.logger.Error("list fetch failed", "filter", s.filter, "err", msg.err)
			return s, nil
		}
		s.tasks = msg.tasks
		if s.cursor >= len(s.tasks) {
			s.cursor = max(0, len(s.tasks)-1)
		}
		return s, nil

	case toggledMsg:
		s.busy = false
		if msg.err != nil {
			// The optimistic flip is kept even on failure.
			s.logger.Error("toggle failed", "err", msg.err)
			return s, alertCmd("Could not update the task.", false)
		}
		s.loading = true
		return s, s.fetch()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *ListScreen) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "q":
		return s, tea.Quit
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.tasks)-1 {
			s.cursor++
		}
	case "enter":
		if s.cursor < len(s.tasks) {
			return s, pushCmd(NewDetailScreen(s.svc, s.logger, s.tasks[s.cursor].ID))
		}
	case "a":
		return s, pushCmd(NewAddScreen(s.svc, s.logger))
	case "f":
		s.filter = s.filter.Next()
		s.cursor = 0
		s.loading = true
		return s, s.fetch()
	case "r":
		s.loading = true
		return s, s.fetch()
	case " ":
		return s.toggle()
	}
	return s, nil
}

// toggle flips the cursor task's status optimistically and issues one
// partial update carrying only the new flag.
func (s *ListScreen) toggle() (tea.Model, tea.Cmd) {
	if s.busy || s.cursor >= len(s.tasks) {
		return s, nil
	}
	t := &s.tasks[s.cursor]
	t.Status = !t.Status
	s.busy = true

	svc, id, status := s.svc, t.ID, t.Status
	return s, func() tea.Msg {
		d := task.Draft{}
		d.SetStatus(status)
		return toggledMsg{err: svc.UpdateTask(context.Background(), id, d)}
	}
}

func (s *ListScreen) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Tasks") + "\n")
	b.WriteString(filterStyle.Render(fmt.Sprintf("filter: %s", s.filter)) + "\n\n")

	switch {
	case s.loading && len(s.tasks) == 0:
		b.WriteString("Loading...\n")
	case len(s.tasks) == 0:
		b.WriteString("No tasks.\n")
	default:
		for i, t := range s.tasks {
			marker := "[ ]"
			line := t.Title
			if t.Status {
				marker = "[x]"
				line = doneStyle.Render(line)
			}
			if t.DueDate != "" {
				line += footerStyle.Render("  due " + t.DueDate)
			}
			prefix := "  "
			if i == s.cursor {
				prefix = cursorStyle.Render("> ")
			}
			b.WriteString(fmt.Sprintf("%s%s %s\n", prefix, marker, line))
		}
	}

	b.WriteString("\n" + footerStyle.Render(
		"enter: open  a: add  space: toggle  f: filter  r: refresh  q: quit") + "\n")
	return b.String()
}
