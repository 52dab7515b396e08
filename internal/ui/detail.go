package ui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/szydag/taskdeck/internal/api"
	"github.com/szydag/taskdeck/internal/form"
	"github.com/szydag/taskdeck/internal/task"
)

// taskLoadedMsg carries the outcome of a single-task fetch.
type taskLoadedMsg struct {
	task task.Task
	err  error
}

// updatedMsg carries the outcome of a detail-screen update.
type updatedMsg struct {
	err error
}

// deletedMsg carries the outcome of a delete call.
type deletedMsg struct {
	err error
}

type detailState int

const (
	detailLoading detailState = iota
	detailReady
	detailNotFound
)

// DetailScreen fetches one task and edits it through the form. Updating
// sends the full editable field set; deleting requires an explicit
// confirmation and navigates back only on success.
type DetailScreen struct {
	svc    api.Service
	logger *log.Logger
	id     string

	state detailState
	form  form.Model
	draft task.Draft
	busy  bool
}

// NewDetailScreen creates the detail screen for a task id.
func NewDetailScreen(svc api.Service, logger *log.Logger, id string) *DetailScreen {
	return &DetailScreen{
		svc:    svc,
		logger: logger,
		id:     id,
		form:   form.New(addFields(), task.NewDraft()),
	}
}

func (s *DetailScreen) Init() tea.Cmd {
	s.state = detailLoading
	return s.fetch()
}

func (s *DetailScreen) fetch() tea.Cmd {
	svc, id := s.svc, s.id
	return func() tea.Msg {
		t, err := svc.GetTask(context.Background(), id)
		return taskLoadedMsg{task: t, err: err}
	}
}

func (s *DetailScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case taskLoadedMsg:
		if msg.err != nil {
			s.logger.Error("detail fetch failed", "id", s.id, "err", msg.err)
			s.state = detailNotFound
			return s, nil
		}
		s.state = detailReady
		// Re-initializing drops in-progress edits; the fetch resolves
		// before interaction in practice.
		s.draft = task.DraftOf(msg.task)
		s.form.SetInitial(s.draft)
		return s, nil

	case form.ChangedMsg:
		s.draft = msg.Draft
		return s, nil

	case updatedMsg:
		s.busy = false
		if msg.err != nil {
			s.logger.Error("update failed", "id", s.id, "err", msg.err)
			return s, alertCmd("Could not update the task.", false)
		}
		return s, alertCmd("Task updated.", true)

	case deletedMsg:
		s.busy = false
		if msg.err != nil {
			s.logger.Error("delete failed", "id", s.id, "err", msg.err)
			return s, alertCmd("Could not delete the task.", false)
		}
		return s, popCmd

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *DetailScreen) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		return s, popCmd
	case "ctrl+s":
		return s.update()
	case "ctrl+d":
		if s.state != detailReady || s.busy {
			return s, nil
		}
		return s, confirmCmd("Delete this task?", s.delete())
	}

	if s.state == detailReady {
		var cmd tea.Cmd
		s.form, cmd = s.form.Update(key)
		return s, cmd
	}
	return s, nil
}

// update validates the title and sends the editable field set.
func (s *DetailScreen) update() (tea.Model, tea.Cmd) {
	if s.state != detailReady || s.busy {
		return s, nil
	}
	if err := s.draft.Validate(); err != nil {
		return s, alertCmd("A title is required.", false)
	}
	s.busy = true

	svc, id, draft := s.svc, s.id, s.draft
	return s, func() tea.Msg {
		return updatedMsg{err: svc.UpdateTask(context.Background(), id, draft)}
	}
}

// delete issues exactly one delete call; it runs only after the confirm
// dialog is acknowledged.
func (s *DetailScreen) delete() tea.Cmd {
	svc, id := s.svc, s.id
	return func() tea.Msg {
		return deletedMsg{err: svc.DeleteTask(context.Background(), id)}
	}
}

func (s *DetailScreen) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Task Detail") + "\n\n")

	switch s.state {
	case detailLoading:
		b.WriteString("Loading...\n")
	case detailNotFound:
		b.WriteString(notFoundStyle.Render("Task not found.") + "\n\n")
		b.WriteString(footerStyle.Render("esc: back") + "\n")
	default:
		b.WriteString(s.form.View())
		hint := "ctrl+s: update  ctrl+d: delete  esc: back"
		if s.busy {
			hint = "working..."
		}
		b.WriteString(footerStyle.Render(hint) + "\n")
	}
	return b.String()
}
