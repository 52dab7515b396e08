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

// createdMsg carries the outcome of a create call.
type createdMsg struct {
	id  string
	err error
}

// addFields is the ordered field list for the add form.
func addFields() []form.Field {
	return []form.Field{
		{Name: form.FieldTitle, Kind: form.KindText, Label: "Title", Required: true},
		{Name: form.FieldDescription, Kind: form.KindMultiline, Label: "Description"},
		{Name: form.FieldDueDate, Kind: form.KindDate, Label: "Due date"},
		{Name: form.FieldStatus, Kind: form.KindBool, Label: "Completed"},
	}
}

// AddScreen creates a new task from an empty draft. Saving is blocked while
// the trimmed title is empty or a save is already in flight.
type AddScreen struct {
	svc    api.Service
	logger *log.Logger

	form  form.Model
	draft task.Draft
	busy  bool
}

// NewAddScreen creates the add screen with an empty draft.
func NewAddScreen(svc api.Service, logger *log.Logger) *AddScreen {
	return &AddScreen{
		svc:    svc,
		logger: logger,
		form:   form.New(addFields(), task.NewDraft()),
	}
}

func (s *AddScreen) Init() tea.Cmd {
	return nil
}

func (s *AddScreen) canSave() bool {
	return !s.busy && s.draft.Validate() == nil
}

func (s *AddScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case form.ChangedMsg:
		s.draft = msg.Draft
		return s, nil

	case createdMsg:
		s.busy = false
		if msg.err != nil {
			s.logger.Error("create failed", "err", msg.err)
			return s, alertCmd("Could not create the task.", false)
		}
		s.logger.Info("task created", "id", msg.id)
		return s, popCmd

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, popCmd
		case "ctrl+s":
			return s.save()
		}
		var cmd tea.Cmd
		s.form, cmd = s.form.Update(msg)
		return s, cmd
	}
	return s, nil
}

// save validates client-side and issues one create. A disabled save is a
// no-op: no network call is made.
func (s *AddScreen) save() (tea.Model, tea.Cmd) {
	if !s.canSave() {
		return s, nil
	}
	s.busy = true

	svc, draft := s.svc, s.draft
	return s, func() tea.Msg {
		id, err := svc.CreateTask(context.Background(), draft)
		return createdMsg{id: id, err: err}
	}
}

func (s *AddScreen) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("New Task") + "\n\n")
	b.WriteString(s.form.View())

	saveHint := "ctrl+s: save"
	if !s.canSave() {
		saveHint = "ctrl+s: save (needs a title)"
		if s.busy {
			saveHint = "saving..."
		}
	}
	b.WriteString(footerStyle.Render(saveHint+"  esc: back") + "\n")
	return b.String()
}
