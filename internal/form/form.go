// Package form renders an ordered field list against a task draft.
//
// The form keeps a local copy of the draft. Every edit updates the copy
// immediately and emits a ChangedMsg so the owning screen always holds the
// latest draft before any explicit save action. Re-initializing the form
// (SetInitial) resets the copy and drops in-progress edits; in practice the
// initial load resolves once, before interaction, on every screen.
package form

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/szydag/taskdeck/internal/task"
)

// Kind selects the control rendered for a field.
type Kind int

const (
	KindText Kind = iota
	KindMultiline
	KindDate
	KindBool
)

// Canonical field names understood by the draft binding.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldDueDate     = "dueDate"
	FieldStatus      = "status"
)

// Field describes one form control.
type Field struct {
	Name     string
	Kind     Kind
	Label    string
	Required bool
}

// ChangedMsg carries the full draft after every field edit.
type ChangedMsg struct {
	Draft task.Draft
}

// Model is a focusable field-list editor, used as a sub-model by the add
// and detail screens.
type Model struct {
	fields  []Field
	draft   task.Draft
	buffers []string
	focus   int
}

// New creates a form over the given fields, initialized from the draft.
func New(fields []Field, initial task.Draft) Model {
	m := Model{fields: fields}
	m.SetInitial(initial)
	return m
}

// SetInitial resets the local draft copy and edit buffers from the given
// record, dropping any in-progress edit.
func (m *Model) SetInitial(d task.Draft) {
	m.draft = d
	m.buffers = make([]string, len(m.fields))
	for i, f := range m.fields {
		m.buffers[i] = m.bufferFor(f)
	}
	if m.focus >= len(m.fields) {
		m.focus = 0
	}
}

// Draft returns the current local copy.
func (m Model) Draft() task.Draft {
	return m.draft
}

// Update handles key input for the focused field.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || len(m.fields) == 0 {
		return m, nil
	}

	switch key.String() {
	case "tab", "down":
		m.focus = (m.focus + 1) % len(m.fields)
		return m, nil
	case "shift+tab", "up":
		m.focus = (m.focus - 1 + len(m.fields)) % len(m.fields)
		return m, nil
	}

	f := m.fields[m.focus]
	switch f.Kind {
	case KindBool:
		if key.String() == " " || key.String() == "enter" {
			m.draft.SetStatus(!m.draft.StatusValue())
			return m, m.changed()
		}
	case KindMultiline:
		if key.String() == "enter" {
			m.buffers[m.focus] += "\n"
			m.sync(f)
			return m, m.changed()
		}
		return m.edit(key, f)
	default:
		return m.edit(key, f)
	}
	return m, nil
}

// edit applies a printable or backspace key to the focused buffer.
func (m Model) edit(key tea.KeyMsg, f Field) (Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyRunes:
		m.buffers[m.focus] += string(key.Runes)
	case tea.KeySpace:
		m.buffers[m.focus] += " "
	case tea.KeyBackspace:
		runes := []rune(m.buffers[m.focus])
		if len(runes) > 0 {
			m.buffers[m.focus] = string(runes[:len(runes)-1])
		}
	default:
		return m, nil
	}
	m.sync(f)
	return m, m.changed()
}

// sync copies the focused buffer into the draft field.
func (m *Model) sync(f Field) {
	value := m.buffers[m.focus]
	switch f.Kind {
	case KindDate:
		// The draft only ever holds the ISO string form; an unparsable
		// buffer leaves the field unset.
		if iso, err := task.ParseDueDate(value); err == nil {
			m.draft.SetDueDate(iso)
		} else {
			m.draft.DueDate = nil
		}
		return
	}

	switch f.Name {
	case FieldTitle:
		if value == "" {
			m.draft.Title = nil
		} else {
			m.draft.SetTitle(value)
		}
	case FieldDescription:
		if value == "" {
			m.draft.Description = nil
		} else {
			m.draft.SetDescription(value)
		}
	}
}

// bufferFor derives the initial edit buffer for a field from the draft.
func (m *Model) bufferFor(f Field) string {
	switch f.Name {
	case FieldTitle:
		return m.draft.TitleValue()
	case FieldDescription:
		if m.draft.Description != nil {
			return *m.draft.Description
		}
	case FieldDueDate:
		if m.draft.DueDate != nil {
			return *m.draft.DueDate
		}
	}
	return ""
}

// changed emits the current draft to the owning screen.
func (m Model) changed() tea.Cmd {
	d := m.draft
	return func() tea.Msg {
		return ChangedMsg{Draft: d}
	}
}

var (
	labelStyle    = lipgloss.NewStyle().Bold(true)
	focusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	requiredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	hintStyle     = lipgloss.NewStyle().Faint(true)
)

// View renders one control per field with a focus marker.
func (m Model) View() string {
	var b strings.Builder
	for i, f := range m.fields {
		marker := "  "
		label := labelStyle.Render(f.Label)
		if i == m.focus {
			marker = focusStyle.Render("> ")
			label = focusStyle.Render(f.Label)
		}
		if f.Required {
			label += requiredStyle.Render(" *")
		}
		b.WriteString(marker + label + "\n")

		switch f.Kind {
		case KindBool:
			box := "[ ] pending"
			if m.draft.StatusValue() {
				box = "[x] done"
			}
			b.WriteString("    " + box + "\n")
		case KindMultiline:
			lines := strings.Split(m.buffers[i], "\n")
			for _, line := range lines {
				b.WriteString("    " + line + "\n")
			}
		case KindDate:
			b.WriteString("    " + m.buffers[i] + "\n")
			if i == m.focus {
				b.WriteString("    " + hintStyle.Render("YYYY-MM-DD or YYYY-MM-DDTHH:MM") + "\n")
			}
		default:
			b.WriteString("    " + m.buffers[i] + "\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}
