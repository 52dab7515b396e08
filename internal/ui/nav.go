// Package ui provides the terminal interface: a linear screen stack with
// list, add, and detail screens plus alert and confirm overlays.
package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// pushMsg pushes a screen onto the stack.
type pushMsg struct {
	screen tea.Model
}

// popMsg pops the top screen. Popping the last screen quits.
type popMsg struct{}

// focusMsg is delivered to a screen when it becomes the top of the stack
// again. Screens re-fetch on focus; there is no shared cache.
type focusMsg struct{}

// alertMsg raises a modal alert. When popOnAck is set, acknowledging the
// alert also pops the current screen.
type alertMsg struct {
	text     string
	popOnAck bool
}

// confirmMsg raises a modal confirm dialog. Confirming runs yes; canceling
// has no side effect.
type confirmMsg struct {
	text string
	yes  tea.Cmd
}

func pushCmd(screen tea.Model) tea.Cmd {
	return func() tea.Msg { return pushMsg{screen: screen} }
}

func popCmd() tea.Msg { return popMsg{} }

func alertCmd(text string, popOnAck bool) tea.Cmd {
	return func() tea.Msg { return alertMsg{text: text, popOnAck: popOnAck} }
}

func confirmCmd(text string, yes tea.Cmd) tea.Cmd {
	return func() tea.Msg { return confirmMsg{text: text, yes: yes} }
}

// App is the root model: a screen stack with at most one modal overlay.
// Non-navigation messages are routed to the top screen only, so a request
// completing after its screen was popped is discarded.
type App struct {
	stack   []tea.Model
	alert   *alertMsg
	confirm *confirmMsg
	width   int
	height  int
}

// NewApp creates the navigator with the given root screen.
func NewApp(root tea.Model) *App {
	return &App{stack: []tea.Model{root}}
}

func (a *App) Init() tea.Cmd {
	return a.top().Init()
}

func (a *App) top() tea.Model {
	return a.stack[len(a.stack)-1]
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a.route(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.alert != nil {
			return a.updateAlert(msg)
		}
		if a.confirm != nil {
			return a.updateConfirm(msg)
		}
		return a.route(msg)

	case pushMsg:
		a.stack = append(a.stack, msg.screen)
		return a, msg.screen.Init()

	case popMsg:
		if len(a.stack) == 1 {
			return a, tea.Quit
		}
		a.stack = a.stack[:len(a.stack)-1]
		return a.route(focusMsg{})

	case alertMsg:
		m := msg
		a.alert = &m
		return a, nil

	case confirmMsg:
		m := msg
		a.confirm = &m
		return a, nil
	}

	return a.route(msg)
}

// updateAlert handles keys while an alert is shown. Only enter does
// anything; it dismisses the alert and optionally pops the screen.
func (a *App) updateAlert(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.String() != "enter" {
		return a, nil
	}
	pop := a.alert.popOnAck
	a.alert = nil
	if pop {
		return a, popCmd
	}
	return a, nil
}

// updateConfirm handles keys while a confirm dialog is shown.
func (a *App) updateConfirm(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "y", "enter":
		yes := a.confirm.yes
		a.confirm = nil
		return a, yes
	case "n", "esc":
		a.confirm = nil
		return a, nil
	}
	return a, nil
}

// route forwards a message to the top screen and replaces it with the
// updated model.
func (a *App) route(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := a.top().Update(msg)
	a.stack[len(a.stack)-1] = updated
	return a, cmd
}

func (a *App) View() string {
	view := a.top().View()
	if a.alert != nil {
		return view + "\n" + renderAlert(a.alert.text)
	}
	if a.confirm != nil {
		return view + "\n" + renderConfirm(a.confirm.text)
	}
	return view
}
