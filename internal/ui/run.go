package ui

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/szydag/taskdeck/internal/api"
	"github.com/szydag/taskdeck/internal/task"
)

// RunTUI starts the screen stack with the list screen at the root.
func RunTUI(ctx context.Context, svc api.Service, logger *log.Logger, filter task.Filter) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}

	app := NewApp(NewListScreen(svc, logger, filter))
	program := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

// IsTTY returns true if the writer is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, _ := f.Stat()
	return (info.Mode() & os.ModeCharDevice) != 0
}
