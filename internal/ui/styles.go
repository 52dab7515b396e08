package ui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))

	filterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("111"))

	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)

	doneStyle = lipgloss.NewStyle().Faint(true).Strikethrough(true)

	footerStyle = lipgloss.NewStyle().Faint(true)

	notFoundStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))

	alertBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("203")).
			Padding(0, 2)

	confirmBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("111")).
			Padding(0, 2)
)

func renderAlert(text string) string {
	return alertBoxStyle.Render(text + "\n\npress enter to continue")
}

func renderConfirm(text string) string {
	return confirmBoxStyle.Render(text + "\n\ny: confirm   n: cancel")
}
