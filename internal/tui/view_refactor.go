package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderRefactor() string {
	s := a.state
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Refactor a prompt")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center,
		styleSubtitle.Render("Paste an existing prompt and say how it should change")))
	b.WriteString("\n\n")

	// Prompt input
	promptBorder := colorMuted
	if s.refactorStep == 0 {
		promptBorder = colorSecondary
	}
	promptBox := styleBox.Copy().
		Width(min(70, a.width-4)).
		BorderForeground(promptBorder).
		Render(s.refactorInput.View())
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, promptBox))
	b.WriteString("\n\n")

	// Reason input
	reasonBorder := colorMuted
	if s.refactorStep == 1 {
		reasonBorder = colorSecondary
	}
	reasonBox := styleBox.Copy().
		Width(min(70, a.width-4)).
		BorderForeground(reasonBorder).
		Render(s.reasonInput.View())
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, reasonBox))
	b.WriteString("\n\n")

	if s.statusMsg != "" {
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(colorSecondary).Render(s.statusMsg)))
		b.WriteString("\n\n")
	}

	var status string
	if s.refactorStep == 0 {
		status = "[Enter] Next  [Esc] Back"
	} else {
		status = "[Enter] Refactor  [Esc] Edit prompt"
	}
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, styleStatusBar.Render(status)))

	return a.centerVertically(b.String())
}
