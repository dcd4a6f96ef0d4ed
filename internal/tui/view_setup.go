package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderSetup() string {
	var b strings.Builder

	// Header
	header := styleLogo.Render(logo)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, header))
	b.WriteString("\n\n")

	// Title
	var titleText string
	switch a.state.setupStep {
	case 0:
		titleText = "Name this API key:"
		if a.state.user == nil {
			titleText = "What should we call you?"
		}
	case 1:
		titleText = "Enter your Gemini API key:"
	}
	title := lipgloss.NewStyle().
		Foreground(colorWhite).
		Bold(true).
		Render(titleText)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	if a.state.setupStep == 1 {
		link := styleSubtitle.Render("Get one at: https://aistudio.google.com/apikey")
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, link))
		b.WriteString("\n\n")
	}

	// Input
	input := a.state.keyNameInput
	if a.state.setupStep == 1 {
		input = a.state.keyValueInput
	}
	inputBox := styleBox.Copy().
		Width(60).
		BorderForeground(colorSecondary).
		Render(input.View())
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, inputBox))
	b.WriteString("\n\n")

	// Validation error
	if a.state.setupError != "" {
		errLine := lipgloss.NewStyle().Foreground(colorError).Render(a.state.setupError)
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, errLine))
		b.WriteString("\n\n")
	}

	// Instructions
	var instructions string
	switch a.state.setupStep {
	case 0:
		instructions = "[Enter] Continue  [Esc] Quit"
		if !a.state.needsSetup {
			instructions = "[Enter] Continue  [Esc] Back"
		}
	case 1:
		instructions = "[Enter] Test & save  [Esc] Back"
	}
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, styleStatusBar.Render(instructions)))

	return a.centerVertically(b.String())
}

func (a *App) centerVertically(content string) string {
	lines := strings.Count(content, "\n") + 1
	padding := (a.height - lines) / 2
	if padding < 0 {
		padding = 0
	}
	return strings.Repeat("\n", padding) + content
}
