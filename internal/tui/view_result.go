package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderResult() string {
	s := a.state
	var b strings.Builder

	title := "Your optimized prompt"
	if s.resultIsRefactor {
		title = "Your refactored prompt"
	}
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(colorPrimary).Bold(true).Render(title)))
	b.WriteString("\n")

	if s.resultInput != "" {
		asked := styleSubtitle.Render("> " + truncate(s.resultInput, 60))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, asked))
	}
	b.WriteString("\n\n")

	// Result box, clipped to the screen
	result := s.result
	maxResultHeight := a.height - 12
	if maxResultHeight < 5 {
		maxResultHeight = 5
	}
	resultLines := strings.Split(result, "\n")
	if len(resultLines) > maxResultHeight {
		resultLines = resultLines[:maxResultHeight]
		result = strings.Join(resultLines, "\n") + "\n..."
	}

	resultBox := styleBox.Copy().
		Width(min(72, a.width-4)).
		BorderForeground(colorPrimary).
		Render(result)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, resultBox))
	b.WriteString("\n")

	// Hashtags
	if s.sess != nil && !s.resultIsRefactor && len(s.sess.Hashtags) > 0 {
		tags := styleTag.Render(strings.Join(s.sess.Hashtags, " "))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, tags))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if s.statusMsg != "" {
		notice := lipgloss.NewStyle().Foreground(colorSuccess).Render(s.statusMsg)
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, notice))
		b.WriteString("\n\n")
	}

	status := styleStatusBar.Render("[c] Copy  [s] Save  [e] Export  [r] Refactor  [n] New idea  [Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}
