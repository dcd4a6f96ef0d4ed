package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderProcessing() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Working")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	if a.state.sess != nil {
		idea := styleSubtitle.Render("> " + truncate(a.state.sess.Input, 55))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, idea))
		b.WriteString("\n\n")
	}

	spin := a.state.spinner.View() + " " + a.state.loadingText
	spinBox := styleBox.Copy().
		Width(min(60, a.width-4)).
		Render(spin)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, spinBox))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center,
		styleSubtitle.Render("This usually takes a few seconds")))

	return a.centerVertically(b.String())
}
