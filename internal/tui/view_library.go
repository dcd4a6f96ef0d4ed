package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderLibrary() string {
	s := a.state
	var b strings.Builder

	title := styleLogo.Render("Prompt Library")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center,
		styleSubtitle.Render("Saved prompts are kept for 23 hours")))
	b.WriteString("\n\n")

	// Search box
	if s.searching || s.searchInput.Value() != "" {
		searchBox := styleBox.Copy().
			Width(46).
			BorderForeground(colorSecondary).
			Render(s.searchInput.View())
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, searchBox))
		b.WriteString("\n\n")
	}

	// List
	if len(s.library) == 0 {
		empty := styleBox.Copy().
			Width(min(70, a.width-4)).
			Foreground(colorMuted).
			Render("Nothing saved yet.\n\nGenerate a prompt and press [s] to keep it here.")
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, empty))
	} else {
		var lines []string
		for i, p := range s.library {
			cursor := "  "
			if i == s.libCursor {
				cursor = "> "
			}
			left := fmt.Sprintf("%s%s", cursor, truncate(p.Title, 40))
			remaining := time.Until(p.ExpiresAt).Round(time.Minute)
			right := fmt.Sprintf("  expires in %s", remaining)
			line := left + styleSubtitle.Render(right)
			if i == s.libCursor {
				line = lipgloss.NewStyle().Foreground(colorSecondary).Bold(true).Render(left) +
					styleSubtitle.Render(right)
			}
			lines = append(lines, line)
			if i == s.libCursor && len(p.Hashtags) > 0 {
				lines = append(lines, "    "+styleTag.Render(strings.Join(p.Hashtags, " ")))
			}
		}
		listBox := styleBox.Copy().
			Width(min(70, a.width-4)).
			BorderForeground(colorPrimary).
			Render(strings.Join(lines, "\n"))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, listBox))
	}
	b.WriteString("\n\n")

	if s.statusMsg != "" {
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(colorSuccess).Render(s.statusMsg)))
		b.WriteString("\n\n")
	}

	var status string
	if s.searching {
		status = "[Enter] Done  [Esc] Clear search"
	} else {
		status = "[Up/Down] Move  [c] Copy  [d] Delete  [/] Search  [Esc] Back"
	}
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, styleStatusBar.Render(status)))

	return a.centerVertically(b.String())
}
