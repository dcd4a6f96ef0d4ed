package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/promptgenie/genie/internal/config"
)

const logo = `
  ██████╗ ███████╗███╗   ██╗██╗███████╗
 ██╔════╝ ██╔════╝████╗  ██║██║██╔════╝
 ██║  ███╗█████╗  ██╔██╗ ██║██║█████╗
 ██║   ██║██╔══╝  ██║╚██╗██║██║██╔══╝
 ╚██████╔╝███████╗██║ ╚████║██║███████╗
  ╚═════╝ ╚══════╝╚═╝  ╚═══╝╚═╝╚══════╝
`

func (a *App) renderWelcome() string {
	// Logo
	logoRendered := styleLogo.Render(logo)

	// Subtitle
	subtitleText := "Prompt Engineering Assistant"
	if a.state.user != nil {
		subtitleText = "Welcome back, " + a.state.user.Name
	}
	subtitle := styleSubtitle.Render(subtitleText)

	// Provider status
	var status string
	switch {
	case a.state.providerReady:
		modelName := a.state.config.Model
		if m := config.GetModel(modelName); m != nil {
			modelName = m.Name
		}
		status = lipgloss.NewStyle().Foreground(colorSuccess).
			Render(fmt.Sprintf("● %s", modelName))
	case a.state.providerError != nil:
		status = lipgloss.NewStyle().Foreground(colorError).
			Render("● offline — check your API key (/keys)")
	default:
		status = styleSubtitle.Render("● connecting...")
	}

	// Idea input
	inputBox := styleBox.Copy().
		Width(min(70, a.width-4)).
		BorderForeground(colorPrimary).
		Render(a.state.input.View())

	charCount := styleSubtitle.Render(
		fmt.Sprintf("%d/500", len(a.state.input.Value())))

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		logoRendered,
		subtitle,
		"",
		status,
		"",
		inputBox,
		charCount,
	)

	if a.state.statusMsg != "" {
		notice := lipgloss.NewStyle().Foreground(colorSecondary).Render(a.state.statusMsg)
		content = lipgloss.JoinVertical(lipgloss.Center, content, "", notice)
	}

	// Status bar
	statusBar := styleStatusBar.Render("[Enter] Analyze  /refactor  /library  /keys  /help  [Esc] Quit")

	mainArea := lipgloss.Place(
		a.width,
		a.height-2,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)

	statusLine := lipgloss.PlaceHorizontal(a.width, lipgloss.Center, statusBar)

	return lipgloss.JoinVertical(lipgloss.Left, mainArea, statusLine)
}
