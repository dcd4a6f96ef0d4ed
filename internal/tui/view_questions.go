package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/promptgenie/genie/internal/question"
)

func (a *App) renderQuestions() string {
	if a.onHashtagStep() {
		return a.renderHashtagStep()
	}

	s := a.state
	q := a.currentQuestion()

	var b strings.Builder

	// Header: content type plus progress
	header := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render(s.sess.ContentType.Label())
	progress := styleSubtitle.Render(
		fmt.Sprintf("  %d of %d answered", s.sess.Answered(), len(s.sess.Questions)))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, header+progress))
	b.WriteString("\n")

	if s.fromFallback {
		note := styleSubtitle.Render("Using built-in questions")
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, note))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Question header
	count := lipgloss.NewStyle().
		Foreground(colorSecondary).
		Render(fmt.Sprintf("Question %d/%d", s.current+1, len(s.sess.Questions)))
	meta := styleSubtitle.Render(fmt.Sprintf("  %s · %s priority", q.Category, q.Priority))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, count+meta))
	b.WriteString("\n\n")

	// Question text and rationale
	text := lipgloss.NewStyle().
		Foreground(colorWhite).
		Bold(true).
		Render(truncate(q.Text, 70))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, text))
	b.WriteString("\n")
	if q.Rationale != "" {
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center,
			styleSubtitle.Render(truncate(q.Rationale, 70))))
	}
	b.WriteString("\n\n")

	// Answer widget
	widget := a.renderAnswerWidget(q)
	widgetBox := styleBox.Copy().
		Width(min(64, a.width-4)).
		BorderForeground(colorPrimary).
		Render(widget)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, widgetBox))
	b.WriteString("\n\n")

	if s.statusMsg != "" {
		notice := lipgloss.NewStyle().Foreground(colorSecondary).Render(s.statusMsg)
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, notice))
		b.WriteString("\n\n")
	}

	// Status bar
	var hints []string
	switch q.Kind {
	case question.SingleChoice:
		hints = append(hints, "[Up/Down] Choose")
	case question.MultiChoice:
		hints = append(hints, "[Up/Down] Move", "[Space] Toggle")
	case question.NumericRange:
		hints = append(hints, "[Left/Right] Adjust")
	}
	hints = append(hints, "[Enter] Answer", "[Tab] Skip", "[Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center,
		styleStatusBar.Render(strings.Join(hints, "  "))))

	return a.centerVertically(b.String())
}

func (a *App) renderAnswerWidget(q question.Question) string {
	s := a.state

	switch q.Kind {
	case question.SingleChoice:
		answer, _ := s.sess.Answer(s.current)
		var lines []string
		for i, choice := range q.Choices {
			cursor := "  "
			if i == s.choiceCursor {
				cursor = "> "
			}
			mark := "( )"
			if choice == answer {
				mark = "(x)"
			}
			line := fmt.Sprintf("%s%s %s", cursor, mark, truncate(choice, 52))
			if i == s.choiceCursor {
				line = lipgloss.NewStyle().Foreground(colorSecondary).Bold(true).Render(line)
			} else {
				line = lipgloss.NewStyle().Foreground(colorMuted).Render(line)
			}
			lines = append(lines, line)
		}
		return strings.Join(lines, "\n")

	case question.MultiChoice:
		var lines []string
		for i, choice := range q.MultiChoices {
			cursor := "  "
			if i == s.choiceCursor {
				cursor = "> "
			}
			mark := "[ ]"
			if s.multiPicked[i] {
				mark = "[x]"
			}
			line := fmt.Sprintf("%s%s %s", cursor, mark, truncate(choice, 52))
			if i == s.choiceCursor {
				line = lipgloss.NewStyle().Foreground(colorSecondary).Bold(true).Render(line)
			} else {
				line = lipgloss.NewStyle().Foreground(colorMuted).Render(line)
			}
			lines = append(lines, line)
		}
		return strings.Join(lines, "\n")

	case question.NumericRange:
		span := q.RangeMax - q.RangeMin
		filled := 0
		if span > 0 {
			filled = (s.rangeValue - q.RangeMin) * 30 / span
		}
		bar := lipgloss.NewStyle().Foreground(colorSecondary).Render(strings.Repeat("=", filled)) +
			lipgloss.NewStyle().Foreground(colorMuted).Render(strings.Repeat("-", 30-filled))
		return fmt.Sprintf("%d  %s  %d\n\n%s", q.RangeMin, bar, q.RangeMax,
			lipgloss.NewStyle().Foreground(colorWhite).Bold(true).Render(fmt.Sprintf("Value: %d", s.rangeValue)))

	default: // free text
		return s.answerInput.View()
	}
}

func (a *App) renderHashtagStep() string {
	s := a.state
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Hashtags")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center,
		styleSubtitle.Render("Optional: tag the prompt so it is easy to find later")))
	b.WriteString("\n\n")

	// Chosen tags
	chosen := "none yet"
	if len(s.sess.Hashtags) > 0 {
		chosen = styleTag.Render(strings.Join(s.sess.Hashtags, " "))
	}
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, "Chosen: "+chosen))
	b.WriteString("\n\n")

	// Suggestions
	var lines []string
	for i, tag := range s.suggestedTags {
		cursor := "  "
		if i == s.tagCursor {
			cursor = "> "
		}
		mark := "[ ]"
		if a.tagChosen(tag) {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s%s %s", cursor, mark, tag)
		if i == s.tagCursor {
			line = lipgloss.NewStyle().Foreground(colorSecondary).Bold(true).Render(line)
		} else {
			line = lipgloss.NewStyle().Foreground(colorMuted).Render(line)
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		lines = append(lines, styleSubtitle.Render("no suggestions"))
	}
	suggBox := styleBox.Copy().
		Width(min(40, a.width-4)).
		Render(strings.Join(lines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, suggBox))
	b.WriteString("\n\n")

	// Custom tag entry
	if s.tagTyping {
		tagBox := styleBox.Copy().
			Width(36).
			BorderForeground(colorSecondary).
			Render(s.tagInput.View())
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, tagBox))
		b.WriteString("\n\n")
	}

	// Progress toward generation
	answered := s.sess.Answered()
	total := len(s.sess.Questions)
	progressStyle := lipgloss.NewStyle().Foreground(colorSuccess)
	if answered < total {
		progressStyle = lipgloss.NewStyle().Foreground(colorError)
	}
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center,
		progressStyle.Render(fmt.Sprintf("%d of %d questions answered", answered, total))))
	b.WriteString("\n\n")

	if s.statusMsg != "" {
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(colorSecondary).Render(s.statusMsg)))
		b.WriteString("\n\n")
	}

	var status string
	if s.tagTyping {
		status = "[Enter] Add tag  [Esc] Cancel"
	} else {
		status = "[Space] Toggle  [a] Custom tag  [Shift+Tab] Back  [Enter] Generate prompt"
	}
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, styleStatusBar.Render(status)))

	return a.centerVertically(b.String())
}
