package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"patterns/internal/config"
)

type styles struct {
	header  lipgloss.Style
	content lipgloss.Style
	subtle  lipgloss.Style
	status  lipgloss.Style
}

func newStyles(theme config.ThemeConfig) styles {
	return styles{
		header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Highlight)),
		content: lipgloss.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.Subtle)),
		subtle: lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle)),
		status: lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Error)),
	}
}

// ModelView renders the TUI model's view as a string.
func ModelView(m model) string {
	switch m.ActiveView {
	case ViewQuitting:
		return quittingView(m)
	default:
		return editingView(m)
	}
}

func quittingView(m model) string {
	return fmt.Sprintf("Final text: %s\nGoodbye!\n", quote(m.buffer.Content()))
}

func editingView(m model) string {
	innerWidth := max(m.width-4, 10)

	text := wrapText(m.buffer.Content(), innerWidth-2)
	if lines := strings.Count(text, "\n") + 1; lines < contentHeight {
		text += strings.Repeat("\n", contentHeight-lines)
	}

	depths := fmt.Sprintf("undo: %d  redo: %d", m.buffer.UndoDepth(), m.buffer.RedoDepth())

	blocks := []string{
		m.styles.header.Render("Text"),
		m.styles.content.Width(innerWidth).Render(text),
		m.styles.subtle.Render(depths),
	}
	if m.Status != "" {
		blocks = append(blocks, m.styles.status.Render(m.Status))
	}
	blocks = append(blocks,
		m.input.View(),
		"",
		m.styles.header.Render("History"),
		m.eventTable.View(),
		m.styles.subtle.Render("enter write • ctrl+z undo • ctrl+y redo • esc/ctrl+c quit"),
	)
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

// quote renders s on one line with control characters escaped, so newlines
// and trailing spaces stay visible in the history table.
func quote(s string) string {
	return strconv.Quote(s)
}
