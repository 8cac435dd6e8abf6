package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"patterns/internal/config"
	"patterns/internal/editor"
)

// wrapText hard-wraps s so no line exceeds maxWidth display cells. Unlike
// word wrapping it keeps every character, including repeated spaces, so the
// view shows the buffer exactly.
func wrapText(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return s
	}

	var lines []string
	for _, paragraph := range strings.Split(s, "\n") {
		var line strings.Builder
		lineWidth := 0
		for _, r := range paragraph {
			w := runewidth.RuneWidth(r)
			if lineWidth+w > maxWidth && lineWidth > 0 {
				lines = append(lines, line.String())
				line.Reset()
				lineWidth = 0
			}
			line.WriteRune(r)
			lineWidth += w
		}
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

// Init initializes the TUI model and returns any initial commands to run.
func (m model) Init() tea.Cmd {
	return nil
}

// Run launches the editor TUI on buf and blocks until the user quits.
func Run(buf *editor.Buffer, theme config.ThemeConfig) error {
	m := InitialModel(buf, theme)
	p := tea.NewProgram(&teaModelAdapter{m}, tea.WithAltScreen())

	_, err := p.Run()
	return err
}

// teaModelAdapter adapts our model to the tea.Model interface using Update and ModelView.
type teaModelAdapter struct {
	m model
}

func (a *teaModelAdapter) Init() tea.Cmd {
	return a.m.Init()
}

func (a *teaModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m2, cmd := Update(a.m, msg)
	a.m = m2
	return a, cmd
}

func (a *teaModelAdapter) View() string {
	return ModelView(a.m)
}
