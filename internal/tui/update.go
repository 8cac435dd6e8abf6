package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"patterns/internal/log"
)

// Update handles all Bubbletea update logic for the TUI model.
func Update(m model, msg tea.Msg) (model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return HandleKeyMsg(m, msg)
	case tea.WindowSizeMsg:
		return handleWindowResize(m, msg)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func HandleKeyMsg(m model, msg tea.KeyMsg) (model, tea.Cmd) {
	if m.ActiveView == ViewQuitting {
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c", "esc":
		m.ActiveView = ViewQuitting
		log.Info(log.CatUI, "quit", "content_len", len(m.buffer.Content()))
		return m, tea.Quit

	case "enter":
		text := m.input.Value()
		m.buffer.Write(text)
		m.input.Reset()
		m.Status = ""
		if text == "" {
			m.Status = "Wrote empty text; redo history cleared."
		}
		m.refreshEvents()
		return m, nil

	case "ctrl+z":
		if !m.buffer.Undo() {
			m.Status = "Nothing to undo."
			return m, nil
		}
		m.Status = ""
		m.refreshEvents()
		return m, nil

	case "ctrl+y":
		if !m.buffer.Redo() {
			m.Status = "Nothing to redo."
			return m, nil
		}
		m.Status = ""
		m.refreshEvents()
		return m, nil
	}

	// Forward everything else to the text input for editing.
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func handleWindowResize(m model, msg tea.WindowSizeMsg) (model, tea.Cmd) {
	m.height = msg.Height
	m.width = msg.Width
	m.input.Width = max(msg.Width-4, 10)
	m.eventTable = newEventTable(msg.Width)
	m.refreshEvents()
	return m, nil
}
