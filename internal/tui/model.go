package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"

	"patterns/internal/config"
	"patterns/internal/editor"
)

// View identifies which screen the TUI is showing.
type View int

const (
	ViewEditing View = iota
	ViewQuitting
)

const (
	defaultWidth  = 80
	maxEventRows  = 8
	contentHeight = 6
)

// eventLog collects buffer events. It is shared by pointer so copies of the
// model made by the update loop all see the same history.
type eventLog struct {
	events []editor.Event
}

func (l *eventLog) OnEdit(e editor.Event) { l.events = append(l.events, e) }

// model is the Bubbletea model for the editor TUI.
type model struct {
	ActiveView View
	Status     string

	buffer     *editor.Buffer
	log        *eventLog
	input      textinput.Model
	eventTable table.Model
	styles     styles
	height     int
	width      int
}

// InitialModel creates the editor model around buf. buf must be freshly
// created or at least not shared with another UI.
func InitialModel(buf *editor.Buffer, theme config.ThemeConfig) model {
	events := &eventLog{}
	buf.Subscribe(events)

	ti := textinput.New()
	ti.Placeholder = "type text, enter to write"
	ti.Prompt = "> "
	ti.CharLimit = 0
	ti.Width = defaultWidth - 4
	ti.Focus()

	m := model{
		ActiveView: ViewEditing,
		buffer:     buf,
		log:        events,
		input:      ti,
		eventTable: newEventTable(defaultWidth),
		styles:     newStyles(theme),
		height:     24,
		width:      defaultWidth,
	}
	m.refreshEvents()
	return m
}

func newEventTable(width int) table.Model {
	contentWidth := max(width-4-8-10-6, 10)
	columns := []table.Column{
		{Title: "Op", Width: 8},
		{Title: "At", Width: 10},
		{Title: "Content", Width: contentWidth},
	}
	return table.New(
		table.WithColumns(columns),
		table.WithRows([]table.Row{}),
		table.WithFocused(false),
		table.WithHeight(maxEventRows),
	)
}

// refreshEvents rebuilds the table rows, newest event first.
func (m *model) refreshEvents() {
	events := m.log.events
	if len(events) > maxEventRows {
		events = events[len(events)-maxEventRows:]
	}
	rows := make([]table.Row, 0, len(events))
	for i := len(events) - 1; i >= 0; i-- {
		e := events[i]
		rows = append(rows, table.Row{editor.Label(e.Op), e.At.Format("15:04:05"), quote(e.Content)})
	}
	m.eventTable.SetRows(rows)
}
