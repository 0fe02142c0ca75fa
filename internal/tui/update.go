package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/tablekit/internal/table"
)

// RowsMsg replaces the table's rows while the browser is running.
type RowsMsg struct {
	Rows []table.Row
}

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case RowsMsg:
		focused, ok := m.rowAtCursor()
		m.ctrl.SetRows(msg.Rows)
		if ok {
			m.focusRow(focused.Key)
		}
		m.clampCursor()
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}
	return m, nil
}

// handleKeyPress maps a key to a cursor move or a controller event.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		m.cursorRow--
	case key.Matches(msg, m.keys.Down):
		m.cursorRow++
	case key.Matches(msg, m.keys.Left):
		m.cursorCol--
	case key.Matches(msg, m.keys.Right):
		m.cursorCol++
	case key.Matches(msg, m.keys.Sort):
		m.sortColumn(m.cursorCol)
	case key.Matches(msg, m.keys.SortIndex):
		if index, ok := columnIndex(msg.String()); ok {
			m.sortColumn(index)
		}
	case key.Matches(msg, m.keys.Toggle):
		if row, ok := m.rowAtCursor(); ok {
			m.ctrl.ToggleRow(row.Key)
		}
	case key.Matches(msg, m.keys.ToggleAll):
		m.ctrl.ToggleAll()
	}

	m.clampCursor()
	return m, nil
}

// columnIndex turns a one-based column number key into a field index.
func columnIndex(k string) (int, bool) {
	n, err := strconv.Atoi(k)
	if err != nil || n < 1 {
		return 0, false
	}
	return n - 1, true
}

// sortColumn sorts by the field at index and keeps the cursor on the row
// it was on.
func (m *Model) sortColumn(index int) {
	fields := m.ctrl.Fields()
	if index < 0 || index >= len(fields) {
		return
	}
	m.cursorCol = index

	field := fields[index]
	if !field.Sortable {
		m.notice = fmt.Sprintf("%s is not sortable", field.Label)
		return
	}

	focused, ok := m.rowAtCursor()
	m.ctrl.SortBy(field.Key)
	if ok {
		m.focusRow(focused.Key)
	}
}

func (m *Model) focusRow(key table.RowKey) {
	for i, row := range m.ctrl.Rows() {
		if row.Key == key {
			m.cursorRow = i
			return
		}
	}
}
