package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/tablekit/internal/table"
	"github.com/alexisbeaulieu97/tablekit/internal/ui/components"
)

// Options configures the browser's presentation.
type Options struct {
	Theme        components.Theme
	MaxCellWidth int
	KeyMap       *KeyMap
}

// activity records the most recent check/uncheck notification. It is
// shared by pointer so copies of Model observe callbacks fired by the
// controller they share.
type activity struct {
	last  string
	count int
}

func (a *activity) record(kind table.NotificationKind, row table.Row) {
	a.count++
	a.last = fmt.Sprintf("%s %s", kind, row.Key)
}

// Model is the Bubbletea state for browsing one table.
type Model struct {
	ctrl     *table.Controller
	activity *activity

	keys  KeyMap
	help  help.Model
	theme components.Theme

	maxCellWidth int
	width        int

	cursorRow int
	cursorCol int
	notice    string
	quitting  bool
}

// NewModel mounts a controller over rows and wraps it for interactive use.
// The caller's OnCheck and OnUncheck callbacks still fire; the browser
// additionally records each notification for its status line.
func NewModel(tableOpts table.Options, rows []table.Row, opts Options) Model {
	act := &activity{}

	onCheck, onUncheck := tableOpts.OnCheck, tableOpts.OnUncheck
	tableOpts.OnCheck = func(row table.Row) {
		act.record(table.Checked, row)
		if onCheck != nil {
			onCheck(row)
		}
	}
	tableOpts.OnUncheck = func(row table.Row) {
		act.record(table.Unchecked, row)
		if onUncheck != nil {
			onUncheck(row)
		}
	}

	keys := DefaultKeyMap()
	if opts.KeyMap != nil {
		keys = *opts.KeyMap
	}

	theme := opts.Theme
	if theme.Name == "" {
		theme = components.DefaultTheme()
	}

	return Model{
		ctrl:         table.New(tableOpts, rows),
		activity:     act,
		keys:         keys.withSelection(tableOpts.HasCheckboxes),
		help:         help.New(),
		theme:        theme,
		maxCellWidth: opts.MaxCellWidth,
	}
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return nil
}

// Controller exposes the underlying table controller.
func (m Model) Controller() *table.Controller {
	return m.ctrl
}

// Cursor returns the focused display row and column indexes.
func (m Model) Cursor() (row, col int) {
	return m.cursorRow, m.cursorCol
}

// Status returns the text of the status line.
func (m Model) Status() string {
	if m.notice != "" {
		return m.notice
	}
	if m.activity.last != "" {
		return m.activity.last
	}
	return ""
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

func (m *Model) clampCursor() {
	rows := len(m.ctrl.Rows())
	switch {
	case rows == 0:
		m.cursorRow = 0
	case m.cursorRow >= rows:
		m.cursorRow = rows - 1
	case m.cursorRow < 0:
		m.cursorRow = 0
	}

	cols := len(m.ctrl.Fields())
	switch {
	case cols == 0:
		m.cursorCol = 0
	case m.cursorCol >= cols:
		m.cursorCol = cols - 1
	case m.cursorCol < 0:
		m.cursorCol = 0
	}
}

func (m Model) rowAtCursor() (table.Row, bool) {
	rows := m.ctrl.Rows()
	if m.cursorRow < 0 || m.cursorRow >= len(rows) {
		return table.Row{}, false
	}
	return rows[m.cursorRow], true
}
