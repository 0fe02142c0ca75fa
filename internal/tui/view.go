package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tablekit/internal/ui/components"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	ctx := components.DefaultContext().
		WithTheme(m.theme).
		WithWidth(m.width).
		WithMaxCellWidth(m.maxCellWidth)

	sections := []string{
		components.NewTable(m.ctrl.Snapshot()).
			WithCursor(m.cursorRow, m.cursorCol).
			ViewWithContext(ctx),
	}

	if status := m.Status(); status != "" {
		style := statusStyle
		if m.notice != "" {
			style = noticeStyle
		}
		sections = append(sections, style.Render(status))
	}

	sections = append(sections, helpStyle.Render(m.help.View(m.keys)))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
