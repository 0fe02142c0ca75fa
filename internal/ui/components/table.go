package components

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-runewidth"

	"github.com/alexisbeaulieu97/tablekit/internal/table"
)

const (
	// NoCursor disables cursor highlighting on an axis.
	NoCursor = -1

	ellipsis    = "…"
	cellPadding = 1
)

// Table renders one frame of a table.Snapshot: an optional caption, a
// header row with sort indicators, one line per row in display order and,
// when checkboxes are enabled, a checkbox column plus a selection summary.
type Table struct {
	BaseComponent
	snap      table.Snapshot
	cursorRow int
	cursorCol int
}

// NewTable creates a table renderer for snap.
func NewTable(snap table.Snapshot) *Table {
	return &Table{
		BaseComponent: NewBaseComponent(),
		snap:          snap,
		cursorRow:     NoCursor,
		cursorCol:     NoCursor,
	}
}

// WithCursor highlights the row at display index row and the header of the
// field at index col. Use NoCursor to disable either.
func (t *Table) WithCursor(row, col int) *Table {
	t.cursorRow = row
	t.cursorCol = col
	return t
}

// View renders the table.
func (t *Table) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the table with the given theme context.
func (t *Table) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	sections := make([]string, 0, 3)

	if t.snap.Header != "" {
		sections = append(sections, TitleText(t.snap.Header).ViewWithContext(ctx))
	}

	grid := ltable.New().
		Border(BorderForVariant(theme, theme.TableBorder)).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Palette.Neutral.Muted)).
		Headers(t.headers(ctx)...).
		Rows(t.cells(ctx)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			return t.cellStyle(theme, row, col)
		})
	if t.snap.FullWidth && ctx.Width > 0 {
		grid = grid.Width(ctx.Width)
	}
	sections = append(sections, t.ComputeStyle(theme).Render(grid.Render()))

	switch {
	case len(t.snap.Rows) == 0:
		sections = append(sections, MutedText("no rows").ViewWithContext(ctx))
	case t.snap.HasCheckboxes:
		sections = append(sections, SelectionBadge(len(t.snap.Selected), len(t.snap.Rows)).ViewWithContext(ctx))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (t *Table) offset() int {
	if t.snap.HasCheckboxes {
		return 1
	}
	return 0
}

func (t *Table) fieldAt(col int) (table.Field, bool) {
	idx := col - t.offset()
	if idx < 0 || idx >= len(t.snap.Fields) {
		return table.Field{}, false
	}
	return t.snap.Fields[idx], true
}

func (t *Table) headers(ctx RenderContext) []string {
	headers := make([]string, 0, len(t.snap.Fields)+t.offset())
	if t.snap.HasCheckboxes {
		headers = append(headers, NewCheckbox(t.snap.AllSelected).ViewWithContext(ctx))
	}
	for _, field := range t.snap.Fields {
		label := Truncate(field.Label, ctx.MaxCellWidth)
		if indicator := NewSortIndicator(field, t.snap.Sort).ViewWithContext(ctx); indicator != "" {
			label += " " + indicator
		}
		headers = append(headers, label)
	}
	return headers
}

func (t *Table) cells(ctx RenderContext) [][]string {
	out := make([][]string, 0, len(t.snap.Rows))
	for _, row := range t.snap.Rows {
		line := make([]string, 0, len(t.snap.Fields)+t.offset())
		if t.snap.HasCheckboxes {
			line = append(line, NewCheckbox(t.snap.IsSelected(row.Key)).Glyph())
		}
		for _, field := range t.snap.Fields {
			value, _ := row.Value(field.Key)
			line = append(line, Truncate(FormatValue(value), ctx.MaxCellWidth))
		}
		out = append(out, line)
	}
	return out
}

func (t *Table) cellStyle(theme Theme, row, col int) lipgloss.Style {
	style := PaddingX(cellPadding)(lipgloss.NewStyle(), theme)

	field, isField := t.fieldAt(col)
	switch {
	case !isField:
		style = style.Align(lipgloss.Center)
	case field.Numerical:
		style = style.Align(lipgloss.Right)
	}

	if row == ltable.HeaderRow {
		style = Typography(TypographyVariantHeader)(style, theme)
		if isField && col-t.offset() == t.cursorCol {
			style = style.Underline(true)
		}
		return style
	}

	if row >= 0 && row < len(t.snap.Rows) && t.snap.IsSelected(t.snap.Rows[row].Key) {
		style = Background(PaletteSelection)(style, theme)
	} else {
		style = Typography(TypographyVariantBody)(style, theme)
	}
	if row == t.cursorRow {
		style = style.Reverse(true)
	}
	return style
}

// FormatValue turns a cell value into display text. Missing values render
// empty.
func FormatValue(v any) string {
	var s string
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		s = x
	case time.Time:
		if x.IsZero() {
			return ""
		}
		s = x.Format(time.DateOnly)
	case float64:
		s = strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		s = strconv.FormatFloat(float64(x), 'f', -1, 32)
	case fmt.Stringer:
		s = x.String()
	default:
		s = fmt.Sprint(v)
	}
	return strings.Join(strings.Fields(s), " ")
}

// Truncate shortens s to at most width display cells, ending in an
// ellipsis when cut. A width below one leaves s untouched.
func Truncate(s string, width int) string {
	if width < 1 {
		return s
	}
	return runewidth.Truncate(s, width, ellipsis)
}

func formatSelection(selected, total int) string {
	return fmt.Sprintf("%d of %d selected", selected, total)
}
