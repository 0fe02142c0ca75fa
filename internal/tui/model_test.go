package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tablekit/internal/table"
)

func listingOptions() table.Options {
	return table.Options{
		Header:        "Table header",
		HasCheckboxes: true,
		Fields: table.Fields{
			{Key: "date", Label: "Date", Sortable: true},
			{Key: "event", Label: "Event"},
			{Key: "price", Label: "Price", Numerical: true, Sortable: true},
		},
	}
}

func listingRows() []table.Row {
	return []table.Row{
		table.NewRow("3oirj923o", map[string]any{"date": "02/01/17", "event": "Price Change", "price": "$24,500,000"}),
		table.NewRow("xzvxzcv", map[string]any{"date": "02/01/17", "event": "Open House", "price": "$5,500,000"}),
		table.NewRow("efsadf", map[string]any{"date": "03/14/16", "event": "Showing", "price": "$1,000"}),
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
)

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		next, ok := updated.(Model)
		require.True(t, ok)
		m = next
	}
	return m
}

func TestCursorMovementClamps(t *testing.T) {
	t.Parallel()

	m := NewModel(listingOptions(), listingRows(), Options{})

	m = send(t, m, keyUp, runes("k"))
	row, col := m.Cursor()
	assert.Equal(t, 0, row)
	assert.Equal(t, 0, col)

	m = send(t, m, keyDown, runes("j"), keyDown, keyDown, keyRight, runes("l"), keyRight, keyRight)
	row, col = m.Cursor()
	assert.Equal(t, 2, row)
	assert.Equal(t, 2, col)

	m = send(t, m, keyLeft, runes("h"))
	_, col = m.Cursor()
	assert.Equal(t, 0, col)
}

func TestSortKeepsCursorOnRow(t *testing.T) {
	t.Parallel()

	m := NewModel(listingOptions(), listingRows(), Options{})

	m = send(t, m, runes("3"))
	require.Equal(t, table.SortState{Column: "price", Descending: true}, m.Controller().Sort())
	row, col := m.Cursor()
	assert.Equal(t, 0, row)
	assert.Equal(t, 2, col)

	m = send(t, m, keyEnter)
	require.False(t, m.Controller().Sort().Descending)
	row, _ = m.Cursor()
	assert.Equal(t, 2, row, "cursor follows the focused row")
	assert.Equal(t, table.RowKey("3oirj923o"), m.Controller().Rows()[row].Key)
}

func TestSortNonSortableColumnShowsNotice(t *testing.T) {
	t.Parallel()

	m := NewModel(listingOptions(), listingRows(), Options{})
	m = send(t, m, runes("2"))

	require.False(t, m.Controller().Sort().Active())
	require.Equal(t, "Event is not sortable", m.Status())
	_, col := m.Cursor()
	require.Equal(t, 1, col)

	m = send(t, m, runes("9"))
	require.Empty(t, m.Status(), "out of range index is ignored")
}

func TestSortIndexIgnoresNonNumericKeys(t *testing.T) {
	t.Parallel()

	km := DefaultKeyMap()
	km.SortIndex = key.NewBinding(key.WithKeys("x", "0", "-1", "3"))
	m := NewModel(listingOptions(), listingRows(), Options{KeyMap: &km})

	m = send(t, m, runes("x"), runes("0"), runes("-1"))
	require.False(t, m.Controller().Sort().Active())
	require.Empty(t, m.Status())
	_, col := m.Cursor()
	require.Equal(t, 0, col)

	m = send(t, m, runes("3"))
	require.Equal(t, table.FieldKey("price"), m.Controller().Sort().Column)
	_, col = m.Cursor()
	require.Equal(t, 2, col)
}

func TestColumnIndex(t *testing.T) {
	t.Parallel()

	cases := []struct {
		key  string
		want int
		ok   bool
	}{
		{key: "1", want: 0, ok: true},
		{key: "9", want: 8, ok: true},
		{key: "12", want: 11, ok: true},
		{key: "0"},
		{key: "-3"},
		{key: "x"},
		{key: "f1"},
		{key: ""},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.key, func(t *testing.T) {
			t.Parallel()

			got, ok := columnIndex(tc.key)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestToggleRowRecordsNotification(t *testing.T) {
	t.Parallel()

	var checked []table.RowKey
	opts := listingOptions()
	opts.OnCheck = func(row table.Row) { checked = append(checked, row.Key) }

	m := NewModel(opts, listingRows(), Options{})
	m = send(t, m, keyDown, keySpace)

	require.Equal(t, []table.RowKey{"xzvxzcv"}, checked)
	require.True(t, m.Controller().IsSelected("xzvxzcv"))
	require.Equal(t, "checked xzvxzcv", m.Status())

	m = send(t, m, keySpace)
	require.False(t, m.Controller().IsSelected("xzvxzcv"))
	require.Equal(t, "unchecked xzvxzcv", m.Status())
}

func TestToggleAllKey(t *testing.T) {
	t.Parallel()

	m := NewModel(listingOptions(), listingRows(), Options{})

	m = send(t, m, runes("a"))
	require.True(t, m.Controller().AllSelected())

	m = send(t, m, runes("a"))
	require.Empty(t, m.Controller().SelectedKeys())
}

func TestSelectionKeysDisabledWithoutCheckboxes(t *testing.T) {
	t.Parallel()

	opts := listingOptions()
	opts.HasCheckboxes = false
	m := NewModel(opts, listingRows(), Options{})

	m = send(t, m, keySpace, runes("a"))
	require.Empty(t, m.Controller().SelectedKeys())
	require.Empty(t, m.Status())
	require.NotContains(t, m.View(), "toggle row")
}

func TestQuit(t *testing.T) {
	t.Parallel()

	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		m := NewModel(listingOptions(), listingRows(), Options{})
		updated, cmd := m.Update(msg)
		require.NotNil(t, cmd)
		require.IsType(t, tea.QuitMsg{}, cmd())

		m = updated.(Model)
		require.True(t, m.Quitting())
		require.Empty(t, m.View())
	}
}

func TestViewShowsTableAndHelp(t *testing.T) {
	t.Parallel()

	m := NewModel(listingOptions(), listingRows(), Options{MaxCellWidth: 8})
	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	out := m.View()
	require.Contains(t, out, "Table header")
	require.Contains(t, out, "Open Ho…")
	require.Contains(t, out, "quit")
	require.NotContains(t, out, "toggle all")

	m = send(t, m, runes("?"))
	require.Contains(t, m.View(), "toggle all")
}

func TestRowsMsgKeepsFocus(t *testing.T) {
	t.Parallel()

	m := NewModel(listingOptions(), listingRows(), Options{})
	m = send(t, m, keyDown, keyDown)

	rows := listingRows()
	m = send(t, m, RowsMsg{Rows: []table.Row{rows[2], rows[0]}})
	row, _ := m.Cursor()
	require.Equal(t, 0, row)

	m = send(t, m, RowsMsg{Rows: nil})
	row, _ = m.Cursor()
	require.Equal(t, 0, row)
	require.Contains(t, m.View(), "no rows")
}
