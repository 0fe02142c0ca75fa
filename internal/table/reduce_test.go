package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listingEnv() Env {
	return Env{
		Fields:            listingFields(),
		Rows:              listingRows(),
		DefaultDescending: true,
		Selectable:        true,
	}
}

func TestReduceSortTransitions(t *testing.T) {
	t.Parallel()

	env := listingEnv()
	s := NewState(true)
	require.False(t, s.Sort.Active())
	require.Equal(t, SortNone, s.Sort.Direction())

	s, notes := Reduce(env, s, SortBy{Column: "price"})
	require.Empty(t, notes)
	require.Equal(t, SortState{Column: "price", Descending: true}, s.Sort)

	s, _ = Reduce(env, s, SortBy{Column: "price"})
	require.Equal(t, SortState{Column: "price", Descending: false}, s.Sort)
	require.Equal(t, SortAscending, s.Sort.Direction())

	s, _ = Reduce(env, s, SortBy{Column: "date"})
	require.Equal(t, SortState{Column: "date", Descending: true}, s.Sort, "new column resets direction")
}

func TestReduceSortHonoursConfiguredDefault(t *testing.T) {
	t.Parallel()

	env := listingEnv()
	env.DefaultDescending = false

	s, _ := Reduce(env, NewState(false), SortBy{Column: "date"})
	require.Equal(t, SortState{Column: "date", Descending: false}, s.Sort)
}

func TestReduceIgnoresInvalidSortRequests(t *testing.T) {
	t.Parallel()

	env := listingEnv()
	start, _ := Reduce(env, NewState(true), SortBy{Column: "price"})

	for _, column := range []FieldKey{"event", "missing", ""} {
		next, notes := Reduce(env, start, SortBy{Column: column})
		assert.Equal(t, start.Sort, next.Sort, "column %q", column)
		assert.Empty(t, notes)
	}
}

func TestReduceToggleRow(t *testing.T) {
	t.Parallel()

	env := listingEnv()
	s := NewState(true)

	s, notes := Reduce(env, s, ToggleRow{Key: "ssssdas"})
	require.Len(t, notes, 1)
	require.Equal(t, Checked, notes[0].Kind)
	require.Equal(t, RowKey("ssssdas"), notes[0].Row.Key)
	require.True(t, s.Selection.IsSelected("ssssdas"))
	require.False(t, s.Selection.AllSelected())

	s, notes = Reduce(env, s, ToggleRow{Key: "ssssdas"})
	require.Len(t, notes, 1)
	require.Equal(t, Unchecked, notes[0].Kind)
	require.Equal(t, 0, s.Selection.Len())
}

func TestReduceToggleUnknownKeyIsIgnored(t *testing.T) {
	t.Parallel()

	env := listingEnv()
	s := NewState(true)

	next, notes := Reduce(env, s, ToggleRow{Key: "nope"})
	require.Empty(t, notes)
	require.Equal(t, 0, next.Selection.Len())
}

func TestReduceDoesNotMutateInputState(t *testing.T) {
	t.Parallel()

	env := listingEnv()
	before := NewState(true)

	after, _ := Reduce(env, before, ToggleRow{Key: "efsadf"})
	require.True(t, after.Selection.IsSelected("efsadf"))
	require.False(t, before.Selection.IsSelected("efsadf"))

	cleared, _ := Reduce(env, after, UnselectAll{})
	require.True(t, after.Selection.IsSelected("efsadf"))
	require.False(t, cleared.Selection.IsSelected("efsadf"))
}

func TestReduceAllSelectedTracksEveryToggle(t *testing.T) {
	t.Parallel()

	env := listingEnv()
	s := NewState(true)

	for i, row := range env.Rows {
		s, _ = Reduce(env, s, ToggleRow{Key: row.Key})
		assert.Equal(t, i == len(env.Rows)-1, s.Selection.AllSelected(), "after %d toggles", i+1)
		assert.Equal(t, s.Selection.Len() == len(env.Rows), s.Selection.AllSelected())
	}

	s, _ = Reduce(env, s, ToggleRow{Key: env.Rows[2].Key})
	require.False(t, s.Selection.AllSelected())
}

func TestReduceSelectAllSkipsAlreadySelected(t *testing.T) {
	t.Parallel()

	env := listingEnv()
	s, _ := Reduce(env, NewState(true), ToggleRow{Key: "xzvxzcv"})

	s, notes := Reduce(env, s, SelectAll{})
	require.True(t, s.Selection.AllSelected())
	require.Equal(t, len(env.Rows), s.Selection.Len())

	var checked []RowKey
	for _, n := range notes {
		require.Equal(t, Checked, n.Kind)
		checked = append(checked, n.Row.Key)
	}
	require.Equal(t, []RowKey{"3oirj923o", "ssssdas", "efsadf", "2398ro829j", "3289rj92r"}, checked)

	_, notes = Reduce(env, s, SelectAll{})
	require.Empty(t, notes, "select all twice must not notify again")
}

func TestReduceUnselectAllNotifiesInRowOrder(t *testing.T) {
	t.Parallel()

	env := listingEnv()
	s := NewState(true)
	s, _ = Reduce(env, s, ToggleRow{Key: "3289rj92r"})
	s, _ = Reduce(env, s, ToggleRow{Key: "3oirj923o"})

	s, notes := Reduce(env, s, UnselectAll{})
	require.Len(t, notes, 2)
	require.Equal(t, RowKey("3oirj923o"), notes[0].Row.Key)
	require.Equal(t, RowKey("3289rj92r"), notes[1].Row.Key)
	require.Equal(t, Unchecked, notes[1].Kind)
	require.Equal(t, 0, s.Selection.Len())
	require.False(t, s.Selection.AllSelected())
}

func TestReduceSelectionDisabledWithoutCheckboxes(t *testing.T) {
	t.Parallel()

	env := listingEnv()
	env.Selectable = false
	s := NewState(true)

	for _, e := range []Event{ToggleRow{Key: "xzvxzcv"}, SelectAll{}, UnselectAll{}} {
		next, notes := Reduce(env, s, e)
		require.Empty(t, notes)
		require.Equal(t, 0, next.Selection.Len())
	}
}

func TestReduceEmptyTable(t *testing.T) {
	t.Parallel()

	env := listingEnv()
	env.Rows = nil

	s, notes := Reduce(env, NewState(true), SelectAll{})
	require.Empty(t, notes)
	require.True(t, s.Selection.AllSelected(), "zero selected keys equals zero rows")

	s, notes = Reduce(env, s, UnselectAll{})
	require.Empty(t, notes)
	require.True(t, s.Selection.AllSelected())
}

func TestEnumStrings(t *testing.T) {
	t.Parallel()

	require.Equal(t, "checked", Checked.String())
	require.Equal(t, "unchecked", Unchecked.String())
	require.Equal(t, "unknown(9)", NotificationKind(9).String())
	require.Equal(t, "descending", SortDescending.String())
	require.Equal(t, "unknown(7)", Direction(7).String())
}
