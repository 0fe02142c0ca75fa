package table

import "fmt"

// Event is a user interaction the reducer understands.
type Event interface {
	isEvent()
}

type (
	// SortBy is a click on a column header.
	SortBy struct{ Column FieldKey }

	// ToggleRow flips one row's checkbox.
	ToggleRow struct{ Key RowKey }

	// SelectAll checks every displayed row.
	SelectAll struct{}

	// UnselectAll unchecks every displayed row.
	UnselectAll struct{}
)

func (SortBy) isEvent()      {}
func (ToggleRow) isEvent()   {}
func (SelectAll) isEvent()   {}
func (UnselectAll) isEvent() {}

// NotificationKind says which callback a Notification is for.
type NotificationKind int

const (
	// Checked maps to the host's on-check callback.
	Checked NotificationKind = iota
	// Unchecked maps to the host's on-uncheck callback.
	Unchecked
)

// String returns the string representation of a NotificationKind.
func (k NotificationKind) String() string {
	switch k {
	case Checked:
		return "checked"
	case Unchecked:
		return "unchecked"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Notification is a side effect the host must deliver after a transition.
type Notification struct {
	Kind NotificationKind
	Row  Row
}

// Env is the read-only input a transition needs besides State.
// Rows must be in display order.
type Env struct {
	Fields            Fields
	Rows              []Row
	DefaultDescending bool
	Selectable        bool
}

// Reduce applies e to s. It never mutates s or env and returns the
// notifications to deliver, in order. Requests that make no sense for the
// current table (unknown or non-sortable columns, unknown row keys, selection
// on a table without checkboxes) return s unchanged.
func Reduce(env Env, s State, e Event) (State, []Notification) {
	switch ev := e.(type) {
	case SortBy:
		return reduceSort(env, s, ev.Column), nil
	case ToggleRow:
		if !env.Selectable {
			return s, nil
		}
		return reduceToggle(env, s, ev.Key)
	case SelectAll:
		if !env.Selectable {
			return s, nil
		}
		return reduceSelectAll(env, s)
	case UnselectAll:
		if !env.Selectable {
			return s, nil
		}
		return reduceUnselectAll(env, s)
	default:
		return s, nil
	}
}

func reduceSort(env Env, s State, column FieldKey) State {
	field, ok := env.Fields.Lookup(column)
	if !ok || !field.Sortable {
		return s
	}

	if s.Sort.Active() && s.Sort.Column == column {
		s.Sort.Descending = !s.Sort.Descending
		return s
	}
	s.Sort = SortState{Column: column, Descending: env.DefaultDescending}
	return s
}

func reduceToggle(env Env, s State, key RowKey) (State, []Notification) {
	row, ok := findRow(env.Rows, key)
	if !ok {
		return s, nil
	}

	var note Notification
	if s.Selection.IsSelected(key) {
		s.Selection = s.Selection.without(key)
		note = Notification{Kind: Unchecked, Row: row}
	} else {
		s.Selection = s.Selection.with(key)
		note = Notification{Kind: Checked, Row: row}
	}
	s.Selection = s.Selection.reconcile(env.Rows)
	return s, []Notification{note}
}

func reduceSelectAll(env Env, s State) (State, []Notification) {
	var notes []Notification
	keys := s.Selection.clone()
	for _, row := range env.Rows {
		if !s.Selection.IsSelected(row.Key) {
			notes = append(notes, Notification{Kind: Checked, Row: row})
		}
		keys[row.Key] = struct{}{}
	}
	s.Selection = Selection{keys: keys}.reconcile(env.Rows)
	return s, notes
}

func reduceUnselectAll(env Env, s State) (State, []Notification) {
	var notes []Notification
	keys := s.Selection.clone()
	for _, row := range env.Rows {
		if s.Selection.IsSelected(row.Key) {
			notes = append(notes, Notification{Kind: Unchecked, Row: row})
			delete(keys, row.Key)
		}
	}
	s.Selection = Selection{keys: keys}.reconcile(env.Rows)
	return s, notes
}

func findRow(rows []Row, key RowKey) (Row, bool) {
	for _, row := range rows {
		if row.Key == key {
			return row, true
		}
	}
	return Row{}, false
}
