package table

import "fmt"

// Direction is the display form of a sort state.
type Direction int

const (
	// SortNone means no column is active.
	SortNone Direction = iota
	// SortAscending orders smallest first.
	SortAscending
	// SortDescending orders largest first.
	SortDescending
)

// String returns the string representation of a Direction.
func (d Direction) String() string {
	switch d {
	case SortNone:
		return "none"
	case SortAscending:
		return "ascending"
	case SortDescending:
		return "descending"
	default:
		return fmt.Sprintf("unknown(%d)", int(d))
	}
}

// SortState is the active sort column and its direction. Descending only
// means something while Column is set.
type SortState struct {
	Column     FieldKey `json:"column,omitempty"`
	Descending bool     `json:"descending"`
}

// Active reports whether a column is being sorted on.
func (s SortState) Active() bool {
	return s.Column != ""
}

// Direction returns the effective direction, SortNone when inactive.
func (s SortState) Direction() Direction {
	switch {
	case !s.Active():
		return SortNone
	case s.Descending:
		return SortDescending
	default:
		return SortAscending
	}
}

// Selection is the set of selected row keys. Values are immutable: the
// reducer builds a new set on every change.
type Selection struct {
	keys map[RowKey]struct{}
	all  bool
}

// IsSelected reports whether key is selected.
func (s Selection) IsSelected(key RowKey) bool {
	_, ok := s.keys[key]
	return ok
}

// Len returns the number of selected keys.
func (s Selection) Len() int {
	return len(s.keys)
}

// AllSelected reports whether every current row is selected.
func (s Selection) AllSelected() bool {
	return s.all
}

// KeysIn returns the selected keys in the order they appear in rows.
// Selected keys with no row in rows are omitted.
func (s Selection) KeysIn(rows []Row) []RowKey {
	out := make([]RowKey, 0, len(s.keys))
	for _, row := range rows {
		if s.IsSelected(row.Key) {
			out = append(out, row.Key)
		}
	}
	return out
}

func (s Selection) with(key RowKey) Selection {
	next := s.clone()
	next[key] = struct{}{}
	return Selection{keys: next}
}

func (s Selection) without(key RowKey) Selection {
	next := s.clone()
	delete(next, key)
	return Selection{keys: next}
}

// reconcile recomputes the all-selected flag against rows: it holds when
// every current row is selected. Keys of rows no longer present are kept
// but do not count.
func (s Selection) reconcile(rows []Row) Selection {
	all := true
	for _, row := range rows {
		if !s.IsSelected(row.Key) {
			all = false
			break
		}
	}
	s.all = all
	return s
}

// clone copies the key set so the receiver stays untouched.
func (s Selection) clone() map[RowKey]struct{} {
	next := make(map[RowKey]struct{}, len(s.keys))
	for k := range s.keys {
		next[k] = struct{}{}
	}
	return next
}

// State is everything the table owns. The row list is external.
type State struct {
	Sort      SortState
	Selection Selection
}

// NewState returns the mount-time state: no active column, the given default
// direction and nothing selected.
func NewState(defaultDescending bool) State {
	return State{
		Sort:      SortState{Descending: defaultDescending},
		Selection: Selection{keys: map[RowKey]struct{}{}},
	}
}
