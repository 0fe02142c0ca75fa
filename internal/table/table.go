// Package table holds the state machine behind a sortable, selectable data
// table: column descriptors, caller-owned rows, sort and selection state, a
// pure reducer over that state and a Controller that dispatches events and
// check/uncheck callbacks for a host view layer.
package table

type (
	// FieldKey names a column and the row value it reads.
	FieldKey string

	// RowKey is the caller-assigned identity of a row. It must be unique
	// within a row list and stable across re-sorts and re-renders.
	RowKey string

	// Field describes one column. Numerical is a right-alignment hint for
	// renderers; only Sortable columns accept sort requests.
	Field struct {
		Key       FieldKey `json:"key" yaml:"key"`
		Label     string   `json:"label" yaml:"label"`
		Numerical bool     `json:"numerical,omitempty" yaml:"numerical,omitempty"`
		Sortable  bool     `json:"sortable,omitempty" yaml:"sortable,omitempty"`
	}

	// Fields is an ordered set of column descriptors.
	Fields []Field

	// Row is one record of caller data.
	Row struct {
		Key    RowKey           `json:"key"`
		Values map[FieldKey]any `json:"values"`
	}
)

// NewRow builds a Row from a key and a plain string-keyed value map.
func NewRow(key RowKey, values map[string]any) Row {
	converted := make(map[FieldKey]any, len(values))
	for k, v := range values {
		converted[FieldKey(k)] = v
	}
	return Row{Key: key, Values: converted}
}

// Value returns the row's value for a field. Missing fields report false.
func (r Row) Value(key FieldKey) (any, bool) {
	v, ok := r.Values[key]
	return v, ok
}

// Lookup returns the descriptor for key.
func (f Fields) Lookup(key FieldKey) (Field, bool) {
	for _, field := range f {
		if field.Key == key {
			return field, true
		}
	}
	return Field{}, false
}

// Index returns the position of key, or -1.
func (f Fields) Index(key FieldKey) int {
	for i, field := range f {
		if field.Key == key {
			return i
		}
	}
	return -1
}

// Sortable returns the sortable columns in order.
func (f Fields) Sortable() Fields {
	var out Fields
	for _, field := range f {
		if field.Sortable {
			out = append(out, field)
		}
	}
	return out
}
