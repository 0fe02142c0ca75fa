package table

import (
	"slices"

	"github.com/alexisbeaulieu97/tablekit/internal/logger"
)

// Options configures a Controller. OnCheck and OnUncheck may be nil.
type Options struct {
	Fields        Fields
	Header        string
	HasCheckboxes bool
	FullWidth     bool

	// DefaultDescending is the direction a column starts in when it becomes
	// the active sort column. Nil means descending.
	DefaultDescending *bool

	OnCheck   func(Row)
	OnUncheck func(Row)

	Logger *logger.Logger
}

func (o Options) defaultDescending() bool {
	if o.DefaultDescending == nil {
		return true
	}
	return *o.DefaultDescending
}

// Controller owns the sort and selection state of one mounted table and
// applies events to it. It is not safe for concurrent use. Events dispatched
// from inside OnCheck/OnUncheck are queued and applied, in order, once the
// current event and its callbacks have finished.
type Controller struct {
	opts  Options
	rows  []Row
	state State

	version uint64
	view    viewCache

	dispatching bool
	pending     []Event

	log *logger.Logger
}

// New mounts a controller over rows.
func New(opts Options, rows []Row) *Controller {
	c := &Controller{
		opts:  opts,
		rows:  rows,
		state: NewState(opts.defaultDescending()),
		log:   opts.Logger.Component("table"),
	}
	c.state.Selection = c.state.Selection.reconcile(c.displayed())
	return c
}

// replaceRows is queued like any other event so a callback may swap data.
type replaceRows struct{ rows []Row }

func (replaceRows) isEvent() {}

// SetRows replaces the row list for the next render pass. Sort and selection
// state carry over; selection stays keyed by row key.
func (c *Controller) SetRows(rows []Row) {
	c.Dispatch(replaceRows{rows: rows})
}

// SortBy requests a sort on column.
func (c *Controller) SortBy(column FieldKey) {
	c.Dispatch(SortBy{Column: column})
}

// ToggleRow flips the selection of the row with key.
func (c *Controller) ToggleRow(key RowKey) {
	c.Dispatch(ToggleRow{Key: key})
}

// SelectAll selects every displayed row.
func (c *Controller) SelectAll() {
	c.Dispatch(SelectAll{})
}

// UnselectAll unchecks every displayed row. Keys of rows removed by
// SetRows stay selected.
func (c *Controller) UnselectAll() {
	c.Dispatch(UnselectAll{})
}

// ToggleAll is the header checkbox: it unselects everything when all rows
// are selected and selects everything otherwise.
func (c *Controller) ToggleAll() {
	if c.state.Selection.AllSelected() && len(c.rows) > 0 {
		c.UnselectAll()
		return
	}
	c.SelectAll()
}

// Dispatch applies e and delivers the resulting notifications.
func (c *Controller) Dispatch(e Event) {
	c.pending = append(c.pending, e)
	if c.dispatching {
		c.log.Debug("queued reentrant event", "event", eventName(e))
		return
	}

	c.dispatching = true
	defer func() {
		c.dispatching = false
		c.pending = nil
	}()

	for len(c.pending) > 0 {
		next := c.pending[0]
		c.pending = c.pending[1:]
		c.apply(next)
	}
}

func (c *Controller) apply(e Event) {
	if ev, ok := e.(replaceRows); ok {
		c.rows = ev.rows
		c.version++
		c.state.Selection = c.state.Selection.reconcile(c.displayed())
		c.log.Debug("rows replaced", "rows", len(ev.rows))
		return
	}

	before := c.state
	next, notes := Reduce(c.env(), c.state, e)
	c.state = next

	if before.Sort != next.Sort {
		c.log.Debug("sort changed", "column", string(next.Sort.Column), "direction", next.Sort.Direction().String())
	} else if len(notes) == 0 && before.Selection.Len() == next.Selection.Len() {
		c.log.Debug("event ignored", "event", eventName(e))
	}

	for _, note := range notes {
		c.deliver(note)
	}
}

func (c *Controller) deliver(note Notification) {
	var callback func(Row)
	switch note.Kind {
	case Checked:
		callback = c.opts.OnCheck
	case Unchecked:
		callback = c.opts.OnUncheck
	}
	c.log.Debug("row "+note.Kind.String(), "key", string(note.Row.Key))
	if callback != nil {
		callback(note.Row)
	}
}

func (c *Controller) env() Env {
	return Env{
		Fields:            c.opts.Fields,
		Rows:              c.displayed(),
		DefaultDescending: c.opts.defaultDescending(),
		Selectable:        c.opts.HasCheckboxes,
	}
}

func (c *Controller) displayed() []Row {
	return c.view.get(c.version, c.state.Sort, c.rows)
}

// Rows returns the rows in display order. The slice is the caller's to keep.
func (c *Controller) Rows() []Row {
	return slices.Clone(c.displayed())
}

// Fields returns the column descriptors.
func (c *Controller) Fields() Fields {
	return slices.Clone(c.opts.Fields)
}

// Sort returns the current sort state.
func (c *Controller) Sort() SortState {
	return c.state.Sort
}

// State returns a copy of the full table state.
func (c *Controller) State() State {
	return c.state
}

// IsSelected reports whether the row with key is selected.
func (c *Controller) IsSelected(key RowKey) bool {
	return c.state.Selection.IsSelected(key)
}

// SelectedKeys returns the selected keys in display order.
func (c *Controller) SelectedKeys() []RowKey {
	return c.state.Selection.KeysIn(c.displayed())
}

// AllSelected reports whether every current row is selected.
func (c *Controller) AllSelected() bool {
	return c.state.Selection.AllSelected()
}

// Options returns the configuration the controller was built with.
func (c *Controller) Options() Options {
	return c.opts
}

// Snapshot captures everything a renderer needs for one frame.
type Snapshot struct {
	Header        string    `json:"header,omitempty"`
	Fields        Fields    `json:"fields"`
	Rows          []Row     `json:"rows"`
	Sort          SortState `json:"sort"`
	Selected      []RowKey  `json:"selected"`
	AllSelected   bool      `json:"all_selected"`
	HasCheckboxes bool      `json:"has_checkboxes"`
	FullWidth     bool      `json:"full_width"`
}

// Snapshot returns the current render state.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Header:        c.opts.Header,
		Fields:        c.Fields(),
		Rows:          c.Rows(),
		Sort:          c.state.Sort,
		Selected:      c.SelectedKeys(),
		AllSelected:   c.state.Selection.AllSelected(),
		HasCheckboxes: c.opts.HasCheckboxes,
		FullWidth:     c.opts.FullWidth,
	}
}

// IsSelected reports whether key is in the snapshot's selection.
func (s Snapshot) IsSelected(key RowKey) bool {
	return slices.Contains(s.Selected, key)
}

func eventName(e Event) string {
	switch e.(type) {
	case SortBy:
		return "sort_by"
	case ToggleRow:
		return "toggle_row"
	case SelectAll:
		return "select_all"
	case UnselectAll:
		return "unselect_all"
	case replaceRows:
		return "replace_rows"
	default:
		return "unknown"
	}
}
