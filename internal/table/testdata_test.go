package table

func listingFields() Fields {
	return Fields{
		{Key: "date", Label: "Date", Sortable: true},
		{Key: "event", Label: "Event"},
		{Key: "price", Label: "Price", Numerical: true, Sortable: true},
	}
}

func listingRows() []Row {
	return []Row{
		NewRow("3oirj923o", map[string]any{"date": "02/01/17", "event": "Price Change", "price": "$24,500,000"}),
		NewRow("xzvxzcv", map[string]any{"date": "02/01/17", "event": "Open House", "price": "$5,500,000"}),
		NewRow("ssssdas", map[string]any{"date": "02/01/17", "event": "Showing", "price": "$14,500,000"}),
		NewRow("efsadf", map[string]any{"date": "02/01/17", "event": "Price Change", "price": "$774,500,000"}),
		NewRow("2398ro829j", map[string]any{"date": "03/14/16", "event": "Price Change", "price": "$28,500,000"}),
		NewRow("3289rj92r", map[string]any{"date": "05/10/14", "event": "Listed for sale", "price": "$37,500,000"}),
	}
}

func keysOf(rows []Row) []RowKey {
	out := make([]RowKey, len(rows))
	for i, row := range rows {
		out[i] = row.Key
	}
	return out
}

// recorder collects callback invocations in order.
type recorder struct {
	events []string
}

func (r *recorder) check(row Row)   { r.events = append(r.events, "check:"+string(row.Key)) }
func (r *recorder) uncheck(row Row) { r.events = append(r.events, "uncheck:"+string(row.Key)) }

func (r *recorder) options() Options {
	return Options{
		Fields:        listingFields(),
		HasCheckboxes: true,
		OnCheck:       r.check,
		OnUncheck:     r.uncheck,
	}
}
