package table

import (
	"slices"

	"github.com/alexisbeaulieu97/tablekit/internal/natural"
)

// SortRows returns rows ordered by s. The input slice is never reordered.
// Ties keep their input order, and rows lacking the sort field sort as the
// lowest values.
func SortRows(rows []Row, s SortState) []Row {
	out := slices.Clone(rows)
	if !s.Active() {
		return out
	}

	cmp := natural.Comparator(s.Descending)
	column := s.Column
	slices.SortStableFunc(out, func(a, b Row) int {
		return cmp(a.Values[column], b.Values[column])
	})
	return out
}

// viewCache memoizes the sorted view for one (rows version, sort state) pair.
type viewCache struct {
	version uint64
	sort    SortState
	rows    []Row
	valid   bool
}

func (v *viewCache) get(version uint64, s SortState, source []Row) []Row {
	if v.valid && v.version == version && v.sort == s {
		return v.rows
	}
	v.rows = SortRows(source, s)
	v.version = version
	v.sort = s
	v.valid = true
	return v.rows
}
