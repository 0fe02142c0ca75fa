package natural

import (
	"encoding/json"
	"math"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sortedCopy(values []any, descending bool) []any {
	out := slices.Clone(values)
	slices.SortStableFunc(out, Comparator(descending))
	return out
}

func TestCurrencyStringsSortNumerically(t *testing.T) {
	t.Parallel()

	values := []any{"$1,200", "$45", "$300"}

	require.Equal(t, []any{"$45", "$300", "$1,200"}, sortedCopy(values, false))
	require.Equal(t, []any{"$1,200", "$300", "$45"}, sortedCopy(values, true))
}

func TestCompare(t *testing.T) {
	t.Parallel()

	var nilPtr *int
	five := 5

	cases := []struct {
		name string
		a, b any
		want int
	}{
		{name: "integers", a: 2, b: 10, want: -1},
		{name: "mixed numeric types", a: int64(3), b: 2.5, want: 1},
		{name: "numeric string against int", a: "10", b: 9, want: 1},
		{name: "equal after normalization", a: "$1,000", b: 1000, want: 0},
		{name: "euro and pound symbols", a: "€12.50", b: "£12.5", want: 0},
		{name: "negative currency", a: "-$5", b: "$1", want: -1},
		{name: "accounting negative", a: "(1,200)", b: "-1000", want: -1},
		{name: "percent", a: "12%", b: "9.5%", want: 1},
		{name: "padded number", a: "  42 ", b: "42", want: 0},
		{name: "nil is lowest", a: nil, b: -1e9, want: -1},
		{name: "nil pointer is missing", a: nilPtr, b: nil, want: 0},
		{name: "pointer is dereferenced", a: &five, b: 4, want: 1},
		{name: "blank string is missing", a: "   ", b: "a", want: -1},
		{name: "NaN is missing", a: math.NaN(), b: nil, want: 0},
		{name: "numbers before text", a: "999", b: "apple", want: -1},
		{name: "dates before text", a: "02/01/17", b: "Open House", want: -1},
		{name: "numbers before dates", a: "12", b: "2017-02-01", want: -1},
		{name: "short dates chronologically", a: "03/14/16", b: "02/01/17", want: -1},
		{name: "iso dates", a: "2024-01-31", b: "2024-01-05", want: 1},
		{name: "time values", a: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), b: "2021-01-01", want: -1},
		{name: "case insensitive text", a: "apple", b: "Apple", want: 0},
		{name: "text order", a: "Banana", b: "apple", want: 1},
		{name: "embedded digits", a: "file2", b: "file10", want: -1},
		{name: "leading zeros ignored", a: "unit007", b: "unit7", want: 0},
		{name: "prefix sorts first", a: "Price", b: "Price Change", want: -1},
		{name: "json number", a: json.Number("1e3"), b: 999, want: 1},
		{name: "bytes", a: []byte("b"), b: "A", want: 1},
		{name: "bools as text", a: false, b: true, want: -1},
		{name: "thousands separators must group", a: "1,2,3", b: "2", want: 1},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Compare(tc.a, tc.b))
			assert.Equal(t, -tc.want, Compare(tc.b, tc.a), "comparison must be antisymmetric")
		})
	}
}

func TestComparatorDirection(t *testing.T) {
	t.Parallel()

	asc := Comparator(false)
	desc := Comparator(true)

	require.Equal(t, -1, asc("$45", "$300"))
	require.Equal(t, 1, desc("$45", "$300"))
	require.Equal(t, 0, desc("x", "X"))
	require.Equal(t, 1, desc(nil, "anything"), "missing values are lowest so they come last descending")
}

func TestStableSortKeepsTies(t *testing.T) {
	t.Parallel()

	type cell struct {
		id    string
		value any
	}
	cells := []cell{
		{"a", "02/01/17"},
		{"b", "03/14/16"},
		{"c", "02/01/17"},
		{"d", "05/10/14"},
		{"e", "02/01/17"},
	}

	cmp := Comparator(true)
	slices.SortStableFunc(cells, func(x, y cell) int { return cmp(x.value, y.value) })

	ids := make([]string, len(cells))
	for i, c := range cells {
		ids[i] = c.id
	}
	require.Equal(t, []string{"a", "c", "e", "b", "d"}, ids)
}

func TestNumeric(t *testing.T) {
	t.Parallel()

	f, ok := Numeric("$24,500,000")
	require.True(t, ok)
	require.InDelta(t, 24500000.0, f, 0.0001)

	_, ok = Numeric("Open House")
	require.False(t, ok)

	_, ok = Numeric(nil)
	require.False(t, ok)
}
