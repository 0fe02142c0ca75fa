// Package natural orders cell values the way people read them: numbers and
// currency amounts numerically, dates chronologically, and text without regard
// to case with embedded digit runs compared as numbers.
package natural

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/cases"
)

// kind ranks normalized values when two cells hold different kinds of data.
type kind int

const (
	kindMissing kind = iota
	kindNumber
	kindInstant
	kindText
)

type normalized struct {
	kind kind
	num  float64
	at   time.Time
	text string
}

var (
	numberPattern = regexp.MustCompile(`^[+-]?(?:(?:\d{1,3}(?:,\d{3})+|\d+)(?:\.\d*)?|\.\d+)(?:[eE][+-]?\d+)?$`)

	dateLayouts = []string{
		time.RFC3339,
		"2006-01-02",
		"01/02/2006",
		"01/02/06",
	}
)

// Compare orders a and b ascending and returns -1, 0 or 1.
// Missing values (nil, nil pointers, blank strings, NaN) sort lowest; after
// them come numbers, then dates, then text.
func Compare(a, b any) int {
	return compareNormalized(normalize(a), normalize(b))
}

// Comparator returns a comparison function for the given direction.
// A descending comparator inverts Compare.
func Comparator(descending bool) func(a, b any) int {
	if descending {
		return func(a, b any) int { return -Compare(a, b) }
	}
	return Compare
}

// Numeric reports whether v normalizes to a number and returns it.
func Numeric(v any) (float64, bool) {
	n := normalize(v)
	return n.num, n.kind == kindNumber
}

func compareNormalized(a, b normalized) int {
	if a.kind != b.kind {
		return sign(int(a.kind) - int(b.kind))
	}

	switch a.kind {
	case kindNumber:
		switch {
		case a.num < b.num:
			return -1
		case a.num > b.num:
			return 1
		}
		return 0
	case kindInstant:
		return a.at.Compare(b.at)
	case kindText:
		return compareText(a.text, b.text)
	default:
		return 0
	}
}

func normalize(v any) normalized {
	switch x := v.(type) {
	case nil:
		return normalized{kind: kindMissing}
	case string:
		return normalizeString(x)
	case []byte:
		return normalizeString(string(x))
	case json.Number:
		return normalizeString(x.String())
	case time.Time:
		if x.IsZero() {
			return normalized{kind: kindMissing}
		}
		return normalized{kind: kindInstant, at: x}
	case bool:
		return normalized{kind: kindText, text: fold(strconv.FormatBool(x))}
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return number(float64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return number(float64(rv.Uint()))
	case reflect.Float32, reflect.Float64:
		return number(rv.Float())
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return normalized{kind: kindMissing}
		}
		return normalize(rv.Elem().Interface())
	case reflect.String:
		return normalizeString(rv.String())
	}

	return normalizeString(fmt.Sprint(v))
}

func number(f float64) normalized {
	if math.IsNaN(f) {
		return normalized{kind: kindMissing}
	}
	return normalized{kind: kindNumber, num: f}
}

func normalizeString(s string) normalized {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return normalized{kind: kindMissing}
	}
	if f, ok := parseNumber(trimmed); ok {
		return number(f)
	}
	if at, ok := parseDate(trimmed); ok {
		return normalized{kind: kindInstant, at: at}
	}
	return normalized{kind: kindText, text: fold(trimmed)}
}

// parseNumber accepts plain numbers plus the decorations people put on them:
// currency symbols, thousands separators, a trailing percent sign and
// accounting-style parentheses for negatives.
func parseNumber(s string) (float64, bool) {
	negate := false
	if len(s) > 2 && s[0] == '(' && s[len(s)-1] == ')' {
		negate = true
		s = s[1 : len(s)-1]
	}
	s = strings.TrimSuffix(s, "%")

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.Is(unicode.Sc, r) || unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	cleaned := b.String()
	if !numberPattern.MatchString(cleaned) {
		return 0, false
	}

	f, err := strconv.ParseFloat(strings.ReplaceAll(cleaned, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	if negate {
		f = -f
	}
	return f, true
}

func parseDate(s string) (time.Time, bool) {
	if !strings.ContainsAny(s, "/-") {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if at, err := time.Parse(layout, s); err == nil {
			return at, true
		}
	}
	return time.Time{}, false
}

// fold applies Unicode case folding. Casers carry state, so one is built per call.
func fold(s string) string {
	return cases.Fold().String(s)
}

// compareText walks both strings chunk by chunk. Runs of ASCII digits compare
// by numeric value, everything else byte-wise.
func compareText(a, b string) int {
	for a != "" && b != "" {
		chunkA, restA := nextChunk(a)
		chunkB, restB := nextChunk(b)

		var c int
		if isDigit(chunkA[0]) && isDigit(chunkB[0]) {
			c = compareDigits(chunkA, chunkB)
		} else {
			c = strings.Compare(chunkA, chunkB)
		}
		if c != 0 {
			return c
		}
		a, b = restA, restB
	}

	switch {
	case a == "" && b == "":
		return 0
	case a == "":
		return -1
	default:
		return 1
	}
}

func nextChunk(s string) (string, string) {
	digits := isDigit(s[0])
	i := 1
	for i < len(s) && isDigit(s[i]) == digits {
		i++
	}
	return s[:i], s[i:]
}

func compareDigits(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		return sign(len(a) - len(b))
	}
	return strings.Compare(a, b)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
