// Package records turns lines of text into sortable records and provides
// the orderings the lazysort command uses for them.
package records

import (
	"bufio"
	"cmp"
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/KasperOmsK/lazysort"
)

// maxLineSize bounds a single input line.
const maxLineSize = 1 << 20

var ErrInvalidJSON = errors.New("invalid JSON")

// Record is one input line together with the key it is sorted by.
type Record struct {
	// Line is the 1-based position of the record in its input.
	Line int
	Text string
	Key  string

	// Num is Key parsed as a float64. It is only meaningful when
	// Numeric is true.
	Num     float64
	Numeric bool
}

// Orderable reports whether the record takes part in numeric ordering.
// Records whose key is not a number, or is NaN, do not.
func (r Record) Orderable() bool {
	return r.Numeric && !math.IsNaN(r.Num)
}

// KeyFunc extracts the sort key from a line.
type KeyFunc func(line string) (string, error)

// WholeLine uses the full line as key.
func WholeLine() KeyFunc {
	return func(line string) (string, error) {
		return line, nil
	}
}

// Field uses the n-th (1-based) whitespace separated field as key. Lines
// with fewer fields get an empty key. Field(0) is WholeLine.
func Field(n int) KeyFunc {
	if n <= 0 {
		return WholeLine()
	}
	return func(line string) (string, error) {
		fields := strings.Fields(line)
		if n > len(fields) {
			return "", nil
		}
		return fields[n-1], nil
	}
}

// JSONPath treats each line as a JSON document and uses the value at path
// (gjson syntax) as key. Documents without the path get an empty key.
func JSONPath(path string) KeyFunc {
	return func(line string) (string, error) {
		if !gjson.Valid(line) {
			return "", ErrInvalidJSON
		}
		return gjson.Get(line, path).String(), nil
	}
}

// Read splits r into lines and builds a Record for each of them.
func Read(r io.Reader, key KeyFunc) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var out []Record
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()

		k, err := key(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		rec := Record{Line: line, Text: text, Key: k}
		if f, err := strconv.ParseFloat(strings.TrimSpace(k), 64); err == nil {
			rec.Num, rec.Numeric = f, true
		}
		out = append(out, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w", line+1, err)
	}

	return out, nil
}

// CompareText orders records by key, byte-wise.
func CompareText(a, b Record) int {
	return strings.Compare(a.Key, b.Key)
}

// CompareNumeric orders records by numeric key. Records that are not
// Orderable cannot be compared with anything, themselves included.
func CompareNumeric(a, b Record) (int, bool) {
	if !a.Orderable() || !b.Orderable() {
		return 0, false
	}
	return cmp.Compare(a.Num, b.Num), true
}

// Options selects how Sort orders records.
type Options struct {
	// Numeric compares keys as numbers. Records without a numeric key are
	// grouped at the end, or at the start when NaNFirst is set.
	Numeric  bool
	NaNFirst bool

	// Reverse sorts in descending order. It does not move records without
	// a numeric key.
	Reverse bool
}

// Sort returns an Iterator over recs in the order described by opts.
func Sort(recs []Record, opts Options) *lazysort.Iterator[Record] {
	if opts.Numeric {
		pcmp := lazysort.PartialCompareFunc[Record](CompareNumeric)
		if opts.Reverse {
			pcmp = reversePartial(pcmp)
		}
		return lazysort.SortedPartialBy(slices.Values(recs), opts.NaNFirst, pcmp)
	}

	c := lazysort.CompareFunc[Record](CompareText)
	if opts.Reverse {
		c = lazysort.Reverse(c)
	}
	return lazysort.SortedSliceBy(recs, c)
}

func reversePartial[T any](pcmp lazysort.PartialCompareFunc[T]) lazysort.PartialCompareFunc[T] {
	return func(a, b T) (int, bool) {
		return pcmp(b, a)
	}
}
