package table

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/facetplot/pkg/errors"
)

// Default names for the category and value columns of an exported tidy table.
const (
	DefaultCategoryName = "Sample"
	DefaultValueName    = "Value"
)

// TidyRow is one observation: the value of measurement column Category for
// raw row Subject. IDs holds the kept identifier values in the order of the
// owning TidyTable's IDColumns.
type TidyRow struct {
	Subject  int
	IDs      []string
	Category string
	Value    float64
}

// TidyTable is the long form of a Table.
//
// Rows are ordered by subject, then by measurement column in original header
// order, so row i*len(Categories)+j belongs to subject i and Categories[j].
type TidyTable struct {
	IDColumns  []string
	Categories []string
	Rows       []TidyRow
}

// Reshape unpivots the columns of t whose names start with prefix.
//
// Columns named in drop are removed first; each must exist. The remaining
// non-measurement columns are carried unchanged on every output row.
//
// Reshape fails with a schema error if prefix is empty, if a dropped column is
// absent, if no remaining column matches prefix, or if a measurement cell does
// not parse as a number.
func Reshape(t *Table, prefix string, drop []string) (*TidyTable, error) {
	if err := errors.ValidatePrefix(prefix); err != nil {
		return nil, err
	}

	dropped := make(map[string]bool, len(drop))
	for _, name := range drop {
		if t.Index(name) < 0 {
			return nil, errors.New(errors.ErrCodeSchema, "cannot drop column %q: not present (columns: %s)",
				name, strings.Join(t.Header, ", "))
		}
		dropped[name] = true
	}

	var keep, measure []int
	for i, name := range t.Header {
		switch {
		case dropped[name]:
		case strings.HasPrefix(name, prefix):
			measure = append(measure, i)
		default:
			keep = append(keep, i)
		}
	}
	if len(measure) == 0 {
		return nil, errors.New(errors.ErrCodeSchema, "no column starts with %q (columns: %s)",
			prefix, strings.Join(t.Header, ", "))
	}

	tt := &TidyTable{
		IDColumns:  make([]string, len(keep)),
		Categories: make([]string, len(measure)),
		Rows:       make([]TidyRow, 0, len(t.Rows)*len(measure)),
	}
	for i, c := range keep {
		tt.IDColumns[i] = t.Header[c]
	}
	for i, c := range measure {
		tt.Categories[i] = t.Header[c]
	}

	for r, row := range t.Rows {
		ids := make([]string, len(keep))
		for i, c := range keep {
			ids[i] = row[c]
		}
		for _, c := range measure {
			v, err := ParseValue(row[c])
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeSchema, err,
					"column %q, line %d: non-numeric value %q", t.Header[c], t.Line(r), row[c])
			}
			tt.Rows = append(tt.Rows, TidyRow{
				Subject:  r,
				IDs:      ids,
				Category: t.Header[c],
				Value:    v,
			})
		}
	}
	return tt, nil
}

// ParseValue parses a measurement cell. Empty cells and the usual missing
// markers (NA, NaN, N/A, null; any case) yield NaN.
func ParseValue(s string) (float64, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "na", "nan", "n/a", "null":
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}

// Len returns the number of tidy rows.
func (t *TidyTable) Len() int { return len(t.Rows) }

// Subjects returns the number of raw rows the table was built from.
func (t *TidyTable) Subjects() int {
	if len(t.Categories) == 0 {
		return 0
	}
	return len(t.Rows) / len(t.Categories)
}

// Values returns the values of one category ordered by subject, NaN included.
// It returns nil for an unknown category.
func (t *TidyTable) Values(category string) []float64 {
	j := slices.Index(t.Categories, category)
	if j < 0 {
		return nil
	}
	m := len(t.Categories)
	out := make([]float64, 0, t.Subjects())
	for i := j; i < len(t.Rows); i += m {
		out = append(out, t.Rows[i].Value)
	}
	return out
}

// IDs returns the named identifier column, one entry per subject.
func (t *TidyTable) IDs(column string) ([]string, bool) {
	k := slices.Index(t.IDColumns, column)
	if k < 0 {
		return nil, false
	}
	m := len(t.Categories)
	out := make([]string, 0, t.Subjects())
	for i := 0; i < len(t.Rows); i += m {
		out = append(out, t.Rows[i].IDs[k])
	}
	return out, true
}

// Levels returns the distinct values of an identifier column in first-seen
// order.
func (t *TidyTable) Levels(column string) ([]string, bool) {
	ids, ok := t.IDs(column)
	if !ok {
		return nil, false
	}
	var levels []string
	seen := make(map[string]bool)
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			levels = append(levels, id)
		}
	}
	return levels, true
}
