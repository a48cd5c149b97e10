package table

import (
	"strings"

	"github.com/matzehuels/facetplot/pkg/errors"
)

// Table is a raw wide table: a header of unique column names and rows of
// string cells. Every row has exactly len(Header) cells.
//
// A Table is never modified after construction; Reshape and the accessors
// below return fresh slices.
type Table struct {
	Header []string
	Rows   [][]string

	// Lines holds the 1-based source line of each row, when known.
	Lines []int
}

// New validates header and rows and returns a Table.
// It fails with a schema error on an empty or duplicate column name or on a
// row whose width differs from the header. Row numbers in messages are
// 1-based data lines (the header is line 1 of the file, so data row 1 is
// file line 2).
func New(header []string, rows [][]string) (*Table, error) {
	if len(header) == 0 {
		return nil, errors.New(errors.ErrCodeSchema, "table has no columns")
	}
	seen := make(map[string]int, len(header))
	for i, name := range header {
		if name == "" {
			return nil, errors.New(errors.ErrCodeSchema, "column %d has an empty name", i+1)
		}
		if j, dup := seen[name]; dup {
			return nil, errors.New(errors.ErrCodeSchema, "duplicate column %q (columns %d and %d)", name, j+1, i+1)
		}
		seen[name] = i
	}
	for i, row := range rows {
		if len(row) != len(header) {
			return nil, errors.New(errors.ErrCodeSchema, "row %d has %d cells, header has %d", i+1, len(row), len(header))
		}
	}
	return &Table{Header: header, Rows: rows}, nil
}

// NewWithLines is New for rows read from a file; lines[i] is the source
// line of rows[i] and is used in error messages.
func NewWithLines(header []string, rows [][]string, lines []int) (*Table, error) {
	if len(lines) != len(rows) {
		return nil, errors.New(errors.ErrCodeInternal, "%d line numbers for %d rows", len(lines), len(rows))
	}
	t, err := New(header, rows)
	if err != nil {
		return nil, err
	}
	t.Lines = lines
	return t, nil
}

// Line returns the source line of row r. Without recorded lines the header
// is assumed to be line 1, so row 0 is line 2.
func (t *Table) Line(r int) int {
	if r < len(t.Lines) {
		return t.Lines[r]
	}
	return r + 2
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.Rows) }

// Index returns the position of the named column, or -1.
func (t *Table) Index(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// Column returns a copy of the named column's cells.
func (t *Table) Column(name string) ([]string, bool) {
	i := t.Index(name)
	if i < 0 {
		return nil, false
	}
	col := make([]string, len(t.Rows))
	for r, row := range t.Rows {
		col[r] = row[i]
	}
	return col, true
}

// MatchPrefix returns the column names starting with prefix, in header order.
func (t *Table) MatchPrefix(prefix string) []string {
	var out []string
	for _, h := range t.Header {
		if strings.HasPrefix(h, prefix) {
			out = append(out, h)
		}
	}
	return out
}
