package io

import (
	"bufio"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/matzehuels/facetplot/pkg/errors"
	"github.com/matzehuels/facetplot/pkg/table"
)

// ExportOptions names the category and value columns of the long table.
// Empty fields take the table package defaults.
type ExportOptions struct {
	CategoryName string
	ValueName    string
}

// WriteTidy writes t to w as a tab-separated long table.
func WriteTidy(t *table.TidyTable, w io.Writer, opts ExportOptions) error {
	if opts.CategoryName == "" {
		opts.CategoryName = table.DefaultCategoryName
	}
	if opts.ValueName == "" {
		opts.ValueName = table.DefaultValueName
	}

	bw := bufio.NewWriter(w)
	header := append(append([]string{}, t.IDColumns...), opts.CategoryName, opts.ValueName)
	bw.WriteString(strings.Join(header, "\t"))
	bw.WriteByte('\n')

	for _, r := range t.Rows {
		for _, id := range r.IDs {
			bw.WriteString(id)
			bw.WriteByte('\t')
		}
		bw.WriteString(r.Category)
		bw.WriteByte('\t')
		bw.WriteString(formatValue(r.Value))
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write tidy table")
	}
	return nil
}

// ExportTidy writes t to a file at path.
func ExportTidy(t *table.TidyTable, path string, opts ExportOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "create %s", path)
	}
	if err := WriteTidy(t, f, opts); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "close %s", path)
	}
	return nil
}

func formatValue(v float64) string {
	if math.IsNaN(v) {
		return "NA"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
