package io

import (
	"encoding/csv"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/matzehuels/facetplot/pkg/errors"
	"github.com/matzehuels/facetplot/pkg/table"
)

// Format identifies an input file format.
type Format string

const (
	FormatTSV  Format = "tsv"
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// Extensions lists the file extensions ImportTable reads, without dots.
func Extensions() []string {
	return []string{"tsv", "tab", "txt", "csv", "xlsx"}
}

// DetectFormat returns the format implied by path's extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tsv", ".tab", ".txt":
		return FormatTSV, nil
	case ".csv":
		return FormatCSV, nil
	case ".xlsx":
		return FormatXLSX, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat,
		"%s: unsupported extension %q (want .tsv, .tab, .txt, .csv or .xlsx)", path, filepath.Ext(path))
}

// ReadDelimited reads a header line and data lines separated by comma.
// Rows remember the file line they started on. Malformed input is a schema
// error; a failing reader is an I/O error. ReadDelimited does not close r.
func ReadDelimited(r io.Reader, comma rune) (*table.Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	var records [][]string
	var lines []int
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		var perr *csv.ParseError
		if stderrors.As(err, &perr) {
			return nil, errors.Wrap(errors.ErrCodeSchema, err, "parse delimited input")
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeIO, err, "read delimited input")
		}
		line, _ := cr.FieldPos(0)
		records = append(records, rec)
		lines = append(lines, line)
	}
	return fromRecords(records, lines, false)
}

// ReadXLSX reads a worksheet from an xlsx workbook. An empty sheet name
// selects the first sheet.
func ReadXLSX(path, sheet string) (*table.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "open %s", path)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New(errors.ErrCodeSchema, "%s: workbook has no sheets", path)
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeSchema, err, "%s: read sheet %q", path, sheet)
	}
	lines := make([]int, len(rows))
	for i := range lines {
		lines[i] = i + 1
	}
	t, err := fromRecords(rows, lines, true)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// ImportTable reads the file at path, choosing the reader by extension.
func ImportTable(path string) (*table.Table, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	if format == FormatXLSX {
		return ReadXLSX(path, "")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "open %s", path)
	}
	defer f.Close()

	comma := '\t'
	if format == FormatCSV {
		comma = ','
	}
	t, err := ReadDelimited(f, comma)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// fromRecords builds a table from a header record and data records.
// lines holds the 1-based source line of each record.
func fromRecords(records [][]string, lines []int, pad bool) (*table.Table, error) {
	if len(records) == 0 {
		return nil, errors.New(errors.ErrCodeSchema, "input is empty (no header line)")
	}
	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		header[i] = strings.TrimSpace(h)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	rows := make([][]string, 0, len(records)-1)
	rowLines := make([]int, 0, len(records)-1)
	for i, rec := range records[1:] {
		line := lines[i+1]
		if isBlank(rec) {
			continue
		}
		if pad && len(rec) < len(header) {
			rec = append(rec, make([]string, len(header)-len(rec))...)
		}
		if len(rec) != len(header) {
			return nil, errors.New(errors.ErrCodeSchema,
				"line %d has %d cells, header has %d", line, len(rec), len(header))
		}
		rows = append(rows, rec)
		rowLines = append(rowLines, line)
	}
	return table.NewWithLines(header, rows, rowLines)
}

func isBlank(rec []string) bool {
	for _, c := range rec {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
