// Package io reads wide tables from disk and writes tidy tables back out.
//
// # Formats
//
// [ImportTable] picks a reader from the file extension:
//
//   - .tsv, .tab, .txt: tab-separated, first line is the header
//   - .csv: comma-separated
//   - .xlsx: first worksheet (or a named one via [ReadXLSX])
//
// Delimited files are parsed with encoding/csv in lazy-quotes mode, so stray
// quote characters inside tab-separated cells are kept as-is. Header cells
// are trimmed. Every data line must have exactly as many cells as the
// header; a short or long line is a schema error naming the file line.
//
// Spreadsheet rows may end early (trailing empty cells are not stored in
// xlsx), so rows read by [ReadXLSX] are padded with empty cells up to the
// header width. Rows longer than the header are still an error.
//
// # Export
//
// [WriteTidy] writes a [table.TidyTable] in long format:
//
//	Group	Sample	Value
//	A	Sample_1	1
//	A	Sample_2	2
//
// The category and value column names default to "Sample" and "Value".
// NaN values are written as "NA".
//
// # Errors
//
// A file that cannot be opened, read or created fails with IO_ERROR; a file
// that opens but does not form a valid table fails with SCHEMA_ERROR. Every
// message names the file.
//
// [table.TidyTable]: github.com/matzehuels/facetplot/pkg/table.TidyTable
package io
