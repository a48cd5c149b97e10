// Package table holds the wide and tidy table representations and the
// reshaping step between them.
//
// # Core Types
//
//   - [Table]: a raw wide table as read from disk (header + string cells)
//   - [TidyTable]: the long form, one [TidyRow] per (subject, measurement)
//
// # Reshaping
//
// [Reshape] unpivots every column whose name starts with a prefix into
// (category, value) pairs, carrying the remaining identifier columns along:
//
//	Group  Sample_1  Sample_2          Group  category  value
//	A      1         2           →     A      Sample_1  1
//	B      3         4                 A      Sample_2  2
//	                                   B      Sample_1  3
//	                                   B      Sample_2  4
//
// The output always has rows(input) × measurement columns rows. Missing cells
// ("", "NA", "NaN") become NaN rather than being dropped, so that count holds
// and consumers decide how to treat them.
//
// Reading and writing tables lives in pkg/io; per-category styling in
// pkg/style.
package table
