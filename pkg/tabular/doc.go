// Package tabular reads and writes the tables tabsplit works on.
//
// A Table is an ordered list of column names plus rows of string cells.
// Source cells are always read as strings, never as numbers or dates, so
// values such as "00123" survive a filter or split unchanged.
//
// Supported inputs:
//   - .csv, .tsv, .txt: delimited text with encoding detection
//   - .xlsx, .xlsm: first worksheet, cells as displayed text
//
// Supported outputs (see Format):
//   - csv, xlsx, json, sqlite
//
// Legacy .xls workbooks are rejected with ErrUnsupportedFormat.
package tabular
