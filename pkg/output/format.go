// Package output renders run summaries for the terminal and for machines.
//
// Every command result can be printed as an aligned table (default) or as
// csv, json or xml for scripts. Tables use display widths so CJK column
// names and values line up.
package output

import (
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Format is a summary output format.
type Format string

const (
	// FormatTable prints aligned human-readable text.
	FormatTable Format = "table"
	// FormatCSV prints one csv row per file.
	FormatCSV Format = "csv"
	// FormatJSON prints the full result object.
	FormatJSON Format = "json"
	// FormatXML prints the full result object as xml.
	FormatXML Format = "xml"
)

// ValidFormats lists the accepted --output values.
var ValidFormats = []string{string(FormatTable), string(FormatJSON), string(FormatCSV), string(FormatXML)}

// ParseFormat converts an --output value into a Format.
//
// Parameters:
//   - s: Format name, case-insensitive; "" means table
//
// Returns:
//   - Format: The parsed format
//   - error: For unknown names
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "table":
		return FormatTable, nil
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "xml":
		return FormatXML, nil
	default:
		return "", fmt.Errorf("unknown output format %q (valid: %s)", s, strings.Join(ValidFormats, ", "))
	}
}

// Formatter writes structured data to an io.Writer.
type Formatter struct {
	format Format
	writer io.Writer
}

// NewFormatter creates a formatter for format writing to writer.
func NewFormatter(format Format, writer io.Writer) *Formatter {
	return &Formatter{format: format, writer: writer}
}

// Format returns the formatter's format.
func (f *Formatter) Format() Format {
	return f.format
}

// WriteCSV writes headers followed by rows.
func (f *Formatter) WriteCSV(headers []string, rows [][]string) error {
	w := csv.NewWriter(f.writer)
	if err := w.Write(headers); err != nil {
		return err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// WriteJSON writes data as indented JSON without HTML escaping.
func (f *Formatter) WriteJSON(data interface{}) error {
	enc := json.NewEncoder(f.writer)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// WriteXML writes the xml header and data as indented xml.
func (f *Formatter) WriteXML(data interface{}) error {
	if _, err := fmt.Fprint(f.writer, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(f.writer)
	enc.Indent("", "  ")
	if err := enc.Encode(data); err != nil {
		return err
	}
	_, err := fmt.Fprintln(f.writer)
	return err
}
