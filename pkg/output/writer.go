package output

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/ajxudir/tabsplit/pkg/constants"
)

// WriteRunResult writes result in format.
//
// The table format prints per-file status, written outputs, unmatched values
// and a one-line summary. CSV prints one row per source file.
//
// Parameters:
//   - w: Destination
//   - format: Output format
//   - result: Run summary
//
// Returns:
//   - error: Write or encoding failure
func WriteRunResult(w io.Writer, format Format, result *RunResult) error {
	formatter := NewFormatter(format, w)

	switch format {
	case FormatJSON:
		return formatter.WriteJSON(result)
	case FormatXML:
		return formatter.WriteXML(result)
	case FormatCSV:
		return writeRunCSV(formatter, result)
	default:
		return writeRunTable(w, result)
	}
}

func writeRunCSV(f *Formatter, result *RunResult) error {
	headers := []string{"FILE", "STATUS", "ROWS", "KEPT", "REASON"}
	rows := make([][]string, 0, len(result.Files))
	for _, e := range result.Files {
		rows = append(rows, []string{e.File, e.Status, strconv.Itoa(e.Rows), strconv.Itoa(e.Kept), e.Reason})
	}
	return f.WriteCSV(headers, rows)
}

func writeRunTable(w io.Writer, result *RunResult) error {
	if len(result.Files) > 0 {
		t := NewTable().
			AddColumn("").
			AddColumn("FILE").
			AddColumn("STATUS").
			AddColumn("ROWS").
			AddConditionalColumn("KEPT", result.Command == "filter").
			AddColumn("REASON")
		for _, e := range result.Files {
			t.AddRow(constants.StatusIcon(e.Status), filepath.Base(e.File), e.Status,
				strconv.Itoa(e.Rows), strconv.Itoa(e.Kept), e.Reason)
		}
		t.Fprint(w)
		fmt.Fprintln(w)
	}

	if len(result.Outputs) > 0 {
		t := NewTable().AddColumn("OUTPUT").AddColumn("ROWS")
		for _, o := range result.Outputs {
			t.AddRow(o.File, strconv.Itoa(o.Rows))
		}
		t.Fprint(w)
		fmt.Fprintln(w)
	}

	if len(result.Unmatched) > 0 {
		fmt.Fprintf(w, "Unmatched values (%d):\n", len(result.Unmatched))
		for _, v := range result.Unmatched {
			fmt.Fprintf(w, "  - %s\n", v)
		}
		fmt.Fprintln(w)
	}

	for _, warning := range result.Warnings {
		fmt.Fprintf(w, "%s %s\n", constants.IconWarn, warning)
	}

	_, err := fmt.Fprintln(w, SummaryLine(result))
	return err
}

// SummaryLine returns the one-line summary printed after a run.
func SummaryLine(result *RunResult) string {
	s := result.Summary
	switch result.Command {
	case "filter":
		return fmt.Sprintf("Files: %d processed, %d skipped | Rows: %d total, %d kept, %d dropped | Outputs: %d",
			s.FilesProcessed, s.FilesSkipped, s.TotalRows, s.KeptRows, s.DroppedRows, s.OutputFiles)
	case "match":
		return fmt.Sprintf("Files: %d processed, %d skipped, %d failed | Values: %d distinct, %d matched, %d unmatched | Outputs: %d",
			s.FilesProcessed, s.FilesSkipped, s.FilesFailed, s.DistinctValues, s.Matched, s.UnmatchedCount, s.OutputFiles)
	case "split":
		return fmt.Sprintf("Files: %d processed, %d skipped, %d failed | Rows: %d | Groups: %d | Outputs: %d",
			s.FilesProcessed, s.FilesSkipped, s.FilesFailed, s.TotalRows, s.Groups, s.OutputFiles)
	default:
		return fmt.Sprintf("Files: %d processed, %d skipped | Rows: %d | Outputs: %d",
			s.FilesProcessed, s.FilesSkipped, s.TotalRows, s.OutputFiles)
	}
}

// WriteColumnsResult writes the column list of a file in format.
func WriteColumnsResult(w io.Writer, format Format, result *ColumnsResult) error {
	formatter := NewFormatter(format, w)

	switch format {
	case FormatJSON:
		return formatter.WriteJSON(result)
	case FormatXML:
		return formatter.WriteXML(result)
	case FormatCSV:
		rows := make([][]string, len(result.Columns))
		for i, c := range result.Columns {
			rows[i] = []string{strconv.Itoa(i + 1), c}
		}
		return formatter.WriteCSV([]string{"INDEX", "COLUMN"}, rows)
	default:
		t := NewTable().AddColumn("#").AddColumn("COLUMN")
		for i, c := range result.Columns {
			t.AddRow(strconv.Itoa(i+1), c)
		}
		fmt.Fprintf(w, "Columns in %s:\n", filepath.Base(result.File))
		t.Fprint(w)
		return nil
	}
}
