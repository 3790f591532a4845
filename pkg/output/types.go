package output

import "encoding/xml"

// RunResult is the summary of one filter, paginate, match or split run.
type RunResult struct {
	XMLName   xml.Name     `json:"-" xml:"runResult"`
	Command   string       `json:"command" xml:"command,attr"`
	RunID     string       `json:"run_id" xml:"runId,attr"`
	Summary   RunSummary   `json:"summary" xml:"summary"`
	Files     []FileEntry  `json:"files" xml:"files>file"`
	Outputs   []OutputFile `json:"outputs" xml:"outputs>output"`
	Unmatched []string     `json:"unmatched,omitempty" xml:"unmatched>value,omitempty"`
	Warnings  []string     `json:"warnings,omitempty" xml:"warnings>warning,omitempty"`
	Errors    []string     `json:"errors,omitempty" xml:"errors>error,omitempty"`
}

// RunSummary holds the counters of a run. Counters that do not apply to a
// command stay zero and are omitted.
type RunSummary struct {
	Files          int `json:"files" xml:"files"`
	FilesProcessed int `json:"files_processed" xml:"filesProcessed"`
	FilesSkipped   int `json:"files_skipped" xml:"filesSkipped"`
	FilesFailed    int `json:"files_failed" xml:"filesFailed"`
	TotalRows      int `json:"total_rows" xml:"totalRows"`
	KeptRows       int `json:"kept_rows,omitempty" xml:"keptRows,omitempty"`
	DroppedRows    int `json:"dropped_rows,omitempty" xml:"droppedRows,omitempty"`
	DistinctValues int `json:"distinct_values,omitempty" xml:"distinctValues,omitempty"`
	Matched        int `json:"matched,omitempty" xml:"matched,omitempty"`
	UnmatchedCount int `json:"unmatched,omitempty" xml:"unmatchedCount,omitempty"`
	Groups         int `json:"groups,omitempty" xml:"groups,omitempty"`
	OutputFiles    int `json:"output_files" xml:"outputFiles"`
}

// FileEntry reports what happened to one source file.
type FileEntry struct {
	File   string `json:"file" xml:"file"`
	Status string `json:"status" xml:"status"`
	Rows   int    `json:"rows" xml:"rows"`
	Kept   int    `json:"kept,omitempty" xml:"kept,omitempty"`
	Reason string `json:"reason,omitempty" xml:"reason,omitempty"`
}

// OutputFile is one written output file.
type OutputFile struct {
	File string `json:"file" xml:"file"`
	Rows int    `json:"rows" xml:"rows"`
}

// ColumnsResult lists the columns of a source file.
type ColumnsResult struct {
	XMLName xml.Name `json:"-" xml:"columnsResult"`
	File    string   `json:"file" xml:"file,attr"`
	Columns []string `json:"columns" xml:"column"`
}
