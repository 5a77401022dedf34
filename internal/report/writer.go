package report

import (
	"fmt"
	"os"

	"github.com/darlopvil/trabajo-L4-G7/internal/estimator"
)

// Writer appends result rows to a delimited text file.
//
// With Overwrite set, the first Append truncates the file and writes the
// header once; every later Append adds rows only. Without Overwrite the
// writer assumes the file already carries a header and always appends.
type Writer struct {
	Path      string
	Schema    Schema
	Overwrite bool

	wroteHeader bool
}

// NewWriter returns a Writer with first-write semantics: the file is
// created fresh on the first Append of this writer's lifetime.
func NewWriter(path string, schema Schema) *Writer {
	return &Writer{Path: path, Schema: schema, Overwrite: true}
}

// Append writes one data row per result, preceded by the header row if
// this is the writer's first write in overwrite mode. The file handle is
// not held between calls.
func (w *Writer) Append(results ...estimator.Result) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_APPEND
	writeHeader := false
	if w.Overwrite && !w.wroteHeader {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
		writeHeader = true
	}

	f, err := os.OpenFile(w.Path, flags, 0o644)
	if err != nil {
		return fmt.Errorf("open results file %s: %w", w.Path, err)
	}
	defer f.Close()

	if writeHeader {
		if _, err := fmt.Fprintln(f, w.Schema.Header()); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
		w.wroteHeader = true
	}

	for _, r := range results {
		if _, err := fmt.Fprintln(f, w.Schema.Row(r)); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	return nil
}
