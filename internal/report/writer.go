// Package report serializes analysis results into a consolidated plain-text
// report with per-file blocks and a trailing summary.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/hibernatus-hacker/deepwalker/internal/analyzer"
)

const ruleWidth = 80

// Writer serializes a result sequence into the report format.
type Writer struct {
	Generated time.Time
	RunID     string
}

// Write renders the full report to out: a header, one block per file in
// the order given, and a trailing summary with status counts.
func (w *Writer) Write(out io.Writer, results []analyzer.Result) error {
	ew := &errWriter{w: out}

	ew.println("=== JAVASCRIPT SECURITY ANALYSIS REPORT ===")
	ew.printf("Generated: %s\n", w.Generated.Format("2006-01-02 15:04:05"))
	if w.RunID != "" {
		ew.printf("Run: %s\n", w.RunID)
	}
	ew.println("")

	for i, result := range results {
		ew.printf("FILE #%d: %s\n", i+1, result.File)
		ew.println(strings.Repeat("=", ruleWidth))
		ew.printf("Status: %s\n", strings.ToUpper(string(result.Status)))

		if !result.Timestamp.IsZero() {
			ew.printf("Analyzed: %s\n\n", result.Timestamp.Format(time.RFC3339))
		} else {
			ew.println("")
		}

		switch result.Status {
		case analyzer.StatusFailed:
			ew.printf("ERROR: %s\n", result.Error)
		case analyzer.StatusSkipped:
			ew.printf("NOTE: %s\n", result.Reason)
		default:
			ew.println("ANALYSIS:")
			ew.println(strings.Repeat("-", ruleWidth))
			ew.printf("%s\n", result.Analysis)
		}

		ew.println("\n\n" + strings.Repeat("=", ruleWidth) + "\n")
	}

	counts := analyzer.Summarize(results)
	ew.println("=== SUMMARY ===")
	ew.printf("Total files processed: %d\n", counts.Total)
	ew.printf("Successfully analyzed: %d\n", counts.Completed)
	ew.printf("Failed analyses: %d\n", counts.Failed)
	ew.printf("Skipped files: %d\n", counts.Skipped)

	return ew.err
}

// Save writes the report to the file at path, creating or truncating it.
func (w *Writer) Save(path string, results []analyzer.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}
	defer f.Close()

	if err := w.Write(f, results); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}
