// Package output renders a report to its two artifacts: the durable CSV
// file and the console table. Both derive from the same report rows, so
// the PASS/FAIL classification is applied exactly once.
package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/stripecheck/stripecheck/pkg/defaults"
	"github.com/stripecheck/stripecheck/pkg/result"
)

// csvHeader is the report file's column contract.
var csvHeader = []string{"Test", "Result", "Status"}

// sanitizeForCSV prevents CSV injection by prefixing dangerous leading
// characters. Report cells carry API response bodies, which an attacker
// controlling the probed account can influence; without this a cell
// like "=HYPERLINK(...)" executes when the report opens in a
// spreadsheet.
func sanitizeForCSV(s string) string {
	// "-" is the absent-payload placeholder, not a formula.
	if len(s) == 0 || s == "-" {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r':
		return "'" + s
	}
	return s
}

// CSVWriter writes the report file into an output folder, one
// timestamped file per run.
type CSVWriter struct {
	// Folder receives the report file; created if absent.
	Folder string

	// SanitizeFormulas guards cells against spreadsheet formula
	// injection. On by default via NewCSVWriter.
	SanitizeFormulas bool

	// now is overridable for deterministic filenames in tests.
	now func() time.Time
}

// NewCSVWriter creates a writer targeting the given folder. An empty
// folder selects the default.
func NewCSVWriter(folder string) *CSVWriter {
	if folder == "" {
		folder = defaults.OutputFolder
	}
	return &CSVWriter{
		Folder:           folder,
		SanitizeFormulas: true,
		now:              time.Now,
	}
}

// Write persists the report and returns the path of the created file.
func (w *CSVWriter) Write(report *result.Report) (string, error) {
	if err := os.MkdirAll(w.Folder, 0o755); err != nil {
		return "", fmt.Errorf("create output folder: %w", err)
	}

	now := time.Now
	if w.now != nil {
		now = w.now
	}
	name := defaults.ReportFilePrefix + now().Format(defaults.ReportTimestampLayout) + ".csv"
	path := filepath.Join(w.Folder, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create report file: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(csvHeader); err != nil {
		return "", fmt.Errorf("csv: write header: %w", err)
	}
	for _, row := range report.Rows() {
		record := []string{row.Test, row.Result, row.Status}
		if w.SanitizeFormulas {
			for i, cell := range record {
				record[i] = sanitizeForCSV(cell)
			}
		}
		if err := cw.Write(record); err != nil {
			return "", fmt.Errorf("csv: write row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", fmt.Errorf("csv: flush: %w", err)
	}
	return path, nil
}
