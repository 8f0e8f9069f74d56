// Package exitcode provides semantic exit codes for CI integration.
//
// Exit codes:
//   - 0: success (report written)
//   - 2: report could not be written
//   - 3: invalid configuration (missing parameter, unknown mode)
//   - 5: run interrupted
package exitcode

// Code represents a semantic exit code.
type Code int

const (
	// Success indicates the run completed and the report was written.
	Success Code = 0
	// ReportFailed indicates probes ran but the report file could not
	// be written.
	ReportFailed Code = 2
	// Configuration indicates invalid parameters or an unknown mode;
	// nothing was probed and nothing was written.
	Configuration Code = 3
	// Interrupted indicates the run was interrupted (e.g. SIGINT).
	Interrupted Code = 5
)

var codeStrings = map[Code]string{
	Success:       "success",
	ReportFailed:  "report_failed",
	Configuration: "invalid_configuration",
	Interrupted:   "interrupted",
}

// String returns the short machine-readable name of the code.
func (c Code) String() string {
	if s, ok := codeStrings[c]; ok {
		return s
	}
	return "unknown"
}

// Int returns the code as a process exit status.
func (c Code) Int() int {
	return int(c)
}
