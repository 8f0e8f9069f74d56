package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stripecheck/stripecheck/pkg/output/exitcode"
)

// runWithArgs invokes the CLI entry point with a substituted argv.
func runWithArgs(t *testing.T, args ...string) exitcode.Code {
	t.Helper()
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = append([]string{"stripecheck"}, args...)
	return run()
}

func TestRunRejectionWritesNoReport(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing secretkey", []string{"-mode", "default"}},
		{"unknown mode", []string{"-mode", "bogus", "-secretkey", "sk_test_x"}},
		{"inverted range", []string{
			"-mode", "brute-force", "-secretkey", "sk_test_x", "-start", "9", "-stop", "1",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			folder := filepath.Join(t.TempDir(), "reports")
			args := append(tt.args, "-output-folder", folder, "-silent")

			code := runWithArgs(t, args...)
			if code != exitcode.Configuration {
				t.Errorf("exit code = %v, want %v", code, exitcode.Configuration)
			}
			// A rejected run must leave no trace on disk.
			if _, err := os.Stat(folder); !os.IsNotExist(err) {
				t.Errorf("output folder created on rejected run (stat err = %v)", err)
			}
		})
	}
}

func TestRunVersionFlag(t *testing.T) {
	if code := runWithArgs(t, "-version"); code != exitcode.Success {
		t.Errorf("exit code = %v", code)
	}
}
