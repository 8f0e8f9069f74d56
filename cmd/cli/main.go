// stripecheck audits Stripe API keys: secret, restricted, and
// publishable key validation plus customer-ID enumeration, with a CSV
// report per run.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/stripecheck/stripecheck/pkg/httpclient"
	"github.com/stripecheck/stripecheck/pkg/output"
	"github.com/stripecheck/stripecheck/pkg/output/exitcode"
	"github.com/stripecheck/stripecheck/pkg/probes"
	"github.com/stripecheck/stripecheck/pkg/result"
	"github.com/stripecheck/stripecheck/pkg/runner"
	"github.com/stripecheck/stripecheck/pkg/ui"
)

func main() {
	os.Exit(run().Int())
}

func run() exitcode.Code {
	// No arguments: banner plus mode menu, not an error.
	if len(os.Args) == 1 {
		ui.PrintBanner()
		printUsage(os.Stderr)
		return exitcode.Success
	}

	cfg := parseFlags(os.Args[1:])

	if cfg.Version {
		fmt.Printf("stripecheck %s (built %s, commit %s)\n", ui.Version, ui.BuildDate, ui.Commit)
		return exitcode.Success
	}

	ui.SetSilent(cfg.Silent)
	ui.SetNoColor(cfg.NoColor)

	r := runner.New(newProber(cfg))
	opts := cfg.options()

	// Reject before any I/O: no probes, no report file.
	if err := r.Validate(opts); err != nil {
		ui.Errorf("%v", err)
		if errors.Is(err, runner.ErrUnknownMode) {
			ui.Errorf("valid modes: %v", runner.Modes())
		}
		fmt.Fprintln(os.Stderr, "Run 'stripecheck' without arguments for usage.")
		return exitcode.Configuration
	}

	ui.PrintBanner()
	ui.PrintConfigBanner(cfg.configBanner())
	announce(opts)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := r.Run(ctx, opts)
	if err != nil {
		// Validate already passed, so this is unreachable in practice.
		ui.Errorf("%v", err)
		return exitcode.Configuration
	}

	code := exitcode.Success
	if ctx.Err() != nil {
		ui.Errorf("run interrupted; writing partial results")
		code = exitcode.Interrupted
	}

	if path, werr := output.NewCSVWriter(cfg.OutputFolder).Write(report); werr != nil {
		ui.Errorf("failed to save results: %v", werr)
		code = exitcode.ReportFailed
	} else {
		ui.Successf("Results saved to %s", path)
	}

	if err := output.NewTableWriter(os.Stdout, output.TableConfig{
		DisableUnicode: !ui.UnicodeTerminal(),
	}).Write(report); err != nil {
		ui.Errorf("failed to render results: %v", err)
	}

	if cfg.JSON {
		if err := output.NewJSONWriter(os.Stdout).Write(report); err != nil {
			ui.Errorf("failed to encode results: %v", err)
		}
	}

	return code
}

// newProber builds the prober for this run, honoring the API origin and
// timeout overrides.
func newProber(cfg *cliConfig) *probes.Prober {
	p := probes.New(cfg.APIURL)
	if cfg.Timeout > 0 {
		p.Client = httpclient.New(httpclient.Config{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		})
	}
	return p
}

// announce prints the per-mode progress line before probing starts.
func announce(opts runner.Options) {
	switch opts.Mode {
	case runner.ModeDefault:
		ui.Infof("Testing if the secret key can list charges...")
	case runner.ModeBruteForce:
		ui.Infof("Brute-forcing customer IDs from %s to %s with a delay of %dms...",
			result.FormatCustomerID(*opts.Start), result.FormatCustomerID(*opts.Stop),
			opts.Delay.Milliseconds())
	case runner.ModePubKey:
		ui.Infof("Testing publishable key by creating a test token...")
	case runner.ModeFull:
		ui.Infof("Testing full validation (secret key and publishable key)...")
	case runner.ModeRestricted:
		ui.Infof("Testing restricted key...")
	case runner.ModeCustom:
		ui.Infof("Testing custom endpoint %s...", opts.Endpoint)
	}
}
