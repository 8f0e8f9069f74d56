// flags.go - Flag definitions and parsing for the stripecheck CLI.
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/stripecheck/stripecheck/pkg/defaults"
	"github.com/stripecheck/stripecheck/pkg/runner"
)

// cliConfig bundles all flag values for one invocation.
type cliConfig struct {
	Mode         string
	SecretKey    string
	PubKey       string
	Start        int
	Stop         int
	DelayMs      int
	Endpoint     string
	OutputFolder string

	APIURL   string
	Timeout  int // seconds, 0 = transport default
	LiveScan bool
	RPS      float64
	JSON     bool
	Silent   bool
	NoColor  bool
	Version  bool

	// startSet/stopSet distinguish an explicit 0 from an unset flag.
	startSet bool
	stopSet  bool
}

// parseFlags parses command line arguments into a cliConfig.
func parseFlags(args []string) *cliConfig {
	cfg := &cliConfig{}

	fs := flag.NewFlagSet("stripecheck", flag.ExitOnError)
	fs.Usage = func() { printUsage(fs.Output()) }

	fs.StringVar(&cfg.Mode, "mode", "", "Testing mode (default, brute-force, pubkey, full, restricted, custom)")
	fs.StringVar(&cfg.Mode, "m", "", "Testing mode (shorthand)")
	fs.StringVar(&cfg.SecretKey, "secretkey", "", "Stripe secret key (sk_test_xxx or rk_test_xxx)")
	fs.StringVar(&cfg.PubKey, "pubkey", "", "Stripe publishable key (pk_test_xxx)")
	fs.IntVar(&cfg.Start, "start", 0, "Start of customer ID range (brute-force mode)")
	fs.IntVar(&cfg.Stop, "stop", 0, "End of customer ID range (brute-force mode)")
	fs.IntVar(&cfg.DelayMs, "delay", defaults.DelayMs, "Delay between requests in milliseconds")
	fs.StringVar(&cfg.Endpoint, "custom-endpoint", "", "Custom endpoint to test (custom mode)")
	fs.StringVar(&cfg.OutputFolder, "output-folder", defaults.OutputFolder, "Folder to save results")

	fs.StringVar(&cfg.APIURL, "api-url", defaults.APIBaseURL, "Processor API base URL")
	fs.IntVar(&cfg.Timeout, "timeout", 0, "HTTP timeout in seconds (0 = default)")
	fs.BoolVar(&cfg.LiveScan, "live-scan", false, "Probe every ID in the brute-force range instead of simulating")
	fs.Float64Var(&cfg.RPS, "rps", 0, "Cap scan rate in requests per second (0 = no cap)")
	fs.BoolVar(&cfg.JSON, "json", false, "Also print the report as JSON to stdout")
	fs.BoolVar(&cfg.Silent, "silent", false, "Suppress banner and progress output")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output")
	fs.BoolVar(&cfg.Version, "version", false, "Print version and exit")

	// ExitOnError: Parse never returns a non-nil error here.
	_ = fs.Parse(args)

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "start":
			cfg.startSet = true
		case "stop":
			cfg.stopSet = true
		}
	})

	return cfg
}

// options converts CLI flags into dispatcher options.
func (cfg *cliConfig) options() runner.Options {
	opts := runner.Options{
		Mode:      runner.Mode(cfg.Mode),
		SecretKey: cfg.SecretKey,
		PubKey:    cfg.PubKey,
		Delay:     time.Duration(cfg.DelayMs) * time.Millisecond,
		Endpoint:  cfg.Endpoint,
		LiveScan:  cfg.LiveScan,
		RPS:       cfg.RPS,
	}
	if cfg.startSet {
		start := cfg.Start
		opts.Start = &start
	}
	if cfg.stopSet {
		stop := cfg.Stop
		opts.Stop = &stop
	}
	return opts
}

// configBanner returns the run settings shown before execution.
func (cfg *cliConfig) configBanner() map[string]string {
	options := map[string]string{
		"Mode":   cfg.Mode,
		"Delay":  fmt.Sprintf("%dms", cfg.DelayMs),
		"Output": cfg.OutputFolder,
	}
	if cfg.startSet && cfg.stopSet {
		options["ID Range"] = fmt.Sprintf("%d-%d", cfg.Start, cfg.Stop)
	}
	if cfg.Endpoint != "" {
		options["Endpoint"] = cfg.Endpoint
	}
	if cfg.APIURL != defaults.APIBaseURL {
		options["Target"] = cfg.APIURL
	}
	if cfg.Timeout > 0 {
		options["Timeout"] = fmt.Sprintf("%ds", cfg.Timeout)
	}
	if cfg.RPS > 0 {
		options["RPS"] = fmt.Sprintf("%g", cfg.RPS)
	}
	return options
}
