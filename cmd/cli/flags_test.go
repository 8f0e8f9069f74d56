package main

import (
	"testing"
	"time"

	"github.com/stripecheck/stripecheck/pkg/runner"
)

func TestParseFlagsDefaults(t *testing.T) {
	cfg := parseFlags([]string{"-mode", "default", "-secretkey", "sk_test_x"})

	if cfg.Mode != "default" || cfg.SecretKey != "sk_test_x" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.DelayMs != 500 {
		t.Errorf("default delay = %d", cfg.DelayMs)
	}
	if cfg.OutputFolder != "output" {
		t.Errorf("default output folder = %q", cfg.OutputFolder)
	}
	if cfg.startSet || cfg.stopSet {
		t.Error("range flags should be unset")
	}
}

func TestParseFlagsModeShorthand(t *testing.T) {
	cfg := parseFlags([]string{"-m", "pubkey", "-pubkey", "pk_test_x"})
	if cfg.Mode != "pubkey" {
		t.Errorf("Mode = %q", cfg.Mode)
	}
}

func TestOptionsRangePointers(t *testing.T) {
	// Explicit zero still counts as set.
	cfg := parseFlags([]string{"-mode", "brute-force", "-secretkey", "sk", "-start", "0", "-stop", "10"})
	opts := cfg.options()
	if opts.Start == nil || *opts.Start != 0 {
		t.Errorf("Start = %v", opts.Start)
	}
	if opts.Stop == nil || *opts.Stop != 10 {
		t.Errorf("Stop = %v", opts.Stop)
	}

	cfg = parseFlags([]string{"-mode", "brute-force", "-secretkey", "sk"})
	opts = cfg.options()
	if opts.Start != nil || opts.Stop != nil {
		t.Errorf("unset range produced pointers: %+v", opts)
	}
}

func TestOptionsConversion(t *testing.T) {
	cfg := parseFlags([]string{
		"-mode", "custom",
		"-secretkey", "sk_test_x",
		"-custom-endpoint", "https://api.stripe.com/v1/balance",
		"-delay", "250",
		"-live-scan",
	})

	opts := cfg.options()
	if opts.Mode != runner.ModeCustom {
		t.Errorf("Mode = %q", opts.Mode)
	}
	if opts.Endpoint != "https://api.stripe.com/v1/balance" {
		t.Errorf("Endpoint = %q", opts.Endpoint)
	}
	if opts.Delay != 250*time.Millisecond {
		t.Errorf("Delay = %v", opts.Delay)
	}
	if !opts.LiveScan {
		t.Error("LiveScan not carried over")
	}
}

func TestOptionsRateCap(t *testing.T) {
	cfg := parseFlags([]string{"-mode", "brute-force", "-secretkey", "sk", "-rps", "2.5"})
	if opts := cfg.options(); opts.RPS != 2.5 {
		t.Errorf("RPS = %v", opts.RPS)
	}
	if banner := cfg.configBanner(); banner["RPS"] != "2.5" {
		t.Errorf("banner RPS = %q", banner["RPS"])
	}

	cfg = parseFlags([]string{"-mode", "default", "-secretkey", "sk"})
	if opts := cfg.options(); opts.RPS != 0 {
		t.Errorf("default RPS = %v", opts.RPS)
	}
}

func TestConfigBanner(t *testing.T) {
	cfg := parseFlags([]string{
		"-mode", "brute-force", "-secretkey", "sk",
		"-start", "1", "-stop", "100",
		"-api-url", "http://localhost:8080",
		"-timeout", "15",
	})

	banner := cfg.configBanner()
	if banner["Mode"] != "brute-force" {
		t.Errorf("Mode = %q", banner["Mode"])
	}
	if banner["ID Range"] != "1-100" {
		t.Errorf("ID Range = %q", banner["ID Range"])
	}
	if banner["Target"] != "http://localhost:8080" {
		t.Errorf("Target = %q", banner["Target"])
	}
	if banner["Timeout"] != "15s" {
		t.Errorf("Timeout = %q", banner["Timeout"])
	}
}
