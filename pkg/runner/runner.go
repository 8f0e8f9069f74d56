// Package runner dispatches a validation mode to its probe sequence.
// Modes form a closed set; each carries a descriptor naming its
// required parameters and the ordered probes it invokes. Parameters are
// validated generically against the descriptor before any network call,
// so a rejected run performs no I/O and produces no report.
package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/stripecheck/stripecheck/pkg/probes"
	"github.com/stripecheck/stripecheck/pkg/ratelimit"
	"github.com/stripecheck/stripecheck/pkg/result"
	"github.com/stripecheck/stripecheck/pkg/scanner"
)

// Mode selects which probes a run performs.
type Mode string

const (
	// ModeDefault validates a secret key by listing charges.
	ModeDefault Mode = "default"
	// ModeBruteForce enumerates customer identifiers in a range.
	ModeBruteForce Mode = "brute-force"
	// ModePubKey validates a publishable key by creating a test token.
	ModePubKey Mode = "pubkey"
	// ModeFull validates both the secret and the publishable key.
	ModeFull Mode = "full"
	// ModeRestricted validates a restricted key by listing charges.
	// The probe is identical to ModeDefault; the distinction is the
	// caller's intent.
	ModeRestricted Mode = "restricted"
	// ModeCustom tests a caller-supplied endpoint with a secret key.
	ModeCustom Mode = "custom"
)

// Param names a mode parameter, matching its CLI flag.
type Param string

const (
	ParamSecretKey Param = "secretkey"
	ParamPubKey    Param = "pubkey"
	ParamStart     Param = "start"
	ParamStop      Param = "stop"
	ParamEndpoint  Param = "custom-endpoint"
)

// Report keys, one per test.
const (
	KeyListCharges    = "list_charges"
	KeyPublishableKey = "test_publishable_key"
	KeyBruteForce     = "brute_force_results"
	KeyCustomEndpoint = "test_custom_endpoint"
)

// Options carries the parameters of one run. Start and Stop are
// pointers because zero is a valid identifier; nil means unset.
type Options struct {
	Mode      Mode
	SecretKey string
	PubKey    string
	Start     *int
	Stop      *int
	Delay     time.Duration
	Endpoint  string

	// LiveScan switches brute-force mode from the dry-run simulation
	// to a real per-identifier probe loop.
	LiveScan bool

	// RPS caps the scan request rate on top of the fixed delay.
	// Zero means no cap.
	RPS float64
}

// step is one probe invocation: the report key it populates and the
// function producing its entry.
type step struct {
	key string
	run func(ctx context.Context, r *Runner, opts Options) result.Entry
}

// descriptor is the required-parameter set and ordered probe sequence
// for one mode.
type descriptor struct {
	required []Param
	validate func(opts Options) string // extra cross-parameter check
	steps    []step
}

// present reports whether a parameter is set on the options.
func present(opts Options, p Param) bool {
	switch p {
	case ParamSecretKey:
		return opts.SecretKey != ""
	case ParamPubKey:
		return opts.PubKey != ""
	case ParamStart:
		return opts.Start != nil
	case ParamStop:
		return opts.Stop != nil
	case ParamEndpoint:
		return opts.Endpoint != ""
	}
	return false
}

var modes = map[Mode]descriptor{
	ModeDefault: {
		required: []Param{ParamSecretKey},
		steps:    []step{{KeyListCharges, stepListCharges}},
	},
	ModeBruteForce: {
		required: []Param{ParamSecretKey, ParamStart, ParamStop},
		validate: func(opts Options) string {
			if *opts.Start > *opts.Stop {
				return "--start must be less than or equal to --stop"
			}
			return ""
		},
		steps: []step{{KeyBruteForce, stepBruteForce}},
	},
	ModePubKey: {
		required: []Param{ParamPubKey},
		steps:    []step{{KeyPublishableKey, stepCreateToken}},
	},
	ModeFull: {
		required: []Param{ParamSecretKey, ParamPubKey},
		steps: []step{
			{KeyListCharges, stepListCharges},
			{KeyPublishableKey, stepCreateToken},
		},
	},
	ModeRestricted: {
		required: []Param{ParamSecretKey},
		steps:    []step{{KeyListCharges, stepListCharges}},
	},
	ModeCustom: {
		required: []Param{ParamSecretKey, ParamEndpoint},
		steps:    []step{{KeyCustomEndpoint, stepCustomEndpoint}},
	},
}

// Modes returns the valid mode names, for usage text.
func Modes() []Mode {
	return []Mode{ModeDefault, ModeBruteForce, ModePubKey, ModeFull, ModeRestricted, ModeCustom}
}

// Runner owns report construction for a run. Probes and the scanner are
// stateless; the runner sequences them strictly one after another.
type Runner struct {
	Prober *probes.Prober

	// NewScanner builds the scanner for brute-force mode. Overridable
	// in tests; the default honors Options.LiveScan and Options.Delay.
	NewScanner func(opts Options) *scanner.Scanner
}

// New creates a Runner around the given prober.
func New(p *probes.Prober) *Runner {
	return &Runner{
		Prober: p,
		NewScanner: func(opts Options) *scanner.Scanner {
			s := scanner.New(p, opts.Delay)
			s.Simulate = !opts.LiveScan
			if opts.RPS > 0 {
				s.Limiter = ratelimit.New(ratelimit.Config{
					Delay:             opts.Delay,
					RequestsPerSecond: opts.RPS,
				})
			}
			return s
		},
	}
}

// Validate checks the options against the mode descriptor without
// performing any I/O.
func (r *Runner) Validate(opts Options) error {
	desc, ok := modes[opts.Mode]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownMode, opts.Mode)
	}
	var missing []Param
	for _, p := range desc.required {
		if !present(opts, p) {
			missing = append(missing, p)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Mode: opts.Mode, Missing: missing}
	}
	if desc.validate != nil {
		if reason := desc.validate(opts); reason != "" {
			return &ValidationError{Mode: opts.Mode, Reason: reason}
		}
	}
	return nil
}

// Run validates the options and executes the mode's probe sequence,
// returning the populated report. Probe failures do not abort the run:
// each step independently records its entry, so in full mode a dead
// secret key never suppresses the publishable-key result. Only
// validation errors return without a report.
func (r *Runner) Run(ctx context.Context, opts Options) (*result.Report, error) {
	if err := r.Validate(opts); err != nil {
		return nil, err
	}

	desc := modes[opts.Mode]
	report := result.NewReport()
	for _, st := range desc.steps {
		report.Add(st.key, st.run(ctx, r, opts))
	}
	return report, nil
}

func stepListCharges(ctx context.Context, r *Runner, opts Options) result.Entry {
	return result.OutcomeEntry(r.Prober.ListCharges(ctx, opts.SecretKey))
}

func stepCreateToken(ctx context.Context, r *Runner, opts Options) result.Entry {
	return result.OutcomeEntry(r.Prober.CreateToken(ctx, opts.PubKey))
}

func stepCustomEndpoint(ctx context.Context, r *Runner, opts Options) result.Entry {
	return result.OutcomeEntry(r.Prober.CustomEndpoint(ctx, opts.SecretKey, opts.Endpoint))
}

func stepBruteForce(ctx context.Context, r *Runner, opts Options) result.Entry {
	s := r.NewScanner(opts)
	// A cancelled scan still reports whatever it found.
	found, _ := s.Scan(ctx, opts.SecretKey, *opts.Start, *opts.Stop)
	return result.DiscoveryEntry(found)
}
