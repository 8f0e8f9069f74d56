package runner

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stripecheck/stripecheck/pkg/probes"
)

// newCountingServer returns a stub API plus a counter of requests it
// received, for asserting that rejected runs perform no network I/O.
func newCountingServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *atomic.Int64) {
	t.Helper()
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if handler != nil {
			handler(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func newTestRunner(srv *httptest.Server) *Runner {
	p := probes.New(srv.URL)
	p.Client = http.DefaultClient
	return New(p)
}

func intp(n int) *int { return &n }

func TestRunDefaultMode(t *testing.T) {
	srv, calls := newCountingServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"object":"list","data":[]}`))
	})

	report, err := newTestRunner(srv).Run(context.Background(), Options{
		Mode:      ModeDefault,
		SecretKey: "sk_test_x",
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if report.Len() != 1 {
		t.Fatalf("expected exactly 1 entry, got %d", report.Len())
	}
	entry, ok := report.Get(KeyListCharges)
	if !ok {
		t.Fatal("missing list_charges entry")
	}
	if !entry.Outcome.Succeeded {
		t.Errorf("outcome = %+v", entry.Outcome)
	}
	if calls.Load() != 1 {
		t.Errorf("expected 1 request, got %d", calls.Load())
	}
}

func TestRunRestrictedModeSameProbe(t *testing.T) {
	srv, _ := newCountingServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/charges" {
			t.Errorf("restricted mode hit %s", r.URL.Path)
		}
		w.Write([]byte(`{"object":"list"}`))
	})

	report, err := newTestRunner(srv).Run(context.Background(), Options{
		Mode:      ModeRestricted,
		SecretKey: "rk_test_x",
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if _, ok := report.Get(KeyListCharges); !ok {
		t.Error("restricted mode must populate list_charges")
	}
}

func TestRunFullModeIndependentProbes(t *testing.T) {
	// Secret key dead, publishable key live: the charge failure must
	// not suppress the token result.
	srv, calls := newCountingServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/charges":
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"message":"Invalid API Key provided"}}`))
		case "/v1/tokens":
			w.Write([]byte(`{"id":"tok_visa"}`))
		}
	})

	report, err := newTestRunner(srv).Run(context.Background(), Options{
		Mode:      ModeFull,
		SecretKey: "sk_test_dead",
		PubKey:    "pk_test_live",
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if report.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", report.Len())
	}

	charges, _ := report.Get(KeyListCharges)
	if charges.Outcome == nil || charges.Outcome.Succeeded {
		t.Errorf("charges should fail: %+v", charges.Outcome)
	}
	token, ok := report.Get(KeyPublishableKey)
	if !ok || token.Outcome == nil || !token.Outcome.Succeeded {
		t.Errorf("token probe suppressed or failed: %+v", token.Outcome)
	}
	if calls.Load() != 2 {
		t.Errorf("expected both probes to run, got %d requests", calls.Load())
	}
}

func TestRunBruteForceSimulated(t *testing.T) {
	srv, calls := newCountingServer(t, nil)

	report, err := newTestRunner(srv).Run(context.Background(), Options{
		Mode:      ModeBruteForce,
		SecretKey: "sk_test_x",
		Start:     intp(1),
		Stop:      intp(100),
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	entry, ok := report.Get(KeyBruteForce)
	if !ok {
		t.Fatal("missing brute_force_results entry")
	}
	if !entry.IsDiscovery() {
		t.Fatal("brute-force entry must be a discovery")
	}
	if len(entry.FoundCustomers) != 2 {
		t.Fatalf("expected 2 customers, got %d", len(entry.FoundCustomers))
	}
	if entry.FoundCustomers[0].ID != "cus_0000000001" || entry.FoundCustomers[1].ID != "cus_0000000100" {
		t.Errorf("boundary ids = %+v", entry.FoundCustomers)
	}
	if calls.Load() != 0 {
		t.Errorf("simulated scan issued %d requests", calls.Load())
	}
}

func TestNewScannerRateCap(t *testing.T) {
	srv, _ := newCountingServer(t, nil)
	r := newTestRunner(srv)

	s := r.NewScanner(Options{LiveScan: true, RPS: 20})
	if s.Simulate {
		t.Error("live scan should disable simulation")
	}

	// The initial token is free; the next two waits are paced at 50ms
	// each by the 20 rps cap.
	start := time.Now()
	for i := 0; i < 3; i++ {
		if err := s.Limiter.Wait(context.Background()); err != nil {
			t.Fatalf("Wait %d failed: %v", i, err)
		}
	}
	if elapsed := time.Since(start); elapsed < 80*time.Millisecond {
		t.Errorf("rate cap not applied: 3 waits took %v", elapsed)
	}

	// Without a cap the limiter carries only the fixed delay.
	s = r.NewScanner(Options{LiveScan: true})
	start = time.Now()
	for i := 0; i < 3; i++ {
		if err := s.Limiter.Wait(context.Background()); err != nil {
			t.Fatalf("Wait %d failed: %v", i, err)
		}
	}
	if elapsed := time.Since(start); elapsed > 50*time.Millisecond {
		t.Errorf("uncapped limiter paced requests: 3 waits took %v", elapsed)
	}
}

func TestRunCustomMode(t *testing.T) {
	srv, _ := newCountingServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":true}`))
	})

	report, err := newTestRunner(srv).Run(context.Background(), Options{
		Mode:      ModeCustom,
		SecretKey: "sk_test_x",
		Endpoint:  srv.URL + "/internal/health",
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if _, ok := report.Get(KeyCustomEndpoint); !ok {
		t.Error("missing test_custom_endpoint entry")
	}
}

func TestRunRejectsBeforeNetworkIO(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"default missing secretkey", Options{Mode: ModeDefault}},
		{"pubkey missing pubkey", Options{Mode: ModePubKey}},
		{"full missing pubkey", Options{Mode: ModeFull, SecretKey: "sk_test_x"}},
		{"custom missing endpoint", Options{Mode: ModeCustom, SecretKey: "sk_test_x"}},
		{"brute-force missing range", Options{Mode: ModeBruteForce, SecretKey: "sk_test_x"}},
		{"brute-force inverted range", Options{
			Mode: ModeBruteForce, SecretKey: "sk_test_x", Start: intp(50), Stop: intp(10),
		}},
		{"unknown mode", Options{Mode: "exfiltrate", SecretKey: "sk_test_x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, calls := newCountingServer(t, nil)

			report, err := newTestRunner(srv).Run(context.Background(), tt.opts)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if report != nil {
				t.Error("rejected run must not produce a report")
			}
			if !IsValidation(err) {
				t.Errorf("error not classified as validation: %v", err)
			}
			if calls.Load() != 0 {
				t.Errorf("rejected run issued %d requests", calls.Load())
			}
		})
	}
}

func TestRunUnknownModeError(t *testing.T) {
	srv, _ := newCountingServer(t, nil)

	_, err := newTestRunner(srv).Run(context.Background(), Options{Mode: "nope"})
	if !errors.Is(err, ErrUnknownMode) {
		t.Errorf("expected ErrUnknownMode, got %v", err)
	}
}

func TestValidationErrorMessages(t *testing.T) {
	err := &ValidationError{Mode: ModeFull, Missing: []Param{ParamSecretKey, ParamPubKey}}
	want := "--secretkey, --pubkey required for full mode"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	err = &ValidationError{Mode: ModeBruteForce, Reason: "--start must be less than or equal to --stop"}
	if err.Error() != "--start must be less than or equal to --stop" {
		t.Errorf("Error() = %q", err.Error())
	}
}
