// Package result defines the normalized outcome model shared by every
// probe and by the identifier-space scanner, and the report that
// aggregates heterogeneous outcomes for rendering.
package result

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stripecheck/stripecheck/pkg/defaults"
	"github.com/stripecheck/stripecheck/pkg/jsonutil"
)

// Outcome is the atomic result of one probe.
//
// Invariants: if Err is set, Payload is absent; if Succeeded is true,
// Payload is present. A probe never signals success with both fields
// empty, and never raises past its own boundary - transport errors,
// non-2xx responses, and unparseable bodies all land here.
type Outcome struct {
	Succeeded bool   `json:"succeeded"`
	Payload   any    `json:"payload,omitempty"`
	Err       string `json:"error,omitempty"`
}

// Success returns a succeeded Outcome carrying the response payload.
func Success(payload any) Outcome {
	return Outcome{Succeeded: true, Payload: payload}
}

// Failure returns a failed Outcome carrying an API-level error body.
func Failure(payload any) Outcome {
	return Outcome{Succeeded: false, Payload: payload}
}

// TransportFailure returns a failed Outcome for a transport-level error
// (DNS, connect, timeout, TLS). The payload stays absent.
func TransportFailure(err error) Outcome {
	return Outcome{Succeeded: false, Err: err.Error()}
}

// Customer is an identifier discovered by the scanner.
type Customer struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
}

// Info renders the customer the way report rows expect it:
// "cus_0000000001 (a@example.com)", with "No Email" when absent.
func (c Customer) Info() string {
	email := c.Email
	if email == "" {
		email = "No Email"
	}
	return fmt.Sprintf("%s (%s)", c.ID, email)
}

// FormatCustomerID synthesizes a customer identifier from a numeric
// position: prefix "cus_", zero-padded to width 10.
func FormatCustomerID(n int) string {
	return fmt.Sprintf("%s%0*d", defaults.CustomerIDPrefix, defaults.CustomerIDWidth, n)
}

// Entry is the tagged union stored under each report key: either a
// single probe Outcome or a scanner discovery list. Exactly one arm is
// populated.
type Entry struct {
	Outcome        *Outcome   `json:"outcome,omitempty"`
	FoundCustomers []Customer `json:"found_customers,omitempty"`
	discovery      bool
}

// OutcomeEntry wraps a probe outcome as a report entry.
func OutcomeEntry(o Outcome) Entry {
	return Entry{Outcome: &o}
}

// DiscoveryEntry wraps a scanner discovery list as a report entry.
// The list may be empty; the entry still renders as a discovery.
func DiscoveryEntry(customers []Customer) Entry {
	return Entry{FoundCustomers: customers, discovery: true}
}

// IsDiscovery reports whether the entry is a scanner discovery list.
func (e Entry) IsDiscovery() bool {
	return e.discovery
}

// NamedEntry pairs a report key with its entry, preserving insertion
// order.
type NamedEntry struct {
	Name  string `json:"name"`
	Entry Entry  `json:"entry"`
}

// Report is the ordered mapping from test name to entry for one run.
// Built only by the dispatcher; treated as immutable once handed to a
// writer.
type Report struct {
	RunID     string       `json:"run_id"`
	StartedAt time.Time    `json:"started_at"`
	Entries   []NamedEntry `json:"entries"`
}

// NewReport creates an empty report stamped with a fresh run ID.
func NewReport() *Report {
	return &Report{
		RunID:     uuid.NewString(),
		StartedAt: time.Now(),
	}
}

// Add appends an entry under the given test name.
func (r *Report) Add(name string, e Entry) {
	r.Entries = append(r.Entries, NamedEntry{Name: name, Entry: e})
}

// Get returns the entry stored under name.
func (r *Report) Get(name string) (Entry, bool) {
	for _, ne := range r.Entries {
		if ne.Name == name {
			return ne.Entry, true
		}
	}
	return Entry{}, false
}

// Len returns the number of entries.
func (r *Report) Len() int {
	return len(r.Entries)
}

// Row is one rendered report line: the shape of both the console table
// and the CSV file.
type Row struct {
	Test   string
	Result string
	Status string
}

// Rows flattens the report into renderable rows, applying the status
// classification uniformly so writers never inspect entry variants:
//
//   - succeeded outcome: PASS, result = serialized payload
//   - failed outcome: FAIL (<error, else payload summary, else "Unknown Error">)
//   - discovery list: one "Found Customer" row per customer, PASS iff
//     the customer has a non-empty ID
func (r *Report) Rows() []Row {
	rows := make([]Row, 0, len(r.Entries))
	for _, ne := range r.Entries {
		if ne.Entry.IsDiscovery() {
			for _, c := range ne.Entry.FoundCustomers {
				status := "PASS"
				if c.ID == "" {
					status = "FAIL"
				}
				rows = append(rows, Row{Test: "Found Customer", Result: c.Info(), Status: status})
			}
			continue
		}
		o := ne.Entry.Outcome
		if o == nil {
			rows = append(rows, Row{Test: ne.Name, Result: "-", Status: "FAIL (Unknown Error)"})
			continue
		}
		rows = append(rows, Row{Test: ne.Name, Result: payloadString(o.Payload), Status: outcomeStatus(o)})
	}
	return rows
}

// outcomeStatus derives the PASS/FAIL status string for one outcome.
func outcomeStatus(o *Outcome) string {
	if o.Succeeded {
		return "PASS"
	}
	return fmt.Sprintf("FAIL (%s)", failureSummary(o))
}

// failureSummary prefers the transport error, then a serialized payload,
// then a fixed fallback.
func failureSummary(o *Outcome) string {
	if o.Err != "" {
		return o.Err
	}
	if o.Payload != nil {
		return payloadString(o.Payload)
	}
	return "Unknown Error"
}

// payloadString serializes a payload for a report cell. Structured
// payloads become indented JSON; plain strings pass through; absent
// payloads render as "-".
func payloadString(payload any) string {
	switch p := payload.(type) {
	case nil:
		return "-"
	case string:
		return p
	default:
		b, err := jsonutil.MarshalIndent(p, "", "  ")
		if err != nil {
			return fmt.Sprintf("%v", p)
		}
		return string(b)
	}
}
