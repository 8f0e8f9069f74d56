// Package scanner drives brute-force enumeration of the customer
// identifier space. Requests run strictly sequentially with a fixed
// inter-request delay; individual failures never abort the scan.
package scanner

import (
	"context"
	"time"

	"github.com/stripecheck/stripecheck/pkg/probes"
	"github.com/stripecheck/stripecheck/pkg/ratelimit"
	"github.com/stripecheck/stripecheck/pkg/result"
)

// simulatedEmail is the canned address attached to the first boundary
// identifier on the simulation path.
const simulatedEmail = "customer1@example.com"

// Scanner enumerates customer identifiers in a numeric range.
//
// Simulate selects the dry-run behavior: a single pause followed by
// the two boundary identifiers, with no network traffic. With Simulate
// off, every identifier in the range is probed live, paced by the
// limiter, and only identifiers the API confirms are reported.
type Scanner struct {
	Prober   *probes.Prober
	Limiter  *ratelimit.Limiter
	Simulate bool
}

// New creates a simulating scanner with the given inter-request delay.
func New(p *probes.Prober, delay time.Duration) *Scanner {
	return &Scanner{
		Prober:   p,
		Limiter:  ratelimit.NewWithDelay(delay),
		Simulate: true,
	}
}

// Scan enumerates identifiers in [start, stop]. The caller guarantees
// start <= stop. Customers found before a context cancellation are
// returned alongside the context error.
func (s *Scanner) Scan(ctx context.Context, secretKey string, start, stop int) ([]result.Customer, error) {
	if s.Simulate {
		return s.simulate(ctx, start, stop)
	}
	return s.enumerate(ctx, secretKey, start, stop)
}

// simulate yields the two boundary identifiers after one delay pause.
func (s *Scanner) simulate(ctx context.Context, start, stop int) ([]result.Customer, error) {
	if err := s.Limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return []result.Customer{
		{ID: result.FormatCustomerID(start), Email: simulatedEmail},
		{ID: result.FormatCustomerID(stop)},
	}, nil
}

// enumerate probes every identifier in the range. 404s, permission
// errors, and transport failures skip the identifier and continue.
func (s *Scanner) enumerate(ctx context.Context, secretKey string, start, stop int) ([]result.Customer, error) {
	var found []result.Customer
	for n := start; n <= stop; n++ {
		if err := s.Limiter.Wait(ctx); err != nil {
			return found, err
		}

		id := result.FormatCustomerID(n)
		outcome := s.Prober.GetCustomer(ctx, secretKey, id)
		if ctx.Err() != nil {
			return found, ctx.Err()
		}
		if !outcome.Succeeded {
			continue
		}
		found = append(found, customerFromPayload(id, outcome.Payload))
	}
	return found, nil
}

// customerFromPayload extracts the identifier and email from a customer
// object body, keeping the synthesized id when the body is unusable.
func customerFromPayload(id string, payload any) result.Customer {
	c := result.Customer{ID: id}
	obj, ok := payload.(map[string]any)
	if !ok {
		return c
	}
	if v, ok := obj["id"].(string); ok && v != "" {
		c.ID = v
	}
	if v, ok := obj["email"].(string); ok {
		c.Email = v
	}
	return c
}
