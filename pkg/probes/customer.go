package probes

import (
	"context"
	"net/http"

	"github.com/stripecheck/stripecheck/pkg/defaults"
	"github.com/stripecheck/stripecheck/pkg/result"
)

// GetCustomer fetches a single customer object by identifier with a
// secret-like key. Used by the identifier-space scanner: a 200 marks
// the identifier as existing, anything else (404, permission errors,
// transport failures) as absent.
func (p *Prober) GetCustomer(ctx context.Context, secretKey, id string) result.Outcome {
	status, body, err := p.get(ctx, p.BaseURL+defaults.CustomersPath+"/"+id, secretKey)
	if err != nil {
		return result.TransportFailure(err)
	}

	if status == http.StatusOK {
		return okOutcome(body)
	}

	if payload, perr := parseJSON(body); perr == nil {
		return result.Failure(payload)
	}
	return result.Failure(string(body))
}
