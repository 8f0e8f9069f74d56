package probes

import (
	"context"
	"net/http"

	"github.com/stripecheck/stripecheck/pkg/defaults"
	"github.com/stripecheck/stripecheck/pkg/result"
)

// ListCharges validates a secret-like key (secret or restricted) by
// listing charges. A 200 proves the key is live and authorized for
// charge reads; the distinction between unrestricted and restricted
// keys is a caller-side semantic, the request is identical.
//
// On non-200 the body is kept as the payload, parsed when it is JSON,
// raw text otherwise. Transport errors land in Outcome.Err.
func (p *Prober) ListCharges(ctx context.Context, secretKey string) result.Outcome {
	status, body, err := p.get(ctx, p.BaseURL+defaults.ChargesPath, secretKey)
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
