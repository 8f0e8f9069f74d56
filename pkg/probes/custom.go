package probes

import (
	"context"
	"net/http"

	"github.com/stripecheck/stripecheck/pkg/result"
)

// CustomEndpoint issues an authenticated GET against a caller-supplied
// URL, for auditing integration-specific endpoints with a secret-like
// key. A 200 with a JSON body succeeds with the parsed body as payload.
//
// Unlike the charge and token probes, a non-200 body is kept as raw
// text with no JSON parse attempt.
func (p *Prober) CustomEndpoint(ctx context.Context, secretKey, endpoint string) result.Outcome {
	status, body, err := p.get(ctx, endpoint, secretKey)
	if err != nil {
		return result.TransportFailure(err)
	}

	if status == http.StatusOK {
		return okOutcome(body)
	}

	return result.Failure(string(body))
}
