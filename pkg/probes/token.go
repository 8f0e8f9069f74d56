package probes

import (
	"context"
	"net/http"
	"net/url"

	"github.com/stripecheck/stripecheck/pkg/defaults"
	"github.com/stripecheck/stripecheck/pkg/jsonutil"
	"github.com/stripecheck/stripecheck/pkg/result"
)

// testCardForm returns the fixed token-creation form. The card tuple is
// one the processor reserves for non-charging validation; no
// caller-supplied card data path exists.
func testCardForm() url.Values {
	return url.Values{
		"card[number]":    {defaults.TestCardNumber},
		"card[exp_month]": {defaults.TestCardMonth},
		"card[exp_year]":  {defaults.TestCardYear},
		"card[cvc]":       {defaults.TestCardCVC},
	}
}

// CreateToken validates a publishable key by creating a token for the
// fixed test card. A 200 proves the key is live; the created token body
// becomes the payload.
//
// On failure the structured "error" field is extracted from the JSON
// body when present, falling back to the raw text, then to the
// transport error message.
func (p *Prober) CreateToken(ctx context.Context, pubKey string) result.Outcome {
	status, body, err := p.postForm(ctx, p.BaseURL+defaults.TokensPath, pubKey, testCardForm())
	if err != nil {
		return result.TransportFailure(err)
	}

	if status == http.StatusOK {
		return okOutcome(body)
	}

	return result.Outcome{Succeeded: false, Err: extractAPIError(body)}
}

// extractAPIError pulls the "error" field out of an API error body,
// serializing structured values, falling back to the raw text.
func extractAPIError(body []byte) string {
	var parsed map[string]any
	if err := jsonutil.Unmarshal(body, &parsed); err == nil {
		if apiErr, ok := parsed["error"]; ok {
			if s, ok := apiErr.(string); ok {
				return s
			}
			if b, err := jsonutil.Marshal(apiErr); err == nil {
				return string(b)
			}
		}
	}
	return string(body)
}
