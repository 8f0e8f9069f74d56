// Package probes implements the stateless credential-validation calls
// against the payment processor API. Each probe normalizes its result
// into a result.Outcome and never returns an error past its boundary:
// transport failures, non-2xx responses, and unparseable bodies all
// funnel into Outcome fields.
package probes

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/stripecheck/stripecheck/pkg/defaults"
	"github.com/stripecheck/stripecheck/pkg/httpclient"
	"github.com/stripecheck/stripecheck/pkg/jsonutil"
	"github.com/stripecheck/stripecheck/pkg/result"
	"github.com/stripecheck/stripecheck/pkg/ui"
)

// Prober issues credential-validation requests. Zero-value fields fall
// back to the shared client, the production API origin, and the
// standard user agent.
type Prober struct {
	Client    *http.Client
	BaseURL   string
	UserAgent string
}

// New creates a Prober against the given API origin. An empty baseURL
// selects the production API.
func New(baseURL string) *Prober {
	if baseURL == "" {
		baseURL = defaults.APIBaseURL
	}
	return &Prober{
		Client:    httpclient.Default(),
		BaseURL:   strings.TrimRight(baseURL, "/"),
		UserAgent: ui.UserAgent(),
	}
}

// get issues an authenticated GET and returns the status code and body.
func (p *Prober) get(ctx context.Context, rawURL, bearer string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return 0, nil, err
	}
	return p.do(req, bearer)
}

// postForm issues an authenticated form-encoded POST and returns the
// status code and body.
func (p *Prober) postForm(ctx context.Context, rawURL, bearer string, form url.Values) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, strings.NewReader(form.Encode()))
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", defaults.ContentTypeForm)
	return p.do(req, bearer)
}

func (p *Prober) do(req *http.Request, bearer string) (int, []byte, error) {
	req.Header.Set("Authorization", "Bearer "+bearer)
	req.Header.Set("User-Agent", p.UserAgent)

	client := p.Client
	if client == nil {
		client = httpclient.Default()
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, body, nil
}

// parseJSON decodes body into a generic structure.
func parseJSON(body []byte) (any, error) {
	var v any
	if err := jsonutil.Unmarshal(body, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// okOutcome normalizes a 200 body into a succeeded outcome. A JSON
// null decodes to nil, so the raw text is kept instead: a succeeded
// outcome always carries a payload.
func okOutcome(body []byte) result.Outcome {
	payload, err := parseJSON(body)
	if err != nil {
		return result.TransportFailure(err)
	}
	if payload == nil {
		return result.Success(string(body))
	}
	return result.Success(payload)
}
