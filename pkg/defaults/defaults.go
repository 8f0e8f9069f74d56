// Package defaults provides canonical default values for the entire codebase.
//
// Usage:
//
//	cfg.OutputFolder = defaults.OutputFolder
//	req.Header.Set("Content-Type", defaults.ContentTypeForm)
//
// Do not hardcode values like `"output"` elsewhere; reference the
// appropriate constant from this package.
package defaults

// Version is the current stripecheck version.
const Version = "1.2.0"

// Processor API endpoints.
const (
	// APIBaseURL is the payment processor's API origin. Overridable per
	// run for testing against a stub server.
	APIBaseURL = "https://api.stripe.com"

	// ChargesPath lists charges; a 200 proves the secret key is live.
	ChargesPath = "/v1/charges"

	// TokensPath creates card tokens; a 200 proves the publishable key
	// is live.
	TokensPath = "/v1/tokens"

	// CustomersPath is the base path for customer objects, used by the
	// identifier-space scan.
	CustomersPath = "/v1/customers"
)

// Test card tuple reserved by the processor for non-charging validation.
// Token creation always submits exactly these values; there is no
// caller-supplied card data path.
const (
	TestCardNumber = "4242424242424242"
	TestCardMonth  = "12"
	TestCardYear   = "2025"
	TestCardCVC    = "123"
)

// Scanner settings.
const (
	// DelayMs is the default inter-request delay for brute-force mode,
	// in milliseconds.
	DelayMs = 500

	// CustomerIDPrefix prefixes every synthesized customer identifier.
	CustomerIDPrefix = "cus_"

	// CustomerIDWidth is the zero-padded decimal width of synthesized
	// customer identifiers.
	CustomerIDWidth = 10
)

// Output settings.
const (
	// OutputFolder is the default report directory, created if absent.
	OutputFolder = "output"

	// ReportFilePrefix prefixes the timestamped CSV report filename.
	ReportFilePrefix = "stripe_test_results_"

	// ReportTimestampLayout names report files down to the second to
	// avoid collisions between runs.
	ReportTimestampLayout = "20060102_150405"
)

// Content types.
const (
	ContentTypeForm = "application/x-www-form-urlencoded"
	ContentTypeJSON = "application/json"
)
