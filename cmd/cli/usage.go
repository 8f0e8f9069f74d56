// usage.go - Mode menu and help text.
package main

import (
	"fmt"
	"io"
)

const usageText = `Stripe Checker: audit and validate Stripe API keys

Available modes:

  default      Validate the secret key by listing charges.
               -m default --secretkey <SECRET_KEY>

  brute-force  Discover customers by brute-forcing customer IDs.
               -m brute-force --secretkey <SECRET_KEY> --start <START> --stop <STOP> [--delay <MS>]

  pubkey       Validate the publishable key by creating a test token.
               -m pubkey --pubkey <PUBLISHABLE_KEY>

  full         Validate both secret and publishable keys.
               -m full --secretkey <SECRET_KEY> --pubkey <PUBLISHABLE_KEY>

  restricted   Validate restricted secret keys by listing charges.
               -m restricted --secretkey <RESTRICTED_KEY>

  custom       Test a custom endpoint using a secret key.
               -m custom --secretkey <SECRET_KEY> --custom-endpoint <URL>

Options:
  -m, --mode         Testing mode (default, brute-force, pubkey, full, restricted, custom)
  --secretkey        Stripe secret key (sk_test_xxx or rk_test_xxx)
  --pubkey           Stripe publishable key (pk_test_xxx)
  --start            Start of customer ID range (brute-force mode)
  --stop             End of customer ID range (brute-force mode)
  --delay            Delay between requests in milliseconds (default: 500)
  --custom-endpoint  Custom endpoint to test (custom mode)
  --output-folder    Folder to save results (default: output)
  --api-url          Processor API base URL (for testing against a stub)
  --timeout          HTTP timeout in seconds
  --live-scan        Probe every ID in the brute-force range instead of simulating
  --rps              Cap scan rate in requests per second (0 = no cap)
  --json             Also print the report as JSON to stdout
  --silent           Suppress banner and progress output
  --no-color         Disable colored output
  --version          Print version and exit

Use Stripe test keys (sk_test_..., pk_test_...) to avoid unintended
charges, and mind Stripe's rate limits in brute-force mode.
`

// printUsage writes the mode menu and option help.
func printUsage(w io.Writer) {
	fmt.Fprint(w, usageText)
}
