package ui

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Version information - these can be overridden at build time via ldflags:
// go build -ldflags "-X github.com/stripecheck/stripecheck/pkg/ui.Version=1.0.0"
var (
	Version   = "1.2.0"
	BuildDate = "2026-08-24"
	Commit    = "dev"
)

// UserAgent returns the standard User-Agent string for stripecheck requests.
func UserAgent() string {
	return fmt.Sprintf("stripecheck/%s", Version)
}

// Global UI state
var (
	silentMode  bool
	noColorMode bool
	uiMu        sync.RWMutex
)

// SetSilent enables or disables silent mode (suppresses most output).
func SetSilent(silent bool) {
	uiMu.Lock()
	defer uiMu.Unlock()
	silentMode = silent
}

// IsSilent returns whether silent mode is enabled.
func IsSilent() bool {
	uiMu.RLock()
	defer uiMu.RUnlock()
	return silentMode
}

// SetNoColor disables colored output.
func SetNoColor(noColor bool) {
	uiMu.Lock()
	defer uiMu.Unlock()
	noColorMode = noColor
	if noColor {
		// Use ASCII profile to disable colors
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// IsNoColor returns whether color is disabled.
func IsNoColor() bool {
	uiMu.RLock()
	defer uiMu.RUnlock()
	return noColorMode
}

// ASCII art banner
const bannerArt = `
        __       _                  __              __
  _____/ /______(_)___  ___   _____/ /_  ___  _____/ /__
 / ___/ __/ ___/ / __ \/ _ \/ ___/ __ \/ _ \/ ___/ //_/
(__  ) /_/ /  / / /_/ /  __/ /__/ / / /  __/ /__/ ,<
/____/\__/_/  /_/ .___/\___/\___/_/ /_/\___/\___/_/|_|
               /_/
`

// Separator line
const bannerSeparator = "________________________________________________"

// PrintBanner prints the application banner with version info to stderr.
func PrintBanner() {
	if IsSilent() {
		return
	}
	lines := strings.Split(bannerArt, "\n")
	for _, line := range lines {
		if line != "" {
			fmt.Fprintln(os.Stderr, BannerStyle.Render(line))
		}
	}
	fmt.Fprintf(os.Stderr, "                  v%s\n", VersionStyle.Render(Version))
	fmt.Fprintln(os.Stderr, SubtitleStyle.Render("        audit and validate Stripe API keys"))
	fmt.Fprintln(os.Stderr)
}

// printOption prints a configuration option in ffuf/nuclei style
// Format:  :: Option              : Value
func printOption(name, value string) {
	fmt.Fprintf(os.Stderr, " :: %-20s : %s\n", ConfigLabelStyle.Render(name), ConfigValueStyle.Render(value))
}

// PrintConfigBanner prints the run configuration before execution starts.
// Uses ordered keys for consistent display.
func PrintConfigBanner(options map[string]string) {
	if IsSilent() {
		return
	}

	order := []string{
		"Mode", "Target", "Delay", "RPS", "ID Range", "Endpoint", "Output", "Timeout",
	}

	printed := make(map[string]bool)
	for _, name := range order {
		if value, ok := options[name]; ok && value != "" {
			printOption(name, value)
			printed[name] = true
		}
	}
	for name, value := range options {
		if !printed[name] && value != "" {
			printOption(name, value)
		}
	}

	fmt.Fprintf(os.Stderr, "%s\n\n", DividerStyle.Render(bannerSeparator))
}

// Infof prints an informational message to stderr unless silent.
func Infof(format string, a ...any) {
	if IsSilent() {
		return
	}
	fmt.Fprintf(os.Stderr, format+"\n", a...)
}

// Errorf prints a styled error message to stderr. Not gated on silent
// mode: validation failures must always surface.
func Errorf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, "%s %s\n", ErrorStyle.Render("[!]"), fmt.Sprintf(format, a...))
}

// Successf prints a styled success message to stderr unless silent.
func Successf(format string, a ...any) {
	if IsSilent() {
		return
	}
	fmt.Fprintf(os.Stderr, "%s %s\n", SuccessStyle.Render("[+]"), fmt.Sprintf(format, a...))
}
