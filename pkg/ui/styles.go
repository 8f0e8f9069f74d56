package ui

import "github.com/charmbracelet/lipgloss"

// ANSI escape codes for simple terminal output (CLI commands)
const (
	Reset   = "\033[0m"
	Bold    = "\033[1m"
	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Cyan    = "\033[36m"
	BoldRed = "\033[1;31m"
)

// Color palette
var (
	// Brand colors
	Primary   = lipgloss.Color("#635BFF") // Stripe-ish indigo
	Secondary = lipgloss.Color("#00D4AA") // Cyan/Teal

	// Status colors
	Success = lipgloss.Color("#00D26A") // Bright green
	Warning = lipgloss.Color("#FFB800") // Amber
	Error   = lipgloss.Color("#FF3838") // Red
	Muted   = lipgloss.Color("#6B7280") // Gray

	// Outcome colors
	Pass = lipgloss.Color("#00D26A") // Green - credential live, call authorized
	Fail = lipgloss.Color("#FF3838") // Red - rejected or unreachable
)

// Pre-configured styles
var (
	BannerStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	VersionStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	SectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true)

	DividerStyle = lipgloss.NewStyle().
			Foreground(Muted)

	ConfigLabelStyle = lipgloss.NewStyle().
				Foreground(Secondary)

	ConfigValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FAFAFA"))

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	PassStyle = lipgloss.NewStyle().
			Foreground(Pass).
			Bold(true)

	FailStyle = lipgloss.NewStyle().
			Foreground(Fail).
			Bold(true)
)
