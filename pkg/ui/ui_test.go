package ui

import (
	"strings"
	"testing"
)

func TestUserAgent(t *testing.T) {
	ua := UserAgent()
	if !strings.HasPrefix(ua, "stripecheck/") {
		t.Errorf("UserAgent() = %q", ua)
	}
	if !strings.Contains(ua, Version) {
		t.Errorf("UserAgent() missing version: %q", ua)
	}
}

func TestSilentToggle(t *testing.T) {
	defer SetSilent(false)

	SetSilent(true)
	if !IsSilent() {
		t.Error("silent mode not enabled")
	}
	SetSilent(false)
	if IsSilent() {
		t.Error("silent mode not disabled")
	}
}

func TestDetectColorSupportRespectsNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var buf strings.Builder
	if DetectColorSupport(&buf) {
		t.Error("NO_COLOR must disable color detection")
	}
}

func TestDetectColorSupportForceColor(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("FORCE_COLOR", "1")
	var buf strings.Builder
	if !DetectColorSupport(&buf) {
		t.Error("FORCE_COLOR must enable color detection")
	}
}

func TestDetectColorSupportNonTerminal(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("FORCE_COLOR", "")
	var buf strings.Builder
	if DetectColorSupport(&buf) {
		t.Error("plain writer should not report color support")
	}
}
