package jsonutil

import (
	"strings"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	in := map[string]any{"id": "cus_0000000001", "livemode": false}

	data, err := Marshal(in)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var out map[string]any
	if err := Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if out["id"] != "cus_0000000001" {
		t.Errorf("out = %v", out)
	}
}

func TestMarshalIndent(t *testing.T) {
	data, err := MarshalIndent(map[string]any{"a": 1}, "", "  ")
	if err != nil {
		t.Fatalf("MarshalIndent failed: %v", err)
	}
	if !strings.Contains(string(data), "\n  ") {
		t.Errorf("output not indented: %q", data)
	}
}

func TestMarshalWrite(t *testing.T) {
	var buf strings.Builder
	if err := MarshalWrite(&buf, map[string]any{"ok": true}, "  "); err != nil {
		t.Fatalf("MarshalWrite failed: %v", err)
	}
	if !strings.Contains(buf.String(), `"ok"`) {
		t.Errorf("output = %q", buf.String())
	}
}

func TestValid(t *testing.T) {
	if !Valid([]byte(`{"error":{"message":"x"}}`)) {
		t.Error("valid JSON reported invalid")
	}
	if Valid([]byte(`upstream unavailable`)) {
		t.Error("raw text reported valid")
	}
}
