package logging

import (
	"testing"
)

func TestErrNil(t *testing.T) {
	attr := Err(nil)
	// A nil error must produce an empty group that slog omits
	if attr.Key != "" {
		t.Errorf("Expected empty key for nil error, got %q", attr.Key)
	}
}

func TestErrNonNil(t *testing.T) {
	attr := Err(errFake("boom"))
	if attr.Key != KeyError {
		t.Errorf("Expected key %q, got %q", KeyError, attr.Key)
	}
	if attr.Value.String() != "boom" {
		t.Errorf("Expected value %q, got %q", "boom", attr.Value.String())
	}
}

type errFake string

func (e errFake) Error() string { return string(e) }

func TestSanitizeToken(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty token",
			input:    "",
			expected: "<empty>",
		},
		{
			name:     "short token",
			input:    "abc",
			expected: "[token:3 chars]",
		},
		{
			name:     "uuid token",
			input:    "34c737d2-5237-438b-97dc-a83ec77db36e",
			expected: "[token:36 chars]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SanitizeToken(tt.input)
			if result != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestNew(t *testing.T) {
	logger := New(false)
	if logger == nil {
		t.Fatal("Expected non-nil logger")
	}

	debugLogger := New(true)
	if debugLogger == nil {
		t.Fatal("Expected non-nil debug logger")
	}
}
