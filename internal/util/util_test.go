package util

import "testing"

func TestEscapeLikePattern(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain text", input: "Happy Paws", expected: "Happy Paws"},
		{name: "percent", input: "100%", expected: `100\%`},
		{name: "underscore", input: "dog_cat", expected: `dog\_cat`},
		{name: "backslash", input: `a\b`, expected: `a\\b`},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := EscapeLikePattern(tt.input); got != tt.expected {
				t.Fatalf("EscapeLikePattern(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestContainsPattern(t *testing.T) {
	t.Parallel()

	if got := ContainsPattern("Vet_Clinic"); got != `%vet\_clinic%` {
		t.Fatalf("ContainsPattern() = %q", got)
	}
}
