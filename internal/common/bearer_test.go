package common

import "testing"

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		expected string
	}{
		{
			name:     "plain token gets prefixed",
			token:    "abc123",
			expected: "Bearer abc123",
		},
		{
			name:     "already prefixed token is untouched",
			token:    "Bearer abc123",
			expected: "Bearer abc123",
		},
		{
			name:     "surrounding whitespace is trimmed",
			token:    "  abc123  ",
			expected: "Bearer abc123",
		},
		{
			name:     "empty token yields empty header",
			token:    "",
			expected: "",
		},
		{
			name:     "whitespace only yields empty header",
			token:    "   ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BearerToken(tt.token); got != tt.expected {
				t.Errorf("BearerToken(%q) = %q, want %q", tt.token, got, tt.expected)
			}
		})
	}
}

func TestStripBearer(t *testing.T) {
	if got := StripBearer("Bearer abc"); got != "abc" {
		t.Errorf("Expected abc, got %q", got)
	}
	if got := StripBearer("abc"); got != "abc" {
		t.Errorf("Expected abc, got %q", got)
	}
}

func TestBearerTokenNeverDoublePrefixes(t *testing.T) {
	// Applying the helper twice must be a no-op on the second pass.
	once := BearerToken("token-xyz")
	twice := BearerToken(once)

	if once != twice {
		t.Errorf("Expected idempotent prefixing, got %q then %q", once, twice)
	}
}
