package common

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorTaxonomy(t *testing.T) {
	cause := fmt.Errorf("connection refused")

	tests := []struct {
		name     string
		err      error
		message  string
		isAuth   bool
		isNet    bool
		unwrapTo error
	}{
		{
			name:    "validation error",
			err:     NewValidationError("bad input: %s", "email"),
			message: "bad input: email",
		},
		{
			name:     "authentication error",
			err:      NewAuthenticationError("session expired", cause),
			message:  "session expired",
			isAuth:   true,
			unwrapTo: cause,
		},
		{
			name:     "network error",
			err:      NewNetworkError(cause),
			message:  "no connection: could not reach the server",
			isNet:    true,
			unwrapTo: cause,
		},
		{
			name:    "server error",
			err:     NewServerError(http.StatusInternalServerError, "boom"),
			message: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.message {
				t.Errorf("Expected message %q, got %q", tt.message, tt.err.Error())
			}
			if got := IsAuthenticationError(tt.err); got != tt.isAuth {
				t.Errorf("IsAuthenticationError = %v, want %v", got, tt.isAuth)
			}
			if got := IsNetworkError(tt.err); got != tt.isNet {
				t.Errorf("IsNetworkError = %v, want %v", got, tt.isNet)
			}
			if tt.unwrapTo != nil && !errors.Is(tt.err, tt.unwrapTo) {
				t.Error("Expected errors.Is to reach the cause")
			}
		})
	}
}

func TestServerErrorCarriesStatus(t *testing.T) {
	var serverErr *ServerError

	err := NewServerError(http.StatusNotFound, "not found")
	if !errors.As(err, &serverErr) {
		t.Fatal("Expected ServerError")
	}
	if serverErr.StatusCode != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", serverErr.StatusCode)
	}
}
