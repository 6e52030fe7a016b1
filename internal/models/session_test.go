package models

import (
	"encoding/json"
	"testing"
)

func TestSessionIsValid(t *testing.T) {
	tests := []struct {
		name    string
		session *Session
		valid   bool
	}{
		{
			name:    "nil session",
			session: nil,
			valid:   false,
		},
		{
			name:    "complete session",
			session: &Session{User: &User{ID: 1, Name: "A"}, Token: "abc"},
			valid:   true,
		},
		{
			name:    "token without user",
			session: &Session{Token: "abc"},
			valid:   false,
		},
		{
			name:    "user without token",
			session: &Session{User: &User{ID: 1}},
			valid:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.session.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestStoredSessionRoundTrip(t *testing.T) {
	session := &Session{
		User:  &User{Name: "A", Email: "a@b.com"},
		Token: "abc",
	}

	stored := NewStoredSession(session)
	if stored == nil {
		t.Fatal("Expected stored session")
	}

	back := stored.ToSession()
	if !back.IsValid() {
		t.Fatal("Expected valid session after round trip")
	}
	if back.Token != "abc" || back.User.Name != "A" {
		t.Errorf("Round trip mangled session: %+v", back)
	}
}

func TestStoredSessionLayout(t *testing.T) {
	// The on-disk layout must stay compatible with the web client:
	// {"user": {...}, "data": {"token": "..."}}.
	stored := NewStoredSession(&Session{
		User:  &User{Name: "A"},
		Token: "abc",
	})

	raw, err := json.Marshal(stored)
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}

	var layout map[string]json.RawMessage
	if err := json.Unmarshal(raw, &layout); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}

	if _, ok := layout["user"]; !ok {
		t.Error("Expected top level user key")
	}

	var data map[string]string
	if err := json.Unmarshal(layout["data"], &data); err != nil {
		t.Fatalf("Failed to unmarshal data: %v", err)
	}
	if data["token"] != "abc" {
		t.Errorf("Expected data.token = abc, got %q", data["token"])
	}
}

func TestStoredSessionRejectsPartial(t *testing.T) {
	if NewStoredSession(&Session{Token: "abc"}) != nil {
		t.Error("Expected nil for session without user")
	}

	partial := &StoredSession{User: &User{Name: "A"}}
	if partial.ToSession() != nil {
		t.Error("Expected nil session for record without token")
	}
}
