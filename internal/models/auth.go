package models

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is the shape returned by both /auth/login and /auth/register.
type AuthResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    AuthSessionData `json:"data"`
}

type AuthSessionData struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// RefreshResponse is the shape returned by /auth/refresh. Only the token is
// replaced; the identity half of the session is untouched.
type RefreshResponse struct {
	Success bool        `json:"success,omitempty"`
	Data    SessionData `json:"data"`
}

// ErrorResponse is the server's error envelope. Message is surfaced to the
// user verbatim when present.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}
