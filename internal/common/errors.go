package common

import (
	"errors"
	"fmt"
)

// ValidationError is raised for malformed local input. It is never the
// result of a network call.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// AuthenticationError is terminal: the bearer token was rejected and could
// not be refreshed. The session manager has already been told to log out by
// the time one of these reaches a caller.
type AuthenticationError struct {
	Message string
	Cause   error
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

func (e *AuthenticationError) Unwrap() error {
	return e.Cause
}

func NewAuthenticationError(message string, cause error) *AuthenticationError {
	return &AuthenticationError{Message: message, Cause: cause}
}

// NetworkError means no response was received at all. Callers may retry;
// the client never does so automatically.
type NetworkError struct {
	Message string
	Cause   error
}

func (e *NetworkError) Error() string {
	return e.Message
}

func (e *NetworkError) Unwrap() error {
	return e.Cause
}

func NewNetworkError(cause error) *NetworkError {
	return &NetworkError{
		Message: "no connection: could not reach the server",
		Cause:   cause,
	}
}

// ServerError covers every non-401 error status. Message carries the
// server-provided message when one was present, otherwise the module
// default passed by the caller.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return e.Message
}

func NewServerError(statusCode int, message string) *ServerError {
	return &ServerError{StatusCode: statusCode, Message: message}
}

func IsAuthenticationError(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

func IsNetworkError(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}
