package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSessionExpired is returned once the single refresh attempt is exhausted.
	// The session has already been torn down when a caller observes it.
	ErrSessionExpired = errors.New("session expired")
	// ErrInvalidState marks an operation that needs authentication state that is absent.
	ErrInvalidState        = errors.New("invalid session state")
	ErrCredentialsNotFound = errors.New("credentials not found")
	ErrSecretNotFound      = errors.New("secret not found")
)

const defaultLoginFailure = "Login failed"

// AuthError is a rejected login. Message is the server's detail when one was sent.
type AuthError struct {
	Message string
}

func NewAuthError(message string) *AuthError {
	if strings.TrimSpace(message) == "" {
		message = defaultLoginFailure
	}
	return &AuthError{Message: message}
}

func (e *AuthError) Error() string {
	return "authentication failed: " + e.Message
}

type FieldError struct {
	Field   string
	Message string
}

type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(e.Fields))
	for _, field := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field.Field, field.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error during %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// APIError is any non-401 HTTP failure. It is propagated without retry.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("api returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("api returned status %d: %s", e.StatusCode, e.Detail)
}

type MalformedResponseError struct {
	Endpoint string
	Err      error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response from %s: %v", e.Endpoint, e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}
