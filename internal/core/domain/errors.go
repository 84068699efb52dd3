package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthenticated means no session token is present at all.
	ErrUnauthenticated = errors.New("not authenticated")
	// ErrForbidden means a session exists but lacks the admin role. Role
	// verification failures collapse into this error as well (fail closed).
	ErrForbidden = errors.New("access forbidden")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountExists      = errors.New("account already exists")
	ErrAccountNotFound    = errors.New("account not found")
	ErrSessionNotFound    = errors.New("session not found")

	// ErrMutationInFlight is returned when a mutation is requested while a
	// previous one on the same controller has not completed yet.
	ErrMutationInFlight = errors.New("mutation already in flight")

	ErrRecordNotFound = errors.New("record not found")

	ErrInvalidOrderStatus = errors.New("invalid order status")
)

// LoadError wraps a failed collection fetch. A load failure never discards a
// previously loaded collection; callers surface the message and stay
// interactive.
type LoadError struct {
	Entity string
	Cause  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Entity, e.Cause)
}

func (e *LoadError) Unwrap() error { return e.Cause }

// MutationError wraps a failed create/update/delete/status call. Message holds
// the server-provided text verbatim when the backend returned one.
type MutationError struct {
	Entity  string
	Op      string
	Message string
	Cause   error
}

func (e *MutationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s %s failed: %v", e.Op, e.Entity, e.Cause)
}

func (e *MutationError) Unwrap() error { return e.Cause }
