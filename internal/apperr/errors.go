// Package apperr defines the error taxonomy shared by services and
// controllers. Controllers map these to HTTP statuses; everything else is a
// plain 500.
package apperr

import (
	"errors"
	"fmt"
)

// ErrNotFound signals that an id did not resolve in its collection.
var ErrNotFound = errors.New("record not found")

// NotFound wraps ErrNotFound with the entity kind and id.
func NotFound(kind, id string) error {
	return fmt.Errorf("%s %q: %w", kind, id, ErrNotFound)
}

// ValidationError reports a missing or malformed request field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid field %q: %s", e.Field, e.Reason)
}

// Invalid builds a ValidationError for a single field.
func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// AuthRequired is returned by the access gate when an assessment secret is
// missing or wrong. CredentialSupplied distinguishes the two for UX only;
// both are rejections.
type AuthRequired struct {
	CredentialSupplied bool
}

func (e *AuthRequired) Error() string {
	if e.CredentialSupplied {
		return "incorrect assessment secret"
	}
	return "assessment secret required"
}

// StorageError wraps a durable read/write failure. The prior snapshot state
// is not exposed to the caller.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Storage wraps err as a StorageError for the given operation.
func Storage(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}
