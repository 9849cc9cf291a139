// Package apperrors defines the sentinel errors shared by the storage
// backends, services and the HTTP error mapping.
package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// Resource errors
	ErrNotFound = errors.New("resource not found")
	ErrConflict = errors.New("conflict")

	// User uniqueness errors, both match ErrConflict via errors.Is
	ErrUsernameTaken = fmt.Errorf("%w: username already taken", ErrConflict)
	ErrEmailTaken    = fmt.Errorf("%w: email already registered", ErrConflict)

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)
