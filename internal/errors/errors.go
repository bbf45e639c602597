package errors

import (
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in branch"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison for AuthenticationError
func (e *AuthenticationError) Is(target error) bool {
	_, ok := target.(*AuthenticationError)
	return ok
}

// RegistryError represents a failure reported by the remote shift registry
type RegistryError struct {
	Scope   string // day, week or month
	Message string
}

func (e *RegistryError) Error() string {
	if e.Scope != "" {
		return fmt.Sprintf("shift registry (%s): %s", e.Scope, e.Message)
	}
	return fmt.Sprintf("shift registry: %s", e.Message)
}

// Entity Not Found Errors
var (
	ErrAgencyNotFound     = &NotFoundError{Entity: "agency"}
	ErrBranchNotFound     = &NotFoundError{Entity: "branch"}
	ErrCheckpointNotFound = &NotFoundError{Entity: "checkpoint"}
	ErrGuardNotFound      = &NotFoundError{Entity: "guard"}
)

// Already Exists Errors
var (
	ErrAgencyExists     = &AlreadyExistsError{Entity: "agency", Context: "with this name"}
	ErrBranchExists     = &AlreadyExistsError{Entity: "branch", Context: "with this name in the agency"}
	ErrCheckpointExists = &AlreadyExistsError{Entity: "checkpoint", Context: "with this name in the branch"}
	ErrGuardExists      = &AlreadyExistsError{Entity: "guard", Context: "with this badge number"}
)

// ErrUnauthenticated is returned when no usable bearer credential is available.
// The shift registry is never contacted in that case.
var ErrUnauthenticated = &AuthenticationError{Message: "missing or invalid bearer credential"}
