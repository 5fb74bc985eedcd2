package store

import "fmt"

// The four domain error kinds. Handlers map them onto HTTP status codes;
// anything else coming out of the store is an opaque storage failure.

// ValidationError - a field value is missing or outside its domain
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ReferenceError - a foreign reference does not resolve to a live record
type ReferenceError struct {
	Entity string
	ID     uint
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s %d does not exist", e.Entity, e.ID)
}

// NotFoundError - the operation targets a nonexistent id
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// ConstraintError - the operation would break a structural invariant
// (e.g. deleting a Room that still has Tenants)
type ConstraintError struct {
	Reason string
}

func (e *ConstraintError) Error() string {
	return e.Reason
}
