// Package apperr defines the error kinds the services return to callers.
// All four recoverable kinds are expected outcomes and map to HTTP status
// codes in the handlers; Storage wraps database faults and is passed
// through uninterpreted.
package apperr

import (
	"fmt"

	"github.com/google/uuid"
)

// Validation signals malformed or out-of-range input.
type Validation struct {
	Msg string
}

func (e *Validation) Error() string {
	return e.Msg
}

// NewValidation builds a Validation error from a format string.
func NewValidation(format string, args ...any) *Validation {
	return &Validation{Msg: fmt.Sprintf(format, args...)}
}

// Conflict signals a uniqueness violation on a flight seat, including
// races resolved by the database at commit time. SpaceflightID and Seat
// are set when the colliding pair is known; a constraint-level loss
// carries zero values.
type Conflict struct {
	SpaceflightID uuid.UUID
	Seat          int
}

func (e *Conflict) Error() string {
	if e.SpaceflightID == uuid.Nil {
		return "seat already taken"
	}
	return fmt.Sprintf("seat already taken: spaceflight %s seat %d", e.SpaceflightID, e.Seat)
}

// NotFound signals that a referenced resource does not exist.
type NotFound struct {
	Resource string
	ID       string
}

func (e *NotFound) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// Forbidden signals that the identity lacks the capability for the
// requested action.
type Forbidden struct {
	Msg string
}

func (e *Forbidden) Error() string {
	if e.Msg == "" {
		return "forbidden"
	}
	return e.Msg
}

// Storage wraps a storage-layer fault (connection loss, bad SQL, etc.).
// The services never interpret it; handlers map it to 500.
type Storage struct {
	Op  string
	Err error
}

func (e *Storage) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Storage) Unwrap() error {
	return e.Err
}

// NewStorage wraps err with the failing operation.
func NewStorage(op string, err error) *Storage {
	return &Storage{Op: op, Err: err}
}
