package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
)

func TestConflictMessage(t *testing.T) {
	flightID := uuid.New()
	err := &Conflict{SpaceflightID: flightID, Seat: 17}

	want := fmt.Sprintf("seat already taken: spaceflight %s seat 17", flightID)
	if err.Error() != want {
		t.Fatalf("got %q, want %q", err.Error(), want)
	}

	// A constraint-level loss carries no seat details.
	if (&Conflict{}).Error() != "seat already taken" {
		t.Fatalf("zero conflict message: %q", (&Conflict{}).Error())
	}
}

func TestNotFoundMessage(t *testing.T) {
	if got := (&NotFound{Resource: "planet", ID: "abc"}).Error(); got != "planet abc not found" {
		t.Fatalf("got %q", got)
	}
	if got := (&NotFound{Resource: "planet"}).Error(); got != "planet not found" {
		t.Fatalf("got %q", got)
	}
}

func TestStorageUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewStorage("find planets", cause)

	if !errors.Is(err, cause) {
		t.Fatal("Storage must unwrap to its cause")
	}

	var storage *Storage
	if !errors.As(fmt.Errorf("outer: %w", err), &storage) {
		t.Fatal("errors.As must find Storage through wrapping")
	}
	if storage.Op != "find planets" {
		t.Fatalf("op %q", storage.Op)
	}
}

func TestValidationFormat(t *testing.T) {
	err := NewValidation("seat must be in range [1, %d], not %d", 60, 61)
	if err.Error() != "seat must be in range [1, 60], not 61" {
		t.Fatalf("got %q", err.Error())
	}
}
