package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidation(t *testing.T) {
	err := Validation("duplicate title %q", "Tema 1")
	if !IsValidation(err) {
		t.Fatalf("IsValidation = false for %v", err)
	}
	if IsNotFound(err) {
		t.Fatalf("IsNotFound = true for validation error")
	}
	if err.Error() != `duplicate title "Tema 1"` {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestValidationWrapped(t *testing.T) {
	err := fmt.Errorf("link concept: %w", Validation("self link"))
	if !IsValidation(err) {
		t.Fatalf("IsValidation = false for wrapped validation error")
	}
}

func TestNotFound(t *testing.T) {
	err := NotFound("topic", 42)
	if !IsNotFound(err) {
		t.Fatalf("IsNotFound = false for %v", err)
	}
	if IsValidation(err) {
		t.Fatalf("IsValidation = true for not-found error")
	}
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("errors.Is(err, ErrNotFound) = false")
	}
}
