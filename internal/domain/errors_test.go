package domain

import (
	"fmt"
	"testing"
)

func TestErrorPredicates(t *testing.T) {
	tests := []struct {
		name string
		err  error
		pred func(error) bool
	}{
		{"validation", NewValidationError("title is required"), IsValidation},
		{"not found", NewNotFoundError("book", 9), IsNotFound},
		{"insufficient stock", NewInsufficientStockError(1, 2, 5), IsInsufficientStock},
		{"persistence", NewPersistenceError("write failed", nil), IsPersistence},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.pred(tt.err) {
				t.Errorf("predicate rejected %v", tt.err)
			}
			if IsValidation(tt.err) && tt.name != "validation" {
				t.Errorf("IsValidation matched %v", tt.err)
			}
		})
	}
}

func TestErrorPredicates_Wrapped(t *testing.T) {
	err := fmt.Errorf("selling: %w", NewNotFoundError("book", 3))
	if !IsNotFound(err) {
		t.Error("IsNotFound should see through wrapping")
	}
	if IsValidation(err) {
		t.Error("IsValidation matched a NOT_FOUND error")
	}
}

func TestErrorPredicates_PlainError(t *testing.T) {
	if IsNotFound(fmt.Errorf("boom")) {
		t.Error("IsNotFound matched a plain error")
	}
}

func TestError_Message(t *testing.T) {
	err := NewInsufficientStockError(5, 2, 10)
	want := "INSUFFICIENT_STOCK: only 2 units available, requested 10 (book=5)"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestError_MessageWithoutEntity(t *testing.T) {
	err := NewValidationError("price must be positive")
	want := "VALIDATION: price must be positive"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
