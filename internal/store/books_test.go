package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bluewave/internal/domain"
)

func TestAddBook(t *testing.T) {
	s, _ := openSeeded(t)

	book, err := s.AddBook(BookInput{
		Title:    "  The Pragmatic Programmer  ",
		Author:   "Andrew Hunt",
		Price:    39.99,
		Quantity: 10,
		Category: "Technology",
	})
	require.NoError(t, err)

	assert.Equal(t, 9, book.ID, "seed has ids 1..8")
	assert.Equal(t, "The Pragmatic Programmer", book.Title, "title is trimmed")
	assert.Equal(t, "ISBN0000000009", book.ISBN)
	assert.Equal(t, 1, book.SupplierID)
	assert.Equal(t, "2024-02-01", book.CreatedAt)
	assert.Equal(t, 0, book.SalesCount)
	assert.Len(t, s.Books(), 9)
}

func TestAddBook_Validation(t *testing.T) {
	s, _ := openSeeded(t)

	tests := []struct {
		name  string
		input BookInput
	}{
		{"empty title", BookInput{Title: "  ", Author: "A", Price: 1, Quantity: 1}},
		{"empty author", BookInput{Title: "T", Author: "", Price: 1, Quantity: 1}},
		{"zero price", BookInput{Title: "T", Author: "A", Price: 0, Quantity: 1}},
		{"negative price", BookInput{Title: "T", Author: "A", Price: -5, Quantity: 1}},
		{"negative quantity", BookInput{Title: "T", Author: "A", Price: 1, Quantity: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.AddBook(tt.input)
			assert.True(t, domain.IsValidation(err), "got %v", err)
		})
	}
	assert.Len(t, s.Books(), 8, "rejected inputs must not grow the catalog")
}

func TestAddBook_ZeroQuantityAllowed(t *testing.T) {
	s, _ := openSeeded(t)

	book, err := s.AddBook(BookInput{Title: "Preorder", Author: "A", Price: 9.99, Quantity: 0})
	require.NoError(t, err)
	assert.Equal(t, 0, book.Quantity)
}

func TestAddBook_IDAfterDeletingMax(t *testing.T) {
	s, _ := openSeeded(t)

	require.NoError(t, s.DeleteBook(8))
	book, err := s.AddBook(BookInput{Title: "T", Author: "A", Price: 1, Quantity: 1})
	require.NoError(t, err)
	assert.Equal(t, 8, book.ID, "max+1 reuses the freed id")
}

func TestUpdateBook_MergesPatch(t *testing.T) {
	s, _ := openSeeded(t)

	title := "Gatsby, Revised"
	price := 15.99
	book, err := s.UpdateBook(1, BookPatch{Title: &title, Price: &price})
	require.NoError(t, err)

	assert.Equal(t, "Gatsby, Revised", book.Title)
	assert.Equal(t, 15.99, book.Price)
	assert.Equal(t, "F. Scott Fitzgerald", book.Author, "unset fields keep their value")
	assert.Equal(t, 25, book.Quantity, "quantity is not editable")
}

func TestUpdateBook_NotFound(t *testing.T) {
	s, _ := openSeeded(t)

	title := "X"
	_, err := s.UpdateBook(999, BookPatch{Title: &title})
	assert.True(t, domain.IsNotFound(err), "got %v", err)
}

func TestUpdateBook_RejectsEmptyTitle(t *testing.T) {
	s, _ := openSeeded(t)

	title := "   "
	_, err := s.UpdateBook(1, BookPatch{Title: &title})
	assert.True(t, domain.IsValidation(err), "got %v", err)

	book, err := s.Book(1)
	require.NoError(t, err)
	assert.Equal(t, "The Great Gatsby", book.Title, "rejected patch must not apply")
}

func TestDeleteBook_LeavesSalesDangling(t *testing.T) {
	s, _ := openSeeded(t)

	// Seed sale 1 references book 1.
	require.NoError(t, s.DeleteBook(1))

	assert.Len(t, s.Books(), 7)
	require.Len(t, s.Sales(), 4, "sales are never cascaded")

	sale := s.Sales()[0]
	assert.Equal(t, 1, sale.BookID, "dangling reference is preserved")
	assert.Equal(t, "The Great Gatsby", sale.Title, "snapshot title keeps the ledger readable")
}

func TestDeleteBook_NotFound(t *testing.T) {
	s, _ := openSeeded(t)
	err := s.DeleteBook(999)
	assert.True(t, domain.IsNotFound(err), "got %v", err)
}

func TestRestock(t *testing.T) {
	s, _ := openSeeded(t)

	book, err := s.Restock(5, 20)
	require.NoError(t, err)
	assert.Equal(t, 22, book.Quantity, "seed book 5 starts at 2")
}

func TestRestock_RejectsNonPositiveQuantity(t *testing.T) {
	s, _ := openSeeded(t)

	for _, qty := range []int{0, -3} {
		_, err := s.Restock(1, qty)
		assert.True(t, domain.IsValidation(err), "Restock(1, %d) = %v", qty, err)
	}
}

func TestRestock_NotFound(t *testing.T) {
	s, _ := openSeeded(t)
	_, err := s.Restock(999, 5)
	assert.True(t, domain.IsNotFound(err), "got %v", err)
}
