package store

import (
	"fmt"
	"strings"

	"bluewave/internal/domain"
)

// BookInput is the payload for adding a book.
type BookInput struct {
	Title    string
	Author   string
	Price    float64
	Quantity int
	Category string
}

// BookPatch carries the editable fields of a book. Nil fields are left
// unchanged. Quantity is deliberately absent: stock moves only through
// Restock and the sales workflow.
type BookPatch struct {
	Title    *string
	Author   *string
	Price    *float64
	Category *string
}

// AddBook validates the input, assigns the next id and appends the
// book to the catalog. The ISBN is generated from the id and the
// supplier defaults to the primary distributor.
func (s *Store) AddBook(input BookInput) (*domain.Book, error) {
	if err := validateBookInput(input); err != nil {
		return nil, err
	}

	id := s.state.NextBookID()
	book := domain.Book{
		ID:         id,
		Title:      strings.TrimSpace(input.Title),
		Author:     strings.TrimSpace(input.Author),
		ISBN:       fmt.Sprintf("ISBN%010d", id),
		Price:      input.Price,
		Quantity:   input.Quantity,
		Category:   input.Category,
		SupplierID: 1,
		CreatedAt:  domain.Today(s.clock),
		SalesCount: 0,
	}
	s.state.Books = append(s.state.Books, book)

	if err := s.persist(); err != nil {
		return nil, err
	}
	return &book, nil
}

// Book returns the book with the given id.
func (s *Store) Book(id int) (*domain.Book, error) {
	i := s.state.FindBook(id)
	if i < 0 {
		return nil, domain.NewNotFoundError("book", id)
	}
	return &s.state.Books[i], nil
}

// UpdateBook merges the patch into an existing book, preserving unset
// fields.
func (s *Store) UpdateBook(id int, patch BookPatch) (*domain.Book, error) {
	i := s.state.FindBook(id)
	if i < 0 {
		return nil, domain.NewNotFoundError("book", id)
	}
	if err := validateBookPatch(patch); err != nil {
		return nil, err
	}

	book := &s.state.Books[i]
	if patch.Title != nil {
		book.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Author != nil {
		book.Author = strings.TrimSpace(*patch.Author)
	}
	if patch.Price != nil {
		book.Price = *patch.Price
	}
	if patch.Category != nil {
		book.Category = *patch.Category
	}

	if err := s.persist(); err != nil {
		return nil, err
	}
	return book, nil
}

// DeleteBook removes the book from the catalog. Sales referencing the
// book are left in the ledger with their snapshot fields intact.
func (s *Store) DeleteBook(id int) error {
	i := s.state.FindBook(id)
	if i < 0 {
		return domain.NewNotFoundError("book", id)
	}
	s.state.Books = append(s.state.Books[:i], s.state.Books[i+1:]...)
	return s.persist()
}

// Restock adds quantity units to a book's stock.
func (s *Store) Restock(id, quantity int) (*domain.Book, error) {
	if quantity <= 0 {
		return nil, domain.NewValidationError("restock quantity must be positive")
	}
	i := s.state.FindBook(id)
	if i < 0 {
		return nil, domain.NewNotFoundError("book", id)
	}

	book := &s.state.Books[i]
	book.Quantity += quantity

	if err := s.persist(); err != nil {
		return nil, err
	}
	return book, nil
}

func validateBookInput(input BookInput) error {
	switch {
	case strings.TrimSpace(input.Title) == "":
		return domain.NewValidationError("title is required")
	case strings.TrimSpace(input.Author) == "":
		return domain.NewValidationError("author is required")
	case input.Price <= 0:
		return domain.NewValidationError("price must be positive")
	case input.Quantity < 0:
		return domain.NewValidationError("quantity cannot be negative")
	}
	return nil
}

func validateBookPatch(patch BookPatch) error {
	switch {
	case patch.Title != nil && strings.TrimSpace(*patch.Title) == "":
		return domain.NewValidationError("title is required")
	case patch.Author != nil && strings.TrimSpace(*patch.Author) == "":
		return domain.NewValidationError("author is required")
	case patch.Price != nil && *patch.Price <= 0:
		return domain.NewValidationError("price must be positive")
	}
	return nil
}
