package sales

import (
	"log/slog"

	"bluewave/internal/domain"
	"bluewave/internal/store"
)

// Processor runs the sales workflow against a store.
type Processor struct {
	store *store.Store
}

// NewProcessor creates a sales processor.
func NewProcessor(s *store.Store) *Processor {
	return &Processor{store: s}
}

// ProcessSale sells quantity units of the given book, attributing the
// sale to soldBy (the active session's username).
//
// Preconditions, checked in order:
//   - quantity must be positive
//   - bookID must resolve to an existing book
//   - quantity must not exceed the book's current stock
//
// On success the book's quantity is decremented, its sales counter is
// incremented, and an immutable Sale with snapshotted title and unit
// price is appended to the ledger. The total is computed once at sale
// time and stored, never recomputed from the book later.
func (p *Processor) ProcessSale(bookID, quantity int, soldBy string) (*domain.Sale, error) {
	if quantity <= 0 {
		return nil, domain.NewValidationError("sale quantity must be positive")
	}

	state := p.store.State()
	i := state.FindBook(bookID)
	if i < 0 {
		return nil, domain.NewNotFoundError("book", bookID)
	}
	book := &state.Books[i]
	if book.Quantity < quantity {
		return nil, domain.NewInsufficientStockError(bookID, book.Quantity, quantity)
	}

	prior := *book
	book.Quantity -= quantity
	book.SalesCount += quantity

	clock := p.store.Clock()
	sale := domain.Sale{
		ID:         state.NextSaleID(),
		BookID:     book.ID,
		Title:      book.Title,
		Quantity:   quantity,
		UnitPrice:  book.Price,
		TotalPrice: book.Price * float64(quantity),
		SaleDate:   domain.Today(clock),
		SaleTime:   domain.TimeOfDay(clock),
		SoldBy:     soldBy,
	}
	state.Sales = append(state.Sales, sale)

	if err := p.store.Save(); err != nil {
		// Compensate: restore the book and drop the appended sale so
		// the in-memory state matches the last persisted document.
		slog.Warn("persist failed, rolling back sale", "book", bookID, "error", err)
		state.Books[i] = prior
		state.Sales = state.Sales[:len(state.Sales)-1]
		return nil, err
	}

	return &sale, nil
}
