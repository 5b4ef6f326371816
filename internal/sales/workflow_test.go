package sales

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bluewave/internal/domain"
	"bluewave/internal/persist"
	"bluewave/internal/store"
	"bluewave/internal/testutil"
)

func newTestProcessor(t *testing.T) (*Processor, *store.Store, *persist.MemoryRepository) {
	t.Helper()
	repo := persist.NewMemoryRepository()
	clock := testutil.NewFixedClock(time.Date(2024, 2, 1, 14, 30, 0, 0, time.UTC))
	s, err := store.Open(repo, clock, domain.DefaultSettings)
	require.NoError(t, err)
	return NewProcessor(s), s, repo
}

func TestProcessSale(t *testing.T) {
	p, s, repo := newTestProcessor(t)

	// Seed book 1: 25 in stock at 12.99, sales counter at 5.
	sale, err := p.ProcessSale(1, 2, "admin")
	require.NoError(t, err)

	assert.Equal(t, 5, sale.ID, "seed ledger has ids 1..4")
	assert.Equal(t, 1, sale.BookID)
	assert.Equal(t, "The Great Gatsby", sale.Title)
	assert.Equal(t, 2, sale.Quantity)
	assert.Equal(t, 12.99, sale.UnitPrice)
	assert.Equal(t, 25.98, sale.TotalPrice)
	assert.Equal(t, "2024-02-01", sale.SaleDate)
	assert.Equal(t, "02:30 PM", sale.SaleTime)
	assert.Equal(t, "admin", sale.SoldBy)

	book, err := s.Book(1)
	require.NoError(t, err)
	assert.Equal(t, 23, book.Quantity)
	assert.Equal(t, 7, book.SalesCount)

	// The whole mutation must be persisted as one document.
	persisted, err := repo.LoadState()
	require.NoError(t, err)
	assert.Len(t, persisted.Sales, 5)
	assert.Equal(t, 23, persisted.Books[0].Quantity)
}

func TestProcessSale_ExactStock(t *testing.T) {
	p, s, _ := newTestProcessor(t)

	// Seed book 5 has exactly 2 in stock.
	sale, err := p.ProcessSale(5, 2, "cashier")
	require.NoError(t, err)
	assert.Equal(t, 2, sale.Quantity)

	book, err := s.Book(5)
	require.NoError(t, err)
	assert.Equal(t, 0, book.Quantity, "selling the full stock leaves zero, not an error")
}

func TestProcessSale_InsufficientStock(t *testing.T) {
	p, s, _ := newTestProcessor(t)

	_, err := p.ProcessSale(5, 3, "admin")
	assert.True(t, domain.IsInsufficientStock(err), "got %v", err)

	// A failed sale is a no-op.
	book, berr := s.Book(5)
	require.NoError(t, berr)
	assert.Equal(t, 2, book.Quantity)
	assert.Equal(t, 6, book.SalesCount)
	assert.Len(t, s.Sales(), 4)
}

func TestProcessSale_NonPositiveQuantity(t *testing.T) {
	p, _, _ := newTestProcessor(t)

	for _, qty := range []int{0, -1} {
		_, err := p.ProcessSale(1, qty, "admin")
		assert.True(t, domain.IsValidation(err), "ProcessSale(1, %d) = %v", qty, err)
	}
}

func TestProcessSale_BookNotFound(t *testing.T) {
	p, _, _ := newTestProcessor(t)

	_, err := p.ProcessSale(999, 1, "admin")
	assert.True(t, domain.IsNotFound(err), "got %v", err)
}

func TestProcessSale_RollsBackOnPersistFailure(t *testing.T) {
	p, s, repo := newTestProcessor(t)
	repo.FailSaves = true

	_, err := p.ProcessSale(1, 2, "admin")
	require.Error(t, err)
	assert.True(t, domain.IsPersistence(err), "got %v", err)

	// In-memory state must match the last persisted document.
	book, berr := s.Book(1)
	require.NoError(t, berr)
	assert.Equal(t, 25, book.Quantity)
	assert.Equal(t, 5, book.SalesCount)
	assert.Len(t, s.Sales(), 4)
}

func TestProcessSale_SnapshotSurvivesPriceChange(t *testing.T) {
	p, s, _ := newTestProcessor(t)

	sale, err := p.ProcessSale(1, 1, "admin")
	require.NoError(t, err)

	newPrice := 99.99
	_, err = s.UpdateBook(1, store.BookPatch{Price: &newPrice})
	require.NoError(t, err)

	ledger := s.Sales()
	got := ledger[len(ledger)-1]
	assert.Equal(t, sale.ID, got.ID)
	assert.Equal(t, 12.99, got.UnitPrice, "ledger keeps the price at sale time")
	assert.Equal(t, 12.99, got.TotalPrice)
}
