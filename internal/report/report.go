package report

import (
	"sort"
	"time"

	"bluewave/internal/domain"
)

// StockStatus classifies a book's stock level.
type StockStatus string

const (
	StockGood     StockStatus = "Good"
	StockLow      StockStatus = "Low"
	StockCritical StockStatus = "Critical"
	StockOut      StockStatus = "Out of Stock"
)

// LowStockEntry is one row of the low-stock view.
type LowStockEntry struct {
	Book   domain.Book
	Status StockStatus // StockLow or StockCritical
}

// LowStock returns the books below the low-stock threshold, ordered by
// ascending quantity with ties broken by insertion order. Books below
// the critical threshold are tagged StockCritical, the rest StockLow.
func LowStock(books []domain.Book, settings domain.Settings) []LowStockEntry {
	var entries []LowStockEntry
	for _, b := range books {
		if b.Quantity >= settings.LowStockThreshold {
			continue
		}
		status := StockLow
		if b.Quantity < settings.CriticalStockThreshold {
			status = StockCritical
		}
		entries = append(entries, LowStockEntry{Book: b, Status: status})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Book.Quantity < entries[j].Book.Quantity
	})
	return entries
}

// SalesOnDate returns the sales with an exact date match, in ledger
// order, and their summed total.
func SalesOnDate(sales []domain.Sale, date string) ([]domain.Sale, float64) {
	var matched []domain.Sale
	var total float64
	for _, s := range sales {
		if s.SaleDate == date {
			matched = append(matched, s)
			total += s.TotalPrice
		}
	}
	return matched, total
}

// DateGroup is one date's slice of the sales report.
type DateGroup struct {
	Date  string
	Sales []domain.Sale
	Total float64
}

// SalesByDateDescending groups the ledger by date, newest date first.
// Within a group, sales keep their ledger order; no secondary sort is
// applied.
func SalesByDateDescending(sales []domain.Sale) []DateGroup {
	byDate := make(map[string]*DateGroup)
	var dates []string
	for _, s := range sales {
		g, ok := byDate[s.SaleDate]
		if !ok {
			g = &DateGroup{Date: s.SaleDate}
			byDate[s.SaleDate] = g
			dates = append(dates, s.SaleDate)
		}
		g.Sales = append(g.Sales, s)
		g.Total += s.TotalPrice
	}

	// ISO dates sort lexicographically.
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	groups := make([]DateGroup, 0, len(dates))
	for _, d := range dates {
		groups = append(groups, *byDate[d])
	}
	return groups
}

// DashboardStats are the headline numbers of the dashboard.
type DashboardStats struct {
	TotalBooks     int
	LowStockCount  int
	TodayTotal     float64
	TotalSuppliers int
}

// Dashboard computes the headline statistics for the current date.
func Dashboard(state *domain.State, clock domain.Clock) DashboardStats {
	stats := DashboardStats{
		TotalBooks:     len(state.Books),
		TotalSuppliers: len(state.Suppliers),
	}
	for _, b := range state.Books {
		if b.Quantity < state.Settings.LowStockThreshold {
			stats.LowStockCount++
		}
	}
	_, stats.TodayTotal = SalesOnDate(state.Sales, domain.Today(clock))
	return stats
}

// RecentSales returns up to n sales sorted by date and time, newest
// first.
func RecentSales(sales []domain.Sale, n int) []domain.Sale {
	sorted := make([]domain.Sale, len(sales))
	copy(sorted, sales)
	sort.SliceStable(sorted, func(i, j int) bool {
		return saleInstant(sorted[i]).After(saleInstant(sorted[j]))
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// InventoryRow is one row of the inventory status table.
type InventoryRow struct {
	Book     domain.Book
	Status   StockStatus
	LastSale string // "TIME DATE" of the most recent sale, empty if never sold
}

// Inventory builds the status table: Out of Stock at zero, Critical
// and Low below their thresholds, Good otherwise, with each book's
// most recent sale.
func Inventory(books []domain.Book, sales []domain.Sale, settings domain.Settings) []InventoryRow {
	rows := make([]InventoryRow, 0, len(books))
	for _, b := range books {
		row := InventoryRow{Book: b, Status: StockGood}
		switch {
		case b.Quantity == 0:
			row.Status = StockOut
		case b.Quantity < settings.CriticalStockThreshold:
			row.Status = StockCritical
		case b.Quantity < settings.LowStockThreshold:
			row.Status = StockLow
		}

		var last *domain.Sale
		for i := range sales {
			s := &sales[i]
			if s.BookID != b.ID {
				continue
			}
			if last == nil || saleInstant(*s).After(saleInstant(*last)) {
				last = s
			}
		}
		if last != nil {
			row.LastSale = last.SaleTime + " " + last.SaleDate
		}
		rows = append(rows, row)
	}
	return rows
}

// saleInstant parses a sale's date and time into a comparable instant.
// Unparseable timestamps sort to the zero time.
func saleInstant(s domain.Sale) time.Time {
	t, err := time.Parse(domain.DateLayout+" "+domain.TimeLayout, s.SaleDate+" "+s.SaleTime)
	if err != nil {
		return time.Time{}
	}
	return t
}
