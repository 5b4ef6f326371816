package sales

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"

	"bluewave/internal/domain"
	"bluewave/internal/report"
)

func TestNewReceipt_UsesFullName(t *testing.T) {
	sale := domain.Sale{
		ID:         5,
		Title:      "The Great Gatsby",
		Quantity:   2,
		UnitPrice:  12.99,
		TotalPrice: 25.98,
		SaleDate:   "2024-02-01",
		SaleTime:   "02:30 PM",
		SoldBy:     "admin",
	}
	r := NewReceipt(sale, "System Administrator")
	assert.Equal(t, "System Administrator", r.SoldBy, "receipt shows the display name, not the username")
	assert.Equal(t, 5, r.SaleID)
}

// To regenerate the golden file:
//
//	go test ./internal/sales -run TestReceipt_Render -update
func TestReceipt_Render(t *testing.T) {
	r := Receipt{
		SaleID:    5,
		Date:      "2024-02-01",
		Time:      "02:30 PM",
		Title:     "The Great Gatsby",
		Quantity:  2,
		UnitPrice: 12.99,
		Total:     25.98,
		SoldBy:    "System Administrator",
	}

	money := report.NewMoneyFormatter("USD")
	got := r.Render(money.Format)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "receipt", []byte(got))
}
