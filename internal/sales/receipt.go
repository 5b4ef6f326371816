package sales

import (
	"fmt"
	"strings"

	"bluewave/internal/domain"
)

// Receipt is the view produced for a completed sale.
type Receipt struct {
	SaleID    int
	Date      string
	Time      string
	Title     string
	Quantity  int
	UnitPrice float64
	Total     float64
	SoldBy    string
}

// NewReceipt builds the receipt view for a sale. soldBy is the active
// session's full name, not the username stored on the ledger record.
func NewReceipt(sale domain.Sale, soldBy string) Receipt {
	return Receipt{
		SaleID:    sale.ID,
		Date:      sale.SaleDate,
		Time:      sale.SaleTime,
		Title:     sale.Title,
		Quantity:  sale.Quantity,
		UnitPrice: sale.UnitPrice,
		Total:     sale.TotalPrice,
		SoldBy:    soldBy,
	}
}

// Render formats the receipt as fixed-width text. money formats an
// amount in the configured currency.
func (r Receipt) Render(money func(float64) string) string {
	const width = 34
	line := strings.Repeat("-", width)

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", center("BlueWave Bookstore", width))
	fmt.Fprintf(&b, "%s\n", center(fmt.Sprintf("RECEIPT #%06d", r.SaleID), width))
	fmt.Fprintf(&b, "%s\n", center(r.Date+" "+r.Time, width))
	fmt.Fprintf(&b, "%s\n", line)
	fmt.Fprintf(&b, "%s\n", r.Title)
	fmt.Fprintf(&b, "%*s\n", width, fmt.Sprintf("%d x %s", r.Quantity, money(r.UnitPrice)))
	fmt.Fprintf(&b, "%s\n", line)
	fmt.Fprintf(&b, "TOTAL%*s\n", width-5, money(r.Total))
	fmt.Fprintf(&b, "%s\n", line)
	fmt.Fprintf(&b, "%s\n", center("Thank you!", width))
	fmt.Fprintf(&b, "%s\n", center("Sold by: "+r.SoldBy, width))
	return b.String()
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	pad := (width - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}
