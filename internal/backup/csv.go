package backup

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"bluewave/internal/domain"
)

// CSVHeader is the first row of every sales export.
const CSVHeader = "Date,Book,Quantity,Unit Price,Total Price,Sold By"

// WriteSalesCSV writes the sales ledger as CSV, one row per sale in
// ledger order. Only the book title is quoted; prices are written in
// their minimal decimal form (10, not 10.00).
func WriteSalesCSV(w io.Writer, sales []domain.Sale) error {
	if _, err := fmt.Fprintln(w, CSVHeader); err != nil {
		return err
	}
	for _, s := range sales {
		row := fmt.Sprintf("%s,%q,%d,%s,%s,%s\n",
			s.SaleDate,
			s.Title,
			s.Quantity,
			formatAmount(s.UnitPrice),
			formatAmount(s.TotalPrice),
			s.SoldBy,
		)
		if _, err := io.WriteString(w, row); err != nil {
			return err
		}
	}
	return nil
}

// SalesCSV renders the sales ledger as a CSV string.
func SalesCSV(sales []domain.Sale) string {
	var b strings.Builder
	_ = WriteSalesCSV(&b, sales)
	return b.String()
}

// formatAmount renders a price without trailing zeros, matching the
// way amounts appear in the stored document.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
