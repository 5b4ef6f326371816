package report

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Symbols for the currencies the demo data uses. Anything else falls
// back to the ISO code as a prefix.
var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
}

// MoneyFormatter renders amounts in the configured currency with
// locale-aware digit grouping.
type MoneyFormatter struct {
	printer *message.Printer
	prefix  string
}

// NewMoneyFormatter builds a formatter for an ISO 4217 currency code.
// Unknown codes are kept as a literal prefix rather than rejected, so
// rendering never fails after settings were accepted.
func NewMoneyFormatter(code string) *MoneyFormatter {
	prefix, ok := currencySymbols[code]
	if !ok {
		if unit, err := currency.ParseISO(code); err == nil {
			code = unit.String()
		}
		prefix = code + " "
	}
	return &MoneyFormatter{
		printer: message.NewPrinter(language.AmericanEnglish),
		prefix:  prefix,
	}
}

// Format renders an amount, e.g. 1234.5 -> "$1,234.50" for USD.
func (f *MoneyFormatter) Format(amount float64) string {
	return f.prefix + f.printer.Sprintf("%v", number.Decimal(amount,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}
