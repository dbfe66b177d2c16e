package payroll

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencySymbol returns the display symbol for a currency code, or "" when
// the code is not in the country table.
func CurrencySymbol(code string) string {
	for _, c := range Countries {
		if c.Code == code {
			return c.Symbol
		}
	}
	return ""
}

var amountPrinter = message.NewPrinter(language.English)

// FormatCurrency renders amount rounded to two decimals with thousands
// separators. Codes that are not three letters long fall back to USD.
func FormatCurrency(amount float64, code string) string {
	if len(code) != 3 {
		code = "USD"
	}
	code = strings.ToUpper(code)

	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return strconv.FormatFloat(amount, 'f', 2, 64)
	}

	d := decimal.NewFromFloat(amount).Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}

	prefix := CurrencySymbol(code)
	if prefix == "" {
		prefix = code + " "
	}
	return sign + prefix + amountPrinter.Sprintf("%.2f", d.InexactFloat64())
}

// FormatHours renders an hour count without trailing zeros, e.g. "2.5h".
func FormatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64) + "h"
}
