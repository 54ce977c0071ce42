package finance

import (
	"strings"

	"github.com/shopspring/decimal"
)

// currencyFormat describes how one currency is rendered
type currencyFormat struct {
	symbol     string
	thousands  string
	decimalSep string
	decimals   int32
}

var currencyFormats = map[string]currencyFormat{
	"IDR": {symbol: "Rp", thousands: ".", decimalSep: ",", decimals: 0},
	"USD": {symbol: "$", thousands: ",", decimalSep: ".", decimals: 2},
	"EUR": {symbol: "€", thousands: ".", decimalSep: ",", decimals: 2},
	"SGD": {symbol: "S$", thousands: ",", decimalSep: ".", decimals: 2},
	"MYR": {symbol: "RM", thousands: ",", decimalSep: ".", decimals: 2},
	"SAR": {symbol: "SR", thousands: ",", decimalSep: ".", decimals: 2},
}

// FormatAmount renders an amount as a localized currency string, e.g.
// FormatAmount(1250000, "IDR") == "Rp 1.250.000". Unknown currencies fall
// back to "<CODE> 1,234.56".
func FormatAmount(amount decimal.Decimal, currency string) string {
	f, ok := currencyFormats[strings.ToUpper(currency)]
	if !ok {
		f = currencyFormat{symbol: strings.ToUpper(currency), thousands: ",", decimalSep: ".", decimals: 2}
	}

	fixed := amount.StringFixed(f.decimals)

	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	intPart := fixed
	fracPart := ""
	if i := strings.IndexByte(fixed, '.'); i >= 0 {
		intPart, fracPart = fixed[:i], fixed[i+1:]
	}

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteString(f.symbol)
	b.WriteByte(' ')
	b.WriteString(groupThousands(intPart, f.thousands))
	if fracPart != "" {
		b.WriteString(f.decimalSep)
		b.WriteString(fracPart)
	}
	return b.String()
}

// groupThousands inserts the separator every three digits from the right
func groupThousands(digits, sep string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	first := n % 3
	if first > 0 {
		b.WriteString(digits[:first])
	}
	for i := first; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
