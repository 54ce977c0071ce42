package finance

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount   string
		currency string
		want     string
	}{
		{"1250000", "IDR", "Rp 1.250.000"},
		{"500", "IDR", "Rp 500"},
		{"1999.5", "IDR", "Rp 2.000"}, // IDR rounds to whole rupiah
		{"0", "IDR", "Rp 0"},
		{"-75000", "IDR", "-Rp 75.000"},
		{"1234.5", "USD", "$ 1,234.50"},
		{"1000000", "EUR", "€ 1.000.000,00"},
		{"42", "JPY", "JPY 42.00"}, // unknown currency falls back
	}

	for _, tt := range tests {
		t.Run(tt.currency+"_"+tt.amount, func(t *testing.T) {
			amount, err := decimal.NewFromString(tt.amount)
			if err != nil {
				t.Fatalf("bad test amount %q: %v", tt.amount, err)
			}
			if got := FormatAmount(amount, tt.currency); got != tt.want {
				t.Errorf("FormatAmount(%s, %s) = %q, want %q", tt.amount, tt.currency, got, tt.want)
			}
		})
	}
}

func TestGroupThousands(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1", "1"},
		{"123", "123"},
		{"1234", "1.234"},
		{"1234567", "1.234.567"},
	}
	for _, tt := range tests {
		if got := groupThousands(tt.in, "."); got != tt.want {
			t.Errorf("groupThousands(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
