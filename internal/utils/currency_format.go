package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatIDR formats an amount as Indonesian rupiah for receipts.
// Rupiah receipts carry no decimal places and use '.' as the thousands
// separator: 12500 -> "Rp12.500".
func FormatIDR(amount decimal.Decimal) string {
	rounded := amount.Round(0)

	negative := rounded.IsNegative()
	digits := rounded.Abs().String()

	var b strings.Builder
	if negative {
		b.WriteString("-")
	}
	b.WriteString("Rp")

	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
		if len(digits) > lead {
			b.WriteString(".")
		}
	}
	for i := lead; i < len(digits); i += 3 {
		b.WriteString(digits[i : i+3])
		if i+3 < len(digits) {
			b.WriteString(".")
		}
	}
	return b.String()
}
