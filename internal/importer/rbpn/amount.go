package rbpn

import (
	"strings"

	"github.com/shopspring/decimal"
)

// parseGermanDecimal parses an amount that uses comma as decimal separator.
// Format examples: "1.234,56" -> 1234.56, "-588,74" -> -588.74, "12.5" -> 12.5.
// Dots are thousands separators only when a comma is present.
func parseGermanDecimal(s string) (decimal.Decimal, error) {
	clean := strings.TrimSpace(s)
	if strings.Contains(clean, ",") {
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.ReplaceAll(clean, ",", ".")
	}

	return decimal.NewFromString(clean)
}
