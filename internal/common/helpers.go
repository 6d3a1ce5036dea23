package common

import (
	"fmt"
	"strings"
)

const (
	SOLDecimals = 9 // SOL has 9 decimals (lamports)
)

// LamportsToSOL converts lamports to SOL string without float precision loss
func LamportsToSOL(lamports uint64) string {
	return FormatAmount(lamports, SOLDecimals)
}

// FormatAmount converts a raw token amount to a decimal string by inserting the decimal point.
// Trailing zeros of the fractional part are kept.
// Example: FormatAmount(24981836, 9) = "0.024981836"
func FormatAmount(value uint64, decimals int) string {
	s := fmt.Sprintf("%d", value)
	if decimals <= 0 {
		return s
	}

	// Pad with leading zeros if needed
	if len(s) <= decimals {
		s = strings.Repeat("0", decimals-len(s)+1) + s
	}

	pos := len(s) - decimals
	return s[:pos] + "." + s[pos:]
}
