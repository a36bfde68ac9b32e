package services

import (
	"fmt"
	"strings"
)

// FormatUSD formats an amount as US currency, e.g. $1,234,567.89.
// The result always includes exactly 2 decimal places; negatives carry the
// sign before the dollar symbol.
func FormatUSD(amount float64) string {
	negative := false
	if amount < 0 {
		negative = true
		amount = -amount
	}

	raw := fmt.Sprintf("%.2f", amount)

	parts := strings.SplitN(raw, ".", 2)
	intPart := parts[0]
	decPart := parts[1]

	result := "$" + groupThousands(intPart) + "." + decPart
	if negative {
		result = "-" + result
	}
	return result
}

// groupThousands inserts commas every 3 digits from the right.
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	result := s[n-3:]
	remaining := s[:n-3]
	for len(remaining) > 3 {
		result = remaining[len(remaining)-3:] + "," + result
		remaining = remaining[:len(remaining)-3]
	}
	return remaining + "," + result
}

// FormatSqft renders square footage with thousands grouping and no decimal
// noise for whole numbers.
func FormatSqft(sqft float64) string {
	if sqft == float64(int64(sqft)) {
		return groupThousands(fmt.Sprintf("%.0f", sqft))
	}
	return fmt.Sprintf("%.1f", sqft)
}
