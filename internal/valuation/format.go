package valuation

import (
	"fmt"
	"strconv"
)

// formatCurrency shortens currency amounts for the reasoning text:
// 1325936 -> "1.3M", 55054 -> "55K", 412 -> "412".
func formatCurrency(value float64) string {
	switch {
	case value >= 1_000_000:
		return fmt.Sprintf("%.1fM", value/1_000_000)
	case value >= 1_000:
		return fmt.Sprintf("%.0fK", value/1_000)
	default:
		return strconv.FormatFloat(value, 'f', 0, 64)
	}
}
