package util

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// FormatMAD converts an amount to a display string in Moroccan dirhams.
// Example: 1549.50 -> "1,549.50 MAD".
func FormatMAD(amount decimal.Decimal) string {
	return fmt.Sprintf("%s MAD", humanize.CommafWithDigits(amount.InexactFloat64(), 2))
}

func TruncateContent(content string, maxLength int) string {
	if len(content) <= maxLength {
		return content
	}
	return content[:maxLength] + "..."
}
