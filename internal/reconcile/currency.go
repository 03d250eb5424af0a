package reconcile

import (
	"math"
	"strconv"
	"strings"
)

// FormatCurrency renders an amount as Colombian pesos: dollar sign, dot
// thousands separators, no fraction digits.
func FormatCurrency(amount float64) string {
	rounded := int64(math.Round(math.Abs(amount)))
	digits := strconv.FormatInt(rounded, 10)

	var b strings.Builder
	if amount < 0 && rounded != 0 {
		b.WriteByte('-')
	}
	b.WriteString("$ ")

	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
		if len(digits) > lead {
			b.WriteByte('.')
		}
	}
	for i := lead; i < len(digits); i += 3 {
		b.WriteString(digits[i : i+3])
		if i+3 < len(digits) {
			b.WriteByte('.')
		}
	}
	return b.String()
}
