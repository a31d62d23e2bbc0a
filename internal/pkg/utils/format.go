package utils

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FormatRupiah renders an amount with Indonesian digit grouping:
// 1500000 -> "1.500.000", 2500.5 -> "2.500,5".
func FormatRupiah(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}

	intPart, fracPart, _ := strings.Cut(d.Round(3).String(), ".")

	var b strings.Builder
	b.WriteString(sign)
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	if fracPart != "" {
		b.WriteByte(',')
		b.WriteString(fracPart)
	}
	return b.String()
}

// FormatDateID formats a date the way id-ID locales print short dates.
func FormatDateID(t time.Time) string {
	return t.Format("2/1/2006")
}
