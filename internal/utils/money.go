package utils

import (
	"fmt"
	"math"
)

// Round2 rounds to cents. Derived figures are stored as computed; rounding
// happens only at presentation boundaries.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatMoney renders a base-currency amount like $12,345.67.
func FormatMoney(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	whole := int64(v)
	cents := int64(math.Round((v - float64(whole)) * 100))
	if cents == 100 {
		whole++
		cents = 0
	}
	return fmt.Sprintf("%s$%s.%02d", sign, formatThousand(whole), cents)
}

func formatThousand(n int64) string {
	s := fmt.Sprintf("%d", n)
	out := make([]byte, 0, len(s)+len(s)/3)
	for i := 0; i < len(s); i++ {
		out = append(out, s[i])
		pos := len(s) - i - 1
		if pos > 0 && pos%3 == 0 {
			out = append(out, ',')
		}
	}
	return string(out)
}
