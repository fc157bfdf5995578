package cli

import (
	"strings"

	"github.com/shopspring/decimal"
)

// formatUSD renders d as dollars with cents and thousands separators. Display
// only; never fed back into a calculation.
func formatUSD(d decimal.Decimal) string {
	s := groupThousands(d.StringFixed(2))
	if strings.HasPrefix(s, "-") {
		return "-$" + s[1:]
	}
	return "$" + s
}

// formatTokens renders a token quantity with at most two decimals.
func formatTokens(d decimal.Decimal) string {
	return groupThousands(d.Round(2).String())
}

func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return sign + b.String()
}
