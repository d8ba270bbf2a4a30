package radix

import "strings"

// FormatFraction renders fractional digits with repeating-cycle notation.
//
// Digits in [0, cycleStart) are the non-repeating prefix; digits from
// cycleStart on are the cycle and are wrapped in parentheses: prefix digit 1
// with cycle digit 6 renders as "1(6)". A cycleStart of -1 means no cycle
// was found and the digits render as-is, whether the expansion terminated
// exactly or was truncated at the precision budget.
func FormatFraction(digits []int, cycleStart int) string {
	var b strings.Builder
	for i, d := range digits {
		if i == cycleStart {
			b.WriteByte('(')
		}
		b.WriteByte(digitGlyph(d))
	}
	if cycleStart >= 0 && cycleStart < len(digits) {
		b.WriteByte(')')
	}
	return b.String()
}

func formatDigits(digits []int) string {
	var b strings.Builder
	for _, d := range digits {
		b.WriteByte(digitGlyph(d))
	}
	return b.String()
}
