package radix

import (
	"strings"
)

// Supported base magnitudes. Bases are integers b with MinBase <= |b| <= MaxBase.
const (
	MinBase = 2
	MaxBase = 36
)

// Numeral is a value decomposed into digits of a positional numeral system.
//
// Digit values are stored most-significant first and satisfy 0 <= d < |Base|.
// Sign is +1 or -1; it is only meaningful for positive bases. Numerals in a
// negative base are always principal values (Sign == +1), because negative
// bases represent negative magnitudes through alternating place-value signs.
type Numeral struct {
	Sign       int
	IntDigits  []int
	FracDigits []int
	Base       int
}

// ParseNumeral decodes a digit string in the given base.
//
// Glyphs 0-9 map to digit values 0-9 and A-Z (case-insensitive) to 10-35.
// An optional leading '-' or '+' is accepted for positive bases; a '-' on a
// negative-base input violates the principal-value precondition and is
// rejected. At most one '.' separates integer and fraction digits.
func ParseNumeral(s string, base int) (Numeral, error) {
	if err := checkBase(base); err != nil {
		return Numeral{}, err
	}

	raw := s
	n := Numeral{Sign: 1, Base: base}
	switch {
	case strings.HasPrefix(s, "-"):
		if base < 0 {
			return Numeral{}, &InvalidInputError{
				Input:  raw,
				Base:   base,
				Reason: "negative bases take principal values only (no sign marker)",
			}
		}
		n.Sign = -1
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")
	if strings.Contains(fracPart, ".") {
		return Numeral{}, &InvalidInputError{Input: raw, Base: base, Reason: "more than one '.'"}
	}
	if intPart == "" && fracPart == "" {
		return Numeral{}, &InvalidInputError{Input: raw, Base: base, Reason: "no digits"}
	}

	var err error
	if n.IntDigits, err = parseDigits(intPart, raw, base); err != nil {
		return Numeral{}, err
	}
	if n.FracDigits, err = parseDigits(fracPart, raw, base); err != nil {
		return Numeral{}, err
	}
	if len(n.IntDigits) == 0 {
		n.IntDigits = []int{0}
	}
	return n, nil
}

// String renders the numeral back to glyph form.
func (n Numeral) String() string {
	var b strings.Builder
	if n.Sign < 0 {
		b.WriteByte('-')
	}
	for _, d := range n.IntDigits {
		b.WriteByte(digitGlyph(d))
	}
	if len(n.FracDigits) > 0 {
		b.WriteByte('.')
		for _, d := range n.FracDigits {
			b.WriteByte(digitGlyph(d))
		}
	}
	return b.String()
}

func parseDigits(part, raw string, base int) ([]int, error) {
	if part == "" {
		return nil, nil
	}
	digits := make([]int, 0, len(part))
	for _, r := range part {
		v := digitValue(r)
		if v < 0 || v >= absInt(base) {
			return nil, &InvalidInputError{
				Input:  raw,
				Base:   base,
				Reason: "digit '" + string(r) + "' is not valid in this base",
			}
		}
		digits = append(digits, v)
	}
	return digits, nil
}

// digitValue maps a glyph to its digit value, or -1 if the rune is not a
// digit in any supported base.
func digitValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'A' && r <= 'Z':
		return int(r-'A') + 10
	case r >= 'a' && r <= 'z':
		return int(r-'a') + 10
	}
	return -1
}

// digitGlyph maps a digit value 0-35 to its glyph 0-9, A-Z.
func digitGlyph(d int) byte {
	if d < 10 {
		return byte('0' + d)
	}
	return byte('A' + d - 10)
}

func checkBase(base int) error {
	if absInt(base) < MinBase || absInt(base) > MaxBase {
		return &UnsupportedBaseError{Base: base}
	}
	return nil
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
