package radix

import (
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// Expansion is the digit-sequence result of converting a decimal value to a
// target base.
type Expansion struct {
	// Base is the target base.
	Base int

	// Negative marks a '-' prefix. Only ever set for positive target bases;
	// negative bases encode the sign in the digits themselves.
	Negative bool

	// IntDigits and FracDigits are digit values, most significant first.
	IntDigits  []int
	FracDigits []int

	// CycleStart is the index into FracDigits where the repeating cycle
	// begins, or -1 when no cycle was found.
	CycleStart int

	// Exact reports whether the expansion represents the value exactly:
	// the fractional remainder reached zero or a cycle was found. False
	// means the digits were truncated at the precision budget.
	Exact bool
}

// String renders the expansion in glyph form, with the repeating cycle (if
// any) in parentheses.
func (e Expansion) String() string {
	var b strings.Builder
	if e.Negative {
		b.WriteByte('-')
	}
	b.WriteString(formatDigits(e.IntDigits))
	if len(e.FracDigits) > 0 {
		b.WriteByte('.')
		b.WriteString(FormatFraction(e.FracDigits, e.CycleStart))
	}
	return b.String()
}

// FromDecimal converts a decimal value to its digit sequence in the target
// base, producing at most precision fractional digits.
//
// Integer digits come from repeated floor-adjusted division (see
// partitionQuotient), which handles positive and negative bases uniformly
// and yields principal values for negative bases. Fractional digits come
// from repeated multiply-and-floor with the same adjustment; each
// intermediate remainder feeds a CycleDetector so repeating expansions are
// recognized and marked.
//
// For positive bases a negative value is converted as its magnitude with
// Negative set. For negative bases the value is split at its floor so the
// fractional remainder is non-negative, and no sign is ever emitted.
//
// If the fractional expansion neither terminates nor cycles within
// precision digits, the truncated expansion is returned together with an
// advisory PrecisionExceededError.
func FromDecimal(d *apd.Decimal, base, precision int) (Expansion, error) {
	if err := checkBase(base); err != nil {
		return Expansion{}, err
	}
	if precision < 0 {
		return Expansion{}, &InvalidInputError{Input: d.String(), Base: base, Reason: "precision must be non-negative"}
	}

	exp := Expansion{Base: base, CycleStart: -1, Exact: true}
	if d.Sign() == 0 {
		exp.IntDigits = []int{0}
		return exp, nil
	}

	var integ, frac apd.Decimal
	d.Modf(&integ, &frac)
	if base > 0 {
		exp.Negative = d.Negative
		integ.Abs(&integ)
		frac.Abs(&frac)
	} else if d.Negative && frac.Sign() != 0 {
		// Split at the floor instead: v = floor(v) + r keeps the remainder
		// for the fraction loop in [0, 1).
		ctx := apd.BaseContext.WithPrecision(uint32(d.NumDigits()) + guardDigits)
		one := apd.New(1, 0)
		if _, err := ctx.Sub(&integ, &integ, one); err != nil {
			return Expansion{}, err
		}
		if _, err := ctx.Add(&frac, &frac, one); err != nil {
			return Expansion{}, err
		}
	}

	exp.IntDigits = integerDigits(decimalInt(&integ), base)

	var err error
	exp.FracDigits, exp.CycleStart, exp.Exact, err = fractionDigits(&frac, base, precision)
	if err != nil && !IsPrecisionExceeded(err) {
		return Expansion{}, err
	}
	return exp, err
}

// integerDigits produces the digits of n in the given base, most significant
// first. Division runs at least once so a zero value yields the single
// digit 0.
func integerDigits(n *apd.BigInt, base int) []int {
	var digits []int
	q, r := partitionQuotient(n, base)
	digits = append(digits, r)
	for q.Sign() != 0 {
		q, r = partitionQuotient(q, base)
		digits = append(digits, r)
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return digits
}

// fractionDigits expands a remainder in [0, 1) into fractional digits of the
// target base.
//
// Each step multiplies the remainder by the base; the floor of the product
// (adjusted into [0, |base|) for negative bases) is the next digit and the
// product's fractional part carries forward. The loop stops when the
// remainder reaches zero (terminating expansion), when a remainder recurs
// (repeating cycle), or when precision digits have been produced.
func fractionDigits(rem *apd.Decimal, base, precision int) ([]int, int, bool, error) {
	if rem.Sign() == 0 {
		return nil, -1, true, nil
	}

	// Multiplying a scale-k fraction by an integer base needs at most k+2
	// significant digits, so this context keeps every step exact and the
	// remainder keys stable.
	ctx := apd.BaseContext.WithPrecision(uint32(decimalScale(rem)) + guardDigits)

	var (
		detector = NewCycleDetector()
		digits   []int
		r        = new(apd.Decimal).Set(rem)
		b        = apd.New(int64(base), 0)
		product  apd.Decimal
		fl       apd.Decimal
	)
	for len(digits) < precision {
		r.Reduce(r)
		if first, seen := detector.Check(r.Text('f'), len(digits)); seen {
			return digits, first, true, nil
		}
		if _, err := ctx.Mul(&product, r, b); err != nil {
			return nil, -1, false, err
		}
		if _, err := ctx.Floor(&fl, &product); err != nil {
			return nil, -1, false, err
		}
		if _, err := ctx.Sub(r, &product, &fl); err != nil {
			return nil, -1, false, err
		}
		d64, err := fl.Int64()
		if err != nil {
			return nil, -1, false, err
		}
		digit := int(d64)
		if digit < 0 {
			// Principal-value adjustment; only reachable for negative bases.
			digit += absInt(base)
		}
		digits = append(digits, digit)
		if r.Sign() == 0 {
			return digits, -1, true, nil
		}
	}
	return digits, -1, false, &PrecisionExceededError{Precision: precision}
}

// decimalInt extracts an integral decimal's value as a big integer.
func decimalInt(d *apd.Decimal) *apd.BigInt {
	var reduced apd.Decimal
	reduced.Reduce(d)
	n := new(apd.BigInt).Set(&reduced.Coeff)
	ten := apd.NewBigInt(10)
	for i := int32(0); i < reduced.Exponent; i++ {
		n.Mul(n, ten)
	}
	if reduced.Negative {
		n.Neg(n)
	}
	return n
}

// decimalScale returns the number of fractional digits a decimal carries.
func decimalScale(d *apd.Decimal) int {
	if d.Exponent < 0 {
		return int(-d.Exponent)
	}
	return 0
}
