package radix

import (
	"github.com/cockroachdb/apd/v3"
)

// guardDigits is the extra working precision carried by fractional decimal
// arithmetic before rounding to the requested precision, so that round-off
// never reaches the digits the caller asked for.
const guardDigits = 10

// ToDecimal evaluates a numeral to its exact base-10 decimal value.
//
// The integer part is accumulated with exact big-integer arithmetic and is
// never rounded, regardless of magnitude. The fractional part is evaluated
// with precision+guardDigits working digits and truncated to precision
// fractional digits. The rounding context lives only for this call.
//
// A negative-base numeral must be a principal value: a Sign of -1 combined
// with a negative base fails with InvalidInputError.
func ToDecimal(n Numeral, precision int) (*apd.Decimal, error) {
	if err := checkBase(n.Base); err != nil {
		return nil, err
	}
	if precision < 0 {
		return nil, &InvalidInputError{Input: n.String(), Base: n.Base, Reason: "precision must be non-negative"}
	}
	if n.Base < 0 && n.Sign < 0 {
		return nil, &InvalidInputError{
			Input:  n.String(),
			Base:   n.Base,
			Reason: "negative bases take principal values only (no sign marker)",
		}
	}
	if err := checkDigits(n); err != nil {
		return nil, err
	}

	// Integer part: acc = acc*base + digit, most significant digit first.
	b := apd.NewBigInt(int64(n.Base))
	acc := new(apd.BigInt)
	for _, d := range n.IntDigits {
		acc.Mul(acc, b)
		acc.Add(acc, apd.NewBigInt(int64(d)))
	}
	intPart := new(apd.Decimal)
	intPart.Coeff.Abs(acc)
	intPart.Negative = acc.Sign() < 0

	// Fractional part by Horner from the least significant digit:
	// f = (f + digit) / base. Works unchanged for negative bases, where the
	// alternating powers make the value come out signed.
	ctx := apd.BaseContext.WithPrecision(uint32(precision) + guardDigits)
	frac := new(apd.Decimal)
	base := apd.New(int64(n.Base), 0)
	for i := len(n.FracDigits) - 1; i >= 0; i-- {
		if _, err := ctx.Add(frac, frac, apd.New(int64(n.FracDigits[i]), 0)); err != nil {
			return nil, err
		}
		if _, err := ctx.Quo(frac, frac, base); err != nil {
			return nil, err
		}
	}

	// Truncate the fraction to the requested precision. RoundDown so no
	// carry can spill into the exact integer part.
	trunc := apd.BaseContext.WithPrecision(uint32(precision) + guardDigits)
	trunc.Rounding = apd.RoundDown
	if _, err := trunc.Quantize(frac, frac, int32(-precision)); err != nil {
		return nil, err
	}

	sum := apd.BaseContext.WithPrecision(uint32(intPart.NumDigits()+int64(precision)) + guardDigits)
	res := new(apd.Decimal)
	if _, err := sum.Add(res, intPart, frac); err != nil {
		return nil, err
	}
	if n.Sign < 0 {
		res.Neg(res)
	}
	res.Reduce(res)
	return res, nil
}

func checkDigits(n Numeral) error {
	for _, part := range [][]int{n.IntDigits, n.FracDigits} {
		for _, d := range part {
			if d < 0 || d >= absInt(n.Base) {
				return &InvalidInputError{
					Input:  n.String(),
					Base:   n.Base,
					Reason: "digit value out of range for base",
				}
			}
		}
	}
	return nil
}
