package radix

import (
	"github.com/cockroachdb/apd/v3"
)

// partitionQuotient divides dividend by base such that the remainder is
// always in [0, |base|).
//
// Go's truncating division can leave a negative remainder. When it does, the
// remainder gains |base| and the quotient moves one step to compensate. This
// adjustment is what produces principal values (non-negative digits, no sign
// marker) for negative bases; for positive bases with a non-negative
// dividend it is a no-op.
func partitionQuotient(dividend *apd.BigInt, base int) (*apd.BigInt, int) {
	div := apd.NewBigInt(int64(base))
	q, r := new(apd.BigInt).QuoRem(dividend, div, new(apd.BigInt))
	if r.Sign() < 0 {
		r.Add(r, new(apd.BigInt).Abs(div))
		if base < 0 {
			q.Add(q, apd.NewBigInt(1))
		} else {
			q.Sub(q, apd.NewBigInt(1))
		}
	}
	return q, int(r.Int64())
}
