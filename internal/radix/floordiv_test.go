package radix

import (
	"fmt"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/assert"
)

// =============================================================================
// partitionQuotient Unit Tests
// =============================================================================

func TestPartitionQuotient_Table(t *testing.T) {
	tests := []struct {
		dividend int64
		base     int
		wantQuo  int64
		wantRem  int
	}{
		// Positive dividend, positive base: plain division.
		{10, 2, 5, 0},
		{7, 2, 3, 1},
		{255, 16, 15, 15},
		{0, 5, 0, 0},

		// Negative dividend, positive base: quotient steps down so the
		// remainder stays non-negative.
		{-7, 2, -4, 1},
		{-10, 3, -4, 2},
		{-1, 3, -1, 2},

		// Negative base: the principal-value adjustment.
		{10, -2, -5, 0},
		{-7, -2, 4, 1},
		{-1, -2, 1, 1},
		{-15, -16, 1, 1},
		{42, -2, -21, 0},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d_div_%d", tt.dividend, tt.base), func(t *testing.T) {
			q, r := partitionQuotient(apd.NewBigInt(tt.dividend), tt.base)
			assert.Equal(t, tt.wantQuo, q.Int64(), "quotient")
			assert.Equal(t, tt.wantRem, r, "remainder")
		})
	}
}

func TestPartitionQuotient_RemainderAlwaysNonNegative(t *testing.T) {
	// The defining property: 0 <= r < |base| and dividend == q*base + r,
	// for every sign combination.
	for dividend := int64(-50); dividend <= 50; dividend++ {
		for base := -MaxBase; base <= MaxBase; base++ {
			if absInt(base) < MinBase {
				continue
			}
			q, r := partitionQuotient(apd.NewBigInt(dividend), base)
			assert.GreaterOrEqual(t, r, 0, "dividend=%d base=%d", dividend, base)
			assert.Less(t, r, absInt(base), "dividend=%d base=%d", dividend, base)

			recomposed := new(apd.BigInt).Mul(q, apd.NewBigInt(int64(base)))
			recomposed.Add(recomposed, apd.NewBigInt(int64(r)))
			assert.Equal(t, dividend, recomposed.Int64(),
				"q*base+r must reproduce the dividend (dividend=%d base=%d)", dividend, base)
		}
	}
}
