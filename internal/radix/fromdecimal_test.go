package radix

import (
	"fmt"
	"strings"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fromInt(t *testing.T, v int64, base, precision int) Expansion {
	t.Helper()
	exp, err := FromDecimal(apd.New(v, 0), base, precision)
	require.NoError(t, err)
	return exp
}

func fromString(t *testing.T, v string, base, precision int) (Expansion, error) {
	t.Helper()
	d, _, err := apd.NewFromString(v)
	require.NoError(t, err)
	return FromDecimal(d, base, precision)
}

// =============================================================================
// Integer Conversion Tests
// =============================================================================

func TestFromDecimal_Integers(t *testing.T) {
	tests := []struct {
		value int64
		base  int
		want  string
	}{
		{42, 2, "101010"},
		{42, -2, "1111110"},
		{-255, 16, "-FF"},
		{255, 16, "FF"},
		{4095, 16, "FFF"},
		{255, -16, "11F"},
		{-10, 2, "-1010"},
		{35, 36, "Z"},
		{36, 36, "10"},
		{10, -2, "11110"},
		{-10, -2, "1010"},
		{100, 10, "100"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d_base_%d", tt.value, tt.base), func(t *testing.T) {
			assert.Equal(t, tt.want, fromInt(t, tt.value, tt.base, 50).String())
		})
	}
}

func TestFromDecimal_Zero(t *testing.T) {
	for _, base := range []int{2, 10, 16, 36, -2, -16, -36} {
		exp := fromInt(t, 0, base, 50)
		assert.Equal(t, "0", exp.String(), "base %d", base)
		assert.False(t, exp.Negative)
		assert.True(t, exp.Exact)
	}
}

func TestFromDecimal_UnsupportedBase(t *testing.T) {
	for _, base := range []int{0, 1, -1, 37, -40} {
		_, err := FromDecimal(apd.New(1, 0), base, 50)
		assert.True(t, IsUnsupportedBase(err), "base %d", base)
	}
}

func TestFromDecimal_NegativePrecision(t *testing.T) {
	_, err := FromDecimal(apd.New(1, 0), 2, -1)
	assert.True(t, IsInvalidInput(err))
}

// =============================================================================
// Invariant Tests
// =============================================================================

func TestFromDecimal_PrincipalValueInvariant(t *testing.T) {
	// Negative bases: every digit in [0, |base|), never a sign marker,
	// for positive and negative values alike.
	for base := -MaxBase; base <= -MinBase; base++ {
		for v := int64(-200); v <= 200; v += 7 {
			exp := fromInt(t, v, base, 50)
			assert.False(t, exp.Negative, "v=%d base=%d", v, base)
			assert.NotContains(t, exp.String(), "-", "v=%d base=%d", v, base)
			for _, d := range exp.IntDigits {
				assert.GreaterOrEqual(t, d, 0, "v=%d base=%d", v, base)
				assert.Less(t, d, absInt(base), "v=%d base=%d", v, base)
			}
		}
	}
}

func TestFromDecimal_PositiveBaseSignInvariant(t *testing.T) {
	for base := MinBase; base <= MaxBase; base++ {
		for v := int64(1); v <= 200; v += 13 {
			neg := fromInt(t, -v, base, 50)
			pos := fromInt(t, v, base, 50)
			require.True(t, strings.HasPrefix(neg.String(), "-"), "v=%d base=%d", -v, base)
			assert.Equal(t, "-"+pos.String(), neg.String(),
				"negative value must be the magnitude's digits behind a '-' (v=%d base=%d)", v, base)
		}
	}
}

func TestFromDecimal_RoundTrip(t *testing.T) {
	// N -> base b -> base 10 reproduces N for every supported base.
	for base := -MaxBase; base <= MaxBase; base++ {
		if absInt(base) < MinBase {
			continue
		}
		for v := int64(-300); v <= 300; v += 11 {
			exp := fromInt(t, v, base, 50)
			sign := 1
			if exp.Negative {
				sign = -1
			}
			back, err := ToDecimal(Numeral{
				Sign:      sign,
				IntDigits: exp.IntDigits,
				Base:      base,
			}, 0)
			require.NoError(t, err, "v=%d base=%d", v, base)
			got, err := back.Int64()
			require.NoError(t, err, "v=%d base=%d", v, base)
			assert.Equal(t, v, got, "round trip v=%d base=%d digits=%s", v, base, exp.String())
		}
	}
}

// =============================================================================
// Fractional Expansion Tests
// =============================================================================

func TestFromDecimal_TerminatingFraction(t *testing.T) {
	exp, err := fromString(t, "0.5", 2, 50)
	require.NoError(t, err)
	assert.Equal(t, "0.1", exp.String())
	assert.True(t, exp.Exact)
	assert.Equal(t, -1, exp.CycleStart, "a terminating expansion claims no cycle")
}

func TestFromDecimal_RepeatingFraction(t *testing.T) {
	// 0.1 in base 3 repeats: 1/10 = 0.(0022) in base 3.
	exp, err := fromString(t, "0.1", 3, 50)
	require.NoError(t, err)
	assert.Equal(t, "0.(0022)", exp.String())
	assert.True(t, exp.Exact, "a detected cycle represents the value exactly")
	assert.Equal(t, 0, exp.CycleStart)
	assert.Equal(t, []int{0, 0, 2, 2}, exp.FracDigits)
}

func TestFromDecimal_RepeatingFractionWithPrefix(t *testing.T) {
	// 0.15 in base 2: 0.15 = 0.00(1001) in base 2.
	exp, err := fromString(t, "0.15", 2, 50)
	require.NoError(t, err)
	assert.Equal(t, "0.00(1001)", exp.String())
	assert.Equal(t, 2, exp.CycleStart)
}

func TestFromDecimal_TruncatedFraction(t *testing.T) {
	// 3.14159 in base 2 at precision 30: no cycle within budget, so the
	// expansion is truncated and flagged, never falsely claimed repeating.
	exp, err := fromString(t, "3.14159", 2, 30)
	require.Error(t, err)
	assert.True(t, IsPrecisionExceeded(err), "budget exhaustion is advisory")
	assert.True(t, strings.HasPrefix(exp.String(), "11.00100100001111110"), "got %s", exp.String())
	assert.NotContains(t, exp.String(), "(")
	assert.False(t, exp.Exact)
	assert.Len(t, exp.FracDigits, 30)
}

func TestFromDecimal_NegativeFraction(t *testing.T) {
	exp, err := fromString(t, "-10.5", 2, 50)
	require.NoError(t, err)
	assert.Equal(t, "-1010.1", exp.String())
}

func TestFromDecimal_FractionDigitRange(t *testing.T) {
	// Digit-range invariant holds for fractional digits too, including the
	// principal-value adjustment on negative bases.
	for _, base := range []int{2, 3, 7, 16, 36, -2, -3, -7, -16, -36} {
		exp, err := fromString(t, "6.837", base, 40)
		if err != nil {
			require.True(t, IsPrecisionExceeded(err), "base %d", base)
		}
		for _, d := range exp.FracDigits {
			assert.GreaterOrEqual(t, d, 0, "base %d", base)
			assert.Less(t, d, absInt(base), "base %d", base)
		}
	}
}

func TestFromDecimal_PrecisionZeroDropsFraction(t *testing.T) {
	exp, err := fromString(t, "2.5", 2, 0)
	require.Error(t, err)
	assert.True(t, IsPrecisionExceeded(err))
	assert.Equal(t, "10", exp.String())
	assert.False(t, exp.Exact)
}
