package radix

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Convert End-to-End Tests
// =============================================================================

func TestConvert_Basic(t *testing.T) {
	tests := []struct {
		input     string
		from, to  int
		precision int
		want      string
	}{
		{"42", 10, 2, 50, "101010"},
		{"42", 10, -2, 50, "1111110"},
		{"-255", 10, 16, 50, "-FF"},
		{"FF.A8", 16, 10, 50, "255.65625"},
		{"ff.a8", 16, 10, 50, "255.65625"},
		{"0.5", 10, 2, 50, "0.1"},
		{"0.1", 10, 3, 50, "0.(0022)"},
		{"101010", 2, 16, 50, "2A"},
		{"1111110", -2, 10, 50, "42"},
		{"0", 10, 23, 50, "0"},
	}
	for _, tt := range tests {
		got, err := Convert(tt.input, tt.from, tt.to, tt.precision)
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q from %d to %d", tt.input, tt.from, tt.to)
	}
}

func TestConvert_AdvisoryTruncation(t *testing.T) {
	got, err := Convert("3.14159", 10, 2, 30)
	require.Error(t, err)
	assert.True(t, IsPrecisionExceeded(err))
	assert.True(t, strings.HasPrefix(got, "11.00100100001111110"), "got %s", got)
}

func TestConvert_Errors(t *testing.T) {
	_, err := Convert("10", 37, 2, 50)
	assert.True(t, IsUnsupportedBase(err))

	_, err = Convert("10", 10, 0, 50)
	assert.True(t, IsUnsupportedBase(err))

	_, err = Convert("G5", 16, 2, 50)
	assert.True(t, IsInvalidInput(err))

	_, err = Convert("-1", -2, 10, 50)
	assert.True(t, IsInvalidInput(err))
}

func TestConvert_SameBaseIdentity(t *testing.T) {
	got, err := Convert("DEADBEEF", 16, 16, 50)
	require.NoError(t, err)
	assert.Equal(t, "DEADBEEF", got)
}

// =============================================================================
// AllBases Sweep Tests
// =============================================================================

func TestAllBases_CoversAllSupportedBases(t *testing.T) {
	results, err := AllBases("42", 10, 50, false)
	require.NoError(t, err)
	require.Len(t, results, 70, "35 negative and 35 positive bases")

	assert.Equal(t, -36, results[0].Base)
	assert.Equal(t, -2, results[34].Base)
	assert.Equal(t, 2, results[35].Base)
	assert.Equal(t, 36, results[69].Base)
}

func TestAllBases_PositiveOnly(t *testing.T) {
	results, err := AllBases("42", 10, 50, true)
	require.NoError(t, err)
	require.Len(t, results, 35)
	assert.Equal(t, 2, results[0].Base)
	assert.Equal(t, "101010", results[0].Output)
	assert.Equal(t, 36, results[34].Base)
	assert.Equal(t, "16", results[34].Output)
}

func TestAllBases_RoundTripsEverywhere(t *testing.T) {
	results, err := AllBases("-123", 10, 50, false)
	require.NoError(t, err)
	for _, res := range results {
		back, err := Convert(res.Output, res.Base, 10, 50)
		require.NoError(t, err, "base %d output %s", res.Base, res.Output)
		assert.Equal(t, "-123", back, "base %d", res.Base)
	}
}

func TestAllBases_InvalidInput(t *testing.T) {
	_, err := AllBases("XYZ", 10, 50, false)
	assert.True(t, IsInvalidInput(err))
}
