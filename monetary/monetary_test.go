package monetary_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tranvictor/coinscope/monetary"
)

func TestCreateWithCoinRate(t *testing.T) {
	// this example overflows 64-bit intermediates
	result, err := monetary.NewFromCrossRate(123456789012345, 98765432, 8)
	require.NoError(t, err)
	require.Equal(t, int64(124999998999999), result.Value())
	require.Equal(t, "1249999.98999999", result.PlainString())
}

func TestCreateWithRateAmount(t *testing.T) {
	// this example overflows 64-bit intermediates too
	result, err := monetary.NewFromRate(monetary.New(123456789, 8), monetary.New(987654321054321, 6))
	require.NoError(t, err)
	require.Equal(t, int64(1219326311193415), result.Value())
	require.Equal(t, "1219326311.193415", result.PlainString())
}

func TestRateDividesByBaseUnitExponent(t *testing.T) {
	// the divisor comes from the base amount's precision, not the rate's:
	// 1.00000000 at a rate of 2.50 is 2.50
	result, err := monetary.NewFromRate(monetary.New(100000000, 8), monetary.New(250, 2))
	require.NoError(t, err)
	require.Equal(t, int64(250), result.Value())
	require.Equal(t, "2.50", result.PlainString())

	// the same raw values at 2 base decimals scale very differently
	result, err = monetary.NewFromRate(monetary.New(100000000, 2), monetary.New(250, 2))
	require.NoError(t, err)
	require.Equal(t, int64(250000000), result.Value())
	require.Equal(t, "2500000.00", result.PlainString())
}

// TestCrossRateMatchesUnboundedReference drives the conversion across the
// documented input range and checks it against a straight big.Int
// computation of base * 10^decimals / coin.
func TestCrossRateMatchesUnboundedReference(t *testing.T) {
	bases := []int64{1, 999, 123456789012345, 1000000000000000, math.MaxInt64 / 100000000}
	rates := []int64{1, 7, 98765432, 100000000}
	for _, base := range bases {
		for _, rate := range rates {
			reference := new(big.Int).Mul(big.NewInt(base), big.NewInt(100000000))
			reference.Quo(reference, big.NewInt(rate))

			result, err := monetary.NewFromCrossRate(base, rate, 8)
			if !reference.IsInt64() {
				// narrowing must fail loudly, never wrap
				require.ErrorIs(t, err, monetary.ErrAmountOutOfRange, "base=%d rate=%d", base, rate)
				continue
			}
			require.NoError(t, err, "base=%d rate=%d", base, rate)
			require.Equal(t, reference.Int64(), result.Value(), "base=%d rate=%d", base, rate)
		}
	}
}

func TestCrossRateTruncatesTowardZero(t *testing.T) {
	result, err := monetary.NewFromCrossRate(1, 3, 0)
	require.NoError(t, err)
	require.Equal(t, int64(0), result.Value())

	result, err = monetary.NewFromCrossRate(-1, 3, 0)
	require.NoError(t, err)
	require.Equal(t, int64(0), result.Value())

	result, err = monetary.NewFromCrossRate(10, 3, 0)
	require.NoError(t, err)
	require.Equal(t, int64(3), result.Value())
}

func TestCrossRateErrors(t *testing.T) {
	_, err := monetary.NewFromCrossRate(1, 0, 8)
	require.ErrorIs(t, err, monetary.ErrZeroRate)

	_, err = monetary.NewFromCrossRate(1, 1, -1)
	require.Error(t, err)

	// result does not fit 64 bits
	_, err = monetary.NewFromCrossRate(math.MaxInt64, 1, 8)
	require.ErrorIs(t, err, monetary.ErrAmountOutOfRange)
}

func TestRateErrors(t *testing.T) {
	_, err := monetary.NewFromRate(monetary.New(math.MaxInt64, 2), monetary.New(1000000, 2))
	require.ErrorIs(t, err, monetary.ErrAmountOutOfRange)
}

func TestRateCarriesRateDecimals(t *testing.T) {
	result, err := monetary.NewFromRate(monetary.New(200, 4), monetary.New(5000, 4))
	require.NoError(t, err)
	require.Equal(t, 4, result.DecimalPlaces())
	require.Equal(t, int64(100), result.Value())
	require.Equal(t, "0.0100", result.PlainString())
}

func TestPlainString(t *testing.T) {
	cases := []struct {
		value    int64
		decimals int
		expected string
	}{
		{0, 0, "0"},
		{0, 2, "0.00"},
		{123, 0, "123"},
		{-123, 0, "-123"},
		{5, 2, "0.05"},
		{-5, 2, "-0.05"},
		{100, 2, "1.00"},
		{123456, 8, "0.00123456"},
		{124999998999999, 8, "1249999.98999999"},
		{-124999998999999, 8, "-1249999.98999999"},
		{math.MaxInt64, 8, "92233720368.54775807"},
		{math.MinInt64, 8, "-92233720368.54775808"},
	}
	for _, c := range cases {
		require.Equal(t, c.expected, monetary.New(c.value, c.decimals).PlainString(), "value=%d decimals=%d", c.value, c.decimals)
	}
}

func TestNewPanicsOnNegativeDecimals(t *testing.T) {
	require.Panics(t, func() {
		monetary.New(1, -1)
	})
}

func TestAccessors(t *testing.T) {
	a := monetary.New(42, 3)
	require.Equal(t, int64(42), a.Value())
	require.Equal(t, 3, a.DecimalPlaces())
	require.Equal(t, "0.042", a.String())
}
