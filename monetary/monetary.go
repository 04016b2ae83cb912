// Package monetary converts amounts between coins at exact integer rates.
// Conversions multiply first at arbitrary precision and divide last, so a
// full-range product can never overflow before the final narrowing; only
// the end result must fit the 64-bit amount range.
package monetary

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

var (
	// ErrAmountOutOfRange means a conversion result does not fit the
	// 64-bit amount range.
	ErrAmountOutOfRange = errors.New("amount out of range")
	// ErrZeroRate means a cross-rate conversion divided by a zero amount.
	ErrZeroRate = errors.New("zero coin amount in rate")
)

// Amount is an immutable fixed-point value: an integer at a fixed number
// of decimal places.
type Amount struct {
	value    int64
	decimals int
}

// New builds an amount from a raw value. decimals must not be negative.
func New(value int64, decimals int) Amount {
	if decimals < 0 {
		panic(fmt.Sprintf("negative decimal places: %d", decimals))
	}
	return Amount{value: value, decimals: decimals}
}

// NewFromCrossRate converts baseAmount at the rate implied by the pair
// (baseAmount of one coin costs coinAmount of the other):
//
//	value = baseAmount * 10^decimals / coinAmount
//
// truncated toward zero. The product is carried at arbitrary precision,
// which matters: full-range inputs overflow 64 bits long before the
// division brings them back in range.
func NewFromCrossRate(baseAmount, coinAmount int64, decimals int) (Amount, error) {
	if decimals < 0 {
		return Amount{}, fmt.Errorf("decimal places must not be negative, got %d", decimals)
	}
	if coinAmount == 0 {
		return Amount{}, ErrZeroRate
	}
	result := big.NewInt(baseAmount)
	result.Mul(result, pow10(decimals))
	result.Quo(result, big.NewInt(coinAmount))
	return narrow(result, decimals)
}

// NewFromRate converts base at an explicit rate amount:
//
//	value = base.Value() * rate.Value() / 10^base.DecimalPlaces()
//
// truncated toward zero. Dividing by the base's unit exponent cancels the
// base's scaling, so the result carries the rate's decimal places.
func NewFromRate(base, rate Amount) (Amount, error) {
	result := big.NewInt(base.value)
	result.Mul(result, big.NewInt(rate.value))
	result.Quo(result, pow10(base.decimals))
	return narrow(result, rate.decimals)
}

func narrow(value *big.Int, decimals int) (Amount, error) {
	if !value.IsInt64() {
		return Amount{}, fmt.Errorf("%w: %s at %d decimal places", ErrAmountOutOfRange, value.String(), decimals)
	}
	return Amount{value: value.Int64(), decimals: decimals}, nil
}

// Value returns the raw integer value.
func (a Amount) Value() int64 {
	return a.value
}

func (a Amount) DecimalPlaces() int {
	return a.decimals
}

// PlainString renders the value with the decimal point exactly
// DecimalPlaces digits from the right: sign preserved, fractional side
// zero padded to full width, no grouping, no trailing zero stripping.
func (a Amount) PlainString() string {
	if a.decimals == 0 {
		return strconv.FormatInt(a.value, 10)
	}

	// Negate via uint64 so math.MinInt64 keeps its magnitude.
	magnitude := uint64(a.value)
	negative := a.value < 0
	if negative {
		magnitude = -magnitude
	}

	digits := strconv.FormatUint(magnitude, 10)
	if len(digits) < a.decimals+1 {
		digits = strings.Repeat("0", a.decimals+1-len(digits)) + digits
	}

	var sb strings.Builder
	if negative {
		sb.WriteByte('-')
	}
	split := len(digits) - a.decimals
	sb.WriteString(digits[:split])
	sb.WriteByte('.')
	sb.WriteString(digits[split:])
	return sb.String()
}

func (a Amount) String() string {
	return a.PlainString()
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}
