// Package coin implements the bounded, checked-arithmetic coin amount used
// throughout the validation engine. A Coin is always in [0, MaxCoin]; every
// operation that could leave that range returns an error instead of
// wrapping or silently truncating.
package coin

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
)

// MaxCoin is the maximum representable amount, in the smallest indivisible
// unit. 10 billion whole coins at 8 decimal places.
const MaxCoin uint64 = 10_000_000_000 * 100_000_000

// ErrOverflow is returned when an addition or summation would exceed MaxCoin.
var ErrOverflow = errors.New("coin: overflow")

// ErrNegative is returned when a subtraction would leave a negative amount.
var ErrNegative = errors.New("coin: negative result")

// ErrOutOfRange is returned by New when value is not in [0, MaxCoin].
var ErrOutOfRange = errors.New("coin: value out of range")

// Coin is a non-negative amount bounded by MaxCoin.
type Coin struct {
	value uint64
}

// Zero is the additive identity.
var Zero = Coin{}

// New validates value and returns a Coin, or ErrOutOfRange.
func New(value uint64) (Coin, error) {
	if value > MaxCoin {
		return Coin{}, fmt.Errorf("%w: %d > %d", ErrOutOfRange, value, MaxCoin)
	}
	return Coin{value: value}, nil
}

// Unit is a single smallest-denomination coin, used by tests and scenario S1.
func Unit() Coin { return Coin{value: 1} }

// Uint64 returns the underlying amount.
func (c Coin) Uint64() uint64 { return c.value }

// IsZero reports whether c is the zero coin.
func (c Coin) IsZero() bool { return c.value == 0 }

// Equal reports value equality.
func (c Coin) Equal(o Coin) bool { return c.value == o.value }

// Less reports standard integer ordering.
func (c Coin) Less(o Coin) bool { return c.value < o.value }

// LessOrEqual reports standard integer ordering.
func (c Coin) LessOrEqual(o Coin) bool { return c.value <= o.value }

// String renders the amount the way btcutil.Amount renders satoshis, scaled
// to this coin's 8 decimal places.
func (c Coin) String() string {
	return btcutil.Amount(c.value).String() //nolint:staticcheck // distinct unit, reused for its decimal formatting only
}

// Add returns a+b, or ErrOverflow if the sum exceeds MaxCoin.
func Add(a, b Coin) (Coin, error) {
	sum := a.value + b.value
	if sum < a.value || sum > MaxCoin {
		return Coin{}, fmt.Errorf("%w: %d + %d", ErrOverflow, a.value, b.value)
	}
	return Coin{value: sum}, nil
}

// Sub returns a-b, or ErrNegative if b > a.
func Sub(a, b Coin) (Coin, error) {
	if b.value > a.value {
		return Coin{}, fmt.Errorf("%w: %d - %d", ErrNegative, a.value, b.value)
	}
	return Coin{value: a.value - b.value}, nil
}

// Sum checked-adds every coin in coins, short-circuiting on the first
// overflow.
func Sum(coins []Coin) (Coin, error) {
	total := Zero
	for _, c := range coins {
		var err error
		total, err = Add(total, c)
		if err != nil {
			return Coin{}, err
		}
	}
	return total, nil
}
