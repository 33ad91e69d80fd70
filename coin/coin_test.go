package coin_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staked-chain/txvalidation/coin"
)

func TestNew(t *testing.T) {
	tests := map[string]struct {
		value   uint64
		wantErr bool
	}{
		"zero is valid":        {value: 0, wantErr: false},
		"max is valid":         {value: coin.MaxCoin, wantErr: false},
		"over max is rejected": {value: coin.MaxCoin + 1, wantErr: true},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c, err := coin.New(tt.value)
			if tt.wantErr {
				require.ErrorIs(t, err, coin.ErrOutOfRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.value, c.Uint64())
		})
	}
}

func TestAdd(t *testing.T) {
	a, _ := coin.New(coin.MaxCoin - 1)
	b := coin.Unit()
	sum, err := coin.Add(a, b)
	require.NoError(t, err)
	assert.Equal(t, coin.MaxCoin, sum.Uint64())

	_, err = coin.Add(a, coin.Unit())
	require.NoError(t, err)

	over, _ := coin.New(coin.MaxCoin)
	_, err = coin.Add(over, coin.Unit())
	assert.ErrorIs(t, err, coin.ErrOverflow)
}

func TestSub(t *testing.T) {
	ten, _ := coin.New(10)
	three, _ := coin.New(3)
	diff, err := coin.Sub(ten, three)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), diff.Uint64())

	_, err = coin.Sub(three, ten)
	assert.ErrorIs(t, err, coin.ErrNegative)
}

func TestSum(t *testing.T) {
	one := coin.Unit()
	two, _ := coin.New(2)
	three, _ := coin.New(3)
	total, err := coin.Sum([]coin.Coin{one, two, three})
	require.NoError(t, err)
	assert.Equal(t, uint64(6), total.Uint64())

	_, err = coin.Sum(nil)
	require.NoError(t, err)
}

// TestCoinArithmeticProperties exercises the checked-arithmetic laws from
// the engine's testable-properties section using property-based generation
// instead of hand-picked examples.
func TestCoinArithmeticProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	validAmount := gen.UInt64Range(0, coin.MaxCoin)

	properties.Property("add is commutative", prop.ForAll(
		func(a, b uint64) bool {
			ca, _ := coin.New(a)
			cb, _ := coin.New(b)
			sumAB, errAB := coin.Add(ca, cb)
			sumBA, errBA := coin.Add(cb, ca)
			if (errAB == nil) != (errBA == nil) {
				return false
			}
			return errAB != nil || sumAB.Equal(sumBA)
		},
		validAmount, validAmount,
	))

	properties.Property("sub then add round-trips when it succeeds", prop.ForAll(
		func(a, b uint64) bool {
			ca, _ := coin.New(a)
			cb, _ := coin.New(b)
			if cb.Uint64() > ca.Uint64() {
				ca, cb = cb, ca
			}
			diff, err := coin.Sub(ca, cb)
			if err != nil {
				return false
			}
			restored, err := coin.Add(diff, cb)
			if err != nil {
				return false
			}
			return restored.Equal(ca)
		},
		validAmount, validAmount,
	))

	properties.Property("never produces a value outside [0, MaxCoin]", prop.ForAll(
		func(a, b uint64) bool {
			ca, _ := coin.New(a)
			cb, _ := coin.New(b)
			sum, err := coin.Add(ca, cb)
			if err != nil {
				return true
			}
			return sum.Uint64() <= coin.MaxCoin
		},
		validAmount, validAmount,
	))

	properties.TestingRun(t)
}
