package account_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staked-chain/txvalidation/account"
	"github.com/staked-chain/txvalidation/ids"
)

// TestUnbondThenWithdrawLifecycle reproduces the unbond-then-withdraw
// end-to-end scenario: bonded=10, unbond value=5 with fee=1 at time T with
// a 100-second unbonding period, then withdraw once matured.
func TestUnbondThenWithdrawLifecycle(t *testing.T) {
	s, err := account.New(ids.AccountKeyHash{}, mustCoin(t, 10), 0)
	require.NoError(t, err)

	const unbondingPeriod = ids.Timestamp(100)
	const previousBlockTime = ids.Timestamp(0)

	unbonded, err := account.Unbond(s, mustCoin(t, 5), mustCoin(t, 1), previousBlockTime+unbondingPeriod)
	require.NoError(t, err)
	assert.Equal(t, uint64(4), unbonded.Bonded.Uint64())
	assert.Equal(t, uint64(5), unbonded.Unbonded.Uint64())
	assert.Equal(t, uint64(1), unbonded.Nonce)
	assert.Equal(t, unbondingPeriod, unbonded.UnbondedFrom)

	withdrawn, err := account.Withdraw(unbonded)
	require.NoError(t, err)
	assert.True(t, withdrawn.Unbonded.IsZero())
	assert.Equal(t, uint64(2), withdrawn.Nonce)
	assert.Equal(t, uint64(4), withdrawn.Bonded.Uint64())
}

func TestDepositDoesNotConsumeNonce(t *testing.T) {
	s, err := account.New(ids.AccountKeyHash{}, mustCoin(t, 0), 0)
	require.NoError(t, err)

	deposited, err := account.Deposit(s, mustCoin(t, 9))
	require.NoError(t, err)
	assert.Equal(t, uint64(9), deposited.Bonded.Uint64())
	assert.Equal(t, uint64(0), deposited.Nonce)
}

func TestUnbondRejectsInsufficientBonded(t *testing.T) {
	s, err := account.New(ids.AccountKeyHash{}, mustCoin(t, 3), 0)
	require.NoError(t, err)

	_, err = account.Unbond(s, mustCoin(t, 5), mustCoin(t, 1), 100)
	assert.ErrorIs(t, err, account.ErrInsufficientBonded)
}

func TestWithdrawRejectsZeroUnbonded(t *testing.T) {
	s, err := account.New(ids.AccountKeyHash{}, mustCoin(t, 3), 0)
	require.NoError(t, err)

	_, err = account.Withdraw(s)
	assert.ErrorIs(t, err, account.ErrInsufficientUnbonded)
}
