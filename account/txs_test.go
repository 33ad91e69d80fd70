package account_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staked-chain/txvalidation/account"
	"github.com/staked-chain/txvalidation/codec"
	"github.com/staked-chain/txvalidation/ids"
	"github.com/staked-chain/txvalidation/tx"
)

func TestDepositBondTxRoundTrip(t *testing.T) {
	original := account.DepositBondTx{
		Inputs:          []ids.TxoPointer{{ID: ids.TxID{0x01}, Index: 0}},
		ToStakedAccount: ids.AccountKeyHash{0xaa},
		Attributes:      tx.NewAttributes(0x2a),
	}
	encoded, err := codec.Encode(original)
	require.NoError(t, err)

	var decoded account.DepositBondTx
	require.NoError(t, codec.Decode(encoded, &decoded))
	assert.Equal(t, original, decoded)

	id1, err := original.ID()
	require.NoError(t, err)
	id2, err := decoded.ID()
	require.NoError(t, err)
	assert.Equal(t, id1, id2)
}

func TestUnbondTxRoundTrip(t *testing.T) {
	original := account.UnbondTx{
		FromAccount: ids.AccountKeyHash{0xaa},
		Nonce:       3,
		Value:       mustCoin(t, 5),
		Attributes:  tx.NewAttributes(0x2a),
	}
	encoded, err := codec.Encode(original)
	require.NoError(t, err)

	var decoded account.UnbondTx
	require.NoError(t, codec.Decode(encoded, &decoded))
	assert.Equal(t, original, decoded)
}

func TestWithdrawUnbondedTxRoundTrip(t *testing.T) {
	validFrom := ids.Timestamp(500)
	original := account.WithdrawUnbondedTx{
		FromAccount: ids.AccountKeyHash{0xaa},
		Nonce:       1,
		Outputs: []tx.TxOut{
			tx.NewTimelockedTxOut(ids.NewAccountKeyAddress(ids.AccountKeyHash{0xbb}), mustCoin(t, 4), validFrom),
		},
		Attributes: tx.NewAttributes(0x2a),
	}
	encoded, err := codec.Encode(original)
	require.NoError(t, err)

	var decoded account.WithdrawUnbondedTx
	require.NoError(t, codec.Decode(encoded, &decoded))
	assert.Equal(t, original, decoded)

	total, err := decoded.GetOutputTotal()
	require.NoError(t, err)
	assert.Equal(t, uint64(4), total.Uint64())
}
