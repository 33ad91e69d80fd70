package tx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staked-chain/txvalidation/codec"
	"github.com/staked-chain/txvalidation/coin"
	"github.com/staked-chain/txvalidation/ids"
	"github.com/staked-chain/txvalidation/tx"
)

func fill(b byte) [32]byte {
	var out [32]byte
	for i := range out {
		out[i] = b
	}
	return out
}

// TestEncodeDecodeRoundTrip reproduces the original codebase's own
// encode_decode shorthand fixture: input (0x01*32, 1), output locked to
// MerkleTree(0xbb*32) of one coin unit.
func TestEncodeDecodeRoundTrip(t *testing.T) {
	transaction := tx.New(0x2a)
	transaction.AddInput(ids.TxoPointer{ID: ids.TxID(fill(0x01)), Index: 1})
	transaction.AddOutput(tx.NewTxOut(ids.NewMerkleTreeAddress(fill(0xbb)), coin.Unit()))

	encoded, err := codec.Encode(transaction)
	require.NoError(t, err)

	var decoded tx.Tx
	require.NoError(t, codec.Decode(encoded, &decoded))
	assert.Equal(t, transaction, decoded)

	id1, err := transaction.ID()
	require.NoError(t, err)
	id2, err := decoded.ID()
	require.NoError(t, err)
	assert.Equal(t, id1, id2)
}

func TestTxOutTimelock(t *testing.T) {
	validFrom := ids.Timestamp(1000)
	out := tx.NewTimelockedTxOut(ids.NewAccountKeyAddress(ids.AccountKeyHash{}), coin.Unit(), validFrom)

	encoded, err := codec.Encode(out)
	require.NoError(t, err)

	var decoded tx.TxOut
	require.NoError(t, codec.Decode(encoded, &decoded))
	require.NotNil(t, decoded.ValidFrom)
	assert.Equal(t, validFrom, *decoded.ValidFrom)
}

func TestGetOutputTotal(t *testing.T) {
	transaction := tx.New(0x01)
	two, err := coin.New(2)
	require.NoError(t, err)
	three, err := coin.New(3)
	require.NoError(t, err)
	transaction.AddOutput(tx.NewTxOut(ids.NewAccountKeyAddress(ids.AccountKeyHash{}), two))
	transaction.AddOutput(tx.NewTxOut(ids.NewAccountKeyAddress(ids.AccountKeyHash{}), three))

	total, err := transaction.GetOutputTotal()
	require.NoError(t, err)
	assert.Equal(t, uint64(5), total.Uint64())
}

func TestFeeToCoin(t *testing.T) {
	amount, err := coin.New(42)
	require.NoError(t, err)
	fee := tx.NewFee(amount)
	assert.Equal(t, uint64(42), fee.ToCoin().Uint64())
}
