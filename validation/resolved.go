package validation

import (
	"github.com/staked-chain/txvalidation/account"
	"github.com/staked-chain/txvalidation/ids"
	"github.com/staked-chain/txvalidation/tx"
)

// ResolvedInput is a previously-committed transaction, resolved by the
// caller's UTXO store, that a new transaction's input is allowed to
// reference. Only two kinds of transaction ever have outputs a later
// input can spend: ordinary transfers and unbonded withdrawals — this
// mirrors the original TxWithOutputs tagged union rather than accepting
// an open interface for every transaction kind that exists.
type ResolvedInput interface {
	// ID is the resolved transaction's own id, compared against the
	// input pointer's id.
	ID() (ids.TxID, error)
	// OutputAt returns the output at index, or ok=false if index is out
	// of range.
	OutputAt(index uint16) (tx.TxOut, bool)
}

// TransferResolved wraps a transfer transaction as a ResolvedInput.
type TransferResolved struct {
	Tx tx.Tx
}

// ID returns the wrapped transfer's id.
func (t TransferResolved) ID() (ids.TxID, error) { return t.Tx.ID() }

// OutputAt returns the wrapped transfer's output at index.
func (t TransferResolved) OutputAt(index uint16) (tx.TxOut, bool) {
	if int(index) >= len(t.Tx.Outputs) {
		return tx.TxOut{}, false
	}
	return t.Tx.Outputs[index], true
}

// WithdrawResolved wraps a withdrawal transaction as a ResolvedInput: its
// outputs are also valid UTXOs that a later transfer can spend.
type WithdrawResolved struct {
	Tx account.WithdrawUnbondedTx
}

// ID returns the wrapped withdrawal's id.
func (w WithdrawResolved) ID() (ids.TxID, error) { return w.Tx.ID() }

// OutputAt returns the wrapped withdrawal's output at index.
func (w WithdrawResolved) OutputAt(index uint16) (tx.TxOut, bool) {
	if int(index) >= len(w.Tx.Outputs) {
		return tx.TxOut{}, false
	}
	return w.Tx.Outputs[index], true
}
