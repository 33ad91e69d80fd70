package account

import (
	"golang.org/x/crypto/blake2s"

	"github.com/staked-chain/txvalidation/coin"
	"github.com/staked-chain/txvalidation/codec"
	"github.com/staked-chain/txvalidation/ids"
	"github.com/staked-chain/txvalidation/tx"
)

// DepositBondTx spends UTXO inputs into a staked account's bonded
// balance. It has no TxOut outputs: everything spent becomes bonded stake
// minus the fee.
type DepositBondTx struct {
	Inputs          []ids.TxoPointer
	ToStakedAccount ids.AccountKeyHash
	Attributes      tx.Attributes
}

// MarshalCanonical writes the deposit transaction.
func (t DepositBondTx) MarshalCanonical(w *codec.Writer) error {
	if err := w.WriteLen(len(t.Inputs)); err != nil {
		return err
	}
	for _, in := range t.Inputs {
		if err := in.MarshalCanonical(w); err != nil {
			return err
		}
	}
	if err := t.ToStakedAccount.MarshalCanonical(w); err != nil {
		return err
	}
	return t.Attributes.MarshalCanonical(w)
}

// UnmarshalCanonical reads a deposit transaction into t.
func (t *DepositBondTx) UnmarshalCanonical(r *codec.Reader) error {
	n, err := r.ReadLen()
	if err != nil {
		return err
	}
	inputs := make([]ids.TxoPointer, n)
	for i := range inputs {
		if err := inputs[i].UnmarshalCanonical(r); err != nil {
			return err
		}
	}
	var to ids.AccountKeyHash
	if err := to.UnmarshalCanonical(r); err != nil {
		return err
	}
	var attrs tx.Attributes
	if err := attrs.UnmarshalCanonical(r); err != nil {
		return err
	}
	t.Inputs = inputs
	t.ToStakedAccount = to
	t.Attributes = attrs
	return nil
}

// ID is the Blake2s-256 digest of the transaction's canonical encoding.
func (t DepositBondTx) ID() (ids.TxID, error) { return hashTx(t) }

// UnbondTx moves value from an account's bonded balance into unbonded.
// It carries the account's expected current nonce rather than a witness
// list: account-touching transactions are authorized by a single
// account-level witness checked by the caller, not by the engine.
type UnbondTx struct {
	FromAccount ids.AccountKeyHash
	Nonce       uint64
	Value       coin.Coin
	Attributes  tx.Attributes
}

// MarshalCanonical writes the unbond transaction.
func (t UnbondTx) MarshalCanonical(w *codec.Writer) error {
	if err := t.FromAccount.MarshalCanonical(w); err != nil {
		return err
	}
	if err := w.WriteUint64(t.Nonce); err != nil {
		return err
	}
	if err := w.WriteUint64(t.Value.Uint64()); err != nil {
		return err
	}
	return t.Attributes.MarshalCanonical(w)
}

// UnmarshalCanonical reads an unbond transaction into t.
func (t *UnbondTx) UnmarshalCanonical(r *codec.Reader) error {
	var from ids.AccountKeyHash
	if err := from.UnmarshalCanonical(r); err != nil {
		return err
	}
	nonce, err := r.ReadUint64()
	if err != nil {
		return err
	}
	value, err := r.ReadUint64()
	if err != nil {
		return err
	}
	c, err := coin.New(value)
	if err != nil {
		return err
	}
	var attrs tx.Attributes
	if err := attrs.UnmarshalCanonical(r); err != nil {
		return err
	}
	t.FromAccount = from
	t.Nonce = nonce
	t.Value = c
	t.Attributes = attrs
	return nil
}

// ID is the Blake2s-256 digest of the transaction's canonical encoding.
func (t UnbondTx) ID() (ids.TxID, error) { return hashTx(t) }

// WithdrawUnbondedTx turns an account's unbonded balance into UTXOs.
type WithdrawUnbondedTx struct {
	FromAccount ids.AccountKeyHash
	Nonce       uint64
	Outputs     []tx.TxOut
	Attributes  tx.Attributes
}

// MarshalCanonical writes the withdraw transaction.
func (t WithdrawUnbondedTx) MarshalCanonical(w *codec.Writer) error {
	if err := t.FromAccount.MarshalCanonical(w); err != nil {
		return err
	}
	if err := w.WriteUint64(t.Nonce); err != nil {
		return err
	}
	if err := w.WriteLen(len(t.Outputs)); err != nil {
		return err
	}
	for _, out := range t.Outputs {
		if err := out.MarshalCanonical(w); err != nil {
			return err
		}
	}
	return t.Attributes.MarshalCanonical(w)
}

// UnmarshalCanonical reads a withdraw transaction into t.
func (t *WithdrawUnbondedTx) UnmarshalCanonical(r *codec.Reader) error {
	var from ids.AccountKeyHash
	if err := from.UnmarshalCanonical(r); err != nil {
		return err
	}
	nonce, err := r.ReadUint64()
	if err != nil {
		return err
	}
	n, err := r.ReadLen()
	if err != nil {
		return err
	}
	outputs := make([]tx.TxOut, n)
	for i := range outputs {
		if err := outputs[i].UnmarshalCanonical(r); err != nil {
			return err
		}
	}
	var attrs tx.Attributes
	if err := attrs.UnmarshalCanonical(r); err != nil {
		return err
	}
	t.FromAccount = from
	t.Nonce = nonce
	t.Outputs = outputs
	t.Attributes = attrs
	return nil
}

// ID is the Blake2s-256 digest of the transaction's canonical encoding.
func (t WithdrawUnbondedTx) ID() (ids.TxID, error) { return hashTx(t) }

// GetOutputTotal sums every output's value via checked addition.
func (t WithdrawUnbondedTx) GetOutputTotal() (coin.Coin, error) {
	values := make([]coin.Coin, len(t.Outputs))
	for i, o := range t.Outputs {
		values[i] = o.Value
	}
	return coin.Sum(values)
}

func hashTx(m codec.Marshaler) (ids.TxID, error) {
	encoded, err := codec.Encode(m)
	if err != nil {
		return ids.TxID{}, err
	}
	digest := blake2s.Sum256(encoded)
	return ids.TxID(digest), nil
}
