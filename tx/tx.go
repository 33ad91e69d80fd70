// Package tx defines the UTXO-spending transaction shape, its canonical
// encoding, and the transaction-identity hash. A Tx's id is the digest of
// its own encoding with witnesses excluded; witnesses travel alongside the
// transaction but are never part of what gets signed over.
package tx

import (
	"golang.org/x/crypto/blake2s"

	"github.com/staked-chain/txvalidation/codec"
	"github.com/staked-chain/txvalidation/coin"
	"github.com/staked-chain/txvalidation/ids"
)

// AccessType discriminates what a view key is allowed to see of a
// transaction's otherwise-private payload.
type AccessType uint8

const (
	// AccessAllData grants full visibility of the transaction payload.
	AccessAllData AccessType = iota
)

// AccessPolicy grants a raw public key visibility into a transaction under
// the named AccessType.
type AccessPolicy struct {
	PublicKey []byte
	Access    AccessType
}

// MarshalCanonical writes the access policy.
func (p AccessPolicy) MarshalCanonical(w *codec.Writer) error {
	if err := w.WriteVarBytes(p.PublicKey); err != nil {
		return err
	}
	return w.WriteByte(byte(p.Access))
}

// UnmarshalCanonical reads an access policy into p.
func (p *AccessPolicy) UnmarshalCanonical(r *codec.Reader) error {
	pk, err := r.ReadVarBytes()
	if err != nil {
		return err
	}
	accessByte, err := r.ReadByte()
	if err != nil {
		return err
	}
	p.PublicKey = pk
	p.Access = AccessType(accessByte)
	return nil
}

// Attributes carries chain-replay protection and viewkey grants common to
// every transaction kind.
type Attributes struct {
	ChainHexID  uint8
	AllowedView []AccessPolicy
}

// NewAttributes builds an Attributes value for the given chain id with no
// view grants.
func NewAttributes(chainHexID uint8) Attributes {
	return Attributes{ChainHexID: chainHexID}
}

// MarshalCanonical writes the attributes.
func (a Attributes) MarshalCanonical(w *codec.Writer) error {
	if err := w.WriteByte(a.ChainHexID); err != nil {
		return err
	}
	if err := w.WriteLen(len(a.AllowedView)); err != nil {
		return err
	}
	for _, policy := range a.AllowedView {
		if err := policy.MarshalCanonical(w); err != nil {
			return err
		}
	}
	return nil
}

// UnmarshalCanonical reads attributes into a.
func (a *Attributes) UnmarshalCanonical(r *codec.Reader) error {
	chainID, err := r.ReadByte()
	if err != nil {
		return err
	}
	n, err := r.ReadLen()
	if err != nil {
		return err
	}
	// An empty grant list decodes to nil, the form NewAttributes produces,
	// so a decoded value equals the one that was encoded.
	var views []AccessPolicy
	if n > 0 {
		views = make([]AccessPolicy, n)
	}
	for i := range views {
		if err := views[i].UnmarshalCanonical(r); err != nil {
			return err
		}
	}
	a.ChainHexID = chainID
	a.AllowedView = views
	return nil
}

// TxOut is a transaction output: an amount locked to an address, optionally
// not spendable until a block time.
type TxOut struct {
	Address   ids.Address
	Value     coin.Coin
	ValidFrom *ids.Timestamp
}

// NewTxOut builds an unlocked output.
func NewTxOut(address ids.Address, value coin.Coin) TxOut {
	return TxOut{Address: address, Value: value}
}

// NewTimelockedTxOut builds an output unspendable before validFrom.
func NewTimelockedTxOut(address ids.Address, value coin.Coin, validFrom ids.Timestamp) TxOut {
	return TxOut{Address: address, Value: value, ValidFrom: &validFrom}
}

// MarshalCanonical writes the output.
func (o TxOut) MarshalCanonical(w *codec.Writer) error {
	if err := o.Address.MarshalCanonical(w); err != nil {
		return err
	}
	if err := w.WriteUint64(o.Value.Uint64()); err != nil {
		return err
	}
	if o.ValidFrom == nil {
		return w.WriteBool(false)
	}
	if err := w.WriteBool(true); err != nil {
		return err
	}
	return w.WriteInt64(*o.ValidFrom)
}

// UnmarshalCanonical reads an output into o.
func (o *TxOut) UnmarshalCanonical(r *codec.Reader) error {
	var addr ids.Address
	if err := addr.UnmarshalCanonical(r); err != nil {
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
	hasLock, err := r.ReadBool()
	if err != nil {
		return err
	}
	o.Address = addr
	o.Value = c
	o.ValidFrom = nil
	if hasLock {
		ts, err := r.ReadInt64()
		if err != nil {
			return err
		}
		o.ValidFrom = &ts
	}
	return nil
}

// Tx is a UTXO-spending value transfer: it consumes prior outputs named by
// Inputs and creates new ones in Outputs. Witnesses travel out-of-band
// (see the witness package) and are never part of Tx's own encoding.
type Tx struct {
	Inputs     []ids.TxoPointer
	Outputs    []TxOut
	Attributes Attributes
}

// New builds an empty transaction on the given chain.
func New(chainHexID uint8) Tx {
	return Tx{Attributes: NewAttributes(chainHexID)}
}

// AddInput appends an input pointer.
func (t *Tx) AddInput(p ids.TxoPointer) { t.Inputs = append(t.Inputs, p) }

// AddOutput appends an output.
func (t *Tx) AddOutput(o TxOut) { t.Outputs = append(t.Outputs, o) }

// GetOutputTotal sums every output's value via checked addition.
func (t Tx) GetOutputTotal() (coin.Coin, error) {
	values := make([]coin.Coin, len(t.Outputs))
	for i, o := range t.Outputs {
		values[i] = o.Value
	}
	return coin.Sum(values)
}

// MarshalCanonical writes the transaction, excluding any witness.
func (t Tx) MarshalCanonical(w *codec.Writer) error {
	if err := w.WriteLen(len(t.Inputs)); err != nil {
		return err
	}
	for _, in := range t.Inputs {
		if err := in.MarshalCanonical(w); err != nil {
			return err
		}
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

// UnmarshalCanonical reads a transaction into t.
func (t *Tx) UnmarshalCanonical(r *codec.Reader) error {
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
	m, err := r.ReadLen()
	if err != nil {
		return err
	}
	outputs := make([]TxOut, m)
	for i := range outputs {
		if err := outputs[i].UnmarshalCanonical(r); err != nil {
			return err
		}
	}
	var attrs Attributes
	if err := attrs.UnmarshalCanonical(r); err != nil {
		return err
	}
	t.Inputs = inputs
	t.Outputs = outputs
	t.Attributes = attrs
	return nil
}

// ID is the Blake2s-256 digest of the transaction's canonical encoding.
// It is computed over the transaction alone; witnesses are never hashed
// into it, so a witness can be replaced without changing what it signs.
func (t Tx) ID() (ids.TxID, error) {
	encoded, err := codec.Encode(t)
	if err != nil {
		return ids.TxID{}, err
	}
	digest := blake2s.Sum256(encoded)
	return ids.TxID(digest), nil
}

// Fee is the amount retained by the network out of a transaction's input
// total, always a valid Coin in [0, MaxCoin].
type Fee struct {
	amount coin.Coin
}

// NewFee wraps an already-validated Coin as a Fee.
func NewFee(amount coin.Coin) Fee { return Fee{amount: amount} }

// ToCoin returns the fee's amount as a Coin.
func (f Fee) ToCoin() coin.Coin { return f.amount }
