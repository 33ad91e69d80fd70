package witness

import (
	"errors"

	"github.com/staked-chain/txvalidation/codec"
)

// ErrUnsupportedWitness is returned when a witness variant cannot be
// matched to any known shape during decoding.
var ErrUnsupportedWitness = errors.New("witness: unknown witness variant")

// ErrWrongVariant is returned when a witness's shape does not match the
// address it is being checked against, e.g. an AccountSig over a
// MerkleTree address.
var ErrWrongVariant = errors.New("witness: witness variant does not match address")

const (
	tagTreeSig    byte = 0
	tagAccountSig byte = 1
)

// TreeSig authorizes a MerkleTree address: a Schnorr signature under a
// public key proven, via Proof, to be a leaf of the address's root.
type TreeSig struct {
	Signature [64]byte
	PublicKey RawPubkey
	Proof     Proof
}

// AccountSig authorizes an AccountKey address: an ECDSA signature whose
// recovered/verified public key hashes to the account's stored key hash.
type AccountSig struct {
	Signature []byte
	PublicKey []byte
}

// TxWitness is a tagged union of the two witness shapes, one per
// UTXO-spending input.
type TxWitness struct {
	TreeSig    *TreeSig
	AccountSig *AccountSig
}

// NewTreeSig wraps a TreeSig as a TxWitness.
func NewTreeSig(sig TreeSig) TxWitness { return TxWitness{TreeSig: &sig} }

// NewAccountSig wraps an AccountSig as a TxWitness.
func NewAccountSig(sig AccountSig) TxWitness { return TxWitness{AccountSig: &sig} }

// MarshalCanonical writes the proof step list.
func (p Proof) MarshalCanonical(w *codec.Writer) error {
	if err := w.WriteFixedBytes(p.Leaf[:]); err != nil {
		return err
	}
	if err := w.WriteLen(len(p.Steps)); err != nil {
		return err
	}
	for _, step := range p.Steps {
		if err := w.WriteFixedBytes(step.Sibling[:]); err != nil {
			return err
		}
		if err := w.WriteByte(byte(step.SiblingOn)); err != nil {
			return err
		}
	}
	return nil
}

// UnmarshalCanonical reads a proof into p.
func (p *Proof) UnmarshalCanonical(r *codec.Reader) error {
	leaf, err := r.ReadFixedBytes(len(RawPubkey{}))
	if err != nil {
		return err
	}
	copy(p.Leaf[:], leaf)
	n, err := r.ReadLen()
	if err != nil {
		return err
	}
	steps := make([]ProofStep, n)
	for i := range steps {
		sib, err := r.ReadFixedBytes(32)
		if err != nil {
			return err
		}
		side, err := r.ReadByte()
		if err != nil {
			return err
		}
		copy(steps[i].Sibling[:], sib)
		steps[i].SiblingOn = Side(side)
	}
	p.Steps = steps
	return nil
}

// MarshalCanonical writes the tagged witness variant.
func (w TxWitness) MarshalCanonical(wr *codec.Writer) error {
	switch {
	case w.TreeSig != nil:
		if err := wr.WriteByte(tagTreeSig); err != nil {
			return err
		}
		if err := wr.WriteFixedBytes(w.TreeSig.Signature[:]); err != nil {
			return err
		}
		if err := wr.WriteFixedBytes(w.TreeSig.PublicKey[:]); err != nil {
			return err
		}
		return w.TreeSig.Proof.MarshalCanonical(wr)
	case w.AccountSig != nil:
		if err := wr.WriteByte(tagAccountSig); err != nil {
			return err
		}
		if err := wr.WriteVarBytes(w.AccountSig.Signature); err != nil {
			return err
		}
		return wr.WriteVarBytes(w.AccountSig.PublicKey)
	default:
		return ErrUnsupportedWitness
	}
}

// UnmarshalCanonical reads a tagged witness into w.
func (w *TxWitness) UnmarshalCanonical(r *codec.Reader) error {
	tag, err := r.ReadByte()
	if err != nil {
		return err
	}
	switch tag {
	case tagTreeSig:
		sig, err := r.ReadFixedBytes(64)
		if err != nil {
			return err
		}
		pub, err := r.ReadFixedBytes(33)
		if err != nil {
			return err
		}
		var proof Proof
		if err := proof.UnmarshalCanonical(r); err != nil {
			return err
		}
		var tree TreeSig
		copy(tree.Signature[:], sig)
		copy(tree.PublicKey[:], pub)
		tree.Proof = proof
		w.TreeSig = &tree
		w.AccountSig = nil
		return nil
	case tagAccountSig:
		sig, err := r.ReadVarBytes()
		if err != nil {
			return err
		}
		pub, err := r.ReadVarBytes()
		if err != nil {
			return err
		}
		w.AccountSig = &AccountSig{Signature: sig, PublicKey: pub}
		w.TreeSig = nil
		return nil
	default:
		return ErrUnsupportedWitness
	}
}
