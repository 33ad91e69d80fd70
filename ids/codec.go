package ids

import (
	"fmt"

	"github.com/staked-chain/txvalidation/codec"
)

// MarshalCanonical writes the 32 raw digest bytes.
func (id TxID) MarshalCanonical(w *codec.Writer) error { return w.WriteFixedBytes(id[:]) }

// UnmarshalCanonical reads 32 raw digest bytes into id.
func (id *TxID) UnmarshalCanonical(r *codec.Reader) error {
	b, err := r.ReadFixedBytes(IDLen)
	if err != nil {
		return err
	}
	copy(id[:], b)
	return nil
}

// MarshalCanonical writes the 20 raw hash bytes.
func (h AccountKeyHash) MarshalCanonical(w *codec.Writer) error { return w.WriteFixedBytes(h[:]) }

// UnmarshalCanonical reads 20 raw hash bytes into h.
func (h *AccountKeyHash) UnmarshalCanonical(r *codec.Reader) error {
	b, err := r.ReadFixedBytes(20)
	if err != nil {
		return err
	}
	copy(h[:], b)
	return nil
}

// MarshalCanonical writes (id, index).
func (p TxoPointer) MarshalCanonical(w *codec.Writer) error {
	if err := p.ID.MarshalCanonical(w); err != nil {
		return err
	}
	return w.WriteUint16(p.Index)
}

// UnmarshalCanonical reads (id, index) into p.
func (p *TxoPointer) UnmarshalCanonical(r *codec.Reader) error {
	if err := p.ID.UnmarshalCanonical(r); err != nil {
		return err
	}
	idx, err := r.ReadUint16()
	if err != nil {
		return err
	}
	p.Index = idx
	return nil
}

// addressTagMerkleTree and addressTagAccountKey are the fixed, never
// renumbered discriminants for the Address tagged union.
const (
	addressTagMerkleTree byte = 0
	addressTagAccountKey byte = 1
)

// MarshalCanonical writes the tagged address.
func (a Address) MarshalCanonical(w *codec.Writer) error {
	switch a.Kind {
	case KindMerkleTree:
		if err := w.WriteByte(addressTagMerkleTree); err != nil {
			return err
		}
		return w.WriteFixedBytes(a.MerkleRoot[:])
	case KindAccountKey:
		if err := w.WriteByte(addressTagAccountKey); err != nil {
			return err
		}
		return a.AccountKey.MarshalCanonical(w)
	default:
		return fmt.Errorf("ids: unknown address kind %d", a.Kind)
	}
}

// UnmarshalCanonical reads a tagged address into a.
func (a *Address) UnmarshalCanonical(r *codec.Reader) error {
	tag, err := r.ReadByte()
	if err != nil {
		return err
	}
	switch tag {
	case addressTagMerkleTree:
		b, err := r.ReadFixedBytes(IDLen)
		if err != nil {
			return err
		}
		a.Kind = KindMerkleTree
		copy(a.MerkleRoot[:], b)
		return nil
	case addressTagAccountKey:
		a.Kind = KindAccountKey
		return a.AccountKey.UnmarshalCanonical(r)
	default:
		return fmt.Errorf("ids: unknown address tag %d", tag)
	}
}
