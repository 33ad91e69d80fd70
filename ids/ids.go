// Package ids defines the low-level identifier and addressing types shared
// across the validation engine: transaction ids, UTXO pointers, timestamps,
// and the two address shapes a transaction output can be locked to.
package ids

import (
	"encoding/hex"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/mr-tron/base58"
)

// Timestamp is a unix-second timestamp. A zero value means "unset" only in
// contexts that say so explicitly (TxOut.ValidFrom uses a pointer instead).
type Timestamp = int64

// IDLen is the length in bytes of a TxID and of a Merkle tree root.
const IDLen = 32

// TxID is the Blake2s-256 digest of a transaction's canonical encoding
// (excluding witnesses). See tx.Tx.ID for how it is computed.
type TxID [IDLen]byte

// String renders the id as lowercase hex, the way the original
// client-common block-results boundary base64-decodes 32-byte ids but the
// engine itself always displays them as hex.
func (id TxID) String() string { return hex.EncodeToString(id[:]) }

// MarshalJSON renders the id as a 0x-prefixed hex string for JSON/RPC
// boundaries, grounded on go-ethereum's hexutil convention.
func (id TxID) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", hexutil.Encode(id[:]))), nil
}

// Less gives TxID a total order, used when ordering TxoPointers.
func (id TxID) Less(o TxID) bool {
	for i := range id {
		if id[i] != o[i] {
			return id[i] < o[i]
		}
	}
	return false
}

// Equal reports byte-for-byte equality.
func (id TxID) Equal(o TxID) bool { return id == o }

// AccountKeyHash is the 20-byte hash of a staked account's owning public
// key, analogous to avalanchego's ids.ShortID.
type AccountKeyHash [20]byte

// String renders the hash as base58, the way avalanchego renders ShortIDs.
func (h AccountKeyHash) String() string { return base58.Encode(h[:]) }

// Equal reports byte-for-byte equality.
func (h AccountKeyHash) Equal(o AccountKeyHash) bool { return h == o }

// AddressKind discriminates the two address shapes a TxOut can be locked to.
type AddressKind uint8

const (
	// KindMerkleTree locks to a Merkle tree of Schnorr public keys.
	KindMerkleTree AddressKind = iota
	// KindAccountKey locks to a single staked-account owner key.
	KindAccountKey
)

// Address is a tagged union: either a MerkleTree root or an AccountKey
// hash. Exactly one of the two fields is meaningful, selected by Kind.
type Address struct {
	Kind       AddressKind
	MerkleRoot [IDLen]byte
	AccountKey AccountKeyHash
}

// NewMerkleTreeAddress builds an address spendable by a Schnorr signature
// under a public key proven to be a leaf of the tree rooted at root.
func NewMerkleTreeAddress(root [IDLen]byte) Address {
	return Address{Kind: KindMerkleTree, MerkleRoot: root}
}

// NewAccountKeyAddress builds an address spendable by the named staked
// account's single owner key.
func NewAccountKeyAddress(hash AccountKeyHash) Address {
	return Address{Kind: KindAccountKey, AccountKey: hash}
}

// Equal reports whether two addresses have the same kind and payload.
func (a Address) Equal(o Address) bool {
	if a.Kind != o.Kind {
		return false
	}
	switch a.Kind {
	case KindMerkleTree:
		return a.MerkleRoot == o.MerkleRoot
	case KindAccountKey:
		return a.AccountKey == o.AccountKey
	default:
		return false
	}
}

// String renders a human-readable form: base58 of the tagged payload,
// matching avalanchego's address display convention.
func (a Address) String() string {
	switch a.Kind {
	case KindMerkleTree:
		return "tree:" + base58.Encode(a.MerkleRoot[:])
	case KindAccountKey:
		return "account:" + a.AccountKey.String()
	default:
		return "unknown-address"
	}
}

// TxoPointer references a prior transaction's output by (id, index).
type TxoPointer struct {
	ID    TxID
	Index uint16
}

// Equal reports pointer equality, used for the duplicate-input check.
func (p TxoPointer) Equal(o TxoPointer) bool {
	return p.ID == o.ID && p.Index == o.Index
}

// Less orders pointers lexicographically over (ID, Index), matching the
// original Rust source's BTreeSet<&TxoPointer> ordering.
func (p TxoPointer) Less(o TxoPointer) bool {
	if p.ID != o.ID {
		return p.ID.Less(o.ID)
	}
	return p.Index < o.Index
}
