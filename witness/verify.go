package witness

import (
	"github.com/staked-chain/txvalidation/ids"
)

// Verify checks w against message (a transaction id) and address. It is
// the engine's single crypto entry point: stateless, side-effect-free, and
// never consults any database. Any mismatch between witness shape and
// address kind, or any failed signature or Merkle proof, is reported the
// same way: a non-nil error.
func Verify(w TxWitness, message ids.TxID, address ids.Address) error {
	switch address.Kind {
	case ids.KindMerkleTree:
		if w.TreeSig == nil {
			return ErrWrongVariant
		}
		return verifyTreeSig(*w.TreeSig, message, address.MerkleRoot)
	case ids.KindAccountKey:
		if w.AccountSig == nil {
			return ErrWrongVariant
		}
		return verifyAccountSig(*w.AccountSig, message, address.AccountKey)
	default:
		return ErrWrongVariant
	}
}

func verifyTreeSig(w TreeSig, message ids.TxID, root [32]byte) error {
	if w.Proof.Leaf != w.PublicKey {
		return ErrWrongVariant
	}
	if !VerifyProof(root, w.Proof) {
		return errVerificationFailed
	}
	return VerifySchnorr(w.PublicKey, [32]byte(message), w.Signature)
}

func verifyAccountSig(w AccountSig, message ids.TxID, accountHash ids.AccountKeyHash) error {
	if AccountKeyHash(w.PublicKey) != [20]byte(accountHash) {
		return ErrWrongVariant
	}
	return VerifyECDSA(w.PublicKey, [32]byte(message), w.Signature)
}
