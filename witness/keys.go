// Package witness implements the two witness shapes a UTXO-spending or
// account-touching transaction can carry, and the stateless operation that
// checks one against a message digest and an address.
//
// SecretKey and RawPubkey follow the private/public key shape of
// avalanchego's utils/crypto package, without its Factory indirection, and
// wrap real asymmetric primitives: Schnorr (BIP-340, via btcec) for Merkle-tree addresses and
// ECDSA (via decred's secp256k1) for single-key account addresses.
package witness

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"

	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

// ErrInvalidKey is returned when raw key bytes do not parse onto the curve.
var ErrInvalidKey = errors.New("witness: invalid key encoding")

// RawPubkey is a compressed secp256k1 public key, the unit hashed into a
// Merkle tree leaf and carried inside a TreeSig witness.
type RawPubkey [33]byte

// Bytes returns the compressed key encoding.
func (k RawPubkey) Bytes() []byte { return k[:] }

// ParseRawPubkey validates that b is a well-formed compressed public key.
func ParseRawPubkey(b []byte) (RawPubkey, error) {
	var out RawPubkey
	if len(b) != len(out) {
		return out, ErrInvalidKey
	}
	if _, err := secp256k1.ParsePubKey(b); err != nil {
		return out, ErrInvalidKey
	}
	copy(out[:], b)
	return out, nil
}

// SecretKey is a secp256k1 scalar usable both for Schnorr and ECDSA
// signing, mirroring the one-key-two-schemes shape used throughout the
// original implementation's test fixtures.
type SecretKey struct {
	key *secp256k1.PrivateKey
}

// NewSecretKey generates a fresh random secret key.
func NewSecretKey() (SecretKey, error) {
	key, err := secp256k1.GeneratePrivateKeyFromRand(rand.Reader)
	if err != nil {
		return SecretKey{}, err
	}
	return SecretKey{key: key}, nil
}

// SecretKeyFromBytes parses a 32-byte scalar, matching the shorthand
// `[0xcc; 32]`-style fixtures used by the end-to-end scenarios.
func SecretKeyFromBytes(b []byte) (SecretKey, error) {
	if len(b) != 32 {
		return SecretKey{}, ErrInvalidKey
	}
	key := secp256k1.PrivKeyFromBytes(b)
	return SecretKey{key: key}, nil
}

// PublicKey returns the raw compressed public key for sk.
func (sk SecretKey) PublicKey() RawPubkey {
	var out RawPubkey
	copy(out[:], sk.key.PubKey().SerializeCompressed())
	return out
}

// SignSchnorr produces a BIP-340 signature over a 32-byte message digest,
// used to authorize a TreeSig witness.
func (sk SecretKey) SignSchnorr(message [32]byte) ([64]byte, error) {
	sig, err := schnorr.Sign(sk.key, message[:])
	if err != nil {
		return [64]byte{}, err
	}
	var out [64]byte
	copy(out[:], sig.Serialize())
	return out, nil
}

// SignECDSA produces a DER-encoded ECDSA signature over a 32-byte message
// digest, used to authorize an AccountSig witness.
func (sk SecretKey) SignECDSA(message [32]byte) []byte {
	sig := ecdsa.Sign(sk.key, message[:])
	return sig.Serialize()
}

// VerifySchnorr checks a BIP-340 signature against a compressed public key
// and a 32-byte message digest.
func VerifySchnorr(pub RawPubkey, message [32]byte, sig [64]byte) error {
	parsed, err := schnorr.ParsePubKey(pub[1:])
	if err != nil {
		return err
	}
	parsedSig, err := schnorr.ParseSignature(sig[:])
	if err != nil {
		return err
	}
	if !parsedSig.Verify(message[:], parsed) {
		return errVerificationFailed
	}
	return nil
}

// VerifyECDSA checks a DER-encoded ECDSA signature against a compressed
// public key and a 32-byte message digest.
func VerifyECDSA(pub []byte, message [32]byte, sig []byte) error {
	parsedPub, err := secp256k1.ParsePubKey(pub)
	if err != nil {
		return err
	}
	parsedSig, err := ecdsa.ParseDERSignature(sig)
	if err != nil {
		return err
	}
	if !parsedSig.Verify(message[:], parsedPub) {
		return errVerificationFailed
	}
	return nil
}

var errVerificationFailed = errors.New("witness: signature verification failed")

// AccountKeyHash derives the 20-byte account key hash for a raw (possibly
// non-compressed) public key encoding, the same truncated-hash shape
// avalanchego uses to derive a ShortID from a public key.
func AccountKeyHash(pub []byte) [20]byte {
	digest := sha256.Sum256(pub)
	var out [20]byte
	copy(out[:], digest[:20])
	return out
}
