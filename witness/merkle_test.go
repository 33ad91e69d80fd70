package witness_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staked-chain/txvalidation/witness"
)

func pubkeyFixture(t *testing.T, seedByte byte) witness.RawPubkey {
	t.Helper()
	seed := make([]byte, 32)
	for i := range seed {
		seed[i] = seedByte
	}
	sk, err := witness.SecretKeyFromBytes(seed)
	require.NoError(t, err)
	return sk.PublicKey()
}

func TestMerkleTreeSingleLeafProof(t *testing.T) {
	pub := pubkeyFixture(t, 0xcc)
	tree, err := witness.NewMerkleTree([]witness.RawPubkey{pub})
	require.NoError(t, err)

	proof, err := tree.GenerateProof(pub)
	require.NoError(t, err)
	assert.True(t, witness.VerifyProof(tree.Root(), proof))
}

func TestMerkleTreeMultiLeafProof(t *testing.T) {
	leaves := []witness.RawPubkey{
		pubkeyFixture(t, 0x01),
		pubkeyFixture(t, 0x02),
		pubkeyFixture(t, 0x03),
	}
	tree, err := witness.NewMerkleTree(leaves)
	require.NoError(t, err)

	for _, leaf := range leaves {
		proof, err := tree.GenerateProof(leaf)
		require.NoError(t, err)
		assert.True(t, witness.VerifyProof(tree.Root(), proof))
	}
}

func TestMerkleTreeProofRejectsWrongRoot(t *testing.T) {
	pub := pubkeyFixture(t, 0xcc)
	other := pubkeyFixture(t, 0xdd)
	tree, err := witness.NewMerkleTree([]witness.RawPubkey{pub})
	require.NoError(t, err)
	otherTree, err := witness.NewMerkleTree([]witness.RawPubkey{other})
	require.NoError(t, err)

	proof, err := tree.GenerateProof(pub)
	require.NoError(t, err)
	assert.False(t, witness.VerifyProof(otherTree.Root(), proof))
}

func TestMerkleTreeRejectsEmpty(t *testing.T) {
	_, err := witness.NewMerkleTree(nil)
	assert.ErrorIs(t, err, witness.ErrEmptyTree)
}

func TestGenerateProofRejectsUnknownLeaf(t *testing.T) {
	pub := pubkeyFixture(t, 0xcc)
	other := pubkeyFixture(t, 0xdd)
	tree, err := witness.NewMerkleTree([]witness.RawPubkey{pub})
	require.NoError(t, err)

	_, err = tree.GenerateProof(other)
	assert.ErrorIs(t, err, witness.ErrLeafNotFound)
}
