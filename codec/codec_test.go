package codec_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staked-chain/txvalidation/codec"
)

func TestWriterReaderPrimitives(t *testing.T) {
	w := codec.NewWriter()
	require.NoError(t, w.WriteByte(0x05))
	require.NoError(t, w.WriteBool(true))
	require.NoError(t, w.WriteUint16(1234))
	require.NoError(t, w.WriteUint32(567890))
	require.NoError(t, w.WriteUint64(1<<40))
	require.NoError(t, w.WriteVarBytes([]byte("hello")))

	r := codec.NewReader(w.Bytes())
	b, err := r.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte(0x05), b)

	flag, err := r.ReadBool()
	require.NoError(t, err)
	assert.True(t, flag)

	u16, err := r.ReadUint16()
	require.NoError(t, err)
	assert.Equal(t, uint16(1234), u16)

	u32, err := r.ReadUint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(567890), u32)

	u64, err := r.ReadUint64()
	require.NoError(t, err)
	assert.Equal(t, uint64(1<<40), u64)

	vb, err := r.ReadVarBytes()
	require.NoError(t, err)
	assert.Equal(t, "hello", string(vb))

	assert.Zero(t, r.Remaining())
}

func TestDecodeRejectsTrailingBytes(t *testing.T) {
	w := codec.NewWriter()
	require.NoError(t, w.WriteUint32(1))
	data := append(w.Bytes(), 0xff)

	err := codec.Decode(data, &u32Value{})
	assert.ErrorIs(t, err, codec.ErrTrailingBytes)
}

func TestDecodeRejectsMalformedLength(t *testing.T) {
	_, err := codec.NewReader([]byte{0x01, 0x00}).ReadVarBytes()
	assert.ErrorIs(t, err, codec.ErrMalformedLength)
}

type u32Value struct{ v uint32 }

func (u *u32Value) MarshalCanonical(w *codec.Writer) error { return w.WriteUint32(u.v) }
func (u *u32Value) UnmarshalCanonical(r *codec.Reader) error {
	v, err := r.ReadUint32()
	if err != nil {
		return err
	}
	u.v = v
	return nil
}

// TestVarBytesRoundTripProperty exercises the decode(encode(x)) == x round
// trip law for arbitrary byte strings, the consensus-critical invariant
// named by the engine's testable properties.
func TestVarBytesRoundTripProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("var bytes round trip", prop.ForAll(
		func(payload []byte) bool {
			w := codec.NewWriter()
			if err := w.WriteVarBytes(payload); err != nil {
				return false
			}
			r := codec.NewReader(w.Bytes())
			got, err := r.ReadVarBytes()
			if err != nil {
				return false
			}
			if len(payload) == 0 && len(got) == 0 {
				return r.Remaining() == 0
			}
			return string(got) == string(payload) && r.Remaining() == 0
		},
		gen.SliceOf(gen.UInt8()).Map(func(bs []uint8) []byte {
			out := make([]byte, len(bs))
			for i, b := range bs {
				out[i] = byte(b)
			}
			return out
		}),
	))

	properties.TestingRun(t)
}
