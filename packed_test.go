package hufftree

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWritePacked(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePacked(&buf, MustParseBits("01110")))
	require.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 5, 0x70}, buf.Bytes())

	bits, err := ReadPacked(&buf)
	require.NoError(t, err)
	require.Equal(t, "01110", bits.String())
}

func TestPacked_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for _, size := range []int{0, 1, 7, 8, 9, 63, 64, 65, 1000} {
		var bits Bits
		for i := 0; i < size; i++ {
			bits.AppendBit(uint(rng.Intn(2)))
		}

		var buf bytes.Buffer
		require.NoError(t, WritePacked(&buf, bits))
		require.Equal(t, 8+(size+7)/8, buf.Len())

		back, err := ReadPacked(&buf)
		require.NoError(t, err)
		require.True(t, bits.Equal(back), "size %d: %s != %s", size, bits, back)
	}
}

func TestReadPacked_Truncated(t *testing.T) {
	var truncErr *TruncatedStreamError

	_, err := ReadPacked(bytes.NewReader(nil))
	require.ErrorAs(t, err, &truncErr)

	_, err = ReadPacked(bytes.NewReader([]byte{0, 0, 0, 0, 0, 0, 0, 100, 0xff}))
	require.ErrorAs(t, err, &truncErr)
	require.Equal(t, 100, truncErr.Need)
	require.Equal(t, 8, truncErr.Have)
}

func TestTree_MarshalBinary(t *testing.T) {
	tree := mustBuildTree(abcFrequencies)

	raw, err := tree.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, raw, (HeaderBits+len(abcTreeBits)+7)/8)

	var decoded Tree
	require.NoError(t, decoded.UnmarshalBinary(raw))
	require.True(t, decoded.Equal(tree))

	var malformedErr *MalformedTreeError
	err = decoded.UnmarshalBinary(append(append([]byte(nil), raw...), 0))
	require.ErrorAs(t, err, &malformedErr)

	var truncErr *TruncatedStreamError
	err = decoded.UnmarshalBinary(raw[:len(raw)-1])
	require.ErrorAs(t, err, &truncErr)

	err = decoded.UnmarshalBinary(raw[:1])
	require.ErrorAs(t, err, &truncErr)
}

func TestTree_UnmarshalBinary_Padding(t *testing.T) {
	raw, err := mustBuildTree(abcFrequencies).MarshalBinary()
	require.NoError(t, err)

	dirty := append([]byte(nil), raw...)
	dirty[len(dirty)-1] |= 0x01

	var decoded Tree
	var malformedErr *MalformedTreeError
	err = decoded.UnmarshalBinary(dirty)
	require.ErrorAs(t, err, &malformedErr)
	require.Equal(t, 8*len(raw)-1, malformedErr.Offset)
	require.True(t, decoded.IsEmpty())
}
