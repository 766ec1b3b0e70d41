package hufftree

import (
	"bytes"
	"encoding"
	"errors"
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// countBits is the width of the bit count that prefixes a packed payload.
const countBits = 64

// WritePacked writes bits in packed binary form: a 64-bit big-endian bit
// count, then the bits themselves, most significant bit first, zero-padded
// to a whole byte.
func WritePacked(w io.Writer, bits Bits) error {
	bw := bitio.NewWriter(w)
	if err := bw.WriteBits(uint64(bits.Len()), countBits); err != nil {
		return fmt.Errorf("write packed bit count: %w", err)
	}
	if err := writeBits(bw, bits); err != nil {
		return fmt.Errorf("write packed bits: %w", err)
	}
	if err := bw.Close(); err != nil {
		return fmt.Errorf("flush packed bits: %w", err)
	}
	return nil
}

// ReadPacked reads bits written by WritePacked.  A stream that ends before
// the declared number of bits fails with *TruncatedStreamError.
func ReadPacked(r io.Reader) (Bits, error) {
	br := bitio.NewReader(r)
	count, err := br.ReadBits(countBits)
	if err != nil {
		if isEOF(err) {
			return Bits{}, &TruncatedStreamError{What: "packed bit count", Offset: 0, Need: countBits, Have: 0}
		}
		return Bits{}, fmt.Errorf("read packed bit count: %w", err)
	}
	return readBits(br, "packed payload", countBits, count)
}

// MarshalBinary packs the length header and serialized tree into bytes,
// most significant bit first, zero-padded to a whole byte.
func (t *Tree) MarshalBinary() ([]byte, error) {
	bits, err := EncodeTreeWithHeader(t)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	bw := bitio.NewWriter(&buf)
	if err := writeBits(bw, bits); err != nil {
		return nil, err
	}
	if err := bw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary unpacks bytes produced by MarshalBinary.  The padding
// after the tree must be zero, so each tree has exactly one packed form.
func (t *Tree) UnmarshalBinary(data []byte) error {
	br := bitio.NewReader(bytes.NewReader(data))
	header, err := readBits(br, "length header", 0, HeaderBits)
	if err != nil {
		return err
	}

	total := int(header.Uint(0, HeaderBits))
	if total < HeaderBits {
		return &MalformedTreeError{Offset: 0, Reason: fmt.Sprintf("length header %d is less than %d", total, HeaderBits)}
	}
	if want := (total + 7) / 8; len(data) > want {
		return &MalformedTreeError{Offset: total, Reason: fmt.Sprintf("%d trailing bytes after tree", len(data)-want)}
	}

	tree, err := readBits(br, "serialized tree", HeaderBits, uint64(total-HeaderBits))
	if err != nil {
		return err
	}

	padding, err := readBits(br, "padding", total, uint64((8-total%8)%8))
	if err != nil {
		return err
	}
	for i := 0; i < padding.Len(); i++ {
		if padding.Bit(i) != 0 {
			return &MalformedTreeError{Offset: total + i, Reason: "non-zero padding bit after tree"}
		}
	}

	header.Append(tree)
	return t.setFromHeaderBits(header)
}

func writeBits(bw *bitio.Writer, bits Bits) error {
	for i := 0; i < bits.Len(); i++ {
		if err := bw.WriteBool(bits.Bit(i) != 0); err != nil {
			return err
		}
	}
	return nil
}

func readBits(br *bitio.Reader, what string, offset int, count uint64) (Bits, error) {
	var out Bits
	for i := uint64(0); i < count; i++ {
		bit, err := br.ReadBool()
		if err != nil {
			if isEOF(err) {
				return Bits{}, &TruncatedStreamError{What: what, Offset: offset, Need: int(count), Have: int(i)}
			}
			return Bits{}, fmt.Errorf("read %s: %w", what, err)
		}
		if bit {
			out.AppendBit(1)
		} else {
			out.AppendBit(0)
		}
	}
	return out, nil
}

func isEOF(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}

var (
	_ encoding.BinaryMarshaler   = (*Tree)(nil)
	_ encoding.BinaryUnmarshaler = (*Tree)(nil)
)
