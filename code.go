package hufftree

import (
	"fmt"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Bits represents a growable sequence of bits.  The zero value is an empty
// sequence ready for use.
//
// Bits are stored most significant bit first: bit 0 of the sequence is the
// top bit of the first word.
//
// A Bits may be copied by value.  The copy shares storage with the original
// until either one appends, at which point the appending side takes a
// private copy of its words first.
//
type Bits struct {
	addr  *Bits // of the value that owns words, to detect copies by value
	words []uint64
	size  int
}

// Code represents the codeword assigned to a Symbol: the path from the tree
// root to the Symbol's leaf, 0 for left and 1 for right.
type Code = Bits

// MakeBits is a convenience function that constructs a Bits holding the
// lowest size bits of value, most significant bit first.
func MakeBits(size int, value uint64) Bits {
	var b Bits
	b.AppendUint(value, size)
	return b
}

// ParseBits parses a string of '0' and '1' characters.  ASCII whitespace is
// skipped; any other character is a *SyntaxError.
func ParseBits(str string) (Bits, error) {
	var b Bits
	b.Grow(len(str))
	for i := 0; i < len(str); i++ {
		switch ch := str[i]; {
		case ch == '0':
			b.AppendBit(0)
		case ch == '1':
			b.AppendBit(1)
		case isSpace(ch):
			// pass
		default:
			return Bits{}, &SyntaxError{Offset: i, Char: ch}
		}
	}
	return b, nil
}

// Len returns the number of bits in the sequence.
func (b Bits) Len() int {
	return b.size
}

// Bit returns the bit at index i, as 0 or 1.  It panics if i is out of
// range.
func (b Bits) Bit(i int) uint {
	if i < 0 || i >= b.size {
		panic(fmt.Errorf("bit index %d out of range [0, %d)", i, b.size))
	}
	word := b.words[i/wordBits]
	shift := uint(wordBits - 1 - i%wordBits)
	return uint(word>>shift) & 1
}

// Uint reads width bits starting at index i as an unsigned big-endian value.
func (b Bits) Uint(i int, width int) uint64 {
	assert.Assertf(width >= 0 && width <= wordBits, "width %d out of range [0, %d]", width, wordBits)
	var value uint64
	for j := 0; j < width; j++ {
		value = (value << 1) | uint64(b.Bit(i+j))
	}
	return value
}

// own makes b the sole owner of its words before a write.
func (b *Bits) own() {
	if b.addr == b {
		return
	}
	words := make([]uint64, len(b.words), cap(b.words))
	copy(words, b.words)
	b.words = words
	b.addr = b
}

// Grow ensures room for at least n more bits without reallocating.
func (b *Bits) Grow(n int) {
	b.own()
	need := wordsFor(b.size + n)
	if need > cap(b.words) {
		words := make([]uint64, len(b.words), need)
		copy(words, b.words)
		b.words = words
	}
}

// AppendBit appends a single bit.  Any non-zero bit is treated as 1.
func (b *Bits) AppendBit(bit uint) {
	b.own()
	index := b.size % wordBits
	if index == 0 {
		b.words = append(b.words, 0)
	}
	mask := uint64(1) << uint(wordBits-1-index)
	if bit != 0 {
		b.words[len(b.words)-1] |= mask
	} else {
		b.words[len(b.words)-1] &^= mask
	}
	b.size++
}

// AppendUint appends the lowest width bits of value, most significant bit
// first.
func (b *Bits) AppendUint(value uint64, width int) {
	assert.Assertf(width >= 0 && width <= wordBits, "width %d out of range [0, %d]", width, wordBits)
	b.Grow(width)
	for j := width - 1; j >= 0; j-- {
		b.AppendBit(uint(value>>uint(j)) & 1)
	}
}

// Append appends every bit of other.
func (b *Bits) Append(other Bits) {
	b.Grow(other.size)
	for i := 0; i < other.size; i++ {
		b.AppendBit(other.Bit(i))
	}
}

// Slice returns a copy of the bits in the half-open range [i, j).
func (b Bits) Slice(i, j int) Bits {
	assert.Assertf(i >= 0 && i <= j && j <= b.size, "slice [%d:%d] out of range [0, %d]", i, j, b.size)
	var out Bits
	out.Grow(j - i)
	for k := i; k < j; k++ {
		out.AppendBit(b.Bit(k))
	}
	return out
}

// Clone returns an independent copy of this sequence.
func (b Bits) Clone() Bits {
	return b.Slice(0, b.size)
}

// Equal returns true iff both sequences hold the same bits.
func (b Bits) Equal(other Bits) bool {
	if b.size != other.size {
		return false
	}
	for i := 0; i < b.size; i++ {
		if b.Bit(i) != other.Bit(i) {
			return false
		}
	}
	return true
}

// HasPrefix returns true iff prefix is a prefix of this sequence.
func (b Bits) HasPrefix(prefix Bits) bool {
	if prefix.size > b.size {
		return false
	}
	for i := 0; i < prefix.size; i++ {
		if b.Bit(i) != prefix.Bit(i) {
			return false
		}
	}
	return true
}

// String returns the bits as a string of '0' and '1' characters.
func (b Bits) String() string {
	var sb strings.Builder
	sb.Grow(b.size)
	for i := 0; i < b.size; i++ {
		sb.WriteByte('0' + byte(b.Bit(i)))
	}
	return sb.String()
}

// GoString returns a Go expression that would reconstruct this sequence.
func (b Bits) GoString() string {
	return fmt.Sprintf("hufftree.MustParseBits(%q)", b.String())
}

// MustParseBits is like ParseBits, but panics on error.
func MustParseBits(str string) Bits {
	b, err := ParseBits(str)
	if err != nil {
		panic(err)
	}
	return b
}

var (
	_ fmt.Stringer   = Bits{}
	_ fmt.GoStringer = Bits{}
)
