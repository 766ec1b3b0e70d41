package hufftree

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// Codebook maps each Symbol of a tree to its codeword.
type Codebook struct {
	codes   [NumSymbols]Code
	valid   [NumSymbols]bool
	count   int
	minSize int
	maxSize int
}

// BuildCodebook walks the tree depth-first, appending 0 when descending left
// and 1 when descending right, and records the accumulated path at each leaf.
//
// A tree consisting of a single leaf has no edges; its Symbol is assigned
// the codeword "0" so that every byte still costs one bit.
//
func BuildCodebook(t *Tree) *Codebook {
	cb := &Codebook{}
	t.walk(func(n *Node, path Bits) {
		if !n.IsLeaf() {
			return
		}
		code := path.Clone()
		if code.Len() == 0 {
			code.AppendBit(0)
		}
		cb.add(n.Symbol, code)
	})
	return cb
}

func (cb *Codebook) add(symbol Symbol, code Code) {
	assert.Assertf(symbol.IsValid(), "leaf symbol %d out of range", symbol)
	assert.Assertf(!cb.valid[symbol], "symbol %d appears twice in tree", symbol)

	size := code.Len()
	if cb.count == 0 {
		cb.minSize = size
		cb.maxSize = size
	} else if cb.minSize > size {
		cb.minSize = size
	} else if cb.maxSize < size {
		cb.maxSize = size
	}

	cb.codes[symbol] = code
	cb.valid[symbol] = true
	cb.count++
}

// Lookup returns a copy of the codeword for symbol, and false if symbol has
// none.
func (cb *Codebook) Lookup(symbol Symbol) (Code, bool) {
	if !symbol.IsValid() || !cb.valid[symbol] {
		return Code{}, false
	}
	return cb.codes[symbol].Clone(), true
}

// Len returns the number of symbols with a codeword.
func (cb *Codebook) Len() int {
	return cb.count
}

// MinSize is the bit length of the shortest codeword.
func (cb *Codebook) MinSize() int {
	return cb.minSize
}

// MaxSize is the bit length of the longest codeword.
func (cb *Codebook) MaxSize() int {
	return cb.maxSize
}

// Symbols returns the symbols with a codeword, in ascending order.
func (cb *Codebook) Symbols() []Symbol {
	out := make([]Symbol, 0, cb.count)
	for symbol := Symbol(0); symbol <= MaxSymbol; symbol++ {
		if cb.valid[symbol] {
			out = append(out, symbol)
		}
	}
	return out
}

// CompressedSize returns the number of bits Compress would produce for data,
// and false if some byte of data has no codeword.
func (cb *Codebook) CompressedSize(data []byte) (int, bool) {
	var total int
	for _, ch := range data {
		if !cb.valid[ch] {
			return 0, false
		}
		total += cb.codes[ch].Len()
	}
	return total, true
}

// String returns a brief description of this Codebook.
func (cb *Codebook) String() string {
	return fmt.Sprintf("(Huffman codebook with %d symbols, with codeword lengths of %d .. %d bits)", cb.count, cb.minSize, cb.maxSize)
}

// Dump writes a programmer-readable debugging dump of the Codebook to the
// given writer.
func (cb *Codebook) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Codebook{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", cb.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", cb.maxSize)
	for _, symbol := range cb.Symbols() {
		fmt.Fprintf(&buf, "\tLookup(%d) = %q\n", symbol, cb.codes[symbol].String())
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

var _ fmt.Stringer = (*Codebook)(nil)
