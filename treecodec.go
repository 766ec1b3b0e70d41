package hufftree

import (
	"encoding"
	"fmt"
	"strings"

	"github.com/chronos-tachyon/assert"
)

const (
	// HeaderBits is the width of the length header that precedes a
	// serialized tree.
	HeaderBits = 14

	// SymbolBits is the width of the symbol field of a serialized leaf.
	SymbolBits = 8

	// MaxHeaderValue is the largest value the length header can hold.
	MaxHeaderValue = 1<<HeaderBits - 1

	// maxTreeDepth is the deepest a leaf can sit in a tree of NumSymbols
	// distinct leaves.
	maxTreeDepth = NumSymbols - 1

	internalMarker = 1
	leafMarker     = 0
)

// EncodeTree serializes a tree in preorder.  An internal node is written as
// a 1 bit followed by its left then right subtree; a leaf is written as a 0
// bit followed by its Symbol in SymbolBits bits, most significant bit first.
//
// EncodeTree panics if t is empty.
//
func EncodeTree(t *Tree) Bits {
	assert.Assertf(!t.IsEmpty(), "EncodeTree called on an empty Tree; build one with BuildTree or decode one")
	var out Bits
	encodeNode(&out, t.root)
	return out
}

func encodeNode(out *Bits, n *Node) {
	if n.IsLeaf() {
		out.AppendBit(leafMarker)
		out.AppendUint(uint64(n.Symbol), SymbolBits)
		return
	}
	out.AppendBit(internalMarker)
	encodeNode(out, n.Left)
	encodeNode(out, n.Right)
}

// EncodeTreeWithHeader serializes a tree preceded by its length header.  The
// header holds the length of the serialized tree plus HeaderBits.  An empty
// Tree fails with *MalformedTreeError.
func EncodeTreeWithHeader(t *Tree) (Bits, error) {
	if t.IsEmpty() {
		return Bits{}, emptyTreeError()
	}
	tree := EncodeTree(t)
	total := uint64(tree.Len()) + HeaderBits
	if bitLen(total) > HeaderBits {
		return Bits{}, &MalformedTreeError{
			Offset: 0,
			Reason: fmt.Sprintf("serialized length %d does not fit in a %d-bit header", total, HeaderBits),
		}
	}

	var out Bits
	out.Grow(int(total))
	out.AppendUint(total, HeaderBits)
	out.Append(tree)
	return out, nil
}

// DecodeTree reconstructs a tree from the first length bits of a serialized
// tree.  The serialized tree must occupy exactly length bits.
//
// Reads past length fail with *TruncatedStreamError.  Trailing bits,
// repeated leaf symbols and impossibly deep nesting fail with
// *MalformedTreeError.
//
func DecodeTree(bits Bits, length int) (*Tree, error) {
	if length < 0 {
		return nil, &MalformedTreeError{Offset: 0, Reason: fmt.Sprintf("negative length %d", length)}
	}
	if length > bits.Len() {
		return nil, &TruncatedStreamError{What: "serialized tree", Offset: 0, Need: length, Have: bits.Len()}
	}
	return decodeRange(bits, 0, length)
}

// DecodeTreeWithHeader reads a length header and the serialized tree that
// follows it.  It returns the tree and the number of bits consumed, so that
// further data may follow the tree in the same stream.
func DecodeTreeWithHeader(bits Bits) (*Tree, int, error) {
	if bits.Len() < HeaderBits {
		return nil, 0, &TruncatedStreamError{What: "length header", Offset: 0, Need: HeaderBits, Have: bits.Len()}
	}

	total := int(bits.Uint(0, HeaderBits))
	if total < HeaderBits {
		return nil, 0, &MalformedTreeError{Offset: 0, Reason: fmt.Sprintf("length header %d is less than %d", total, HeaderBits)}
	}
	if total > bits.Len() {
		return nil, 0, &TruncatedStreamError{What: "serialized tree", Offset: HeaderBits, Need: total - HeaderBits, Have: bits.Len() - HeaderBits}
	}

	t, err := decodeRange(bits, HeaderBits, total)
	if err != nil {
		return nil, 0, err
	}
	return t, total, nil
}

func decodeRange(bits Bits, start, end int) (*Tree, error) {
	r := treeReader{bits: bits, pos: start, limit: end}
	root, err := r.node(0)
	if err != nil {
		return nil, err
	}
	if r.pos != r.limit {
		return nil, &MalformedTreeError{Offset: r.pos, Reason: fmt.Sprintf("%d trailing bits after tree", r.limit-r.pos)}
	}
	return NewTree(root), nil
}

// type treeReader {{{

// treeReader is the read cursor threaded through a preorder decode.
type treeReader struct {
	bits  Bits
	pos   int
	limit int
	seen  [NumSymbols]bool
}

func (r *treeReader) read(what string, width int) (uint64, error) {
	if have := r.limit - r.pos; width > have {
		return 0, &TruncatedStreamError{What: what, Offset: r.pos, Need: width, Have: have}
	}
	value := r.bits.Uint(r.pos, width)
	r.pos += width
	return value, nil
}

func (r *treeReader) node(depth int) (*Node, error) {
	if depth > maxTreeDepth {
		return nil, &MalformedTreeError{Offset: r.pos, Reason: fmt.Sprintf("tree deeper than %d levels", maxTreeDepth)}
	}

	start := r.pos
	marker, err := r.read("node marker", 1)
	if err != nil {
		return nil, err
	}

	if marker == internalMarker {
		left, err := r.node(depth + 1)
		if err != nil {
			return nil, err
		}
		right, err := r.node(depth + 1)
		if err != nil {
			return nil, err
		}
		return &Node{Symbol: InvalidSymbol, Left: left, Right: right}, nil
	}

	value, err := r.read("leaf symbol", SymbolBits)
	if err != nil {
		return nil, err
	}
	symbol := Symbol(value)
	if r.seen[symbol] {
		return nil, &MalformedTreeError{Offset: start, Reason: fmt.Sprintf("duplicate leaf symbol %d", symbol)}
	}
	r.seen[symbol] = true
	return &Node{Symbol: symbol}, nil
}

// }}}

// MarshalText renders the tree file format: the length header as '0'/'1'
// characters on one line, then the serialized tree on the next.
func (t *Tree) MarshalText() ([]byte, error) {
	bits, err := EncodeTreeWithHeader(t)
	if err != nil {
		return nil, err
	}
	str := bits.String()

	var sb strings.Builder
	sb.Grow(len(str) + 2)
	sb.WriteString(str[:HeaderBits])
	sb.WriteByte('\n')
	sb.WriteString(str[HeaderBits:])
	sb.WriteByte('\n')
	return []byte(sb.String()), nil
}

// UnmarshalText parses the tree file format.  Whitespace is ignored, so the
// header and tree may share a line or be split across lines.
func (t *Tree) UnmarshalText(text []byte) error {
	bits, err := ParseBits(string(text))
	if err != nil {
		return err
	}
	return t.setFromHeaderBits(bits)
}

func (t *Tree) setFromHeaderBits(bits Bits) error {
	tree, n, err := DecodeTreeWithHeader(bits)
	if err != nil {
		return err
	}
	if n != bits.Len() {
		return &MalformedTreeError{Offset: n, Reason: fmt.Sprintf("%d trailing bits after tree", bits.Len()-n)}
	}
	*t = *tree
	return nil
}

var (
	_ encoding.TextMarshaler   = (*Tree)(nil)
	_ encoding.TextUnmarshaler = (*Tree)(nil)
)
