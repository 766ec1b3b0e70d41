package hufftree

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/chronos-tachyon/assert"
)

// Frequency is one entry of a frequency table: a Symbol and its observed
// probability (or count; entries need not sum to 1).
type Frequency struct {
	Symbol Symbol
	Freq   float64
}

// Node is one node of a Huffman tree.  A leaf has no children and carries a
// valid Symbol; an internal node has exactly two children and carries
// InvalidSymbol.
type Node struct {
	Symbol Symbol
	Freq   float64
	Left   *Node
	Right  *Node
}

// NewLeaf constructs a leaf node.
func NewLeaf(symbol Symbol, freq float64) *Node {
	return &Node{Symbol: symbol, Freq: freq}
}

// NewInternal constructs an internal node owning left and right.  Its
// frequency is the sum of its children's.
func NewInternal(left, right *Node) *Node {
	assert.Assertf(left != nil && right != nil, "internal node requires two children")
	return &Node{
		Symbol: InvalidSymbol,
		Freq:   left.Freq + right.Freq,
		Left:   left,
		Right:  right,
	}
}

// IsLeaf returns true iff this node has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Tree is a Huffman code tree.  Trees are immutable once built.
type Tree struct {
	root *Node
}

// NewTree wraps a root node as a Tree.  Every internal node reachable from
// root must have exactly two children.
func NewTree(root *Node) *Tree {
	assert.Assertf(root != nil, "root must not be nil")
	return &Tree{root: root}
}

// BuildTree constructs a Huffman tree from a frequency table by repeatedly
// merging the two lowest-frequency nodes.  The first node extracted becomes
// the left child of the merged node.
//
// Entries with equal frequency are merged in table order.  A table with a
// single entry yields a tree consisting of one leaf.
//
func BuildTree(freqs []Frequency) (*Tree, error) {
	if err := validateFrequencies(freqs); err != nil {
		return nil, err
	}

	var q Queue
	for _, f := range freqs {
		q.Insert(NewLeaf(f.Symbol, f.Freq))
	}

	for q.Len() > 1 {
		a, err := q.ExtractMin()
		assert.Assertf(err == nil, "ExtractMin: %v", err)
		b, err := q.ExtractMin()
		assert.Assertf(err == nil, "ExtractMin: %v", err)
		q.Insert(NewInternal(a, b))
	}

	root, err := q.ExtractMin()
	assert.Assertf(err == nil, "ExtractMin: %v", err)
	return NewTree(root), nil
}

func validateFrequencies(freqs []Frequency) error {
	if len(freqs) == 0 {
		return &BuildError{Reason: "no symbols"}
	}

	var seen [NumSymbols]bool
	for _, f := range freqs {
		if !f.Symbol.IsValid() {
			return &BuildError{Reason: fmt.Sprintf("symbol %d out of range [0, %d]", f.Symbol, MaxSymbol)}
		}
		if seen[f.Symbol] {
			return &BuildError{Reason: fmt.Sprintf("duplicate symbol %d", f.Symbol)}
		}
		seen[f.Symbol] = true
		if math.IsNaN(f.Freq) || math.IsInf(f.Freq, 0) || f.Freq <= 0 {
			return &BuildError{Reason: fmt.Sprintf("symbol %d has non-positive frequency %v", f.Symbol, f.Freq)}
		}
	}
	return nil
}

// Root returns the root node, or nil for an empty Tree.  Callers must not
// modify it.
func (t *Tree) Root() *Node {
	if t == nil {
		return nil
	}
	return t.root
}

// IsEmpty returns true iff this Tree has no nodes, as with the zero value.
// A failed UnmarshalText or UnmarshalBinary leaves its receiver unchanged.
func (t *Tree) IsEmpty() bool {
	return t == nil || t.root == nil
}

func emptyTreeError() error {
	return &MalformedTreeError{Offset: 0, Reason: "empty tree; build one with BuildTree or decode one"}
}

// Leaves returns the leaf symbols in preorder.
func (t *Tree) Leaves() []Symbol {
	var out []Symbol
	t.walk(func(n *Node, _ Bits) {
		if n.IsLeaf() {
			out = append(out, n.Symbol)
		}
	})
	return out
}

// NumInternal returns the number of internal nodes.
func (t *Tree) NumInternal() int {
	var count int
	t.walk(func(n *Node, _ Bits) {
		if !n.IsLeaf() {
			count++
		}
	})
	return count
}

// Depth returns the depth of the leaf holding symbol, or -1 if the tree has
// no such leaf.
func (t *Tree) Depth(symbol Symbol) int {
	depth := -1
	t.walk(func(n *Node, path Bits) {
		if n.IsLeaf() && n.Symbol == symbol {
			depth = path.Len()
		}
	})
	return depth
}

// Height returns the depth of the deepest leaf.
func (t *Tree) Height() int {
	var height int
	t.walk(func(n *Node, path Bits) {
		if path.Len() > height {
			height = path.Len()
		}
	})
	return height
}

// Equal returns true iff both trees have the same shape and the same leaf
// symbols in the same positions.  Frequencies are not compared.
func (t *Tree) Equal(other *Tree) bool {
	if t.IsEmpty() || other.IsEmpty() {
		return t.IsEmpty() && other.IsEmpty()
	}
	return equalNodes(t.root, other.root)
}

func equalNodes(a, b *Node) bool {
	if a.IsLeaf() || b.IsLeaf() {
		return a.IsLeaf() && b.IsLeaf() && a.Symbol == b.Symbol
	}
	return equalNodes(a.Left, b.Left) && equalNodes(a.Right, b.Right)
}

// String returns a brief description of this Tree.
func (t *Tree) String() string {
	return fmt.Sprintf("(Huffman tree with %d symbols, %d internal nodes, height %d)", len(t.Leaves()), t.NumInternal(), t.Height())
}

// Dump writes a programmer-readable debugging dump of the Tree to the given
// writer, one node per line in preorder, each labelled with its path.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	t.walk(func(n *Node, path Bits) {
		if n.IsLeaf() {
			fmt.Fprintf(&buf, "\tLeaf(%q) = %d\n", path.String(), n.Symbol)
		} else {
			fmt.Fprintf(&buf, "\tNode(%q)\n", path.String())
		}
	})
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// walk visits every node in preorder, passing the path from the root.  The
// path is only valid for the duration of the callback.  An empty Tree has
// nothing to visit.
func (t *Tree) walk(fn func(n *Node, path Bits)) {
	if t.IsEmpty() {
		return
	}
	var path Bits
	var visit func(n *Node)
	visit = func(n *Node) {
		fn(n, path)
		if n.IsLeaf() {
			return
		}
		assert.Assertf(n.Left != nil && n.Right != nil, "internal node with one child")
		saved := path
		path = path.Clone()
		path.AppendBit(0)
		visit(n.Left)
		path = saved.Clone()
		path.AppendBit(1)
		visit(n.Right)
		path = saved
	}
	visit(t.root)
}

var _ fmt.Stringer = (*Tree)(nil)
