package hufftree

import (
	"errors"
	"fmt"
)

// ErrEmptyQueue is returned by Queue.ExtractMin when the queue is empty.
var ErrEmptyQueue = errors.New("extract-min on empty priority queue")

// BuildError reports an empty or invalid frequency table.
type BuildError struct {
	Reason string
}

func (err *BuildError) Error() string {
	return "invalid frequency table: " + err.Reason
}

// TruncatedStreamError reports a bit stream that ends before a structurally
// required value could be read.
type TruncatedStreamError struct {
	// What names the value being read, e.g. "leaf symbol".
	What string

	// Offset is the bit offset at which the read was attempted.
	Offset int

	// Need is the number of bits the read required.
	Need int

	// Have is the number of bits that remained.
	Have int
}

func (err *TruncatedStreamError) Error() string {
	return fmt.Sprintf("truncated bit stream: reading %s at bit %d: need %d bits, have %d", err.What, err.Offset, err.Need, err.Have)
}

// UnknownSymbolError reports a byte to compress that has no codeword.
type UnknownSymbolError struct {
	Symbol Symbol
	Offset int
}

func (err *UnknownSymbolError) Error() string {
	return fmt.Sprintf("no codeword for symbol %d at byte offset %d", err.Symbol, err.Offset)
}

// MalformedTreeError reports a serialized tree that violates the tree grammar.
type MalformedTreeError struct {
	Offset int
	Reason string
}

func (err *MalformedTreeError) Error() string {
	return fmt.Sprintf("malformed Huffman tree at bit %d: %s", err.Offset, err.Reason)
}

// InvalidCodeError reports a compressed payload bit that leads off the tree.
// Only a single-symbol tree, whose one codeword is "0", can produce it.
type InvalidCodeError struct {
	Offset int
}

func (err *InvalidCodeError) Error() string {
	return fmt.Sprintf("invalid codeword bit at bit %d", err.Offset)
}

// SyntaxError reports a character other than '0', '1' or whitespace in a
// textual bit string.
type SyntaxError struct {
	Offset int
	Char   byte
}

func (err *SyntaxError) Error() string {
	return fmt.Sprintf("invalid bit character %q at offset %d", err.Char, err.Offset)
}

var (
	_ error = (*BuildError)(nil)
	_ error = (*TruncatedStreamError)(nil)
	_ error = (*UnknownSymbolError)(nil)
	_ error = (*MalformedTreeError)(nil)
	_ error = (*InvalidCodeError)(nil)
	_ error = (*SyntaxError)(nil)
)
