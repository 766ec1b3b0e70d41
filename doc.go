// Package hufftree builds Huffman codes from symbol frequencies, serializes
// the resulting code tree into a compact self-describing bit string, and
// uses that tree to compress and decompress byte streams.
//
// The serialized tree is a preorder walk: each internal node is written as a
// single 1 bit, and each leaf is written as a 0 bit followed by its 8-bit
// symbol, most significant bit first.  Because every internal node has
// exactly two children, no brackets or terminators are needed.  On disk the
// tree is preceded by a 14-bit length header whose value is the tree's bit
// length plus 14.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package hufftree
