package hufftree

// Compress replaces each byte of data with its codeword and returns the
// concatenated bits.  It fails with *UnknownSymbolError if a byte has no
// codeword.
func Compress(data []byte, cb *Codebook) (Bits, error) {
	var out Bits
	if size, ok := cb.CompressedSize(data); ok {
		out.Grow(size)
	}
	for i, ch := range data {
		if !cb.valid[ch] {
			return Bits{}, &UnknownSymbolError{Symbol: Symbol(ch), Offset: i}
		}
		out.Append(cb.codes[ch])
	}
	return out, nil
}

// Decompress walks the tree from the root, one bit per step (0 left, 1
// right), emitting a leaf's Symbol each time one is reached and restarting at
// the root.  Every bit of payload must be consumed by a complete codeword;
// a payload that ends part way into a codeword fails with
// *TruncatedStreamError.
//
// A single-leaf tree decodes each 0 bit as its Symbol; a 1 bit fails with
// *InvalidCodeError.  An empty Tree fails with *MalformedTreeError.
//
func Decompress(payload Bits, t *Tree) ([]byte, error) {
	if t.IsEmpty() {
		return nil, emptyTreeError()
	}
	root := t.root
	size := payload.Len()

	if root.IsLeaf() {
		out := make([]byte, 0, size)
		for i := 0; i < size; i++ {
			if payload.Bit(i) != 0 {
				return nil, &InvalidCodeError{Offset: i}
			}
			out = append(out, byte(root.Symbol))
		}
		return out, nil
	}

	var out []byte
	node := root
	start := 0
	for i := 0; i < size; i++ {
		if payload.Bit(i) == 0 {
			node = node.Left
		} else {
			node = node.Right
		}
		if node.IsLeaf() {
			out = append(out, byte(node.Symbol))
			node = root
			start = i + 1
		}
	}
	if node != root {
		return nil, &TruncatedStreamError{What: "codeword", Offset: start, Need: size - start + 1, Have: size - start}
	}
	return out, nil
}
