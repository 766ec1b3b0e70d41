package hufftree

// Symbol represents one byte value of the alphabet.  Negative symbols are
// not valid.
type Symbol int32

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(255)

// NumSymbols is the size of the byte alphabet.
const NumSymbols = int(MaxSymbol) + 1

// InvalidSymbol is carried by internal tree nodes, and is returned by some
// functions to clearly indicate that no symbol is being returned.
const InvalidSymbol = Symbol(-1)

// IsValid returns true iff this Symbol is within the byte alphabet.
func (s Symbol) IsValid() bool {
	return s >= 0 && s <= MaxSymbol
}
