package hufftree

import (
	mathbits "math/bits"
)

const wordBits = 64

func wordsFor(numBits int) int {
	return (numBits + wordBits - 1) / wordBits
}

// bitLen returns the number of bits needed to hold x, treating 0 as 1.
func bitLen(x uint64) int {
	if x == 0 {
		x = 1
	}
	return mathbits.Len64(x)
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}
