package hufftree

import (
	"math/rand"
)

var abcFrequencies = []Frequency{
	{Symbol: 'A', Freq: 0.5},
	{Symbol: 'B', Freq: 0.3},
	{Symbol: 'C', Freq: 0.2},
}

// sixFrequencies are the six-symbol counts from the classic CLRS example.
var sixFrequencies = []Frequency{
	{Symbol: 0, Freq: 5},
	{Symbol: 1, Freq: 9},
	{Symbol: 2, Freq: 12},
	{Symbol: 3, Freq: 13},
	{Symbol: 4, Freq: 16},
	{Symbol: 5, Freq: 45},
}

func mustBuildTree(freqs []Frequency) *Tree {
	t, err := BuildTree(freqs)
	if err != nil {
		panic(err)
	}
	return t
}

// randomFrequencies returns a table of n distinct symbols with positive
// frequencies.
func randomFrequencies(rng *rand.Rand, n int) []Frequency {
	perm := rng.Perm(NumSymbols)
	out := make([]Frequency, n)
	for i := 0; i < n; i++ {
		out[i] = Frequency{Symbol: Symbol(perm[i]), Freq: rng.Float64() + 0.001}
	}
	return out
}

// randomData returns size bytes drawn from the symbols of freqs.
func randomData(rng *rand.Rand, freqs []Frequency, size int) []byte {
	out := make([]byte, size)
	for i := range out {
		out[i] = byte(freqs[rng.Intn(len(freqs))].Symbol)
	}
	return out
}
