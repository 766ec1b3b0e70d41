package hufftree

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFrequenciesOf(t *testing.T) {
	freqs := FrequenciesOf([]byte("AAB"))
	require.Equal(t, []Frequency{
		{Symbol: 'A', Freq: 2.0 / 3.0},
		{Symbol: 'B', Freq: 1.0 / 3.0},
	}, freqs)

	counted, err := CountFrequencies(strings.NewReader("AAB"))
	require.NoError(t, err)
	require.Equal(t, freqs, counted)

	empty, err := CountFrequencies(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestWriteFrequencies(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteFrequencies(&buf, FrequenciesOf([]byte("AAB"))))
	require.Equal(t, "2\n65   0.6666666666666666\n66   0.3333333333333333\n", buf.String())

	freqs, err := ReadFrequencies(&buf)
	require.NoError(t, err)
	require.Equal(t, FrequenciesOf([]byte("AAB")), freqs)
}

func TestReadFrequencies_SameTree(t *testing.T) {
	data := []byte("this is an example of a huffman tree")
	var buf bytes.Buffer
	require.NoError(t, WriteFrequencies(&buf, FrequenciesOf(data)))

	freqs, err := ReadFrequencies(&buf)
	require.NoError(t, err)

	expect := mustBuildTree(FrequenciesOf(data))
	actual := mustBuildTree(freqs)
	require.True(t, expect.Equal(actual))
}

func TestReadFrequencies_ZeroEntries(t *testing.T) {
	input := "3\n65   0.999999\n66   0.000000\n67   0.000001\n"
	freqs, err := ReadFrequencies(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, []Frequency{
		{Symbol: 'A', Freq: 0.999999},
		{Symbol: 'C', Freq: 0.000001},
	}, freqs)
}

func TestReadFrequencies_Errors(t *testing.T) {
	testData := map[string]string{
		"empty":      "",
		"zero-count": "0\n",
		"bad-count":  "x\n",
		"too-many":   "257\n",
		"short":      "2\n65 0.5\n",
		"bad-symbol": "1\nA 0.5\n",
		"range":      "1\n300 0.5\n",
		"bad-freq":   "1\n65 abc\n",
		"zero-freq":  "1\n65 0\n",
		"range-zero": "2\n65 0.5\n300 0.000000\n",
		"duplicate":  "2\n65 0.5\n65 0.5\n",
	}
	for name, input := range testData {
		t.Run(name, func(t *testing.T) {
			_, err := ReadFrequencies(strings.NewReader(input))
			var buildErr *BuildError
			require.ErrorAs(t, err, &buildErr)
		})
	}
}
