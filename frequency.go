package hufftree

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// CountFrequencies reads r to EOF and returns the relative frequency of each
// byte value that occurs, in ascending Symbol order.  Bytes that never occur
// are omitted.  An empty input yields an empty table.
func CountFrequencies(r io.Reader) ([]Frequency, error) {
	var h histogram
	if _, err := io.Copy(&h, r); err != nil {
		return nil, fmt.Errorf("count frequencies: %w", err)
	}
	return h.table(), nil
}

// FrequenciesOf is like CountFrequencies for an in-memory byte slice.
func FrequenciesOf(data []byte) []Frequency {
	var h histogram
	_, _ = h.Write(data)
	return h.table()
}

// WriteFrequencies writes a frequency table in text form: the number of
// entries on the first line, then one "symbol frequency" line per entry.
func WriteFrequencies(w io.Writer, freqs []Frequency) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", len(freqs))
	for _, f := range freqs {
		fmt.Fprintf(bw, "%d   %s\n", f.Symbol, strconv.FormatFloat(f.Freq, 'f', -1, 64))
	}
	return bw.Flush()
}

// ReadFrequencies parses the text form written by WriteFrequencies.  Fields
// may be separated by any whitespace.
//
// Entries whose frequency is exactly zero are dropped: fixed-precision
// writers print a rare byte of a large input as "0.000000", and such a byte
// cannot be given a codeword.  The entry count still covers them.  The
// remaining table is validated as BuildTree would validate it, so a
// malformed table fails with *BuildError.
//
func ReadFrequencies(r io.Reader) ([]Frequency, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	next := func(what string) (string, error) {
		if sc.Scan() {
			return sc.Text(), nil
		}
		if err := sc.Err(); err != nil {
			return "", fmt.Errorf("read frequency table: %w", err)
		}
		return "", &BuildError{Reason: "unexpected end of table reading " + what}
	}

	field, err := next("entry count")
	if err != nil {
		return nil, err
	}
	count, err := strconv.ParseUint(field, 10, 32)
	if err != nil {
		return nil, &BuildError{Reason: fmt.Sprintf("invalid entry count %q", field)}
	}
	if count > uint64(NumSymbols) {
		return nil, &BuildError{Reason: fmt.Sprintf("entry count %d exceeds %d", count, NumSymbols)}
	}

	freqs := make([]Frequency, 0, count)
	for i := uint64(0); i < count; i++ {
		field, err := next("symbol")
		if err != nil {
			return nil, err
		}
		symbol, err := strconv.ParseInt(field, 10, 32)
		if err != nil {
			return nil, &BuildError{Reason: fmt.Sprintf("invalid symbol %q", field)}
		}

		field, err = next("frequency")
		if err != nil {
			return nil, err
		}
		freq, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, &BuildError{Reason: fmt.Sprintf("invalid frequency %q", field)}
		}

		if freq == 0 {
			if !Symbol(symbol).IsValid() {
				return nil, &BuildError{Reason: fmt.Sprintf("symbol %d out of range [0, %d]", symbol, MaxSymbol)}
			}
			continue
		}
		freqs = append(freqs, Frequency{Symbol: Symbol(symbol), Freq: freq})
	}

	if err := validateFrequencies(freqs); err != nil {
		return nil, err
	}
	return freqs, nil
}

// type histogram {{{

type histogram struct {
	counts [NumSymbols]uint64
	total  uint64
}

func (h *histogram) Write(p []byte) (int, error) {
	for _, ch := range p {
		h.counts[ch]++
	}
	h.total += uint64(len(p))
	return len(p), nil
}

func (h *histogram) table() []Frequency {
	var out []Frequency
	for symbol := Symbol(0); symbol <= MaxSymbol; symbol++ {
		if count := h.counts[symbol]; count != 0 {
			out = append(out, Frequency{
				Symbol: symbol,
				Freq:   float64(count) / float64(h.total),
			})
		}
	}
	return out
}

var _ io.Writer = (*histogram)(nil)

// }}}
