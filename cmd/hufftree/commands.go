package main

import (
	"bytes"
	"fmt"

	"github.com/chronos-tachyon/hufftree"
)

const (
	formatText   = "text"
	formatPacked = "packed"
)

func encodePayload(bits hufftree.Bits, format string) ([]byte, error) {
	switch format {
	case formatText:
		return []byte(bits.String()), nil
	case formatPacked:
		var buf bytes.Buffer
		if err := hufftree.WritePacked(&buf, bits); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unknown payload format %q: %w", format, errUsage)
	}
}

func decodePayload(raw []byte, format string) (hufftree.Bits, error) {
	switch format {
	case formatText:
		return hufftree.ParseBits(string(raw))
	case formatPacked:
		return hufftree.ReadPacked(bytes.NewReader(raw))
	default:
		return hufftree.Bits{}, fmt.Errorf("unknown payload format %q: %w", format, errUsage)
	}
}

// --- freq ---

func runFreq(env *environ, args []string) error {
	var opts options
	fs := env.flagSet("freq", &opts, false)
	pos, err := parse(fs, args, 1)
	if err != nil {
		return err
	}
	log := env.logger(&opts)

	data, err := env.readInput(pos[0])
	if err != nil {
		return err
	}
	freqs := hufftree.FrequenciesOf(data)
	log.Debugf("%d bytes, %d distinct symbols", len(data), len(freqs))

	var buf bytes.Buffer
	if err := hufftree.WriteFrequencies(&buf, freqs); err != nil {
		return err
	}
	return env.writeOutput(opts.output, buf.Bytes())
}

// --- createcode ---

func runCreateCode(env *environ, args []string) error {
	var opts options
	fs := env.flagSet("createcode", &opts, false)
	pos, err := parse(fs, args, 1)
	if err != nil {
		return err
	}
	log := env.logger(&opts)

	raw, err := env.readInput(pos[0])
	if err != nil {
		return err
	}
	freqs, err := hufftree.ReadFrequencies(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("%s: %w", pos[0], err)
	}
	t, err := hufftree.BuildTree(freqs)
	if err != nil {
		return fmt.Errorf("%s: %w", pos[0], err)
	}
	log.Debugf("built %v", t)
	dumpTo(log, t)

	text, err := t.MarshalText()
	if err != nil {
		return err
	}
	return env.writeOutput(opts.output, text)
}

// --- encode ---

func runEncode(env *environ, args []string) error {
	var opts options
	fs := env.flagSet("encode", &opts, true)
	pos, err := parse(fs, args, 2)
	if err != nil {
		return err
	}
	log := env.logger(&opts)

	t, err := env.readTree(pos[0])
	if err != nil {
		return err
	}
	cb := hufftree.BuildCodebook(t)
	log.Debugf("using %v", cb)
	dumpTo(log, cb)

	data, err := env.readInput(pos[1])
	if err != nil {
		return err
	}
	bits, err := hufftree.Compress(data, cb)
	if err != nil {
		return fmt.Errorf("%s: %w", pos[1], err)
	}
	log.Debugf("compressed %d bytes into %d bits", len(data), bits.Len())

	out, err := encodePayload(bits, opts.format)
	if err != nil {
		return err
	}
	return env.writeOutput(opts.output, out)
}

// --- decode ---

func runDecode(env *environ, args []string) error {
	var opts options
	fs := env.flagSet("decode", &opts, true)
	pos, err := parse(fs, args, 2)
	if err != nil {
		return err
	}
	log := env.logger(&opts)

	t, err := env.readTree(pos[0])
	if err != nil {
		return err
	}
	dumpTo(log, t)

	raw, err := env.readInput(pos[1])
	if err != nil {
		return err
	}
	bits, err := decodePayload(raw, opts.format)
	if err != nil {
		return fmt.Errorf("%s: %w", pos[1], err)
	}
	data, err := hufftree.Decompress(bits, t)
	if err != nil {
		return fmt.Errorf("%s: %w", pos[1], err)
	}
	log.Debugf("decompressed %d bits into %d bytes", bits.Len(), len(data))
	return env.writeOutput(opts.output, data)
}

// --- roundtrip ---

func runRoundTrip(env *environ, args []string) error {
	var opts options
	fs := env.flagSet("roundtrip", &opts, false)
	pos, err := parse(fs, args, 1)
	if err != nil {
		return err
	}
	log := env.logger(&opts)

	data, err := env.readInput(pos[0])
	if err != nil {
		return err
	}
	t, err := hufftree.BuildTree(hufftree.FrequenciesOf(data))
	if err != nil {
		return fmt.Errorf("%s: %w", pos[0], err)
	}

	header, err := hufftree.EncodeTreeWithHeader(t)
	if err != nil {
		return err
	}
	decoded, _, err := hufftree.DecodeTreeWithHeader(header)
	if err != nil {
		return err
	}
	if !decoded.Equal(t) {
		return fmt.Errorf("%s: serialized tree does not round-trip", pos[0])
	}

	bits, err := hufftree.Compress(data, hufftree.BuildCodebook(decoded))
	if err != nil {
		return err
	}
	back, err := hufftree.Decompress(bits, decoded)
	if err != nil {
		return err
	}
	if !bytes.Equal(back, data) {
		return fmt.Errorf("%s: payload does not round-trip", pos[0])
	}

	log.Infof("%s: %d bytes → %d tree bits + %d payload bits", pos[0], len(data), header.Len(), bits.Len())
	return nil
}
