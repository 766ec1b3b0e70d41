package hufftree

import (
	"errors"
	"strings"
	"testing"
)

func TestBits_MakeBits(t *testing.T) {
	type testRow struct {
		size   int
		value  uint64
		expect string
	}

	testData := [...]testRow{
		{size: 0, value: 0, expect: ""},
		{size: 1, value: 1, expect: "1"},
		{size: 8, value: 65, expect: "01000001"},
		{size: 14, value: 43, expect: "00000000101011"},
		{size: 4, value: 0xff, expect: "1111"},
	}
	for _, row := range testData {
		t.Run(row.expect, func(t *testing.T) {
			b := MakeBits(row.size, row.value)
			if actual := b.String(); row.expect != actual {
				t.Errorf("wrong bits:\n\texpect: %q\n\tactual: %q", row.expect, actual)
			}
			if b.Len() != row.size {
				t.Errorf("expected length %d, got %d", row.size, b.Len())
			}
			if row.size > 0 {
				if actual := b.Uint(0, row.size); actual != row.value&(1<<uint(row.size)-1) {
					t.Errorf("expected Uint %d, got %d", row.value, actual)
				}
			}
		})
	}
}

func TestBits_AcrossWords(t *testing.T) {
	var b Bits
	var sb strings.Builder
	for i := 0; i < 200; i++ {
		bit := uint(i%3) & 1
		b.AppendBit(bit)
		sb.WriteByte('0' + byte(bit))
	}
	expect := sb.String()
	if actual := b.String(); expect != actual {
		t.Errorf("wrong bits:\n\texpect: %s\n\tactual: %s", expect, actual)
	}

	slice := b.Slice(60, 70)
	if actual := slice.String(); expect[60:70] != actual {
		t.Errorf("wrong slice:\n\texpect: %s\n\tactual: %s", expect[60:70], actual)
	}

	var c Bits
	c.AppendUint(0x5, 3)
	c.Append(b)
	if actual := c.String(); "101"+expect != actual {
		t.Errorf("wrong append:\n\texpect: %s\n\tactual: %s", "101"+expect, actual)
	}
	if !c.HasPrefix(MustParseBits("101")) || c.HasPrefix(MustParseBits("11")) {
		t.Errorf("HasPrefix gave wrong answer for %s", c.String()[:8])
	}
	if !b.Equal(b.Clone()) || b.Equal(c) {
		t.Errorf("Equal gave wrong answer")
	}
}

func TestParseBits(t *testing.T) {
	b, err := ParseBits("01 1\n0\t")
	if err != nil {
		t.Fatalf("ParseBits failed: %v", err)
	}
	if actual := b.String(); actual != "0110" {
		t.Errorf("expected %q, got %q", "0110", actual)
	}
	if actual := b.GoString(); actual != `hufftree.MustParseBits("0110")` {
		t.Errorf("wrong GoString: %s", actual)
	}

	_, err = ParseBits("012")
	var syntaxErr *SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("expected *SyntaxError, got %v", err)
	}
	if syntaxErr.Offset != 2 || syntaxErr.Char != '2' {
		t.Errorf("wrong error details: %+v", *syntaxErr)
	}
}

func TestBits_CopiesDoNotAlias(t *testing.T) {
	a := MustParseBits("1")
	b := a
	b.AppendBit(1)
	a.AppendBit(0)
	if actual := a.String(); actual != "10" {
		t.Errorf("original: expected %q, got %q", "10", actual)
	}
	if actual := b.String(); actual != "11" {
		t.Errorf("copy: expected %q, got %q", "11", actual)
	}

	// Spare capacity past a full word must not be shared either.
	var c Bits
	c.Grow(200)
	c.AppendUint(0, 64)
	d := c
	d.AppendBit(1)
	c.AppendBit(0)
	expectC := strings.Repeat("0", 65)
	expectD := strings.Repeat("0", 64) + "1"
	if actual := c.String(); actual != expectC {
		t.Errorf("original: expected %q, got %q", expectC, actual)
	}
	if actual := d.String(); actual != expectD {
		t.Errorf("copy: expected %q, got %q", expectD, actual)
	}

	// Slices of a Bits start from cleared tail bits.
	e := MustParseBits("111").Slice(0, 1)
	e.AppendBit(0)
	e.AppendBit(0)
	if actual := e.String(); actual != "100" {
		t.Errorf("slice: expected %q, got %q", "100", actual)
	}
}
