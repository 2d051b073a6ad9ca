package huffcoding

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestPackBitString(t *testing.T) {
	type testRow struct {
		bits   string
		packed []byte
	}

	testData := [...]testRow{
		{bits: "", packed: []byte{0x01}},
		{bits: "0", packed: []byte{0x02}},
		{bits: "1", packed: []byte{0x03}},
		{bits: "011", packed: []byte{0x0b}},
		{bits: "1111111", packed: []byte{0xff}},
		{bits: "10101010", packed: []byte{0x01, 0xaa}},
		{bits: "000000000", packed: []byte{0x02, 0x00}},
		{bits: "1000000001", packed: []byte{0x06, 0x01}},
	}
	for _, row := range testData {
		t.Run(row.bits, func(t *testing.T) {
			packed, err := PackBitString(row.bits)
			if err != nil {
				t.Fatalf("PackBitString failed: %v", err)
			}
			if !bytes.Equal(row.packed, packed) {
				t.Errorf("wrong bytes:\n\texpect: %#v\n\tactual: %#v", row.packed, packed)
			}

			bits, err := UnpackBitString(packed)
			if err != nil {
				t.Fatalf("UnpackBitString failed: %v", err)
			}
			if bits != row.bits {
				t.Errorf("wrong bits:\n\texpect: %q\n\tactual: %q", row.bits, bits)
			}
		})
	}
}

func TestPackBitString_InvalidBit(t *testing.T) {
	packed, err := PackBitString("01x0")
	var ibe InvalidBitError
	if !errors.As(err, &ibe) {
		t.Fatalf("expected InvalidBitError, got %v", err)
	}
	if ibe.Index != 2 || ibe.Char != 'x' {
		t.Errorf("expected bit 2 = 'x', got bit %d = %q", ibe.Index, ibe.Char)
	}
	if packed != nil {
		t.Errorf("expected no output, got %#v", packed)
	}
}

func TestPackBitString_Lengths(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for n := 0; n < 64; n++ {
		var sb strings.Builder
		for i := 0; i < n; i++ {
			sb.WriteByte(byte('0' + r.Intn(2)))
		}
		bits := sb.String()

		packed, err := PackBitString(bits)
		if err != nil {
			t.Fatalf("PackBitString(%q) failed: %v", bits, err)
		}
		if expect := n/8 + 1; len(packed) != expect {
			t.Errorf("length %d: expected %d bytes, got %d", n, expect, len(packed))
		}
		actual, err := UnpackBitString(packed)
		if err != nil {
			t.Fatalf("UnpackBitString(%#v) failed: %v", packed, err)
		}
		if actual != bits {
			t.Errorf("length %d: expected %q, got %q", n, bits, actual)
		}
	}
}

func TestUnpackBitString_Errors(t *testing.T) {
	bits, err := UnpackBitString(nil)
	if err != nil || bits != "" {
		t.Errorf("expected empty result for empty input, got %q, %v", bits, err)
	}

	_, err = UnpackBitString([]byte{0x00, 0x12})
	if !errors.Is(err, ErrMissingPadding) {
		t.Errorf("expected ErrMissingPadding, got %v", err)
	}
}
