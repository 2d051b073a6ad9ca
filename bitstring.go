package huffcoding

import (
	"bytes"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// PackBitString serializes a sequence of '0'/'1' characters into bytes, most
// significant bit first.
//
// The bits are preceded by (p-1) zero bits and a single one bit, where p in
// [1, 8] is chosen so that the total length is a multiple of 8.  That marker
// lets UnpackBitString recover the exact bit length without storing it.
//
// Any character other than '0' or '1' is reported as InvalidBitError, and no
// output is produced.
//
func PackBitString(bits string) ([]byte, error) {
	if i := firstNonBit(bits); i >= 0 {
		return nil, InvalidBitError{Index: i, Char: bits[i]}
	}

	padding := paddingSize(len(bits))
	buf := bytes.NewBuffer(make([]byte, 0, (padding+len(bits))/8))
	w := bitio.NewWriter(buf)

	// Zeros first, then the marker as the lowest of the padding bits.
	if err := w.WriteBits(1, uint8(padding)); err != nil {
		return nil, errors.Wrap(err, "write padding")
	}
	for i := 0; i < len(bits); i++ {
		if err := w.WriteBool(bits[i] == '1'); err != nil {
			return nil, errors.Wrapf(err, "write bit %d", i)
		}
	}
	if err := w.Close(); err != nil {
		return nil, errors.Wrap(err, "flush bits")
	}
	return buf.Bytes(), nil
}

// UnpackBitString is the inverse of PackBitString: it expands buf into
// '0'/'1' text and strips the padding prefix, i.e. every bit up to and
// including the first '1' of the first byte.
//
// An empty buf yields the empty string.  A first byte of zero carries no
// marker and is reported as ErrMissingPadding.
//
func UnpackBitString(buf []byte) (string, error) {
	if len(buf) == 0 {
		return "", nil
	}
	if buf[0] == 0 {
		return "", ErrMissingPadding
	}

	r := bitio.NewReader(bytes.NewReader(buf))
	total := 8 * len(buf)

	var padding int
	for padding < 8 {
		bit, err := r.ReadBool()
		if err != nil {
			return "", errors.Wrap(err, "read padding")
		}
		padding++
		if bit {
			break
		}
	}

	text := make([]byte, 0, total-padding)
	for i := padding; i < total; i++ {
		bit, err := r.ReadBool()
		if err != nil {
			return "", errors.Wrapf(err, "read bit %d", i)
		}
		if bit {
			text = append(text, '1')
		} else {
			text = append(text, '0')
		}
	}
	return string(text), nil
}
