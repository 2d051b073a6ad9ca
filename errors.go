package huffcoding

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrMissingPadding is returned when the first byte of a packed stream
	// holds no padding marker bit.
	ErrMissingPadding = errors.New("huffcoding: padding marker not found in first byte")

	// ErrTruncatedCode is returned when a packed stream ends in the middle
	// of a code.
	ErrTruncatedCode = errors.New("huffcoding: bitstream ends inside a code")

	// ErrNoTree is returned when there are bits to decode but no tree to
	// decode them with.
	ErrNoTree = errors.New("huffcoding: no Huffman tree")

	// ErrMalformedTree is returned when a decode walk reaches a missing
	// child.
	ErrMalformedTree = errors.New("huffcoding: malformed Huffman tree")

	// ErrDegenerateTree is returned for a tree with a single leaf, which
	// would assign that leaf the empty code.
	ErrDegenerateTree = errors.New("huffcoding: degenerate Huffman tree with a single leaf")
)

// InvalidSymbolError is returned when an input value falls outside the 7-bit
// code space.
type InvalidSymbolError struct {
	Value int
}

func (err InvalidSymbolError) Error() string {
	return fmt.Sprintf("huffcoding: symbol %d outside [0, %d]", err.Value, int(MaxSymbol))
}

// InvalidBitError is returned when bit text holds a character other than '0'
// or '1'.
type InvalidBitError struct {
	Index int
	Char  byte
}

func (err InvalidBitError) Error() string {
	return fmt.Sprintf("huffcoding: invalid character %q at bit %d", err.Char, err.Index)
}

// MissingCodeError is returned when a symbol being encoded has no entry in the
// CodeTable, i.e. the table was not derived from the same input.
type MissingCodeError struct {
	Symbol Symbol
}

func (err MissingCodeError) Error() string {
	return fmt.Sprintf("huffcoding: no code for symbol %v", err.Symbol)
}

var (
	_ error = InvalidSymbolError{}
	_ error = InvalidBitError{}
	_ error = MissingCodeError{}
)
