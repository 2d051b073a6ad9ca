package huffcoding

import (
	"strconv"
)

// Symbol represents one 7-bit input unit.  Only values in [0, MaxSymbol] are
// valid.
type Symbol int32

// NumSymbols is the size of the code space.
const NumSymbols = 128

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(NumSymbols - 1)

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// Valid returns true iff s lies within the 7-bit code space.
func (s Symbol) Valid() bool {
	return s >= 0 && s <= MaxSymbol
}

// next returns the symbol after s, wrapping from MaxSymbol back to 0.
func (s Symbol) next() Symbol {
	return (s + 1) % NumSymbols
}

// String returns a readable representation of the symbol.  Printable ASCII
// is quoted, everything else is shown as a number.
func (s Symbol) String() string {
	if s >= 0x20 && s < 0x7f {
		return strconv.QuoteRune(rune(s))
	}
	return strconv.FormatInt(int64(s), 10)
}
