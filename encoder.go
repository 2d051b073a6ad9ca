package huffcoding

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Encoder holds the frequency table, tree, and codes derived from one input.
type Encoder struct {
	table FrequencyTable
	root  Node
	codes CodeTable
}

// Init initializes this Encoder by reading src to exhaustion, building the
// Huffman tree for the symbols it yielded, and assigning a code to each.
//
// Empty input is not an error.  It leaves the Encoder with an empty table,
// a nil Tree, and no codes.
//
func (e *Encoder) Init(src SymbolReader) error {
	table, err := Analyze(src)
	if err != nil {
		return err
	}
	return e.InitTable(table)
}

// InitTable initializes this Encoder from an already computed, sorted
// FrequencyTable.
func (e *Encoder) InitTable(table FrequencyTable) error {
	root := BuildTree(table)
	codes, err := GenerateCodes(root)
	if err != nil {
		return err
	}

	*e = Encoder{
		table: table,
		root:  root,
		codes: codes,
	}
	return nil
}

// Table returns the FrequencyTable this Encoder was built from.
func (e *Encoder) Table() FrequencyTable {
	return e.table
}

// Tree returns the root of the Huffman tree, or nil for empty input.  The
// same tree must be handed to a Decoder to decode this Encoder's output.
func (e *Encoder) Tree() Node {
	return e.root
}

// Codes returns the code assigned to each symbol.
func (e *Encoder) Codes() *CodeTable {
	return &e.codes
}

// EncodeBits concatenates the code of each symbol read from src, in order.
// A symbol without a code is reported as MissingCodeError.
func (e *Encoder) EncodeBits(src SymbolReader) (string, error) {
	var sb strings.Builder
	for {
		symbol, err := src.ReadSymbol()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", errors.Wrap(err, "encode")
		}
		hc, found := e.codes.Lookup(symbol)
		if !found {
			return "", MissingCodeError{Symbol: symbol}
		}
		sb.WriteString(string(hc))
	}
	return sb.String(), nil
}

// Encode encodes every symbol read from src and writes the packed bytes to
// dst.  Nothing is written to dst unless the whole of src encodes cleanly.
//
// If the Encoder was initialized from empty input, src must also be empty,
// and Encode writes nothing at all.
//
func (e *Encoder) Encode(dst io.Writer, src SymbolReader) error {
	bits, err := e.EncodeBits(src)
	if err != nil {
		return err
	}
	if e.root == nil {
		return nil
	}

	packed, err := PackBitString(bits)
	if err != nil {
		return err
	}
	if _, err := dst.Write(packed); err != nil {
		return errors.Wrap(err, "write encoded stream")
	}
	return nil
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e *Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	for _, sf := range e.table {
		fmt.Fprintf(&buf, "\tEncode(%d) = %s (p=%.6f)\n", sf.Symbol, e.codes[sf.Symbol], sf.Probability)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
