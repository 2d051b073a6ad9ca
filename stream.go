package huffcoding

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// SymbolReader is a readable stream of symbols.  ReadSymbol returns io.EOF
// once the stream is exhausted; end of stream is never signaled in-band.
type SymbolReader interface {
	ReadSymbol() (Symbol, error)
}

// SymbolWriter is a writable stream of symbols.
type SymbolWriter interface {
	WriteSymbol(Symbol) error
}

// NewSymbolReader returns a SymbolReader that yields one symbol per byte of r.
// Bytes above MaxSymbol are reported as InvalidSymbolError.
func NewSymbolReader(r io.Reader) SymbolReader {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return byteSymbolReader{br}
}

// NewSymbolWriter returns a SymbolWriter that writes one byte per symbol to w.
// If w is not an io.ByteWriter, each symbol costs one Write call; wrap w in
// a bufio.Writer (and flush it) for bulk output.
func NewSymbolWriter(w io.Writer) SymbolWriter {
	if bw, ok := w.(io.ByteWriter); ok {
		return byteSymbolWriter{bw}
	}
	return plainSymbolWriter{w}
}

type byteSymbolReader struct {
	r io.ByteReader
}

func (sr byteSymbolReader) ReadSymbol() (Symbol, error) {
	ch, err := sr.r.ReadByte()
	if err == io.EOF {
		return InvalidSymbol, io.EOF
	}
	if err != nil {
		return InvalidSymbol, errors.Wrap(err, "read symbol")
	}
	s := Symbol(ch)
	if !s.Valid() {
		return InvalidSymbol, InvalidSymbolError{Value: int(ch)}
	}
	return s, nil
}

type byteSymbolWriter struct {
	w io.ByteWriter
}

func (sw byteSymbolWriter) WriteSymbol(s Symbol) error {
	if !s.Valid() {
		return InvalidSymbolError{Value: int(s)}
	}
	return errors.Wrap(sw.w.WriteByte(byte(s)), "write symbol")
}

type plainSymbolWriter struct {
	w io.Writer
}

func (sw plainSymbolWriter) WriteSymbol(s Symbol) error {
	if !s.Valid() {
		return InvalidSymbolError{Value: int(s)}
	}
	_, err := sw.w.Write([]byte{byte(s)})
	return errors.Wrap(err, "write symbol")
}

var (
	_ SymbolReader = byteSymbolReader{}
	_ SymbolWriter = byteSymbolWriter{}
	_ SymbolWriter = plainSymbolWriter{}
)
