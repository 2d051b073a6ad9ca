package huffcoding

import (
	"bytes"
	"io"
	"testing"

	"github.com/pkg/errors"
)

// onlyWriter hides every method of its Writer except Write.
type onlyWriter struct {
	w io.Writer
}

func (ow onlyWriter) Write(p []byte) (int, error) {
	return ow.w.Write(p)
}

func TestSymbolWriter(t *testing.T) {
	for _, name := range []string{"byte-writer", "plain-writer"} {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			sw := NewSymbolWriter(&buf)
			if name == "plain-writer" {
				sw = NewSymbolWriter(onlyWriter{&buf})
			}

			for _, symbol := range []Symbol{'h', 'i', 0, MaxSymbol} {
				if err := sw.WriteSymbol(symbol); err != nil {
					t.Fatalf("WriteSymbol(%d) failed: %v", symbol, err)
				}
			}
			expect := []byte{'h', 'i', 0x00, 0x7f}
			if !bytes.Equal(expect, buf.Bytes()) {
				t.Errorf("wrong bytes:\n\texpect: %#v\n\tactual: %#v", expect, buf.Bytes())
			}

			var ise InvalidSymbolError
			if err := sw.WriteSymbol(NumSymbols); !errors.As(err, &ise) {
				t.Errorf("expected InvalidSymbolError, got %v", err)
			}
		})
	}
}

func TestSymbolReader(t *testing.T) {
	sr := NewSymbolReader(onlyReader{bytes.NewReader([]byte("ok"))})
	for _, expect := range []Symbol{'o', 'k'} {
		actual, err := sr.ReadSymbol()
		if err != nil {
			t.Fatalf("ReadSymbol failed: %v", err)
		}
		if actual != expect {
			t.Errorf("expected %d, got %d", expect, actual)
		}
	}
	if _, err := sr.ReadSymbol(); err != io.EOF {
		t.Errorf("expected io.EOF, got %v", err)
	}
}

// onlyReader hides every method of its Reader except Read.
type onlyReader struct {
	r io.Reader
}

func (rd onlyReader) Read(p []byte) (int, error) {
	return rd.r.Read(p)
}
