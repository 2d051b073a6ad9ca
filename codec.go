package huffcoding

import (
	"bytes"
)

// Compress encodes data in one call and returns the tree needed to decode it
// along with the packed bytes.  Empty data yields a nil tree and no bytes.
func Compress(data []byte) (Node, []byte, error) {
	var e Encoder
	if err := e.Init(NewSymbolReader(bytes.NewReader(data))); err != nil {
		return nil, nil, err
	}

	var buf bytes.Buffer
	if err := e.Encode(&buf, NewSymbolReader(bytes.NewReader(data))); err != nil {
		return nil, nil, err
	}
	return e.Tree(), buf.Bytes(), nil
}

// Decompress is the inverse of Compress.
func Decompress(root Node, packed []byte) ([]byte, error) {
	var d Decoder
	if err := d.Init(root); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := d.DecodeBytes(NewSymbolWriter(&buf), packed); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
