package huffcoding

import (
	"bytes"
	"fmt"
	"io"
	"io/ioutil"

	"github.com/pkg/errors"
)

// Decoder decodes packed streams produced by an Encoder with the same tree.
type Decoder struct {
	root   Node
	leaves int
	depth  int
}

// Init initializes this Decoder with the root of a Huffman tree.  A nil root
// is permitted and can only decode empty streams.  A root that is itself a
// leaf is rejected with ErrDegenerateTree, since no code leads to it.
func (d *Decoder) Init(root Node) error {
	if _, isLeaf := root.(*Leaf); isLeaf {
		return ErrDegenerateTree
	}

	leaves, depth := measure(root, 0)
	*d = Decoder{
		root:   root,
		leaves: leaves,
		depth:  depth,
	}
	return nil
}

// DecodeBits walks the tree once per bit of bits, '0' to the left and '1' to
// the right, and writes a symbol to dst each time the walk reaches a leaf.
//
// Bits that end partway down the tree are reported as ErrTruncatedCode.  Any
// character other than '0' or '1' is reported as InvalidBitError.
//
func (d *Decoder) DecodeBits(dst SymbolWriter, bits string) error {
	if len(bits) == 0 {
		return nil
	}
	if d.root == nil {
		return ErrNoTree
	}

	node := d.root
	for i := 0; i < len(bits); i++ {
		internal, ok := node.(*Internal)
		if !ok {
			return errors.Wrapf(ErrMalformedTree, "dead end at bit %d", i)
		}
		switch bits[i] {
		case '0':
			node = internal.Left
		case '1':
			node = internal.Right
		default:
			return InvalidBitError{Index: i, Char: bits[i]}
		}

		if leaf, isLeaf := node.(*Leaf); isLeaf {
			if err := dst.WriteSymbol(leaf.Symbol); err != nil {
				return errors.Wrapf(err, "decode bit %d", i)
			}
			node = d.root
		}
	}

	if node != d.root {
		return ErrTruncatedCode
	}
	return nil
}

// Decode reads the packed stream from src to exhaustion, strips its padding
// prefix, and writes each decoded symbol to dst in order.
func (d *Decoder) Decode(dst SymbolWriter, src io.Reader) error {
	buf, err := ioutil.ReadAll(src)
	if err != nil {
		return errors.Wrap(err, "read encoded stream")
	}
	return d.DecodeBytes(dst, buf)
}

// DecodeBytes is like Decode, but takes the packed stream as a byte slice.
func (d *Decoder) DecodeBytes(dst SymbolWriter, buf []byte) error {
	bits, err := UnpackBitString(buf)
	if err != nil {
		return err
	}
	return d.DecodeBits(dst, bits)
}

// NumLeaves is the number of symbols the tree can decode.
func (d *Decoder) NumLeaves() int {
	return d.leaves
}

// MaxSize is the bit length of the longest code in the tree.
func (d *Decoder) MaxSize() int {
	return d.depth
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.
func (d *Decoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tNumLeaves() = %d\n", d.leaves)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", d.depth)
	if d.root != nil {
		fmt.Fprintf(&buf, "\tTree = %v\n", d.root)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// measure returns the number of leaves below node and the depth of the
// deepest one, counting node itself as being at the given depth.
func measure(node Node, depth int) (leaves int, maxDepth int) {
	switch x := node.(type) {
	case *Leaf:
		return 1, depth
	case *Internal:
		ll, ld := measure(x.Left, depth+1)
		rl, rd := measure(x.Right, depth+1)
		if rd > ld {
			ld = rd
		}
		return ll + rl, ld
	}
	return 0, 0
}
