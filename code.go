package huffcoding

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Code represents a sequence of bits as text, one '0' or '1' per bit, read
// from the root of the tree towards the leaf.
type Code string

// Len returns the number of bits in the code.
func (hc Code) Len() int {
	return len(hc)
}

// Valid returns true iff the code is non-empty and holds only '0' and '1'.
func (hc Code) Valid() bool {
	return len(hc) != 0 && firstNonBit(string(hc)) < 0
}

// IsPrefixOf returns true iff other begins with hc.
func (hc Code) IsPrefixOf(other Code) bool {
	return strings.HasPrefix(string(other), string(hc))
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(string(hc))
}

var _ fmt.Stringer = Code("")

// CodeTable maps each symbol to its Code.  Symbols that do not appear in the
// tree map to the empty Code.
type CodeTable [NumSymbols]Code

// GenerateCodes walks the tree rooted at root and assigns each leaf the path
// taken to reach it, '0' for every left branch and '1' for every right
// branch.  A nil root yields an empty table.  A root that is itself a leaf
// would receive the empty code and is rejected with ErrDegenerateTree.
func GenerateCodes(root Node) (CodeTable, error) {
	var table CodeTable
	switch root.(type) {
	case nil:
		return table, nil
	case *Leaf:
		return table, ErrDegenerateTree
	}

	// The deepest possible tree has NumSymbols-1 levels.
	path := make([]byte, 0, NumSymbols-1)
	walkCodes(&table, root, path)
	return table, nil
}

func walkCodes(table *CodeTable, node Node, path []byte) {
	switch x := node.(type) {
	case *Leaf:
		table[x.Symbol] = Code(path)
	case *Internal:
		walkCodes(table, x.Left, append(path, '0'))
		walkCodes(table, x.Right, append(path, '1'))
	}
}

// Lookup returns the Code for symbol, if it has one.
func (table *CodeTable) Lookup(symbol Symbol) (Code, bool) {
	if !symbol.Valid() {
		return "", false
	}
	hc := table[symbol]
	return hc, hc != ""
}

// Len returns the number of symbols with a code.
func (table *CodeTable) Len() int {
	var n int
	for _, hc := range table {
		if hc != "" {
			n++
		}
	}
	return n
}

// MinSize is the bit length of the shortest code, or 0 if there are none.
func (table *CodeTable) MinSize() int {
	var min int
	for _, hc := range table {
		if hc != "" && (min == 0 || hc.Len() < min) {
			min = hc.Len()
		}
	}
	return min
}

// MaxSize is the bit length of the longest code, or 0 if there are none.
func (table *CodeTable) MaxSize() int {
	var max int
	for _, hc := range table {
		if hc.Len() > max {
			max = hc.Len()
		}
	}
	return max
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.  Only symbols with a code are listed.
func (table *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", table.MinSize())
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", table.MaxSize())
	for symbol := Symbol(0); symbol <= MaxSymbol; symbol++ {
		if hc := table[symbol]; hc != "" {
			fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, hc)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
