package huffcoding

import (
	"fmt"
	"sort"

	"github.com/chronos-tachyon/assert"
)

// Node is a node in a Huffman tree: either a *Leaf or an *Internal.
type Node interface {
	// Probability is the leaf's own probability, or the sum of the
	// probabilities of every leaf beneath an internal node.
	Probability() float64

	isNode()
}

// Leaf is a tree node that holds a real symbol.
type Leaf struct {
	Symbol Symbol
	Prob   float64
}

// Internal is a tree node produced by merging two lighter nodes.  Both
// children are always present.
type Internal struct {
	Prob  float64
	Left  Node
	Right Node
}

func (leaf *Leaf) Probability() float64     { return leaf.Prob }
func (node *Internal) Probability() float64 { return node.Prob }

func (*Leaf) isNode()     {}
func (*Internal) isNode() {}

func (leaf *Leaf) String() string {
	return fmt.Sprintf("Leaf(%d, %g)", leaf.Symbol, leaf.Prob)
}

func (node *Internal) String() string {
	return fmt.Sprintf("Internal(%g, %v, %v)", node.Prob, node.Left, node.Right)
}

var (
	_ Node         = (*Leaf)(nil)
	_ Node         = (*Internal)(nil)
	_ fmt.Stringer = (*Leaf)(nil)
	_ fmt.Stringer = (*Internal)(nil)
)

// BuildTree builds the Huffman tree for a sorted FrequencyTable and returns
// its root.  An empty table yields a nil root.  A table with one entry yields
// that entry as a lone *Leaf, which GenerateCodes will refuse.
//
// The tree is built with two FIFO queues.  source starts with one leaf per
// table entry, in table order; target starts empty and receives each merged
// node.  Because both queues stay sorted, the two lightest nodes are always
// at the fronts.  When the fronts tie, source wins, which makes the tree shape
// a pure function of the table.
//
func BuildTree(table FrequencyTable) Node {
	assert.Assertf(sort.IsSorted(table), "FrequencyTable is not sorted")

	if len(table) == 0 {
		return nil
	}

	source := make(nodeQueue, 0, len(table))
	for _, sf := range table {
		assert.Assertf(sf.Symbol.Valid(), "FrequencyTable holds invalid symbol %d", sf.Symbol)
		source = append(source, &Leaf{Symbol: sf.Symbol, Prob: sf.Probability})
	}
	if len(source) == 1 {
		return source[0]
	}

	target := make(nodeQueue, 0, len(table)-1)
	for len(source) != 0 || len(target) != 1 {
		first := takeLightest(&source, &target)
		second := takeLightest(&source, &target)
		target.push(&Internal{
			Prob:  first.Probability() + second.Probability(),
			Left:  first,
			Right: second,
		})
	}
	return target[0]
}

// takeLightest removes and returns the lighter of the two queue fronts,
// preferring source on a tie.
func takeLightest(source *nodeQueue, target *nodeQueue) Node {
	switch {
	case len(*target) == 0:
		return source.pop()
	case len(*source) == 0:
		return target.pop()
	case (*source)[0].Probability() <= (*target)[0].Probability():
		return source.pop()
	default:
		return target.pop()
	}
}

// type nodeQueue {{{

type nodeQueue []Node

func (q *nodeQueue) push(node Node) {
	*q = append(*q, node)
}

func (q *nodeQueue) pop() Node {
	node := (*q)[0]
	(*q)[0] = nil
	*q = (*q)[1:]
	return node
}

// }}}
