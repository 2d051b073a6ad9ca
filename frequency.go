package huffcoding

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"
)

// SymbolFrequency pairs a symbol with its probability of occurrence.
type SymbolFrequency struct {
	Symbol      Symbol
	Probability float64
}

// FrequencyTable lists one SymbolFrequency per distinct symbol, sorted by
// ascending probability with ties broken by ascending symbol.
type FrequencyTable []SymbolFrequency

// NewFrequencyTable builds a FrequencyTable from a histogram indexed by
// symbol.  Symbols with a count of zero are omitted.
//
// If exactly one symbol has a non-zero count, a synthetic entry for the next
// symbol (wrapping MaxSymbol to 0) is added with probability 0.  This keeps
// the tree at two or more leaves, so that every real symbol gets a non-empty
// code.
//
// An all-zero histogram yields an empty table.
//
func NewFrequencyTable(counts []uint64) FrequencyTable {
	assert.Assertf(len(counts) <= NumSymbols, "len(counts) %d > NumSymbols %d", len(counts), NumSymbols)

	var total uint64
	for _, count := range counts {
		total += count
	}
	if total == 0 {
		return FrequencyTable{}
	}

	table := make(FrequencyTable, 0, len(counts)+1)
	for symbol := Symbol(0); symbol < Symbol(len(counts)); symbol++ {
		if count := counts[symbol]; count != 0 {
			p := float64(count) / float64(total)
			table = append(table, SymbolFrequency{symbol, p})
		}
	}

	if len(table) == 1 {
		table = append(table, SymbolFrequency{table[0].Symbol.next(), 0.0})
	}

	table.Sort()
	return table
}

// Analyze reads src to exhaustion and returns the FrequencyTable of the
// symbols it yielded.
func Analyze(src SymbolReader) (FrequencyTable, error) {
	var counts [NumSymbols]uint64
	for {
		symbol, err := src.ReadSymbol()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "analyze")
		}
		if !symbol.Valid() {
			return nil, InvalidSymbolError{Value: int(symbol)}
		}
		counts[symbol]++
	}
	return NewFrequencyTable(counts[:]), nil
}

// Sum returns the total probability of all entries.  It is 1.0 (within
// floating point tolerance) for any table built from non-empty input.
func (table FrequencyTable) Sum() float64 {
	var sum float64
	for _, sf := range table {
		sum += sf.Probability
	}
	return sum
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.
func (table FrequencyTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("FrequencyTable{\n")
	for _, sf := range table {
		fmt.Fprintf(&buf, "\t%d: %.6f\n", sf.Symbol, sf.Probability)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type FrequencyTable sort.Interface {{{

func (table FrequencyTable) Sort() {
	sort.Sort(table)
}

func (table FrequencyTable) Len() int {
	return len(table)
}

func (table FrequencyTable) Swap(i, j int) {
	table[i], table[j] = table[j], table[i]
}

func (table FrequencyTable) Less(i, j int) bool {
	a, b := table[i], table[j]
	if a.Probability != b.Probability {
		return a.Probability < b.Probability
	}
	return a.Symbol < b.Symbol
}

var _ sort.Interface = FrequencyTable(nil)

// }}}
