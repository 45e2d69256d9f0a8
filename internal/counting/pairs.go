package counting

import (
	"fmt"

	"github.com/go-sif/itemsets"
)

// Pairs is a triangular matrix counting the co-occurrence of every pair of
// distinct items. It is used for the second pass, where every pair seen
// together is a candidate and a hashed structure would only add overhead.
type Pairs struct {
	numItems int
	counts   []uint64
}

// NewPairs returns a Pairs counter for numItems items
func NewPairs(numItems int) *Pairs {
	size := 0
	if numItems > 1 {
		size = numItems * (numItems - 1) / 2
	}
	return &Pairs{numItems: numItems, counts: make([]uint64, size)}
}

// index maps an unordered pair to its cell. row == col is a contract violation.
func (p *Pairs) index(row, col itemsets.Item) int {
	if row == col {
		panic(fmt.Sprintf("counting: pair (%d, %d) has equal row and column", row, col))
	}
	if row < col {
		row, col = col, row
	}
	return int(row)*(int(row)-1)/2 + int(col)
}

// IncrementPair adds one to the count of the pair {a, b}
func (p *Pairs) IncrementPair(a, b itemsets.Item) {
	p.counts[p.index(a, b)]++
}

// Get returns the count of the pair {a, b}
func (p *Pairs) Get(a, b itemsets.Item) uint64 {
	return p.counts[p.index(a, b)]
}

// AddTransaction counts every pair of items in a transaction
func (p *Pairs) AddTransaction(t itemsets.Itemset) {
	for i := 1; i < len(t); i++ {
		base := int(t[i]) * (int(t[i]) - 1) / 2
		for j := 0; j < i; j++ {
			p.counts[base+int(t[j])]++
		}
	}
}

// Increment adds one to the count of a size-2 Itemset
func (p *Pairs) Increment(set itemsets.Itemset) bool {
	if len(set) != 2 || int(set[1]) >= p.numItems {
		return false
	}
	p.IncrementPair(set[0], set[1])
	return true
}

// ForEach visits every pair in row-major order of the lower triangle, including
// pairs with a count of 0. The Itemset passed to fn is reused between calls.
func (p *Pairs) ForEach(fn func(set itemsets.Itemset, count uint64)) {
	scratch := make(itemsets.Itemset, 2)
	row, col := 1, 0
	for _, n := range p.counts {
		scratch[0], scratch[1] = itemsets.Item(col), itemsets.Item(row)
		fn(scratch, n)
		col++
		if col >= row {
			col = 0
			row++
		}
	}
}

// Len returns the number of pairs counted
func (p *Pairs) Len() int {
	return len(p.counts)
}

// Merge sums another Pairs counter into this one, elementwise
func (p *Pairs) Merge(o itemsets.Counter) error {
	op, ok := o.(*Pairs)
	if !ok {
		return fmt.Errorf("Incoming counter is not a Pairs counter")
	}
	if op.numItems != p.numItems {
		return fmt.Errorf("Cannot merge Pairs counters over %d and %d items", p.numItems, op.numItems)
	}
	for i, n := range op.counts {
		p.counts[i] += n
	}
	return nil
}
