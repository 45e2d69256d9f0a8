package counting

import (
	"fmt"

	"github.com/go-sif/itemsets"
)

// Items counts the support of every single item, for the first pass
type Items struct {
	counts []uint64
}

// NewItems returns an Items counter for numItems items
func NewItems(numItems int) *Items {
	return &Items{counts: make([]uint64, numItems)}
}

// AddTransaction counts every item of a transaction
func (c *Items) AddTransaction(t itemsets.Itemset) {
	for _, it := range t {
		c.counts[it]++
	}
}

// Get returns the count of a single item
func (c *Items) Get(it itemsets.Item) uint64 {
	return c.counts[it]
}

// Increment adds one to the count of a size-1 Itemset
func (c *Items) Increment(set itemsets.Itemset) bool {
	if len(set) != 1 || int(set[0]) >= len(c.counts) {
		return false
	}
	c.counts[set[0]]++
	return true
}

// ForEach visits every item, including those with a count of 0
func (c *Items) ForEach(fn func(set itemsets.Itemset, count uint64)) {
	scratch := make(itemsets.Itemset, 1)
	for i, n := range c.counts {
		scratch[0] = itemsets.Item(i)
		fn(scratch, n)
	}
}

// Len returns the number of items counted
func (c *Items) Len() int {
	return len(c.counts)
}

// Merge sums another Items counter into this one, elementwise
func (c *Items) Merge(o itemsets.Counter) error {
	oc, ok := o.(*Items)
	if !ok {
		return fmt.Errorf("Incoming counter is not an Items counter")
	}
	if len(oc.counts) != len(c.counts) {
		return fmt.Errorf("Cannot merge Items counters over %d and %d items", len(c.counts), len(oc.counts))
	}
	for i, n := range oc.counts {
		c.counts[i] += n
	}
	return nil
}
