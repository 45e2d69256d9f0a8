package itemsets

// A StreamFunc receives one frequent Itemset and its support count. The Itemset
// may be retained by the callee. Returning an error aborts mining.
type StreamFunc func(set Itemset, support uint64) error

// A Miner discovers every frequent Itemset of a Dataset
type Miner interface {
	Mine(d *Dataset) ([]*FrequentSet, error) // Mine returns one FrequentSet per itemset size, starting at size 1 and ending before the first empty size
	Stream(d *Dataset, fn StreamFunc) error  // Stream calls fn for each frequent Itemset as soon as its pass completes, without retaining earlier passes
}

// Total returns the number of frequent Itemsets across all sizes
func Total(levels []*FrequentSet) int {
	n := 0
	for _, l := range levels {
		n += l.Len()
	}
	return n
}
