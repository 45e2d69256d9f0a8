package itemsets

// A Counter accumulates support counts for Itemsets during a single pass. Counters
// produced by different workers over disjoint shards of a Dataset are combined
// with Merge, in any order, before the pass's FrequentSet is extracted.
type Counter interface {
	Increment(set Itemset) bool                 // Increment adds one to the count of set, returning false if set is not counted by this Counter
	ForEach(fn func(set Itemset, count uint64)) // ForEach visits every counted Itemset. set must not be retained by fn.
	Len() int                                   // Len returns the number of Itemsets counted
	Merge(o Counter) error                      // Merge adds the counts of another Counter of the same kind into this one
}
