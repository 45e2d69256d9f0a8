package candidates

import (
	"github.com/go-sif/itemsets"
)

// Join calls fn with every size-k Itemset formed from two size-(k-1) Itemsets of
// sorted which share their first k-2 items. sorted must be in lexicographic order,
// so that Itemsets sharing a prefix form contiguous groups; candidates are then
// produced in lexicographic order, without duplicates, with work proportional to
// the square of each group's size. The Itemset passed to fn is reused between
// calls and must be cloned to be retained.
func Join(sorted []itemsets.Itemset, fn func(candidate itemsets.Itemset)) {
	if len(sorted) < 2 {
		return
	}
	k := len(sorted[0]) + 1
	scratch := make(itemsets.Itemset, k)
	for start := 0; start < len(sorted); {
		end := start + 1
		for end < len(sorted) && samePrefix(sorted[start], sorted[end]) {
			end++
		}
		for i := start; i < end; i++ {
			copy(scratch, sorted[i])
			for j := i + 1; j < end; j++ {
				scratch[k-1] = sorted[j][k-2]
				fn(scratch)
			}
		}
		start = end
	}
}

// samePrefix returns true iff a and b agree on every item but their last
func samePrefix(a, b itemsets.Itemset) bool {
	for i := 0; i < len(a)-1; i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// CanBePruned returns true iff some size-(k-1) subset of the size-k candidate is
// absent from prev. The two subsets which drop one of the last two items are the
// join parents and are not checked. The remaining subsets are visited by mutating
// one working array, in place.
func CanBePruned(prev *itemsets.FrequentSet, candidate itemsets.Itemset, work itemsets.Itemset) bool {
	k := len(candidate)
	if k < 3 {
		return false
	}
	work = work[:k-1]
	// drop item 0
	copy(work, candidate[1:])
	for p := 0; p < k-2; p++ {
		if p > 0 {
			// turn "candidate without p-1" into "candidate without p"
			work[p-1] = candidate[p-1]
		}
		if !prev.Contains(work) {
			return true
		}
	}
	return false
}

// Generate joins prev and prunes the result against it, calling fn with each
// surviving size-(k+1) candidate in lexicographic order. keep, if not nil, is an
// additional filter (e.g. a hash-bucket estimate). The Itemset passed to fn is
// reused between calls. An empty prev yields no candidates.
func Generate(prev *itemsets.FrequentSet, keep func(candidate itemsets.Itemset) bool, fn func(candidate itemsets.Itemset)) {
	work := make(itemsets.Itemset, prev.Size())
	Join(prev.Itemsets(), func(c itemsets.Itemset) {
		if CanBePruned(prev, c, work) {
			return
		}
		if keep != nil && !keep(c) {
			return
		}
		fn(c)
	})
}
