package itemsets

import (
	"slices"
	"sort"
)

// A FrequentSet holds every frequent Itemset of one size, together with its
// support count. Itemsets are kept in lexicographic order, so that Itemsets
// sharing a prefix are adjacent. FrequentSets are immutable once built, and
// are shared by reference with the pass which consumes them.
type FrequentSet struct {
	size     int
	sets     []Itemset
	supports []uint64
}

// NewFrequentSet builds a FrequentSet of Itemsets of the given size. sets and
// supports must be parallel slices; both are taken over and sorted in place.
func NewFrequentSet(size int, sets []Itemset, supports []uint64) *FrequentSet {
	fs := &FrequentSet{size: size, sets: sets, supports: supports}
	sort.Sort(byItemset{fs})
	return fs
}

// Size returns the number of items in each Itemset of this FrequentSet
func (fs *FrequentSet) Size() int {
	return fs.size
}

// Len returns the number of Itemsets in this FrequentSet
func (fs *FrequentSet) Len() int {
	return len(fs.sets)
}

// Itemsets returns the sorted Itemsets of this FrequentSet. The result must not be modified.
func (fs *FrequentSet) Itemsets() []Itemset {
	return fs.sets
}

// Get returns the i-th Itemset and its support
func (fs *FrequentSet) Get(i int) (Itemset, uint64) {
	return fs.sets[i], fs.supports[i]
}

// Index returns the position of s in this FrequentSet, or -1 if it is absent
func (fs *FrequentSet) Index(s Itemset) int {
	i, found := slices.BinarySearchFunc(fs.sets, s, Itemset.Compare)
	if !found {
		return -1
	}
	return i
}

// Contains returns true iff s is one of the Itemsets of this FrequentSet
func (fs *FrequentSet) Contains(s Itemset) bool {
	return fs.Index(s) >= 0
}

// Support returns the support count of s, and whether s is present
func (fs *FrequentSet) Support(s Itemset) (uint64, bool) {
	i := fs.Index(s)
	if i < 0 {
		return 0, false
	}
	return fs.supports[i], true
}

// ForEach calls fn for every Itemset in order, stopping at the first error
func (fs *FrequentSet) ForEach(fn StreamFunc) error {
	for i, s := range fs.sets {
		if err := fn(s, fs.supports[i]); err != nil {
			return err
		}
	}
	return nil
}

type byItemset struct{ fs *FrequentSet }

func (b byItemset) Len() int           { return len(b.fs.sets) }
func (b byItemset) Less(i, j int) bool { return b.fs.sets[i].Compare(b.fs.sets[j]) < 0 }
func (b byItemset) Swap(i, j int) {
	b.fs.sets[i], b.fs.sets[j] = b.fs.sets[j], b.fs.sets[i]
	b.fs.supports[i], b.fs.supports[j] = b.fs.supports[j], b.fs.supports[i]
}
