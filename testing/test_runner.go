package testing

import (
	"fmt"
	"math/rand/v2"

	"github.com/go-sif/itemsets"
	"github.com/go-sif/itemsets/internal/candidates"
)

// RunMiner mines a Dataset, converting a panic raised by the Miner into an error
func RunMiner(m itemsets.Miner, d *itemsets.Dataset) (levels []*itemsets.FrequentSet, err error) {
	// handle panics
	defer func() {
		if r := recover(); r != nil {
			if anErr, ok := r.(error); ok {
				err = anErr
			} else {
				err = fmt.Errorf("miner panicked: %v", r)
			}
		}
	}()
	return m.Mine(d)
}

// Flatten maps the Key of every Itemset in levels to its support
func Flatten(levels []*itemsets.FrequentSet) map[string]uint64 {
	res := make(map[string]uint64)
	for _, fs := range levels {
		for i := 0; i < fs.Len(); i++ {
			set, support := fs.Get(i)
			res[set.Key()] = support
		}
	}
	return res
}

// Levels rebuilds one FrequentSet per size from a map keyed like Flatten, so that
// a reference result can be compared level by level with a Miner's
func Levels(flat map[string]uint64) []*itemsets.FrequentSet {
	var sets [][]itemsets.Itemset
	var supports [][]uint64
	for key, support := range flat {
		set := itemsets.ItemsetFromKey(key)
		for len(sets) < len(set) {
			sets = append(sets, nil)
			supports = append(supports, nil)
		}
		sets[len(set)-1] = append(sets[len(set)-1], set)
		supports[len(set)-1] = append(supports[len(set)-1], support)
	}
	levels := make([]*itemsets.FrequentSet, len(sets))
	for i := range sets {
		levels[i] = itemsets.NewFrequentSet(i+1, sets[i], supports[i])
	}
	return levels
}

// Sizes returns the number of Itemsets in each level
func Sizes(levels []*itemsets.FrequentSet) []int {
	sizes := make([]int, len(levels))
	for i, fs := range levels {
		sizes[i] = fs.Len()
	}
	return sizes
}

// CanonicalDataset returns the classic 9-transaction, 5-item example. With a minimum
// support of 2 it has 5 frequent items, 6 frequent pairs and 2 frequent triples.
func CanonicalDataset() *itemsets.Dataset {
	return itemsets.NewDataset([]itemsets.Itemset{
		{0, 1, 4},
		{1, 3},
		{1, 2},
		{0, 1, 3},
		{0, 2},
		{1, 2},
		{0, 2},
		{0, 1, 2, 4},
		{0, 1, 2},
	}, 5)
}

// RandomDataset returns a reproducible Dataset of numTransactions transactions over
// numItems items, each holding between 1 and maxLen items. Low item indices are
// drawn more often, so that long frequent Itemsets exist.
func RandomDataset(seed uint64, numTransactions, numItems, maxLen int) *itemsets.Dataset {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	tx := make([]itemsets.Itemset, numTransactions)
	for i := range tx {
		n := 1 + rng.IntN(maxLen)
		items := make([]itemsets.Item, n)
		for j := range items {
			// squaring a uniform draw skews it towards 0
			f := rng.Float64()
			items[j] = itemsets.Item(int(f * f * float64(numItems)))
		}
		tx[i] = itemsets.NewItemset(items...)
	}
	return itemsets.NewDataset(tx, numItems)
}

// BruteForce counts every subset of every transaction and keeps those meeting
// minSupport, keyed like Flatten. It is exponential in transaction length and only
// suitable as a reference for small Datasets.
func BruteForce(d *itemsets.Dataset, minSupport uint64) map[string]uint64 {
	counts := make(map[string]uint64)
	for _, t := range d.Transactions {
		for k := 1; k <= len(t); k++ {
			candidates.ForEachSubset(t, k, func(sub itemsets.Itemset) {
				counts[sub.Key()]++
			})
		}
	}
	for key, n := range counts {
		if n < minSupport {
			delete(counts, key)
		}
	}
	return counts
}
