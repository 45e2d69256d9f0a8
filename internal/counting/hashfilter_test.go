package counting

import (
	"testing"

	"github.com/go-sif/itemsets"
	"github.com/stretchr/testify/require"
)

func TestHashFilterNeverUnderCounts(t *testing.T) {
	// few buckets force collisions
	f := NewHashFilter(0, 7)
	truth := map[string]uint64{}
	for a := itemsets.Item(0); a < 20; a++ {
		for b := a + 1; b < 20; b++ {
			set := itemsets.Itemset{a, b}
			for i := itemsets.Item(0); i < (a+b)%4; i++ {
				f.Increment(set)
				truth[set.Key()]++
			}
		}
	}
	for a := itemsets.Item(0); a < 20; a++ {
		for b := a + 1; b < 20; b++ {
			set := itemsets.Itemset{a, b}
			require.GreaterOrEqual(t, f.Estimate(set), truth[set.Key()])
		}
	}
}

func TestHashFilterExactWithoutCollisions(t *testing.T) {
	f := NewHashFilter(3, 1<<16)
	f.Increment(itemsets.Itemset{1, 2, 3})
	f.Increment(itemsets.Itemset{1, 2, 3})
	f.Increment(itemsets.Itemset{4, 5, 6})
	require.EqualValues(t, 2, f.Estimate(itemsets.Itemset{1, 2, 3}))
	require.EqualValues(t, 1, f.Estimate(itemsets.Itemset{4, 5, 6}))
}
