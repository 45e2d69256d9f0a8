package apriori

import (
	"fmt"
	"testing"

	"github.com/go-sif/itemsets"
	"github.com/go-sif/itemsets/errors"
	itemtest "github.com/go-sif/itemsets/testing"
	"github.com/stretchr/testify/require"
)

func TestCanonicalDataset(t *testing.T) {
	miner, err := New(Options{MinSupport: 2})
	require.Nil(t, err)
	levels, err := miner.Mine(itemtest.CanonicalDataset())
	require.Nil(t, err)
	require.Equal(t, []int{5, 6, 2}, itemtest.Sizes(levels))

	pairs := []itemsets.Itemset{{0, 1}, {0, 2}, {0, 4}, {1, 2}, {1, 3}, {1, 4}}
	require.Equal(t, pairs, levels[1].Itemsets())
	require.Equal(t, []itemsets.Itemset{{0, 1, 2}, {0, 1, 4}}, levels[2].Itemsets())
	support, ok := levels[1].Support(itemsets.Itemset{0, 1})
	require.True(t, ok)
	require.EqualValues(t, 4, support)
	support, ok = levels[2].Support(itemsets.Itemset{0, 1, 4})
	require.True(t, ok)
	require.EqualValues(t, 2, support)
}

func TestDownwardClosure(t *testing.T) {
	d := itemtest.RandomDataset(7, 300, 20, 8)
	miner, err := New(Options{MinSupport: 15})
	require.Nil(t, err)
	levels, err := miner.Mine(d)
	require.Nil(t, err)
	require.True(t, len(levels) >= 2)
	for k := 1; k < len(levels); k++ {
		prev := levels[k-1]
		for _, set := range levels[k].Itemsets() {
			for drop := range set {
				sub := append(set[:drop:drop], set[drop+1:]...)
				require.True(t, prev.Contains(sub), "%v is frequent but %v is not", set, sub)
			}
		}
	}
}

func TestMatchesBruteForce(t *testing.T) {
	d := itemtest.RandomDataset(11, 200, 15, 7)
	miner, err := New(Options{MinSupport: 10})
	require.Nil(t, err)
	levels, err := miner.Mine(d)
	require.Nil(t, err)
	expected := itemtest.BruteForce(d, 10)
	require.Equal(t, expected, itemtest.Flatten(levels))
	require.Equal(t, itemtest.Sizes(itemtest.Levels(expected)), itemtest.Sizes(levels))
}

func TestVariantsAgree(t *testing.T) {
	d := itemtest.RandomDataset(3, 400, 25, 10)
	opts := Options{MinSupport: 12}
	expected := itemtest.BruteForce(d, 12)

	newHybrid := func(pass int) func(Options) (itemsets.Miner, error) {
		return func(o Options) (itemsets.Miner, error) {
			o.SwitchPass = pass
			return NewHybrid(o)
		}
	}
	constructors := map[string]func(Options) (itemsets.Miner, error){
		"apriori":    func(o Options) (itemsets.Miner, error) { return New(o) },
		"tid":        func(o Options) (itemsets.Miner, error) { return NewTID(o) },
		"hybrid-2":   newHybrid(2),
		"hybrid-3":   newHybrid(3),
		"hybrid-4":   newHybrid(4),
		"trie":       func(o Options) (itemsets.Miner, error) { return NewTrie(o) },
		"subsets":    func(o Options) (itemsets.Miner, error) { o.Strategy = itemsets.SubsetEnumeration; return New(o) },
		"trie-scans": func(o Options) (itemsets.Miner, error) { o.Strategy = itemsets.TrieEnumeration; return New(o) },
		"dhp": func(o Options) (itemsets.Miner, error) {
			o.HashFilterBuckets = 64
			return New(o)
		},
		"tid-bitset": func(o Options) (itemsets.Miner, error) {
			o.SwitchPass = 3
			o.TIDThreshold = 1 << 20
			return NewHybrid(o)
		},
		"tid-subsets": func(o Options) (itemsets.Miner, error) {
			o.SwitchPass = 3
			o.TIDThreshold = 1
			return NewHybrid(o)
		},
		"small-fanout": func(o Options) (itemsets.Miner, error) { o.Fanout = 2; return New(o) },
	}
	for name, constructor := range constructors {
		t.Run(name, func(t *testing.T) {
			miner, err := constructor(opts)
			require.Nil(t, err)
			levels, err := itemtest.RunMiner(miner, d)
			require.Nil(t, err)
			require.Equal(t, expected, itemtest.Flatten(levels))
		})
	}
}

func TestStream(t *testing.T) {
	miner, err := NewTID(Options{MinSupport: 2})
	require.Nil(t, err)
	var sizes []int
	var streamed []itemsets.Itemset
	err = miner.Stream(itemtest.CanonicalDataset(), func(set itemsets.Itemset, support uint64) error {
		require.True(t, support >= 2)
		if len(sizes) < len(set) {
			sizes = append(sizes, 0)
		}
		sizes[len(set)-1]++
		streamed = append(streamed, set)
		return nil
	})
	require.Nil(t, err)
	require.Equal(t, []int{5, 6, 2}, sizes)
	require.Equal(t, itemsets.Itemset{0, 1, 4}, streamed[len(streamed)-1])
}

func TestStreamStopsOnError(t *testing.T) {
	miner, err := New(Options{MinSupport: 2})
	require.Nil(t, err)
	stop := fmt.Errorf("stop")
	calls := 0
	err = miner.Stream(itemtest.CanonicalDataset(), func(set itemsets.Itemset, support uint64) error {
		calls++
		return stop
	})
	require.ErrorIs(t, err, stop)
	require.Equal(t, 1, calls)
}

func TestSupportAboveTransactionCount(t *testing.T) {
	opts := Options{MinSupport: 10, SwitchPass: 2}
	a, err := New(opts)
	require.Nil(t, err)
	h, err := NewHybrid(opts)
	require.Nil(t, err)
	tm, err := NewTrie(opts)
	require.Nil(t, err)
	for _, miner := range []itemsets.Miner{a, h, tm} {
		levels, err := miner.Mine(itemtest.CanonicalDataset())
		require.Nil(t, err)
		require.Empty(t, levels)
	}
}

func TestInvalidOptions(t *testing.T) {
	_, err := New(Options{})
	require.Equal(t, errors.ZeroSupportError{}, err)
	_, err = NewTID(Options{})
	require.Equal(t, errors.ZeroSupportError{}, err)
	_, err = NewHybrid(Options{MinSupport: 1, SwitchPass: 1})
	require.Equal(t, errors.InvalidSwitchPassError{Pass: 1, Minimum: 2}, err)
}

func TestInvalidDataset(t *testing.T) {
	miner, err := New(Options{MinSupport: 1})
	require.Nil(t, err)
	_, err = miner.Mine(itemsets.NewDataset(nil, 3))
	require.Equal(t, errors.EmptyDatasetError{}, err)

	_, err = miner.Mine(&itemsets.Dataset{Transactions: []itemsets.Itemset{{0, 5}}, NumItems: 3})
	require.NotNil(t, err)
	require.ErrorAs(t, err, &errors.ItemOutOfRangeError{})
}

func TestStats(t *testing.T) {
	miner, err := New(Options{MinSupport: 2})
	require.Nil(t, err)
	_, err = miner.Mine(itemtest.CanonicalDataset())
	require.Nil(t, err)
	stats := miner.Stats()
	// the final pass yields nothing, but is still recorded
	require.Len(t, stats.GetPassRuntimes(), 4)
	require.Equal(t, []int{5, 6, 2, 0}, stats.GetFrequentCounts())
	require.Equal(t, 2, stats.GetCandidateCounts()[2])
	subsets, trie := stats.GetStrategyCounts()
	require.True(t, subsets+trie > 0)
	require.True(t, stats.GetRuntime() > 0)
}
