package distribution

import (
	"fmt"
	"testing"

	"github.com/go-sif/itemsets"
	"github.com/go-sif/itemsets/apriori"
	"github.com/go-sif/itemsets/errors"
	itemtest "github.com/go-sif/itemsets/testing"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestCanonicalDataset(t *testing.T) {
	defer goleak.VerifyNone(t)

	miner, err := New(Options{MinSupport: 2, Threads: 3})
	require.Nil(t, err)
	levels, err := miner.Mine(itemtest.CanonicalDataset())
	require.Nil(t, err)
	require.Equal(t, []int{5, 6, 2}, itemtest.Sizes(levels))
	require.Equal(t, []itemsets.Itemset{{0, 1, 2}, {0, 1, 4}}, levels[2].Itemsets())
}

func TestPartitionInvariance(t *testing.T) {
	defer goleak.VerifyNone(t)

	d := itemtest.RandomDataset(5, 501, 30, 9)
	sequential, err := apriori.New(apriori.Options{MinSupport: 15})
	require.Nil(t, err)
	levels, err := sequential.Mine(d)
	require.Nil(t, err)
	expected := itemtest.Flatten(levels)
	require.NotEmpty(t, expected)

	for _, threads := range []int{1, 2, 4, 8} {
		for _, switchPass := range []int{0, 3, 4} {
			t.Run(fmt.Sprintf("threads=%d/switch=%d", threads, switchPass), func(t *testing.T) {
				opts := Options{MinSupport: 15, Threads: threads, SwitchPass: switchPass}
				var miner *CountDistribution
				if switchPass == 0 {
					miner, err = New(opts)
				} else {
					miner, err = NewHybrid(opts)
				}
				require.Nil(t, err)
				levels, err := miner.Mine(d)
				require.Nil(t, err)
				require.Equal(t, expected, itemtest.Flatten(levels))
			})
		}
	}
}

func TestMoreThreadsThanTransactions(t *testing.T) {
	defer goleak.VerifyNone(t)

	miner, err := NewHybrid(Options{MinSupport: 2, Threads: 16, SwitchPass: 3})
	require.Nil(t, err)
	levels, err := miner.Mine(itemtest.CanonicalDataset())
	require.Nil(t, err)
	require.Equal(t, []int{5, 6, 2}, itemtest.Sizes(levels))
}

func TestStream(t *testing.T) {
	defer goleak.VerifyNone(t)

	miner, err := New(Options{MinSupport: 2, Threads: 2})
	require.Nil(t, err)
	count := 0
	err = miner.Stream(itemtest.CanonicalDataset(), func(set itemsets.Itemset, support uint64) error {
		require.True(t, support >= 2)
		count++
		return nil
	})
	require.Nil(t, err)
	require.Equal(t, 13, count)
}

func TestWorkerPanic(t *testing.T) {
	defer goleak.VerifyNone(t)

	miner, err := New(Options{MinSupport: 2, Threads: 4})
	require.Nil(t, err)
	miner.beforeCount = func(shard, k int) {
		if shard == 2 && k == 2 {
			panic(fmt.Errorf("shard failure"))
		}
	}
	levels, err := miner.Mine(itemtest.CanonicalDataset())
	require.Nil(t, levels)
	require.NotNil(t, err)
	var wpe errors.WorkerPanicError
	require.ErrorAs(t, err, &wpe)
	require.Equal(t, 2, wpe.Pass)
	require.Equal(t, 2, wpe.Shard)
	require.Contains(t, wpe.Error(), "shard failure")
}

func TestInvalidOptions(t *testing.T) {
	_, err := New(Options{Threads: 1})
	require.Equal(t, errors.ZeroSupportError{}, err)
	_, err = New(Options{MinSupport: 1})
	require.Equal(t, errors.InvalidThreadCountError{Threads: 0}, err)
	_, err = NewHybrid(Options{MinSupport: 1, Threads: 2, SwitchPass: 2})
	require.Equal(t, errors.InvalidSwitchPassError{Pass: 2, Minimum: 3}, err)
}

func TestStats(t *testing.T) {
	defer goleak.VerifyNone(t)

	miner, err := New(Options{MinSupport: 2, Threads: 2, Strategy: itemsets.TrieEnumeration})
	require.Nil(t, err)
	_, err = miner.Mine(itemtest.CanonicalDataset())
	require.Nil(t, err)
	require.Equal(t, []int{5, 6, 2, 0}, miner.Stats().GetFrequentCounts())
	subsets, trie := miner.Stats().GetStrategyCounts()
	require.Zero(t, subsets)
	// pass 3 scans the 4 transactions holding at least 3 items; pass 4 has no candidates
	require.EqualValues(t, 4, trie)
}
