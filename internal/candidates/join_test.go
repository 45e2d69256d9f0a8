package candidates

import (
	"testing"

	"github.com/go-sif/itemsets"
	"github.com/stretchr/testify/require"
)

func collect(fn func(emit func(itemsets.Itemset))) []itemsets.Itemset {
	var res []itemsets.Itemset
	fn(func(c itemsets.Itemset) {
		res = append(res, c.Clone())
	})
	return res
}

func TestJoin(t *testing.T) {
	sorted := []itemsets.Itemset{{0, 1}, {0, 2}, {0, 4}, {1, 2}, {1, 3}, {1, 4}, {3, 4}}
	res := collect(func(emit func(itemsets.Itemset)) { Join(sorted, emit) })
	require.Equal(t, []itemsets.Itemset{
		{0, 1, 2}, {0, 1, 4}, {0, 2, 4},
		{1, 2, 3}, {1, 2, 4}, {1, 3, 4},
	}, res)
}

func TestJoinSingletons(t *testing.T) {
	sorted := []itemsets.Itemset{{1}, {3}, {5}}
	res := collect(func(emit func(itemsets.Itemset)) { Join(sorted, emit) })
	require.Equal(t, []itemsets.Itemset{{1, 3}, {1, 5}, {3, 5}}, res)
}

func TestJoinTooFew(t *testing.T) {
	require.Empty(t, collect(func(emit func(itemsets.Itemset)) { Join(nil, emit) }))
	require.Empty(t, collect(func(emit func(itemsets.Itemset)) { Join([]itemsets.Itemset{{1, 2}}, emit) }))
}

func TestCanBePruned(t *testing.T) {
	prev := itemsets.NewFrequentSet(3, []itemsets.Itemset{
		{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3}, {0, 1, 4}, {1, 2, 4},
	}, []uint64{1, 1, 1, 1, 1, 1})
	work := make(itemsets.Itemset, 3)
	require.False(t, CanBePruned(prev, itemsets.Itemset{0, 1, 2, 3}, work))
	// {1, 3, 4} is missing
	require.True(t, CanBePruned(prev, itemsets.Itemset{0, 1, 3, 4}, work))
	// {1, 2, 4} is present, but {0, 2, 4} is missing
	require.True(t, CanBePruned(prev, itemsets.Itemset{0, 1, 2, 4}, work))
	// pairs are never pruned
	require.False(t, CanBePruned(prev, itemsets.Itemset{7, 8}, work))
}

func TestGenerate(t *testing.T) {
	// the pairs of the classic 9-transaction example at a support of 2
	prev := itemsets.NewFrequentSet(2, []itemsets.Itemset{
		{1, 4}, {0, 1}, {0, 2}, {0, 4}, {1, 2}, {1, 3},
	}, []uint64{2, 4, 4, 2, 4, 2})
	res := collect(func(emit func(itemsets.Itemset)) { Generate(prev, nil, emit) })
	require.Equal(t, []itemsets.Itemset{{0, 1, 2}, {0, 1, 4}}, res)

	res = collect(func(emit func(itemsets.Itemset)) {
		Generate(prev, func(c itemsets.Itemset) bool { return c[2] != 4 }, emit)
	})
	require.Equal(t, []itemsets.Itemset{{0, 1, 2}}, res)

	empty := itemsets.NewFrequentSet(2, nil, nil)
	require.Empty(t, collect(func(emit func(itemsets.Itemset)) { Generate(empty, nil, emit) }))
}
