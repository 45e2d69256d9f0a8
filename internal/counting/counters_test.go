package counting

import (
	"testing"

	"github.com/go-sif/itemsets"
	"github.com/stretchr/testify/require"
)

func TestPairs(t *testing.T) {
	p := NewPairs(5)
	require.Equal(t, 10, p.Len())
	p.AddTransaction(itemsets.Itemset{0, 2, 4})
	p.AddTransaction(itemsets.Itemset{2, 4})
	require.True(t, p.Increment(itemsets.Itemset{0, 1}))
	require.False(t, p.Increment(itemsets.Itemset{0, 1, 2}))

	require.EqualValues(t, 2, p.Get(2, 4))
	require.EqualValues(t, 2, p.Get(4, 2))
	require.EqualValues(t, 1, p.Get(0, 4))
	require.EqualValues(t, 1, p.Get(0, 1))
	require.EqualValues(t, 0, p.Get(3, 4))
	require.Panics(t, func() { p.Get(3, 3) })

	var visited []itemsets.Itemset
	p.ForEach(func(set itemsets.Itemset, count uint64) {
		require.True(t, set.IsCanonical())
		require.Equal(t, p.Get(set[0], set[1]), count)
		visited = append(visited, set.Clone())
	})
	require.Len(t, visited, 10)
	require.Equal(t, itemsets.Itemset{0, 1}, visited[0])
	require.Equal(t, itemsets.Itemset{3, 4}, visited[9])
}

func TestPairsMerge(t *testing.T) {
	left, right := NewPairs(4), NewPairs(4)
	left.AddTransaction(itemsets.Itemset{0, 1, 3})
	right.AddTransaction(itemsets.Itemset{1, 3})
	require.Nil(t, left.Merge(right))
	require.EqualValues(t, 2, left.Get(1, 3))
	require.EqualValues(t, 1, left.Get(0, 3))
	require.NotNil(t, left.Merge(NewPairs(5)))
	require.NotNil(t, left.Merge(NewItems(4)))
}

func TestItems(t *testing.T) {
	c := NewItems(4)
	c.AddTransaction(itemsets.Itemset{0, 3})
	c.AddTransaction(itemsets.Itemset{3})
	require.True(t, c.Increment(itemsets.Itemset{1}))
	require.False(t, c.Increment(itemsets.Itemset{9}))
	require.False(t, c.Increment(itemsets.Itemset{1, 2}))
	require.EqualValues(t, 2, c.Get(3))
	require.EqualValues(t, 1, c.Get(1))
	require.EqualValues(t, 0, c.Get(2))

	other := NewItems(4)
	other.AddTransaction(itemsets.Itemset{2, 3})
	require.Nil(t, c.Merge(other))
	require.EqualValues(t, 3, c.Get(3))
	require.NotNil(t, c.Merge(NewItems(2)))
}

func TestBackend(t *testing.T) {
	items := NewItems(3)
	items.AddTransaction(itemsets.Itemset{0, 2})
	items.AddTransaction(itemsets.Itemset{2})
	b := ItemsBackend(items)
	require.Equal(t, KindItems, b.Kind())
	require.Equal(t, "items", b.Kind().String())
	require.Equal(t, 3, b.Len())

	other := NewItems(3)
	other.AddTransaction(itemsets.Itemset{0})
	require.Nil(t, b.Merge(ItemsBackend(other)))
	fs := b.Frequent(1, 2)
	require.Equal(t, []itemsets.Itemset{{0}, {2}}, fs.Itemsets())

	require.NotNil(t, b.Merge(PairsBackend(NewPairs(3))))
	require.NotNil(t, b.Merge(other))
}

func TestBackendTrie(t *testing.T) {
	empty := TrieBackend(NewHashTrie(0))
	fs := empty.Frequent(3, 1)
	require.Equal(t, 3, fs.Size())
	require.Equal(t, 0, fs.Len())

	left, right := NewHashTrie(0), NewHashTrie(0)
	for _, trie := range []*HashTrie{left, right} {
		trie.Add(itemsets.Itemset{0, 1})
		trie.Add(itemsets.Itemset{1, 2})
		trie.Increment(itemsets.Itemset{1, 2})
	}
	b := TrieBackend(left)
	require.True(t, b.Increment(itemsets.Itemset{0, 1}))
	require.Nil(t, b.Merge(TrieBackend(right)))
	fs = b.Frequent(2, 2)
	require.Equal(t, []itemsets.Itemset{{1, 2}}, fs.Itemsets())
}
