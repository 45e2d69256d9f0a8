package itemsets

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFrequentSet(t *testing.T) {
	fs := NewFrequentSet(2, []Itemset{{1, 4}, {0, 3}, {1, 2}}, []uint64{5, 3, 8})
	require.Equal(t, 2, fs.Size())
	require.Equal(t, 3, fs.Len())
	require.Equal(t, []Itemset{{0, 3}, {1, 2}, {1, 4}}, fs.Itemsets())
	set, support := fs.Get(2)
	require.Equal(t, Itemset{1, 4}, set)
	require.EqualValues(t, 5, support)

	require.Equal(t, 1, fs.Index(Itemset{1, 2}))
	require.Equal(t, -1, fs.Index(Itemset{1, 3}))
	require.True(t, fs.Contains(Itemset{0, 3}))
	support, ok := fs.Support(Itemset{1, 2})
	require.True(t, ok)
	require.EqualValues(t, 8, support)
	_, ok = fs.Support(Itemset{2, 3})
	require.False(t, ok)

	require.Equal(t, 3, Total([]*FrequentSet{fs}))
	require.Equal(t, 0, Total(nil))
}

func TestFrequentSetForEach(t *testing.T) {
	fs := NewFrequentSet(1, []Itemset{{2}, {0}, {1}}, []uint64{1, 2, 3})
	var seen []Itemset
	err := fs.ForEach(func(set Itemset, support uint64) error {
		seen = append(seen, set)
		return nil
	})
	require.Nil(t, err)
	require.Equal(t, []Itemset{{0}, {1}, {2}}, seen)

	stop := fmt.Errorf("stop")
	calls := 0
	err = fs.ForEach(func(set Itemset, support uint64) error {
		calls++
		return stop
	})
	require.Equal(t, stop, err)
	require.Equal(t, 1, calls)
}
