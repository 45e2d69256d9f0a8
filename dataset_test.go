package itemsets

import (
	"testing"

	"github.com/go-sif/itemsets/errors"
	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/require"
)

func TestNewDatasetInfersItems(t *testing.T) {
	d := NewDataset([]Itemset{{0, 4}, {}, {2}}, 0)
	require.Equal(t, 5, d.NumItems)
	require.Equal(t, 3, d.Len())
	require.Equal(t, 8, NewDataset([]Itemset{{0, 4}}, 8).NumItems)
}

func TestValidate(t *testing.T) {
	require.Nil(t, NewDataset([]Itemset{{0, 4}, {}, {2}}, 0).Validate())
	require.Equal(t, errors.EmptyDatasetError{}, NewDataset(nil, 3).Validate())

	d := &Dataset{
		Transactions: []Itemset{{0, 1}, {2, 1}, {1, 7}, {3, 3, 9}},
		NumItems:     5,
	}
	err := d.Validate()
	require.NotNil(t, err)
	merr, ok := err.(*multierror.Error)
	require.True(t, ok)
	require.Equal(t, []error{
		errors.UnsortedTransactionError{Transaction: 1},
		errors.ItemOutOfRangeError{Transaction: 2, Item: 7, NumItems: 5},
		errors.UnsortedTransactionError{Transaction: 3},
		errors.ItemOutOfRangeError{Transaction: 3, Item: 9, NumItems: 5},
	}, merr.Errors)
}

func TestShards(t *testing.T) {
	tx := make([]Itemset, 10)
	for i := range tx {
		tx[i] = Itemset{Item(i)}
	}
	d := NewDataset(tx, 0)

	shards := d.Shards(3)
	require.Len(t, shards, 3)
	require.Equal(t, 3, shards[0].Len())
	require.Equal(t, 3, shards[1].Len())
	require.Equal(t, 4, shards[2].Len())
	var joined []Itemset
	for _, s := range shards {
		require.Equal(t, 10, s.NumItems)
		joined = append(joined, s.Transactions...)
	}
	require.Equal(t, tx, joined)

	// appending to a shard must not overwrite its neighbour
	first := append(shards[0].Transactions, Itemset{9})
	require.Len(t, first, 4)
	require.Equal(t, Itemset{3}, shards[1].Transactions[0])

	shards = d.Shards(16)
	require.Len(t, shards, 16)
	require.Equal(t, 0, shards[0].Len())
	require.Equal(t, 10, shards[15].Len())
	require.Len(t, d.Shards(0), 1)
}
