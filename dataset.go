package itemsets

import (
	errors "github.com/go-sif/itemsets/errors"
	"github.com/hashicorp/go-multierror"
)

// A Dataset is an ordered sequence of transactions over NumItems dense items.
// Datasets are shared read-only between miners and their workers, and are never
// mutated after they are loaded.
type Dataset struct {
	Transactions []Itemset
	NumItems     int
}

// NewDataset is a factory for Datasets. If numItems is 0, it is inferred as one
// more than the largest item present.
func NewDataset(transactions []Itemset, numItems int) *Dataset {
	if numItems == 0 {
		for _, t := range transactions {
			if len(t) > 0 && int(t[len(t)-1]) >= numItems {
				numItems = int(t[len(t)-1]) + 1
			}
		}
	}
	return &Dataset{Transactions: transactions, NumItems: numItems}
}

// Len returns the number of transactions in this Dataset
func (d *Dataset) Len() int {
	return len(d.Transactions)
}

// Validate checks that this Dataset is non-empty and that every transaction is
// canonical and within [0, NumItems). All problems found are returned together.
func (d *Dataset) Validate() error {
	if len(d.Transactions) == 0 {
		return errors.EmptyDatasetError{}
	}
	var multierr *multierror.Error
	for i, t := range d.Transactions {
		if !t.IsCanonical() {
			multierr = multierror.Append(multierr, errors.UnsortedTransactionError{Transaction: i})
		}
		for _, it := range t {
			if int(it) >= d.NumItems {
				multierr = multierror.Append(multierr, errors.ItemOutOfRangeError{Transaction: i, Item: uint32(it), NumItems: d.NumItems})
				break
			}
		}
	}
	return multierr.ErrorOrNil()
}

// Shards splits this Dataset into n contiguous, disjoint partitions of near-equal
// size. The last partition absorbs the remainder. Shards share transaction memory
// with this Dataset. If n exceeds the number of transactions, leading shards are empty.
func (d *Dataset) Shards(n int) []*Dataset {
	if n < 1 {
		n = 1
	}
	shards := make([]*Dataset, n)
	count := len(d.Transactions) / n
	for i := 0; i < n; i++ {
		start := count * i
		end := count * (i + 1)
		if i == n-1 {
			end = len(d.Transactions)
		}
		shards[i] = &Dataset{Transactions: d.Transactions[start:end:end], NumItems: d.NumItems}
	}
	return shards
}
