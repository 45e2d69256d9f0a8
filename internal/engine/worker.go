package engine

import (
	"github.com/go-sif/itemsets"
	"github.com/go-sif/itemsets/internal/candidates"
	"github.com/go-sif/itemsets/internal/counting"
	"github.com/go-sif/itemsets/internal/tid"
)

// maxFilterSubsets bounds the subsets one transaction may hash into a HashFilter.
// A longer transaction disables the filter for the pass, since a filter missing
// some subsets could under-count.
const maxFilterSubsets = 1 << 16

// Config configures the passes of a Worker
type Config struct {
	MinSupport        uint64
	Fanout            int               // HashTrie branching factor; < 1 selects counting.DefaultFanout
	StrategyFactor    uint64            // 0 selects counting.DefaultStrategyFactor
	Strategy          itemsets.Strategy // forces a scanning strategy, unless Adaptive
	TIDThreshold      int               // < 1 selects tid.DefaultThreshold
	SwitchPass        int               // the first pass counted from TID entries; 0 never switches
	HashFilterBuckets int               // buckets per HashFilter row; 0 disables direct hashing and pruning
	HashFilterRows    int
}

// tidMode returns true iff pass k is counted from TID entries
func (c *Config) tidMode(k int) bool {
	return c.SwitchPass > 0 && k >= c.SwitchPass
}

// A Worker executes passes over one shard of a Dataset. A Worker is long-lived:
// its TID entries and hash filter persist from one pass to the next. It is not
// safe for concurrent use, but distinct Workers share nothing mutable.
type Worker struct {
	data    *itemsets.Dataset
	conf    *Config
	scanner counting.Scanner
	tids    *tid.List
	filter  *counting.HashFilter // estimates for the next pass, when enabled
}

// NewWorker returns a Worker over the transactions of data
func NewWorker(data *itemsets.Dataset, conf *Config) *Worker {
	return &Worker{
		data: data,
		conf: conf,
		scanner: counting.Scanner{
			Factor: conf.StrategyFactor,
			Force:  conf.Strategy,
		},
	}
}

// TakeScans returns, and resets, the number of transactions scanned by each strategy
func (w *Worker) TakeScans() (uint64, uint64) {
	subsets, trie := w.scanner.SubsetScans, w.scanner.TrieScans
	w.scanner.SubsetScans, w.scanner.TrieScans = 0, 0
	return subsets, trie
}

// Count counts the size-k candidates derived from prev, Frequent(k-1), over the
// transactions of this Worker. prev is ignored when k == 1.
func (w *Worker) Count(k int, prev *itemsets.FrequentSet) *counting.Backend {
	var b *counting.Backend
	switch {
	case k == 1:
		c := counting.NewItems(w.data.NumItems)
		for _, t := range w.data.Transactions {
			c.AddTransaction(t)
		}
		b = counting.ItemsBackend(c)
	case k == 2 && !w.conf.tidMode(k):
		c := counting.NewPairs(w.data.NumItems)
		for _, t := range w.data.Transactions {
			c.AddTransaction(t)
		}
		b = counting.PairsBackend(c)
	default:
		trie := w.Candidates(prev)
		if w.conf.tidMode(k) {
			w.countTIDs(k, prev, trie)
		} else {
			w.scanner.ScanAll(w.data, k, trie)
		}
		b = counting.TrieBackend(trie)
	}
	w.fillFilter(k)
	return b
}

// Candidates builds the HashTrie of size-(k+1) candidates from prev, discarding
// those the current hash filter proves infrequent
func (w *Worker) Candidates(prev *itemsets.FrequentSet) *counting.HashTrie {
	trie := counting.NewHashTrie(w.conf.Fanout)
	var keep func(itemsets.Itemset) bool
	if filter := w.filter; filter != nil {
		keep = func(c itemsets.Itemset) bool {
			return filter.Estimate(c) >= w.conf.MinSupport
		}
	}
	candidates.Generate(prev, keep, func(c itemsets.Itemset) {
		trie.Add(c)
	})
	w.filter = nil
	return trie
}

func (w *Worker) countTIDs(k int, prev *itemsets.FrequentSet, trie *counting.HashTrie) {
	switch {
	case w.tids != nil:
		w.tids = w.tids.Filter(prev)
	case k == 2:
		w.tids = tid.Start(w.data).Filter(prev)
	default:
		w.tids = tid.FromTransactions(w.data, prev, w.conf.TIDThreshold)
	}
	w.tids = w.tids.Count(trie)
}

// fillFilter hashes every (k+1)-subset of the raw transactions, for pruning the
// candidates of pass k+1. Pass 2 counts pairs exactly and TID passes never read raw
// transactions, so neither needs a filter.
func (w *Worker) fillFilter(k int) {
	if w.conf.HashFilterBuckets < 1 || k < 2 || w.conf.tidMode(k+1) {
		return
	}
	for _, t := range w.data.Transactions {
		if candidates.Binomial(len(t), k+1) > maxFilterSubsets {
			return
		}
	}
	filter := counting.NewHashFilter(w.conf.HashFilterRows, w.conf.HashFilterBuckets)
	for _, t := range w.data.Transactions {
		if len(t) > k {
			candidates.ForEachSubset(t, k+1, filter.Increment)
		}
	}
	w.filter = filter
}
