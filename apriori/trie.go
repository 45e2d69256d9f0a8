package apriori

import (
	"github.com/go-sif/itemsets"
	"github.com/go-sif/itemsets/internal/counting"
	"github.com/go-sif/itemsets/internal/engine"
	"github.com/go-sif/itemsets/internal/stats"
)

// TrieMiner mines frequent Itemsets in a single prefix trie which holds every
// frequent Itemset found so far. Each pass walks every transaction down to depth k,
// prunes the infrequent leaves, and grows the next level by joining sibling leaves.
type TrieMiner struct {
	opts  Options
	stats stats.RunStatistics
}

// NewTrie returns a TrieMiner. Only MinSupport and Logger are read from opts.
func NewTrie(opts Options) (*TrieMiner, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &TrieMiner{opts: opts}, nil
}

// Mine returns every frequent Itemset of d, one FrequentSet per size
func (m *TrieMiner) Mine(d *itemsets.Dataset) ([]*itemsets.FrequentSet, error) {
	return engine.Collect(func(emit engine.EmitFunc) error {
		return m.run(d, emit)
	})
}

// Stream calls fn with every frequent Itemset of d, as soon as its pass completes
func (m *TrieMiner) Stream(d *itemsets.Dataset, fn itemsets.StreamFunc) error {
	return m.run(d, engine.Streaming(fn))
}

// Stats returns the statistics of the most recent run
func (m *TrieMiner) Stats() itemsets.RuntimeStatistics {
	return &m.stats
}

func (m *TrieMiner) run(d *itemsets.Dataset, emit engine.EmitFunc) error {
	if err := d.Validate(); err != nil {
		return err
	}
	trie := counting.NewPrefixTrie()
	r := &engine.Run{Name: "apriori-trie", Logger: m.opts.Logger, Stats: &m.stats}
	return r.Drive(func(k int, _ *itemsets.FrequentSet) (*itemsets.FrequentSet, int, error) {
		if k == 1 {
			for i := 0; i < d.NumItems; i++ {
				trie.Add(itemsets.Itemset{itemsets.Item(i)})
			}
		} else {
			trie.Extend(k - 1)
		}
		candidates := trie.LevelLen(k)
		for _, t := range d.Transactions {
			trie.CountTransaction(t, k)
		}
		trie.Prune(k, m.opts.MinSupport)
		return trie.Frequent(k), candidates, nil
	}, emit)
}
