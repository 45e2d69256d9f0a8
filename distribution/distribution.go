// Package distribution implements the Count Distribution scheme for mining frequent
// Itemsets in parallel: the Dataset is split into contiguous shards, every pass
// counts the same candidates over each shard in its own goroutine, and the partial
// counts are merged before filtering.
package distribution

import (
	"fmt"

	"github.com/go-sif/itemsets"
	"github.com/go-sif/itemsets/errors"
	"github.com/go-sif/itemsets/internal/counting"
	"github.com/go-sif/itemsets/internal/engine"
	"github.com/go-sif/itemsets/internal/stats"
	"github.com/sourcegraph/conc"
	"github.com/sourcegraph/conc/panics"
)

// CountDistribution mines frequent Itemsets across Options.Threads shards. Its
// results are identical to a sequential Apriori run over the whole Dataset.
// A CountDistribution must not be used by more than one goroutine at a time.
type CountDistribution struct {
	name  string
	opts  Options
	conf  *engine.Config
	stats stats.RunStatistics

	beforeCount func(shard, k int) // test hook, run inside each worker goroutine
}

// New returns a CountDistribution miner whose workers scan raw transactions in every pass
func New(opts Options) (*CountDistribution, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &CountDistribution{name: "count-distribution", opts: opts, conf: opts.engineConfig()}, nil
}

// NewHybrid returns a CountDistribution miner whose workers switch to TID entries of
// their own shard from Options.SwitchPass on
func NewHybrid(opts Options) (*CountDistribution, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if opts.SwitchPass < 3 {
		return nil, errors.InvalidSwitchPassError{Pass: opts.SwitchPass, Minimum: 3}
	}
	conf := opts.engineConfig()
	conf.SwitchPass = opts.SwitchPass
	return &CountDistribution{name: "count-distribution-hybrid", opts: opts, conf: conf}, nil
}

// Mine returns every frequent Itemset of d, one FrequentSet per size
func (cd *CountDistribution) Mine(d *itemsets.Dataset) ([]*itemsets.FrequentSet, error) {
	return engine.Collect(func(emit engine.EmitFunc) error {
		return cd.run(d, emit)
	})
}

// Stream calls fn with every frequent Itemset of d, as soon as its pass completes
func (cd *CountDistribution) Stream(d *itemsets.Dataset, fn itemsets.StreamFunc) error {
	return cd.run(d, engine.Streaming(fn))
}

// Stats returns the statistics of the most recent run
func (cd *CountDistribution) Stats() itemsets.RuntimeStatistics {
	return &cd.stats
}

func (cd *CountDistribution) run(d *itemsets.Dataset, emit engine.EmitFunc) error {
	if err := d.Validate(); err != nil {
		return err
	}
	shards := d.Shards(cd.opts.Threads)
	workers := make([]*engine.Worker, len(shards))
	for i, shard := range shards {
		workers[i] = engine.NewWorker(shard, cd.conf)
	}
	r := &engine.Run{Name: cd.name, Logger: cd.opts.Logger, Stats: &cd.stats}
	return r.Drive(func(k int, prev *itemsets.FrequentSet) (*itemsets.FrequentSet, int, error) {
		merged, err := cd.countPass(workers, k, prev)
		if err != nil {
			return nil, 0, err
		}
		return merged.Frequent(k, cd.opts.MinSupport), merged.Len(), nil
	}, emit)
}

// countPass runs pass k on every worker concurrently and merges their counts. The
// workers share prev read-only; each owns its counters until the merge.
func (cd *CountDistribution) countPass(workers []*engine.Worker, k int, prev *itemsets.FrequentSet) (*counting.Backend, error) {
	backends := make([]*counting.Backend, len(workers))
	catchers := make([]panics.Catcher, len(workers))
	var wg conc.WaitGroup
	for i, w := range workers {
		wg.Go(func() {
			catchers[i].Try(func() {
				if cd.beforeCount != nil {
					cd.beforeCount(i, k)
				}
				backends[i] = w.Count(k, prev)
			})
		})
	}
	wg.Wait()
	for i := range catchers {
		if r := catchers[i].Recovered(); r != nil {
			return nil, errors.WorkerPanicError{Pass: k, Shard: i, Cause: r.AsError()}
		}
	}

	merged := backends[0]
	for i, b := range backends {
		subsets, trie := workers[i].TakeScans()
		cd.stats.AddScans(subsets, trie)
		if i == 0 {
			continue
		}
		if err := merged.Merge(b); err != nil {
			return nil, fmt.Errorf("failed to merge counts of shard %d: %w", i, err)
		}
	}
	return merged, nil
}
