// Package apriori implements the sequential Apriori family of frequent Itemset
// miners: Apriori, AprioriTID, AprioriHybrid and a prefix-trie variant.
package apriori

import (
	"github.com/go-sif/itemsets"
	"github.com/go-sif/itemsets/errors"
	"github.com/go-sif/itemsets/internal/engine"
	"github.com/go-sif/itemsets/internal/stats"
)

// Apriori mines frequent Itemsets level by level, counting candidates in a hashed
// trie. Depending on its constructor, passes read raw transactions (Apriori), TID
// entries (AprioriTID), or switch from the former to the latter (AprioriHybrid).
// An Apriori must not be used by more than one goroutine at a time.
type Apriori struct {
	name  string
	opts  Options
	conf  *engine.Config
	stats stats.RunStatistics
}

// New returns an Apriori miner which scans raw transactions in every pass. Setting
// Options.HashFilterBuckets enables direct hashing and pruning of candidates.
func New(opts Options) (*Apriori, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	conf := opts.engineConfig()
	conf.HashFilterBuckets = opts.HashFilterBuckets
	conf.HashFilterRows = opts.HashFilterRows
	return &Apriori{name: "apriori", opts: opts, conf: conf}, nil
}

// NewTID returns an AprioriTID miner, which reads raw transactions only in pass 1
func NewTID(opts Options) (*Apriori, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	conf := opts.engineConfig()
	conf.SwitchPass = 2
	return &Apriori{name: "apriori-tid", opts: opts, conf: conf}, nil
}

// NewHybrid returns an AprioriHybrid miner, which scans raw transactions before
// Options.SwitchPass and TID entries from then on
func NewHybrid(opts Options) (*Apriori, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if opts.SwitchPass < 2 {
		return nil, errors.InvalidSwitchPassError{Pass: opts.SwitchPass, Minimum: 2}
	}
	conf := opts.engineConfig()
	conf.SwitchPass = opts.SwitchPass
	return &Apriori{name: "apriori-hybrid", opts: opts, conf: conf}, nil
}

// Mine returns every frequent Itemset of d, one FrequentSet per size
func (a *Apriori) Mine(d *itemsets.Dataset) ([]*itemsets.FrequentSet, error) {
	return engine.Collect(func(emit engine.EmitFunc) error {
		return a.run(d, emit)
	})
}

// Stream calls fn with every frequent Itemset of d, as soon as its pass completes
func (a *Apriori) Stream(d *itemsets.Dataset, fn itemsets.StreamFunc) error {
	return a.run(d, engine.Streaming(fn))
}

// Stats returns the statistics of the most recent run
func (a *Apriori) Stats() itemsets.RuntimeStatistics {
	return &a.stats
}

func (a *Apriori) run(d *itemsets.Dataset, emit engine.EmitFunc) error {
	if err := d.Validate(); err != nil {
		return err
	}
	w := engine.NewWorker(d, a.conf)
	r := &engine.Run{Name: a.name, Logger: a.opts.Logger, Stats: &a.stats}
	return r.Drive(func(k int, prev *itemsets.FrequentSet) (*itemsets.FrequentSet, int, error) {
		b := w.Count(k, prev)
		a.stats.AddScans(w.TakeScans())
		return b.Frequent(k, a.opts.MinSupport), b.Len(), nil
	}, emit)
}
