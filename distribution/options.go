package distribution

import (
	"github.com/go-sif/itemsets"
	"github.com/go-sif/itemsets/errors"
	"github.com/go-sif/itemsets/internal/engine"
	"github.com/rs/zerolog"
)

// Options configures a Count Distribution miner
type Options struct {
	MinSupport     uint64            // the minimum number of transactions containing a frequent Itemset
	Threads        int               // the number of shards, each counted by its own goroutine
	Fanout         int               // branching factor of the counting tries; 0 selects 50
	StrategyFactor uint64            // cost multiplier of subset enumeration when choosing a scanning strategy; 0 selects 13
	Strategy       itemsets.Strategy // forces a scanning strategy, unless Adaptive
	TIDThreshold   int               // frequent Itemsets below which TID switch-in tests each one against a transaction; 0 selects 400
	SwitchPass     int               // the first pass counted from TID entries, for NewHybrid. Must be >= 3.
	Logger         zerolog.Logger    // the zero Logger discards events
}

func (o *Options) validate() error {
	if o.MinSupport == 0 {
		return errors.ZeroSupportError{}
	}
	if o.Threads < 1 {
		return errors.InvalidThreadCountError{Threads: o.Threads}
	}
	return nil
}

func (o *Options) engineConfig() *engine.Config {
	return &engine.Config{
		MinSupport:     o.MinSupport,
		Fanout:         o.Fanout,
		StrategyFactor: o.StrategyFactor,
		Strategy:       o.Strategy,
		TIDThreshold:   o.TIDThreshold,
	}
}
