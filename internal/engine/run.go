// Package engine drives the level-wise passes shared by every miner: pass k turns
// Frequent(k-1) into candidates, counts them, and keeps the frequent ones.
package engine

import (
	"fmt"

	"github.com/go-sif/itemsets"
	"github.com/go-sif/itemsets/internal/stats"
	uuid "github.com/gofrs/uuid"
	"github.com/rs/zerolog"
)

// CountFunc executes pass k given the FrequentSet of pass k-1 (nil when k == 1),
// returning Frequent(k) and the number of candidates counted
type CountFunc func(k int, prev *itemsets.FrequentSet) (*itemsets.FrequentSet, int, error)

// EmitFunc receives each non-empty FrequentSet as soon as its pass completes
type EmitFunc func(fs *itemsets.FrequentSet) error

// Run describes one mining run
type Run struct {
	Name   string // the miner name, logged with every event
	Logger zerolog.Logger
	Stats  *stats.RunStatistics
}

// Drive executes passes k = 1, 2, ... until one yields no frequent Itemsets. Only
// the most recent FrequentSet is retained between passes.
func (r *Run) Drive(count CountFunc, emit EmitFunc) error {
	id, err := uuid.NewV4()
	if err != nil {
		return fmt.Errorf("failed to generate run id: %w", err)
	}
	logger := r.Logger.With().Str("run", id.String()).Str("miner", r.Name).Logger()
	r.Stats.Start()
	defer r.Stats.Finish()
	logger.Info().Msg("Starting mining run")

	var prev *itemsets.FrequentSet
	total := 0
	for k := 1; ; k++ {
		r.Stats.StartPass()
		fs, candidates, err := count(k, prev)
		if err != nil {
			logger.Error().Err(err).Int("pass", k).Msg("Pass failed")
			return err
		}
		elapsed := r.Stats.EndPass(candidates, fs.Len())
		logger.Debug().
			Int("pass", k).
			Int("candidates", candidates).
			Int("frequent", fs.Len()).
			Dur("elapsed", elapsed).
			Msg("Pass complete")
		if fs.Len() == 0 {
			break
		}
		if err := emit(fs); err != nil {
			return err
		}
		total += fs.Len()
		prev = fs
	}
	logger.Info().
		Int("passes", len(r.Stats.GetPassRuntimes())).
		Int("frequent", total).
		Dur("elapsed", r.Stats.GetRuntime()).
		Msg("Mining run complete")
	return nil
}

// Collect runs drive, retaining every FrequentSet it emits
func Collect(drive func(emit EmitFunc) error) ([]*itemsets.FrequentSet, error) {
	var levels []*itemsets.FrequentSet
	err := drive(func(fs *itemsets.FrequentSet) error {
		levels = append(levels, fs)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return levels, nil
}

// Streaming adapts a StreamFunc to an EmitFunc
func Streaming(fn itemsets.StreamFunc) EmitFunc {
	return func(fs *itemsets.FrequentSet) error {
		return fs.ForEach(fn)
	}
}
