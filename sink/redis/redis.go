// Package redis writes frequent Itemsets to a Redis sorted set, scored by support
package redis

import (
	"context"
	"fmt"

	"github.com/go-sif/itemsets"
	"github.com/go-sif/itemsets/sink"
	goredis "github.com/redis/go-redis/v9"
)

// DefaultKey is the sorted set written to when Options.Key is empty
const DefaultKey = "itemsets"

// DefaultBatchSize is the number of ZADDs pipelined per round trip
const DefaultBatchSize = 1024

// Options configures a Redis Sink
type Options struct {
	Key       string
	BatchSize int
	Format    sink.Formatter // renders sorted set members; defaults to sink.DefaultFormatter
}

// Sink pipelines ZADD key support member commands in batches
type Sink struct {
	ctx     context.Context
	pipe    goredis.Pipeliner
	pending int
	opts    Options
}

// New returns a Sink writing through client. The client is not closed by Close.
func New(ctx context.Context, client *goredis.Client, opts Options) *Sink {
	if opts.Key == "" {
		opts.Key = DefaultKey
	}
	if opts.BatchSize < 1 {
		opts.BatchSize = DefaultBatchSize
	}
	if opts.Format == nil {
		opts.Format = sink.DefaultFormatter
	}
	return &Sink{ctx: ctx, pipe: client.Pipeline(), opts: opts}
}

// Write queues one ZADD, sending the batch once it is full
func (s *Sink) Write(set itemsets.Itemset, support uint64) error {
	s.pipe.ZAdd(s.ctx, s.opts.Key, goredis.Z{Score: float64(support), Member: s.opts.Format(set)})
	s.pending++
	if s.pending >= s.opts.BatchSize {
		return s.flush()
	}
	return nil
}

func (s *Sink) flush() error {
	if s.pending == 0 {
		return nil
	}
	s.pending = 0
	if _, err := s.pipe.Exec(s.ctx); err != nil {
		return fmt.Errorf("failed to write itemsets to %s: %w", s.opts.Key, err)
	}
	return nil
}

// Close sends any queued ZADDs
func (s *Sink) Close() error {
	return s.flush()
}
