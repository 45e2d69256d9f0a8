// Package sink defines destinations for streams of frequent Itemsets
package sink

import "github.com/go-sif/itemsets"

// A Sink consumes a stream of frequent Itemsets. Sink.Write is an itemsets.StreamFunc.
type Sink interface {
	Write(set itemsets.Itemset, support uint64) error // Write consumes one frequent Itemset
	Close() error                                     // Close flushes any buffered output and releases resources
}

// A Formatter renders an Itemset for output, e.g. with the original item labels
type Formatter func(set itemsets.Itemset) string

// DefaultFormatter renders the item indices of an Itemset separated by spaces
func DefaultFormatter(set itemsets.Itemset) string {
	return set.String()
}

// Multi writes to several Sinks in turn
type Multi []Sink

// Write writes to every Sink, stopping at the first error
func (m Multi) Write(set itemsets.Itemset, support uint64) error {
	for _, s := range m {
		if err := s.Write(set, support); err != nil {
			return err
		}
	}
	return nil
}

// Close closes every Sink, returning the first error
func (m Multi) Close() error {
	var first error
	for _, s := range m {
		if err := s.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
