package counting

import (
	"github.com/go-sif/itemsets"
	"github.com/go-sif/itemsets/internal/candidates"
)

// DefaultStrategyFactor weighs the cost of one trie probe against one
// transaction-membership test when choosing a Strategy. It is an empirical constant.
const DefaultStrategyFactor = 13

// Scanner counts the candidates of a HashTrie contained in transactions
type Scanner struct {
	Factor uint64            // cost multiplier applied to the subset count; 0 selects DefaultStrategyFactor
	Force  itemsets.Strategy // overrides the per-transaction choice, unless Adaptive

	SubsetScans uint64 // number of transactions scanned by SubsetEnumeration
	TrieScans   uint64 // number of transactions scanned by TrieEnumeration
}

// Choose returns the cheaper Strategy for a transaction of length n at pass k, over
// a trie holding size candidates. C(n, k) saturates, so that overflow always
// favors trie enumeration.
func (s *Scanner) Choose(n, k, size int) itemsets.Strategy {
	if s.Force != itemsets.Adaptive {
		return s.Force
	}
	factor := s.Factor
	if factor == 0 {
		factor = DefaultStrategyFactor
	}
	subsets := candidates.SaturatingMul(factor, candidates.Binomial(n, k))
	probes := candidates.SaturatingMul(uint64(size), uint64(n))
	if probes < subsets {
		return itemsets.TrieEnumeration
	}
	return itemsets.SubsetEnumeration
}

// Scan increments the count of every candidate in trie contained in t, returning
// the number of increments applied. Transactions shorter than k are skipped.
func (s *Scanner) Scan(t itemsets.Itemset, k int, trie *HashTrie) int {
	if len(t) < k || trie.Len() == 0 {
		return 0
	}
	applied := 0
	switch s.Choose(len(t), k, trie.Len()) {
	case itemsets.TrieEnumeration:
		s.TrieScans++
		trie.forEachEntry(func(e *trieEntry) {
			if e.set.IsSubsetOf(t) {
				e.count++
				applied++
			}
		})
	default:
		s.SubsetScans++
		candidates.ForEachSubset(t, k, func(sub itemsets.Itemset) {
			if trie.Increment(sub) {
				applied++
			}
		})
	}
	return applied
}

// ScanAll scans every transaction of a Dataset
func (s *Scanner) ScanAll(d *itemsets.Dataset, k int, trie *HashTrie) {
	for _, t := range d.Transactions {
		s.Scan(t, k, trie)
	}
}
