// Package tid implements the transaction-ID reduction of AprioriTID: after a
// switch-in pass, every transaction is replaced by the set of frequent Itemsets it
// contains, and later passes join those sets instead of rescanning raw items.
package tid

import (
	"math"

	"github.com/bits-and-blooms/bitset"
	"github.com/go-sif/itemsets"
	"github.com/go-sif/itemsets/internal/candidates"
	"github.com/go-sif/itemsets/internal/counting"
)

// DefaultThreshold is the FrequentSet size below which FromTransactions tests every
// frequent Itemset against a transaction, rather than enumerating transaction subsets.
// It is an empirical constant.
const DefaultThreshold = 400

// An Entry holds the size-k Itemsets one transaction is known to contain, in
// lexicographic order
type Entry []itemsets.Itemset

// A List holds the non-empty Entries of a Dataset for one pass
type List struct {
	k       int
	entries []Entry
}

// K returns the size of the Itemsets held by each Entry
func (l *List) K() int {
	return l.k
}

// Len returns the number of transactions still active
func (l *List) Len() int {
	return len(l.entries)
}

// Entries returns the Entries of this List. The result must not be modified.
func (l *List) Entries() []Entry {
	return l.entries
}

// Start builds size-1 Entries directly from the items of each transaction
func Start(d *itemsets.Dataset) *List {
	l := &List{k: 1, entries: make([]Entry, 0, len(d.Transactions))}
	for _, t := range d.Transactions {
		if len(t) == 0 {
			continue
		}
		e := make(Entry, len(t))
		for i, it := range t {
			e[i] = itemsets.Itemset{it}
		}
		l.entries = append(l.entries, e)
	}
	return l
}

// FromTransactions switches a Dataset into TID mode at the pass following
// frequent: each transaction's Entry holds the Itemsets of frequent it contains.
// Below threshold frequent Itemsets (DefaultThreshold when < 1), each is tested
// against a bitset of the transaction's items; above it, the transaction's subsets
// are enumerated and looked up in frequent.
func FromTransactions(d *itemsets.Dataset, frequent *itemsets.FrequentSet, threshold int) *List {
	if threshold < 1 {
		threshold = DefaultThreshold
	}
	k := frequent.Size()
	l := &List{k: k}
	members := bitset.New(uint(d.NumItems))
	for _, t := range d.Transactions {
		if len(t) < k {
			continue
		}
		var e Entry
		if frequent.Len() < threshold || candidates.Binomial(len(t), k) > math.MaxInt32 {
			for _, it := range t {
				members.Set(uint(it))
			}
			for _, s := range frequent.Itemsets() {
				if containsAll(members, s) {
					e = append(e, s)
				}
			}
			for _, it := range t {
				members.Clear(uint(it))
			}
		} else {
			candidates.ForEachSubset(t, k, func(sub itemsets.Itemset) {
				if i := frequent.Index(sub); i >= 0 {
					e = append(e, frequent.Itemsets()[i])
				}
			})
		}
		if len(e) > 0 {
			l.entries = append(l.entries, e)
		}
	}
	return l
}

func containsAll(members *bitset.BitSet, s itemsets.Itemset) bool {
	for _, it := range s {
		if !members.Test(uint(it)) {
			return false
		}
	}
	return true
}

// Count joins each Entry with itself to form its size-(k+1) Itemsets, increments
// those held by trie, and returns the List of candidates each transaction contains.
// Transactions containing no candidate are dropped. Raw transactions are not read.
func (l *List) Count(trie *counting.HashTrie) *List {
	next := &List{k: l.k + 1, entries: make([]Entry, 0, len(l.entries))}
	for _, e := range l.entries {
		var out Entry
		candidates.Join(e, func(c itemsets.Itemset) {
			if trie.Increment(c) {
				out = append(out, c.Clone())
			}
		})
		if len(out) > 0 {
			next.entries = append(next.entries, out)
		}
	}
	return next
}

// Filter keeps only the Itemsets of each Entry which are in frequent, dropping
// transactions whose Entry becomes empty. Kept Itemsets share memory with frequent.
func (l *List) Filter(frequent *itemsets.FrequentSet) *List {
	next := &List{k: l.k, entries: make([]Entry, 0, len(l.entries))}
	for _, e := range l.entries {
		out := e[:0:0]
		for _, s := range e {
			if i := frequent.Index(s); i >= 0 {
				out = append(out, frequent.Itemsets()[i])
			}
		}
		if len(out) > 0 {
			next.entries = append(next.entries, out)
		}
	}
	return next
}
