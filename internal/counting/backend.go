package counting

import (
	"fmt"

	"github.com/go-sif/itemsets"
)

// Kind tags the counting structure held by a Backend
type Kind int

const (
	// KindItems counts single items (pass 1)
	KindItems Kind = iota
	// KindPairs counts item pairs (pass 2)
	KindPairs
	// KindTrie counts candidates held in a HashTrie (pass 3 onwards, raw or TID scanning)
	KindTrie
)

// String returns a textual representation of this Kind
func (k Kind) String() string {
	switch k {
	case KindItems:
		return "items"
	case KindPairs:
		return "pairs"
	default:
		return "trie"
	}
}

// Backend is one of the counting structures used by a pass, selected once per pass.
// It gives passes and the Count Distribution merge a uniform Counter over all of them.
type Backend struct {
	kind  Kind
	items *Items
	pairs *Pairs
	trie  *HashTrie
}

// ItemsBackend wraps an Items counter
func ItemsBackend(c *Items) *Backend {
	return &Backend{kind: KindItems, items: c}
}

// PairsBackend wraps a Pairs counter
func PairsBackend(c *Pairs) *Backend {
	return &Backend{kind: KindPairs, pairs: c}
}

// TrieBackend wraps a HashTrie
func TrieBackend(t *HashTrie) *Backend {
	return &Backend{kind: KindTrie, trie: t}
}

// Kind returns the tag of this Backend
func (b *Backend) Kind() Kind {
	return b.kind
}

func (b *Backend) counter() itemsets.Counter {
	switch b.kind {
	case KindItems:
		return b.items
	case KindPairs:
		return b.pairs
	default:
		return b.trie
	}
}

// Increment adds one to the count of set
func (b *Backend) Increment(set itemsets.Itemset) bool {
	return b.counter().Increment(set)
}

// ForEach visits every counted Itemset. set must not be retained by fn.
func (b *Backend) ForEach(fn func(set itemsets.Itemset, count uint64)) {
	b.counter().ForEach(fn)
}

// Len returns the number of Itemsets counted
func (b *Backend) Len() int {
	return b.counter().Len()
}

// Merge merges another Backend of the same Kind into this one
func (b *Backend) Merge(o itemsets.Counter) error {
	ob, ok := o.(*Backend)
	if !ok {
		return fmt.Errorf("Incoming counter is not a Backend")
	}
	if ob.kind != b.kind {
		return fmt.Errorf("Cannot merge a %s Backend into a %s Backend", ob.kind, b.kind)
	}
	return b.counter().Merge(ob.counter())
}

// Frequent extracts the Itemsets of size k counted at least minSupport times
func (b *Backend) Frequent(k int, minSupport uint64) *itemsets.FrequentSet {
	if b.kind == KindTrie {
		fs := b.trie.Frequent(minSupport)
		if fs.Size() == 0 {
			return itemsets.NewFrequentSet(k, nil, nil)
		}
		return fs
	}
	var sets []itemsets.Itemset
	var supports []uint64
	b.ForEach(func(set itemsets.Itemset, count uint64) {
		if count >= minSupport {
			sets = append(sets, set.Clone())
			supports = append(supports, count)
		}
	})
	return itemsets.NewFrequentSet(k, sets, supports)
}
