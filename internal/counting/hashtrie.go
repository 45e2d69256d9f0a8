package counting

import (
	"encoding/binary"
	"fmt"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/go-sif/itemsets"
)

// DefaultFanout is the default number of child slots per internal HashTrie node
const DefaultFanout = 50

// HashTrie holds the candidate Itemsets of one pass, all of the same size, with a
// counter per candidate. Each level hashes the next item of an Itemset into one of
// fanout child slots. The slot chosen by the last item holds a leaf bucket, which
// resolves hash collisions by comparing full Itemsets.
//
// Nodes live in a single arena and refer to their children by arena index, with 0
// (the root, which is never a child) marking an empty slot.
type HashTrie struct {
	fanout int
	depth  int // itemset size, fixed by the first Add
	nodes  []trieNode
	size   int
}

type trieNode struct {
	children []int32     // internal nodes only
	entries  []trieEntry // leaf nodes only
}

type trieEntry struct {
	set   itemsets.Itemset
	count uint64
}

// NewHashTrie returns an empty HashTrie. A fanout < 1 selects DefaultFanout.
func NewHashTrie(fanout int) *HashTrie {
	if fanout < 1 {
		fanout = DefaultFanout
	}
	t := &HashTrie{fanout: fanout}
	t.nodes = append(t.nodes, trieNode{children: make([]int32, fanout)})
	return t
}

// Fanout returns the number of child slots per internal node
func (t *HashTrie) Fanout() int {
	return t.fanout
}

// Depth returns the size of the Itemsets held by this HashTrie, or 0 if it is empty
func (t *HashTrie) Depth() int {
	return t.depth
}

// Len returns the number of Itemsets held by this HashTrie
func (t *HashTrie) Len() int {
	return t.size
}

func (t *HashTrie) slot(it itemsets.Item) int {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(it))
	return int(xxhash.Sum64(b[:]) % uint64(t.fanout))
}

// leaf descends to the leaf bucket for set, or returns -1 if there is none
func (t *HashTrie) leaf(set itemsets.Itemset) int32 {
	if len(set) == 0 {
		panic("counting: empty itemset passed to HashTrie")
	}
	if len(set) != t.depth {
		return -1
	}
	var cur int32
	for _, it := range set {
		next := t.nodes[cur].children[t.slot(it)]
		if next == 0 {
			return -1
		}
		cur = next
	}
	return cur
}

func (t *HashTrie) find(set itemsets.Itemset) *trieEntry {
	l := t.leaf(set)
	if l < 0 {
		return nil
	}
	entries := t.nodes[l].entries
	for i := range entries {
		if entries[i].set.Equal(set) {
			return &entries[i]
		}
	}
	return nil
}

// Add inserts set with a count of 0, returning false if it was already present.
// set is copied. Adding an empty or non-canonical Itemset, or one whose size differs
// from the Itemsets already held, is a contract violation.
func (t *HashTrie) Add(set itemsets.Itemset) bool {
	if len(set) == 0 {
		panic("counting: empty itemset passed to HashTrie")
	}
	if !set.IsCanonical() {
		panic(fmt.Sprintf("counting: itemset %v is not strictly increasing", set))
	}
	if t.depth == 0 {
		t.depth = len(set)
	} else if len(set) != t.depth {
		panic(fmt.Sprintf("counting: itemset of size %d added to HashTrie of depth %d", len(set), t.depth))
	}
	var cur int32
	for i, it := range set {
		s := t.slot(it)
		next := t.nodes[cur].children[s]
		if next == 0 {
			next = int32(len(t.nodes))
			if i == len(set)-1 {
				t.nodes = append(t.nodes, trieNode{})
			} else {
				t.nodes = append(t.nodes, trieNode{children: make([]int32, t.fanout)})
			}
			t.nodes[cur].children[s] = next
		}
		cur = next
	}
	leaf := &t.nodes[cur]
	for _, e := range leaf.entries {
		if e.set.Equal(set) {
			return false
		}
	}
	leaf.entries = append(leaf.entries, trieEntry{set: set.Clone()})
	t.size++
	return true
}

// Contains returns true iff set is held by this HashTrie
func (t *HashTrie) Contains(set itemsets.Itemset) bool {
	return t.find(set) != nil
}

// Count returns the count of set, and whether set is held by this HashTrie
func (t *HashTrie) Count(set itemsets.Itemset) (uint64, bool) {
	e := t.find(set)
	if e == nil {
		return 0, false
	}
	return e.count, true
}

// Increment adds one to the count of set, returning false if set is not held
func (t *HashTrie) Increment(set itemsets.Itemset) bool {
	return t.IncrementBy(set, 1)
}

// IncrementBy adds n to the count of set, returning false if set is not held
func (t *HashTrie) IncrementBy(set itemsets.Itemset, n uint64) bool {
	e := t.find(set)
	if e == nil {
		return false
	}
	e.count += n
	return true
}

// ForEach visits every held Itemset with its count. fn must not modify set.
func (t *HashTrie) ForEach(fn func(set itemsets.Itemset, count uint64)) {
	for i := range t.nodes {
		for _, e := range t.nodes[i].entries {
			fn(e.set, e.count)
		}
	}
}

// forEachEntry visits every entry in place, so that counts may be updated while scanning
func (t *HashTrie) forEachEntry(fn func(e *trieEntry)) {
	for i := range t.nodes {
		entries := t.nodes[i].entries
		for j := range entries {
			fn(&entries[j])
		}
	}
}

// Merge adds the counts of another HashTrie into this one, key by key. Itemsets
// only held by o are added.
func (t *HashTrie) Merge(o itemsets.Counter) error {
	ot, ok := o.(*HashTrie)
	if !ok {
		return fmt.Errorf("Incoming counter is not a HashTrie")
	}
	if t.depth != 0 && ot.depth != 0 && t.depth != ot.depth {
		return fmt.Errorf("Cannot merge HashTries of depth %d and %d", t.depth, ot.depth)
	}
	ot.ForEach(func(set itemsets.Itemset, count uint64) {
		if !t.IncrementBy(set, count) {
			t.Add(set)
			t.IncrementBy(set, count)
		}
	})
	return nil
}

// Frequent extracts every held Itemset whose count is at least minSupport
func (t *HashTrie) Frequent(minSupport uint64) *itemsets.FrequentSet {
	var sets []itemsets.Itemset
	var supports []uint64
	t.ForEach(func(set itemsets.Itemset, count uint64) {
		if count >= minSupport {
			sets = append(sets, set)
			supports = append(supports, count)
		}
	})
	return itemsets.NewFrequentSet(t.depth, sets, supports)
}
