package counting

import (
	"sort"

	"github.com/go-sif/itemsets"
)

// PrefixTrie stores a family of Itemsets as paths from a shared root, one item per
// level, with a count on every node. Unlike HashTrie it keeps every level at once, so
// that a level-wise miner can grow it in place. Nodes live in an arena; children and
// parents are arena indices.
type PrefixTrie struct {
	nodes  []prefixNode
	levels [][]int32 // live node indices per depth; levels[0] is the root
}

type prefixNode struct {
	item     itemsets.Item
	parent   int32 // -1 for the root
	count    uint64
	children []int32 // sorted by item
}

// NewPrefixTrie returns an empty PrefixTrie
func NewPrefixTrie() *PrefixTrie {
	return &PrefixTrie{
		nodes:  []prefixNode{{parent: -1}},
		levels: [][]int32{{0}},
	}
}

// Depth returns the length of the longest Itemset held
func (t *PrefixTrie) Depth() int {
	return len(t.levels) - 1
}

// LevelLen returns the number of Itemsets of size k held
func (t *PrefixTrie) LevelLen(k int) int {
	if k < 1 || k >= len(t.levels) {
		return 0
	}
	return len(t.levels[k])
}

func (t *PrefixTrie) child(n int32, it itemsets.Item) int32 {
	children := t.nodes[n].children
	i := sort.Search(len(children), func(i int) bool { return t.nodes[children[i]].item >= it })
	if i < len(children) && t.nodes[children[i]].item == it {
		return children[i]
	}
	return -1
}

func (t *PrefixTrie) newChild(parent int32, it itemsets.Item, depth int) int32 {
	n := int32(len(t.nodes))
	t.nodes = append(t.nodes, prefixNode{item: it, parent: parent})
	children := t.nodes[parent].children
	i := sort.Search(len(children), func(i int) bool { return t.nodes[children[i]].item >= it })
	children = append(children, 0)
	copy(children[i+1:], children[i:])
	children[i] = n
	t.nodes[parent].children = children
	for len(t.levels) <= depth {
		t.levels = append(t.levels, nil)
	}
	t.levels[depth] = append(t.levels[depth], n)
	return n
}

func (t *PrefixTrie) find(set itemsets.Itemset) int32 {
	var cur int32
	for _, it := range set {
		if cur = t.child(cur, it); cur < 0 {
			return -1
		}
	}
	return cur
}

// Add inserts set, and every prefix of it, returning false if set was already present.
// Adding an empty Itemset is a contract violation.
func (t *PrefixTrie) Add(set itemsets.Itemset) bool {
	if len(set) == 0 {
		panic("counting: empty itemset passed to PrefixTrie")
	}
	var cur int32
	added := false
	for d, it := range set {
		next := t.child(cur, it)
		if next < 0 {
			next = t.newChild(cur, it, d+1)
			added = true
		}
		cur = next
	}
	return added
}

// Contains returns true iff set is held
func (t *PrefixTrie) Contains(set itemsets.Itemset) bool {
	return len(set) > 0 && t.find(set) >= 0
}

// Count returns the count of set, and whether it is held
func (t *PrefixTrie) Count(set itemsets.Itemset) (uint64, bool) {
	if len(set) == 0 {
		return 0, false
	}
	n := t.find(set)
	if n < 0 {
		return 0, false
	}
	return t.nodes[n].count, true
}

// itemset rebuilds the Itemset of a node by following parent links
func (t *PrefixTrie) itemset(n int32, depth int) itemsets.Itemset {
	set := make(itemsets.Itemset, depth)
	for i := depth - 1; i >= 0; i-- {
		set[i] = t.nodes[n].item
		n = t.nodes[n].parent
	}
	return set
}

// CountTransaction increments every size-k Itemset held which t contains
func (t *PrefixTrie) CountTransaction(tx itemsets.Itemset, k int) {
	if k < 1 || len(tx) < k || k >= len(t.levels) {
		return
	}
	t.walk(0, tx, 0, k)
}

func (t *PrefixTrie) walk(n int32, tx itemsets.Itemset, depth, k int) {
	if depth == k {
		t.nodes[n].count++
		return
	}
	if len(t.nodes[n].children) == 0 {
		return
	}
	// leave room for the k-depth-1 items still needed below
	for i := 0; i < len(tx)-(k-depth-1); i++ {
		if c := t.child(n, tx[i]); c >= 0 {
			t.walk(c, tx[i+1:], depth+1, k)
		}
	}
}

// Prune unlinks every size-k Itemset whose count is below minSupport, returning the
// number which remain
func (t *PrefixTrie) Prune(k int, minSupport uint64) int {
	if k < 1 || k >= len(t.levels) {
		return 0
	}
	live := t.levels[k][:0]
	for _, n := range t.levels[k] {
		if t.nodes[n].count >= minSupport {
			live = append(live, n)
			continue
		}
		p := t.nodes[n].parent
		children := t.nodes[p].children
		for i, c := range children {
			if c == n {
				t.nodes[p].children = append(children[:i], children[i+1:]...)
				break
			}
		}
	}
	t.levels[k] = live
	return len(live)
}

// Extend grows the trie from size k to size k+1: every pair of size-k siblings (which
// share their first k-1 items) is joined, and kept only if all of its size-k subsets
// are held. Returns the number of Itemsets added.
func (t *PrefixTrie) Extend(k int) int {
	if k < 1 || k >= len(t.levels) {
		return 0
	}
	added := 0
	work := make(itemsets.Itemset, k)
	level := append([]int32(nil), t.levels[k]...)
	for _, n := range level {
		siblings := t.nodes[t.nodes[n].parent].children
		base := t.itemset(n, k)
		candidate := append(base, 0)
		for _, s := range siblings {
			it := t.nodes[s].item
			if it <= t.nodes[n].item {
				continue
			}
			candidate[k] = it
			if t.prunable(candidate, work) {
				continue
			}
			t.newChild(n, it, k+1)
			added++
		}
	}
	for len(t.levels) <= k+1 {
		t.levels = append(t.levels, nil)
	}
	return added
}

// prunable mirrors candidates.CanBePruned, checking subsets against this trie
func (t *PrefixTrie) prunable(candidate, work itemsets.Itemset) bool {
	k := len(candidate)
	if k < 3 {
		return false
	}
	copy(work, candidate[1:])
	for p := 0; p < k-2; p++ {
		if p > 0 {
			work[p-1] = candidate[p-1]
		}
		if t.find(work) < 0 {
			return true
		}
	}
	return false
}

// Frequent returns the size-k Itemsets held, with their counts
func (t *PrefixTrie) Frequent(k int) *itemsets.FrequentSet {
	if k < 1 || k >= len(t.levels) {
		return itemsets.NewFrequentSet(k, nil, nil)
	}
	sets := make([]itemsets.Itemset, 0, len(t.levels[k]))
	supports := make([]uint64, 0, len(t.levels[k]))
	for _, n := range t.levels[k] {
		sets = append(sets, t.itemset(n, k))
		supports = append(supports, t.nodes[n].count)
	}
	return itemsets.NewFrequentSet(k, sets, supports)
}
