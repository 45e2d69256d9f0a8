package itemsets

import (
	"encoding/binary"
	"slices"
	"strconv"
	"strings"
)

// An Item is a dense, non-negative item index in [0, NumItems)
type Item uint32

// An Itemset is a set of distinct Items, stored in strictly increasing order.
// Itemsets are compared, hashed and keyed by this canonical sequence.
type Itemset []Item

// NewItemset returns a canonical Itemset (sorted, without duplicates) built from arbitrary items
func NewItemset(items ...Item) Itemset {
	s := make(Itemset, len(items))
	copy(s, items)
	slices.Sort(s)
	return slices.Compact(s)
}

// Len returns the number of items in this Itemset
func (s Itemset) Len() int {
	return len(s)
}

// Clone returns a copy of this Itemset which shares no memory with it
func (s Itemset) Clone() Itemset {
	c := make(Itemset, len(s))
	copy(c, s)
	return c
}

// Equal returns true iff both Itemsets contain exactly the same items
func (s Itemset) Equal(o Itemset) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

// Compare orders Itemsets lexicographically, returning -1, 0 or 1
func (s Itemset) Compare(o Itemset) int {
	n := len(s)
	if len(o) < n {
		n = len(o)
	}
	for i := 0; i < n; i++ {
		if s[i] < o[i] {
			return -1
		} else if s[i] > o[i] {
			return 1
		}
	}
	switch {
	case len(s) < len(o):
		return -1
	case len(s) > len(o):
		return 1
	}
	return 0
}

// IsCanonical returns true iff the items of this Itemset are strictly increasing
func (s Itemset) IsCanonical() bool {
	for i := 1; i < len(s); i++ {
		if s[i] <= s[i-1] {
			return false
		}
	}
	return true
}

// IsSubsetOf reports whether every item of s appears in t. Both Itemsets must be
// canonical; the test is an ordered merge which stops at the first missing item.
func (s Itemset) IsSubsetOf(t Itemset) bool {
	if len(s) > len(t) {
		return false
	}
	j := 0
	for _, it := range s {
		for j < len(t) && t[j] < it {
			j++
		}
		if j == len(t) || t[j] != it {
			return false
		}
		j++
	}
	return true
}

// Key returns a compact string key for this Itemset, suitable for use in maps.
// Keys of Itemsets of equal length sort in the same order as the Itemsets.
func (s Itemset) Key() string {
	buf := make([]byte, 4*len(s))
	for i, it := range s {
		binary.BigEndian.PutUint32(buf[4*i:], uint32(it))
	}
	return string(buf)
}

// ItemsetFromKey decodes a key produced by Itemset.Key
func ItemsetFromKey(key string) Itemset {
	s := make(Itemset, len(key)/4)
	for i := range s {
		s[i] = Item(binary.BigEndian.Uint32([]byte(key[4*i : 4*i+4])))
	}
	return s
}

// String returns the items separated by spaces, e.g. "1 2 5"
func (s Itemset) String() string {
	var sb strings.Builder
	for i, it := range s {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatUint(uint64(it), 10))
	}
	return sb.String()
}
