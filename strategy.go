package itemsets

// Strategy is a way of counting the candidates contained in a transaction
type Strategy int

const (
	// Adaptive chooses between SubsetEnumeration and TrieEnumeration for each
	// transaction, using a cost estimate
	Adaptive Strategy = iota
	// SubsetEnumeration enumerates every size-k subset of a transaction and probes the candidates
	SubsetEnumeration
	// TrieEnumeration visits every candidate and tests whether the transaction contains it
	TrieEnumeration
)

// String returns a textual representation of this Strategy
func (s Strategy) String() string {
	switch s {
	case SubsetEnumeration:
		return "subsets"
	case TrieEnumeration:
		return "trie"
	default:
		return "adaptive"
	}
}
