package itemsets

import "time"

// RuntimeStatistics facilitates the retrieval of statistics about a mining run
type RuntimeStatistics interface {
	// GetStartTime returns the start time of the most recent run
	GetStartTime() time.Time
	// GetRuntime returns the running time of the most recent run
	GetRuntime() time.Duration
	// GetPassRuntimes returns the runtime of each pass, indexed by itemset size - 1
	GetPassRuntimes() []time.Duration
	// GetCandidateCounts returns the number of candidates counted in each pass
	GetCandidateCounts() []int
	// GetFrequentCounts returns the number of frequent Itemsets found in each pass
	GetFrequentCounts() []int
	// GetStrategyCounts returns how many transactions were scanned by subset enumeration and by trie enumeration, over the whole run
	GetStrategyCounts() (subsets uint64, trie uint64)
}
