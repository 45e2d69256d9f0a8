package stats

import (
	"time"
)

// RunStatistics contains statistics about a mining run. It is only updated
// between passes, by the goroutine driving the passes.
type RunStatistics struct {
	started         bool
	finished        bool
	startTime       time.Time
	totalRuntime    time.Duration
	passRuntimes    []time.Duration
	candidateCounts []int
	frequentCounts  []int
	subsetScans     uint64
	trieScans       uint64

	// temp vars
	currentPassStartTime time.Time
}

// Start resets and begins statistics tracking
func (rs *RunStatistics) Start() {
	*rs = RunStatistics{started: true, startTime: time.Now()}
}

// Finish completes statistics tracking
func (rs *RunStatistics) Finish() {
	if rs.started && !rs.finished {
		rs.totalRuntime = time.Since(rs.startTime)
		rs.finished = true
	}
}

// StartPass tracks the beginning of a new pass
func (rs *RunStatistics) StartPass() {
	rs.currentPassStartTime = time.Now()
}

// EndPass tracks the end of a pass, returning its runtime
func (rs *RunStatistics) EndPass(candidates, frequent int) time.Duration {
	elapsed := time.Since(rs.currentPassStartTime)
	rs.passRuntimes = append(rs.passRuntimes, elapsed)
	rs.candidateCounts = append(rs.candidateCounts, candidates)
	rs.frequentCounts = append(rs.frequentCounts, frequent)
	return elapsed
}

// AddScans records how many transactions each counting strategy scanned
func (rs *RunStatistics) AddScans(subsets, trie uint64) {
	rs.subsetScans += subsets
	rs.trieScans += trie
}

// GetStartTime returns the start time of the most recent run
func (rs *RunStatistics) GetStartTime() time.Time {
	return rs.startTime
}

// GetRuntime returns the running time of the most recent run
func (rs *RunStatistics) GetRuntime() time.Duration {
	if rs.finished {
		return rs.totalRuntime
	}
	if !rs.started {
		return 0
	}
	return time.Since(rs.startTime)
}

// GetPassRuntimes returns the runtime of each pass, indexed by itemset size - 1
func (rs *RunStatistics) GetPassRuntimes() []time.Duration {
	return rs.passRuntimes
}

// GetCandidateCounts returns the number of candidates counted in each pass
func (rs *RunStatistics) GetCandidateCounts() []int {
	return rs.candidateCounts
}

// GetFrequentCounts returns the number of frequent Itemsets found in each pass
func (rs *RunStatistics) GetFrequentCounts() []int {
	return rs.frequentCounts
}

// GetStrategyCounts returns how many transactions each counting strategy scanned
func (rs *RunStatistics) GetStrategyCounts() (uint64, uint64) {
	return rs.subsetScans, rs.trieScans
}
