// Package itemsets contains the core types of a frequent-itemset mining engine.
// This root package defines the values exchanged between the engine and its
// collaborators (Datasets going in, FrequentSets coming out), as well as the
// interfaces which miners and output sinks implement. The Apriori family of
// miners lives in the apriori package, and the data-parallel Count Distribution
// miner in the distribution package.
package itemsets
