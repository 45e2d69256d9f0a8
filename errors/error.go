package errors

import (
	"fmt"
)

// EmptyDatasetError occurs when a Dataset contains no transactions
type EmptyDatasetError struct{}

// Error returns a textual representation of this EmptyDatasetError
func (e EmptyDatasetError) Error() string {
	return "Dataset contains no transactions"
}

// ItemOutOfRangeError occurs when a transaction references an item index >= NumItems
type ItemOutOfRangeError struct {
	Transaction int
	Item        uint32
	NumItems    int
}

// Error returns a textual representation of this ItemOutOfRangeError
func (e ItemOutOfRangeError) Error() string {
	return fmt.Sprintf("Transaction %d contains item %d, outside of [0, %d)", e.Transaction, e.Item, e.NumItems)
}

// UnsortedTransactionError occurs when a transaction's items are not strictly increasing
type UnsortedTransactionError struct{ Transaction int }

// Error returns a textual representation of this UnsortedTransactionError
func (e UnsortedTransactionError) Error() string {
	return fmt.Sprintf("Transaction %d is not sorted or contains duplicate items", e.Transaction)
}

// ZeroSupportError occurs when a miner is configured with a minimum support of 0
type ZeroSupportError struct{}

// Error returns a textual representation of this ZeroSupportError
func (e ZeroSupportError) Error() string {
	return "Minimum support must be at least 1"
}

// InvalidThreadCountError occurs when Count Distribution is configured with fewer than one worker
type InvalidThreadCountError struct{ Threads int }

// Error returns a textual representation of this InvalidThreadCountError
func (e InvalidThreadCountError) Error() string {
	return fmt.Sprintf("Thread count %d must be at least 1", e.Threads)
}

// InvalidSwitchPassError occurs when a hybrid miner is asked to switch to TID mode too early
type InvalidSwitchPassError struct {
	Pass    int
	Minimum int
}

// Error returns a textual representation of this InvalidSwitchPassError
func (e InvalidSwitchPassError) Error() string {
	return fmt.Sprintf("Switch pass %d must be at least %d", e.Pass, e.Minimum)
}

// WorkerPanicError occurs when a Count Distribution worker panics during a pass.
// The whole mining run fails; no partial result is returned.
type WorkerPanicError struct {
	Pass  int
	Shard int
	Cause error
}

// Error returns a textual representation of this WorkerPanicError
func (e WorkerPanicError) Error() string {
	return fmt.Sprintf("Worker for shard %d panicked during pass %d: %v", e.Shard, e.Pass, e.Cause)
}

// Unwrap returns the recovered panic, as an error
func (e WorkerPanicError) Unwrap() error {
	return e.Cause
}

// ParseError occurs when a dataset file contains a token which is not an item
type ParseError struct {
	Path  string
	Line  int
	Token string
}

// Error returns a textual representation of this ParseError
func (e ParseError) Error() string {
	return fmt.Sprintf("%s:%d: cannot parse item %q", e.Path, e.Line, e.Token)
}

// ItemLimitError occurs when a raw dataset file references an item index at or
// above the configured limit
type ItemLimitError struct {
	Path  string
	Line  int
	Token string
	Limit uint64
}

// Error returns a textual representation of this ItemLimitError
func (e ItemLimitError) Error() string {
	return fmt.Sprintf("%s:%d: item %s is not below the raw item limit %d", e.Path, e.Line, e.Token, e.Limit)
}
