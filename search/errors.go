package search

import "errors"

// Sentinel errors surfaced by the Bidirectional Search Driver.
var (
	// ErrBudgetExhausted indicates the search hit its step cap without
	// finding any meeting node (spec.md §7).
	ErrBudgetExhausted = errors.New("search: budget exhausted, no path found")

	// ErrUnreachable indicates both frontiers ran out with an empty Meeting
	// Set. This covers true disconnection as well as a budget that prunes
	// every path before the two fronts meet.
	ErrUnreachable = errors.New("search: destination unreachable from source")

	// ErrCanceled indicates the caller's context was canceled or its
	// deadline elapsed between expansion steps.
	ErrCanceled = errors.New("search: canceled")

	// ErrInternalInvariantViolated indicates the Store's FIFO spot-check
	// failed, or a debug-mode assertion caught a Label Set or expansion-order
	// invariant violation mid-search.
	ErrInternalInvariantViolated = errors.New("search: internal invariant violated")
)
