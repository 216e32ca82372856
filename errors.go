package flexiroute

import (
	"errors"
	"fmt"
)

// Kind is the CoreError taxonomy of spec.md §7 — a fixed set of failure
// categories, not a type hierarchy.
type Kind int

const (
	// InvalidQuery marks malformed source/destination/budget/interval.
	InvalidQuery Kind = iota
	// Unreachable marks a search that ended with an empty Meeting Set after
	// both frontiers ran out (or a query whose source equals its destination).
	Unreachable
	// BudgetExhausted marks a zero budget, a search that hit its step cap
	// before any meeting, or a Meeting Set with no in-budget join.
	BudgetExhausted
	// Canceled marks caller cancellation or deadline.
	Canceled
	// InternalInvariantViolated marks a runtime consistency assertion
	// failure (FIFO violation, dominance-set inconsistency).
	InternalInvariantViolated
)

// String renders the Kind for diagnostics and Result.ErrorMessage.
func (k Kind) String() string {
	switch k {
	case InvalidQuery:
		return "InvalidQuery"
	case Unreachable:
		return "Unreachable"
	case BudgetExhausted:
		return "BudgetExhausted"
	case Canceled:
		return "Canceled"
	case InternalInvariantViolated:
		return "InternalInvariantViolated"
	default:
		return "Unknown"
	}
}

// Error sentinels, one per Kind, for errors.Is comparisons independent of
// the wrapped detail (spec.md §7's "propagation policy").
var (
	ErrInvalidQuery              = errors.New("flexiroute: invalid query")
	ErrUnreachable               = errors.New("flexiroute: destination unreachable")
	ErrBudgetExhausted           = errors.New("flexiroute: no path fits within budget")
	ErrCanceled                  = errors.New("flexiroute: query canceled")
	ErrInternalInvariantViolated = errors.New("flexiroute: internal invariant violated")
)

// FlexiRouteError wraps a Kind with the sentinel it corresponds to and a
// human-readable detail, in the same spirit as flow.EdgeError: a struct
// error rather than a new type per failure mode.
type FlexiRouteError struct {
	Kind   Kind
	Detail string
	cause  error
}

func (e *FlexiRouteError) Error() string {
	return fmt.Sprintf("flexiroute: %s: %s", e.Kind, e.Detail)
}

// Unwrap lets errors.Is/As reach the underlying sentinel.
func (e *FlexiRouteError) Unwrap() error { return e.cause }

func newError(kind Kind, sentinel error, detail string) *FlexiRouteError {
	return &FlexiRouteError{Kind: kind, Detail: detail, cause: sentinel}
}
