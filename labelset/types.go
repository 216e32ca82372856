package labelset

import "github.com/kousik-kr/flexiroute/label"

// RoutingMode selects the active objective vector (spec.md §4.3).
type RoutingMode int

const (
	// WidenessOnly optimizes (elapsed_cost, -wideness_sum).
	WidenessOnly RoutingMode = iota
	// MinTurnsOnly optimizes (elapsed_cost, right_turns, sharp_turns).
	MinTurnsOnly
	// WidenessAndTurns is the full Pareto frontier over
	// (elapsed_cost, right_turns, -wideness_sum).
	WidenessAndTurns
)

// String renders the RoutingMode for diagnostics and error messages.
func (m RoutingMode) String() string {
	switch m {
	case WidenessOnly:
		return "WIDENESS_ONLY"
	case MinTurnsOnly:
		return "MIN_TURNS_ONLY"
	case WidenessAndTurns:
		return "WIDENESS_AND_TURNS"
	default:
		return "UNKNOWN"
	}
}

// Key is a fixed 3-slot objective vector; unused slots are zero and so
// never affect dominance. Every component is oriented "lower is better",
// matching spec.md §4.3's objective vectors ((elapsed_cost, -wideness_sum)
// and friends negate wideness up front so a single comparator serves every
// mode (spec.md §9 "Routing-mode matrix").
type Key struct {
	A, B, C float64
}

// KeyOf computes the active objective vector for l under mode.
func KeyOf(l label.Label, mode RoutingMode) Key {
	switch mode {
	case WidenessOnly:
		return Key{A: l.ElapsedCost, B: -l.WidenessSum}
	case MinTurnsOnly:
		return Key{A: l.ElapsedCost, B: float64(l.RightTurns), C: float64(l.SharpTurns)}
	case WidenessAndTurns:
		return Key{A: l.ElapsedCost, B: float64(l.RightTurns), C: -l.WidenessSum}
	default:
		return Key{A: l.ElapsedCost}
	}
}

// Dominates reports whether a weakly dominates b in every component and
// strictly dominates in at least one (spec.md §4.3's dominance contract).
func Dominates(a, b Key) bool {
	if a.A > b.A || a.B > b.B || a.C > b.C {
		return false
	}
	return a.A < b.A || a.B < b.B || a.C < b.C
}
