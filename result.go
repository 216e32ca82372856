package flexiroute

import "github.com/kousik-kr/flexiroute/labelset"

// AlternateResult is one additional non-dominated path returned alongside
// the primary Result when RoutingMode is WIDENESS_AND_TURNS (spec.md §6).
type AlternateResult struct {
	PathNodes          []int32
	WidenessPercentage float64
	RightTurns         int32
	TotalDistance      float64
}

// Result is the façade's output for one Query (spec.md §6). On failure,
// Success is false, Err identifies the Kind, and ErrorMessage carries a
// human-readable detail; the engine never aborts the process on a failed
// query (spec.md §7).
type Result struct {
	Success bool
	Err     *FlexiRouteError

	PathNodes       []int32
	WideEdgeIndices []int32

	TravelTime         float64
	TotalDistance      float64
	WidenessPercentage float64
	WideEdgeCount      int
	RightTurns         int32
	SharpTurns         int32

	// OptimalDepartureTime is non-nil only when Query.Interval > 0, holding
	// the winning departure instant (DepartureTime + k*Interval, minutes-
	// from-midnight) from the enumerated window.
	OptimalDepartureTime *float64

	RoutingMode labelset.RoutingMode
	Alternates  []AlternateResult

	ErrorMessage string
}

func failureResult(err *FlexiRouteError, mode labelset.RoutingMode) *Result {
	return &Result{
		Success:      false,
		Err:          err,
		RoutingMode:  mode,
		ErrorMessage: err.Error(),
	}
}
