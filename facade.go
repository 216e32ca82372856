package flexiroute

import (
	"context"
	"errors"
	"fmt"

	"github.com/kousik-kr/flexiroute/core"
	"github.com/kousik-kr/flexiroute/join"
	"github.com/kousik-kr/flexiroute/labelset"
	"github.com/kousik-kr/flexiroute/search"
)

// RunSingleQuery translates a Query into a Result (spec.md §4.7). It never
// returns a Go error: every failure mode is modelled as a failed Result
// (Success == false, Err identifying the Kind), so the engine stays usable
// for subsequent queries regardless of what happened to this one
// (spec.md §7 "the engine never aborts the process").
func RunSingleQuery(ctx context.Context, store *core.Store, q Query, cfg search.SearchConfig) *Result {
	if err := validateQuery(store, q); err != nil {
		return failureResult(err, q.RoutingMode)
	}

	if q.Source == q.Destination {
		return failureResult(newError(Unreachable, ErrUnreachable, "source equals destination"), q.RoutingMode)
	}

	if q.Budget == 0 {
		// A zero budget admits no edge traversal (every edge has positive
		// elapsed cost), which the Driver would otherwise report as a
		// natural ErrUnreachable indistinguishable from true
		// disconnection; the façade short-circuits it as BudgetExhausted
		// per spec.md §8's zero-budget scenario.
		return failureResult(newError(BudgetExhausted, ErrBudgetExhausted, "budget is zero"), q.RoutingMode)
	}

	if q.Interval <= 0 {
		return runOnce(ctx, store, q, q.DepartureTime, cfg, nil)
	}
	return runWindow(ctx, store, q, cfg)
}

func validateQuery(store *core.Store, q Query) *FlexiRouteError {
	n := int32(store.NumNodes())
	if q.Source < 0 || q.Source >= n {
		return newError(InvalidQuery, ErrInvalidQuery, fmt.Sprintf("source %d out of range [0, %d)", q.Source, n))
	}
	if q.Destination < 0 || q.Destination >= n {
		return newError(InvalidQuery, ErrInvalidQuery, fmt.Sprintf("destination %d out of range [0, %d)", q.Destination, n))
	}
	if q.Budget < 0 {
		return newError(InvalidQuery, ErrInvalidQuery, "budget must be non-negative")
	}
	if q.Interval < 0 {
		return newError(InvalidQuery, ErrInvalidQuery, "interval must be non-negative")
	}
	return nil
}

// runWindow enumerates departure instants departureTime + k*interval for
// k = 0..K-1, K fixed by the Graph & Profile Store's breakpoint count, and
// keeps the best Result, recording the winning departure instant as
// OptimalDepartureTime
// (spec.md §4.7, §8 scenario 6).
func runWindow(ctx context.Context, store *core.Store, q Query, cfg search.SearchConfig) *Result {
	k := store.NumBreakpoints()
	var best *Result
	var bestDepart float64
	var lastErr *FlexiRouteError

	for i := 0; i < k; i++ {
		depart := q.DepartureTime + float64(i)*q.Interval
		candidate := runOnce(ctx, store, q, depart, cfg, nil)
		if !candidate.Success {
			lastErr = candidate.Err
			continue
		}
		if best == nil || rankCandidate(candidate, best) {
			best = candidate
			bestDepart = depart
		}
	}

	if best == nil {
		// Every discrete departure failed; surface the last failure kind if
		// any attempt ran, otherwise report Unreachable.
		if lastErr != nil {
			return failureResult(lastErr, q.RoutingMode)
		}
		return failureResult(newError(Unreachable, ErrUnreachable, "no departure instant in the window admits a route"), q.RoutingMode)
	}
	best.OptimalDepartureTime = float64Ptr(bestDepart)
	return best
}

// rankCandidate reports whether candidate should replace current as the
// window search's best-so-far, by the routing mode's own ranking.
func rankCandidate(candidate, current *Result) bool {
	switch candidate.RoutingMode {
	case labelset.MinTurnsOnly:
		if candidate.RightTurns != current.RightTurns {
			return candidate.RightTurns < current.RightTurns
		}
		if candidate.SharpTurns != current.SharpTurns {
			return candidate.SharpTurns < current.SharpTurns
		}
		return candidate.TravelTime < current.TravelTime
	default: // WidenessOnly and WidenessAndTurns both rank by wideness first
		if candidate.WidenessPercentage != current.WidenessPercentage {
			return candidate.WidenessPercentage > current.WidenessPercentage
		}
		return candidate.TravelTime < current.TravelTime
	}
}

func runOnce(ctx context.Context, store *core.Store, q Query, depart float64, cfg search.SearchConfig, _ *int) *Result {
	searchRes, err := search.Run(ctx, store, q.RoutingMode, q.Source, q.Destination, depart, q.Budget, cfg)
	if err != nil {
		return failureResult(mapSearchError(err), q.RoutingMode)
	}

	candidates, err := join.Build(ctx, store, searchRes, q.Budget)
	if err != nil {
		return failureResult(mapJoinError(err), q.RoutingMode)
	}

	primary, alternates := join.Reduce(candidates, q.RoutingMode)
	return buildResult(primary, alternates, q.RoutingMode)
}

func mapSearchError(err error) *FlexiRouteError {
	switch {
	case errors.Is(err, search.ErrUnreachable):
		return newError(Unreachable, ErrUnreachable, "search terminated with an empty meeting set")
	case errors.Is(err, search.ErrBudgetExhausted):
		return newError(BudgetExhausted, ErrBudgetExhausted, "search exceeded its step cap before any meeting was found")
	case errors.Is(err, search.ErrCanceled):
		return newError(Canceled, ErrCanceled, "query canceled")
	case errors.Is(err, search.ErrInternalInvariantViolated):
		return newError(InternalInvariantViolated, ErrInternalInvariantViolated, "search detected a label set or profile invariant violation")
	default:
		return newError(InternalInvariantViolated, ErrInternalInvariantViolated, err.Error())
	}
}

func mapJoinError(err error) *FlexiRouteError {
	if errors.Is(err, join.ErrNoCandidate) {
		return newError(BudgetExhausted, ErrBudgetExhausted, "no forward/backward combination fits within budget")
	}
	return newError(InternalInvariantViolated, ErrInternalInvariantViolated, err.Error())
}

func buildResult(primary join.Candidate, alternates []join.Candidate, mode labelset.RoutingMode) *Result {
	res := &Result{
		Success:            true,
		PathNodes:          primary.PathNodes,
		WideEdgeIndices:    primary.WideEdges,
		TravelTime:         primary.TotalCost,
		TotalDistance:      primary.DistanceSum,
		WidenessPercentage: primary.WidenessPercentage,
		WideEdgeCount:      len(primary.WideEdges),
		RightTurns:         primary.RightTurns,
		SharpTurns:         primary.SharpTurns,
		RoutingMode:        mode,
	}

	for _, alt := range alternates {
		res.Alternates = append(res.Alternates, AlternateResult{
			PathNodes:          alt.PathNodes,
			WidenessPercentage: alt.WidenessPercentage,
			RightTurns:         alt.RightTurns,
			TotalDistance:      alt.DistanceSum,
		})
	}
	return res
}

func float64Ptr(v float64) *float64 { return &v }
