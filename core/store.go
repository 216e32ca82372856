// File: store.go
// Role: Store construction, adjacency queries (neighbors_out/in), MaxSpeed,
//       and the lazy FIFO spot-check.
// Determinism:
//   - NeighborsOut/NeighborsIn return edges in ascending edge-ID order.
// Concurrency:
//   - Store is immutable after NewStore returns; safe for concurrent reads
//     from any number of queries.

package core

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"gonum.org/v1/gonum/interp"
)

// Window is a half-open time-of-day interval in minutes-from-midnight,
// used to decide whether an edge's rush width is in effect.
type Window struct {
	Start float64
	End   float64
}

// contains reports whether t falls within the window, wrapping past
// midnight if End < Start.
func (w Window) contains(t float64) bool {
	m := 1440.0
	t = math.Mod(math.Mod(t, m)+m, m)
	if w.Start <= w.End {
		return t >= w.Start && t < w.End
	}
	return t >= w.Start || t < w.End
}

// defaultRushWindows mirrors spec.md's "typically 12 breakpoints covering
// morning and evening rush windows": a morning window and an evening window.
var defaultRushWindows = []Window{
	{Start: 420, End: 570},  // 07:00-09:30
	{Start: 1020, End: 1140}, // 17:00-19:00
}

// Store is the immutable Graph & Profile Store (C1). Build once via
// NewStore and share across any number of concurrent queries.
type Store struct {
	nodes []Node
	edges []Edge

	outAdj [][]int32 // outAdj[u] = edge indices with From == u, sorted by ID
	inAdj  [][]int32 // inAdj[v]  = edge indices with To == v, sorted by ID

	breakpoints      []float64
	widthBreakpoints []float64
	widthThreshold   float64
	rushWindows      []Window

	profiles []*interp.PiecewiseLinear

	maxSpeed float64 // meters per minute, derived at load

	validateOnce sync.Once
	validateErr  error
}

// StoreOption configures a Store at construction time.
type StoreOption func(*Store)

// WithWidthThreshold sets the width (meters) at or above which an edge is
// "wide". Default 0, i.e. every edge counts as wide; callers should normally
// pass the façade's DefaultWidthThreshold (set via ConfigureDefaults) here.
func WithWidthThreshold(threshold float64) StoreOption {
	return func(s *Store) { s.widthThreshold = threshold }
}

// WithRushWindows overrides the default morning/evening rush windows used
// by EffectiveWidth to decide when RushWidth applies.
func WithRushWindows(windows []Window) StoreOption {
	return func(s *Store) {
		if len(windows) > 0 {
			s.rushWindows = windows
		}
	}
}

// NewStore builds an immutable Store from parsed nodes and edges, fitting a
// piecewise-linear travel-time profile for every edge over the shared
// arrival-time breakpoints (spec.md §6's nodes_<N>.txt / edges_<N>.txt are
// the loader's concern; NewStore receives the parsed result).
//
// breakpoints must have at least two strictly increasing values; every
// edge.Costs must have exactly len(breakpoints) samples.
func NewStore(nodes []Node, edges []Edge, breakpoints, widthBreakpoints []float64, opts ...StoreOption) (*Store, error) {
	if len(breakpoints) < 2 {
		return nil, ErrBreakpointsTooFew
	}
	for i := 1; i < len(breakpoints); i++ {
		if breakpoints[i] <= breakpoints[i-1] {
			return nil, ErrBreakpointsNotSorted
		}
	}

	s := &Store{
		nodes:            nodes,
		edges:            edges,
		breakpoints:      breakpoints,
		widthBreakpoints: widthBreakpoints,
		rushWindows:      defaultRushWindows,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.outAdj = make([][]int32, len(nodes))
	s.inAdj = make([][]int32, len(nodes))
	s.profiles = make([]*interp.PiecewiseLinear, len(edges))

	for i, e := range edges {
		if len(e.Costs) != len(breakpoints) {
			return nil, fmt.Errorf("%w: edge %d has %d samples, want %d", ErrCostCardinality, e.ID, len(e.Costs), len(breakpoints))
		}
		if int(e.From) < 0 || int(e.From) >= len(nodes) || int(e.To) < 0 || int(e.To) >= len(nodes) {
			return nil, fmt.Errorf("%w: edge %d endpoints out of range", ErrNodeNotFound, e.ID)
		}

		pl := &interp.PiecewiseLinear{}
		if err := pl.Fit(breakpoints, e.Costs); err != nil {
			return nil, fmt.Errorf("core: fitting profile for edge %d: %w", e.ID, err)
		}
		s.profiles[i] = pl

		s.outAdj[e.From] = append(s.outAdj[e.From], int32(i))
		s.inAdj[e.To] = append(s.inAdj[e.To], int32(i))

		if speed := maxEdgeSpeed(e); speed > s.maxSpeed {
			s.maxSpeed = speed
		}
	}
	for u := range s.outAdj {
		sort.Slice(s.outAdj[u], func(i, j int) bool { return s.outAdj[u][i] < s.outAdj[u][j] })
	}
	for v := range s.inAdj {
		sort.Slice(s.inAdj[v], func(i, j int) bool { return s.inAdj[v][i] < s.inAdj[v][j] })
	}

	return s, nil
}

// maxEdgeSpeed derives an edge's fastest observed speed (distance / minimum
// sampled travel time), used to seed the search heuristic's speed bound.
func maxEdgeSpeed(e Edge) float64 {
	minCost := math.Inf(1)
	for _, c := range e.Costs {
		if c > 0 && c < minCost {
			minCost = c
		}
	}
	if math.IsInf(minCost, 1) || minCost <= 0 {
		return 0
	}
	return e.Distance / minCost
}

// NumNodes returns the number of nodes N; node ids are dense in [0, N).
func (s *Store) NumNodes() int { return len(s.nodes) }

// NumBreakpoints returns the shared breakpoint cardinality K, used by the
// façade to bound the departure-time enumeration window (spec.md §4.7).
func (s *Store) NumBreakpoints() int { return len(s.breakpoints) }

// Node returns the Node for id, or an error if id is out of range.
func (s *Store) Node(id int32) (Node, error) {
	if int(id) < 0 || int(id) >= len(s.nodes) {
		return Node{}, ErrNodeNotFound
	}
	return s.nodes[id], nil
}

// Edge returns the Edge for idx, or an error if idx is out of range.
func (s *Store) Edge(idx int32) (Edge, error) {
	if int(idx) < 0 || int(idx) >= len(s.edges) {
		return Edge{}, ErrEdgeNotFound
	}
	return s.edges[idx], nil
}

// NeighborsOut returns the edge indices outgoing from u, ascending by id.
func (s *Store) NeighborsOut(u int32) ([]int32, error) {
	if int(u) < 0 || int(u) >= len(s.outAdj) {
		return nil, ErrNodeNotFound
	}
	return s.outAdj[u], nil
}

// NeighborsIn returns the edge indices incoming to v, ascending by id.
func (s *Store) NeighborsIn(v int32) ([]int32, error) {
	if int(v) < 0 || int(v) >= len(s.inAdj) {
		return nil, ErrNodeNotFound
	}
	return s.inAdj[v], nil
}

// MaxSpeed returns the fastest speed (meters per minute) observed across all
// edge profiles at load time, used as the heuristic's speed bound
// (spec.md §4.3: "Haversine distance divided by the maximum speed").
func (s *Store) MaxSpeed() float64 { return s.maxSpeed }

// WidthThreshold returns the configured wideness threshold.
func (s *Store) WidthThreshold() float64 { return s.widthThreshold }

// Validate performs a cheap sampling spot-check of the FIFO invariant across
// every edge's fitted profile: for each pair of adjacent breakpoints it
// checks that arrival time (t + τ(t)) is non-decreasing. This is invoked
// lazily, once, the first time a profile is queried (TravelTime/
// InverseTravelTime); a failure surfaces as ErrFIFOViolation, which the
// search driver reports as InternalInvariantViolated (spec.md §7) rather
// than a panic.
func (s *Store) Validate() error {
	s.validateOnce.Do(func() {
		for i, pl := range s.profiles {
			prevArrival := math.Inf(-1)
			for _, bp := range s.breakpoints {
				arrival := bp + pl.Predict(bp)
				if arrival < prevArrival {
					s.validateErr = fmt.Errorf("%w: edge %d at t=%g", ErrFIFOViolation, s.edges[i].ID, bp)
					return
				}
				prevArrival = arrival
			}
		}
	})
	return s.validateErr
}
