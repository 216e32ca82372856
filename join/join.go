package join

import (
	"context"
	"errors"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/kousik-kr/flexiroute/core"
	"github.com/kousik-kr/flexiroute/label"
	"github.com/kousik-kr/flexiroute/labelset"
	"github.com/kousik-kr/flexiroute/search"
)

// ErrNoCandidate indicates the Meeting Set was non-empty but no (F, B) pair
// satisfied the time-consistency and budget constraints (spec.md §4.6);
// the façade reports this as BudgetExhausted rather than Unreachable, since
// the search did find a way to meet, just not one that fits the budget.
var ErrNoCandidate = errors.New("join: no admissible forward/backward combination within budget")

// joinFanoutLimit bounds the number of meeting nodes combined concurrently
// (mirrors vanderheijden86/beadwork's loadReposParallel SetLimit(32)).
const joinFanoutLimit = 32

// Build Cartesian-combines, at every meeting node, every surviving forward
// label with every surviving backward label, keeping only the
// time-consistent, in-budget combinations (spec.md §4.6). Meeting nodes are
// processed concurrently since Label Sets are read-only once the Driver has
// quiesced (spec.md §5).
func Build(ctx context.Context, store *core.Store, res *search.Result, budget float64) ([]Candidate, error) {
	var (
		mu         sync.Mutex
		candidates []Candidate
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(joinFanoutLimit)

	for _, node := range res.MeetingNodes {
		node := node
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			found := combineAt(store, res, node, budget)
			if len(found) == 0 {
				return nil
			}
			mu.Lock()
			candidates = append(candidates, found...)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, ErrNoCandidate
	}

	// found order depends on goroutine completion order; sort by a total
	// order over (MeetingNode, ForwardRef, BackwardRef) so Reduce's tie
	// breaks (which keep the first-encountered candidate among exact ties)
	// resolve the same way on every run against the same Graph (spec.md
	// §8's determinism requirement).
	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.MeetingNode != b.MeetingNode {
			return a.MeetingNode < b.MeetingNode
		}
		if a.ForwardRef != b.ForwardRef {
			return a.ForwardRef < b.ForwardRef
		}
		return a.BackwardRef < b.BackwardRef
	})
	return candidates, nil
}

// combineAt builds every admissible Candidate meeting at node.
func combineAt(store *core.Store, res *search.Result, node int32, budget float64) []Candidate {
	fwdRefs := res.Labels.All(label.Forward, node)
	bwdRefs := res.Labels.All(label.Backward, node)
	if len(fwdRefs) == 0 || len(bwdRefs) == 0 {
		return nil
	}

	var out []Candidate
	for _, fRef := range fwdRefs {
		f := res.ForwardArena.Get(fRef)
		for _, bRef := range bwdRefs {
			b := res.BackwardArena.Get(bRef)

			// Time-consistency: F.arrival_time <= B.departure_time. Forward
			// Label.Time is the arrival time; backward Label.Time is the
			// departure time, so the two fields compare directly.
			if f.Time > b.Time {
				continue
			}

			totalCost := f.ElapsedCost + b.ElapsedCost
			if totalCost > budget {
				continue
			}

			rightTurns := f.RightTurns + b.RightTurns
			sharpTurns := f.SharpTurns + b.SharpTurns
			if f.LastEdge != label.NoEdge && b.LastEdge != label.NoEdge {
				// The seam turn: F's last edge into the meeting node against
				// B's first edge leaving it (B.LastEdge already is that edge,
				// per how the backward Driver records it during relax).
				if turn, err := store.ClassifyTurn(f.LastEdge, b.LastEdge); err == nil {
					switch turn {
					case core.Right:
						rightTurns++
					case core.Sharp:
						sharpTurns++
					}
				}
			}

			widenessSum := f.WidenessSum + b.WidenessSum
			distanceSum := f.DistanceSum + b.DistanceSum
			var widenessPct float64
			if distanceSum > 0 {
				widenessPct = 100 * widenessSum / distanceSum
			}

			pathEdges := reconstructEdges(res, fRef, bRef)

			out = append(out, Candidate{
				MeetingNode:        node,
				PathNodes:          reconstructNodes(res, fRef, bRef),
				PathEdges:          pathEdges,
				WideEdges:          wideEdgeIndices(store, res, fRef, bRef, pathEdges),
				TotalCost:          totalCost,
				WidenessSum:        widenessSum,
				DistanceSum:        distanceSum,
				WidenessPercentage: widenessPct,
				RightTurns:         rightTurns,
				SharpTurns:         sharpTurns,
				ForwardRef:         fRef,
				BackwardRef:        bRef,
			})
		}
	}
	return out
}

// reconstructNodes concatenates the forward arena's source-to-meeting-node
// path with the backward arena's meeting-node-to-destination path.
//
// label.Arena.PathNodes returns its result in seed-to-ref order; for the
// backward arena the seed is the destination, so that order runs
// destination-to-meeting-node and must be reversed to read physically
// forward (spec.md §4.6 "path reconstruction").
func reconstructNodes(res *search.Result, fRef, bRef label.Ref) []int32 {
	fwd := res.ForwardArena.PathNodes(fRef)
	bwd := reverseInt32(res.BackwardArena.PathNodes(bRef))
	if len(bwd) > 0 {
		bwd = bwd[1:] // drop the duplicated meeting node
	}
	return append(append([]int32(nil), fwd...), bwd...)
}

func reconstructEdges(res *search.Result, fRef, bRef label.Ref) []int32 {
	fwd := res.ForwardArena.PathEdges(fRef)
	bwd := reverseInt32(res.BackwardArena.PathEdges(bRef))
	return append(append([]int32(nil), fwd...), bwd...)
}

// wideEdgeIndices reports which edges of pathEdges are wide at the time
// they are actually traversed (spec.md's "wide_edge_indices"). A forward
// hop's check time is its predecessor label's Time (the departure instant
// from the node before it, matching search.driver.relax's widthCheckTime
// for the forward direction); a backward hop's check time is the hop's own
// label's Time (relax already resolves that to the departure instant for
// the backward direction).
func wideEdgeIndices(store *core.Store, res *search.Result, fRef, bRef label.Ref, pathEdges []int32) []int32 {
	fChain := res.ForwardArena.PathLabels(fRef)
	bChain := res.BackwardArena.PathLabels(bRef)

	var fWide []bool
	for i := 1; i < len(fChain); i++ {
		fWide = append(fWide, edgeIsWide(store, fChain[i].LastEdge, fChain[i-1].Time))
	}
	var bWide []bool
	for i := 1; i < len(bChain); i++ {
		bWide = append(bWide, edgeIsWide(store, bChain[i].LastEdge, bChain[i].Time))
	}
	wide := append(fWide, reverseBool(bWide)...)

	indices := make([]int32, 0, len(pathEdges))
	for i, e := range pathEdges {
		if i < len(wide) && wide[i] {
			indices = append(indices, e)
		}
	}
	return indices
}

func edgeIsWide(store *core.Store, edgeIdx int32, checkTime float64) bool {
	wide, err := store.IsWide(edgeIdx, checkTime)
	return err == nil && wide
}

func reverseBool(s []bool) []bool {
	out := make([]bool, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}

func reverseInt32(s []int32) []int32 {
	out := make([]int32, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}

// Reduce applies the routing mode's output policy to a non-empty candidate
// set, returning the primary result and, for WIDENESS_AND_TURNS, its
// non-dominated alternates (spec.md §4.6).
func Reduce(candidates []Candidate, mode labelset.RoutingMode) (primary Candidate, alternates []Candidate) {
	switch mode {
	case labelset.MinTurnsOnly:
		primary = candidates[0]
		for _, c := range candidates[1:] {
			if better := lessMinTurns(c, primary); better {
				primary = c
			}
		}
		return primary, nil

	case labelset.WidenessAndTurns:
		front := paretoFilter(candidates)
		primary = front[0]
		for _, c := range front[1:] {
			if c.WidenessPercentage > primary.WidenessPercentage {
				primary = c
			}
		}
		for _, c := range front {
			if c.ForwardRef != primary.ForwardRef || c.BackwardRef != primary.BackwardRef {
				alternates = append(alternates, c)
			}
		}
		return primary, alternates

	default: // WidenessOnly
		primary = candidates[0]
		for _, c := range candidates[1:] {
			if c.WidenessPercentage > primary.WidenessPercentage ||
				(c.WidenessPercentage == primary.WidenessPercentage && c.TotalCost < primary.TotalCost) {
				primary = c
			}
		}
		return primary, nil
	}
}

// lessMinTurns reports whether a ranks ahead of b under MIN_TURNS_ONLY:
// fewer right turns, then fewer sharp turns, then lower total cost.
func lessMinTurns(a, b Candidate) bool {
	if a.RightTurns != b.RightTurns {
		return a.RightTurns < b.RightTurns
	}
	if a.SharpTurns != b.SharpTurns {
		return a.SharpTurns < b.SharpTurns
	}
	return a.TotalCost < b.TotalCost
}
